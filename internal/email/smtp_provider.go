package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// SMTPProvider sends mail through an SMTP relay.
type SMTPProvider struct {
	config Config
	dialer *gomail.Dialer
}

func NewSMTPProvider(config Config) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPProvider{
		config: config,
		dialer: dialer,
	}, nil
}

func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.HTML {
		m.SetBody("text/html", email.Body)
	} else {
		m.SetBody("text/plain", email.Body)
	}

	return p.dialer.DialAndSend(m)
}

func (p *SMTPProvider) SendVerification(to, token string) error {
	return p.Send(&Email{
		To:      []string{to},
		Subject: "Verify your InternHub account",
		Body:    fmt.Sprintf("Welcome to InternHub!\n\nYour verification code is: %s\n", token),
	})
}

func (p *SMTPProvider) SendPasswordReset(to, token string) error {
	return p.Send(&Email{
		To:      []string{to},
		Subject: "Reset your InternHub password",
		Body:    fmt.Sprintf("A password reset was requested for your account.\n\nYour reset code is: %s\n\nIf you did not request this, you can ignore this email.\n", token),
	})
}

func (p *SMTPProvider) Close() error {
	return nil
}
