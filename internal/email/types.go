package email

import "errors"

// Email is a single outgoing message.
type Email struct {
	To      []string
	Subject string
	Body    string
	HTML    bool
}

// Provider sends emails. The application never fails a primary operation on a
// send error; sends are best-effort side effects.
type Provider interface {
	Send(email *Email) error
	SendVerification(to, token string) error
	SendPasswordReset(to, token string) error
	Close() error
}

// Config carries SMTP settings.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func (c Config) Validate() error {
	if c.Host == "" {
		return errors.New("smtp host is required")
	}
	if c.Port == 0 {
		return errors.New("smtp port is required")
	}
	if c.FromEmail == "" {
		return errors.New("from email is required")
	}
	return nil
}
