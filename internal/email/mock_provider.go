package email

import "internhub_backend/internal/logger"

// MockProvider logs instead of sending. Used in development and tests.
type MockProvider struct {
	Sent []Email
}

func (p *MockProvider) Send(email *Email) error {
	p.Sent = append(p.Sent, *email)
	logger.Debug("mock email", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *MockProvider) SendVerification(to, token string) error {
	return p.Send(&Email{To: []string{to}, Subject: "Verify your InternHub account", Body: token})
}

func (p *MockProvider) SendPasswordReset(to, token string) error {
	return p.Send(&Email{To: []string{to}, Subject: "Reset your InternHub password", Body: token})
}

func (p *MockProvider) Close() error {
	return nil
}
