package mocks

import "github.com/you/usersvc/domain"

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendEmailFunc func(to, subject, html string) error

	// SentEmails records every delivered message for assertions
	SentEmails []SentEmail
}

// SentEmail captures a single delivery
type SentEmail struct {
	To      string
	Subject string
	HTML    string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendEmail sends an email message. Only successful deliveries are
// recorded in SentEmails.
func (m *MockNotificationService) SendEmail(to, subject, html string) error {
	if m.SendEmailFunc != nil {
		if err := m.SendEmailFunc(to, subject, html); err != nil {
			return err
		}
	}
	m.SentEmails = append(m.SentEmails, SentEmail{To: to, Subject: subject, HTML: html})
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
