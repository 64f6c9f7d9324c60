package mocks

import (
	"context"

	"github.com/you/usersvc/domain"
)

// MockVerificationService implements domain.VerificationService interface for testing
type MockVerificationService struct {
	SendVerificationFunc  func(ctx context.Context, user *domain.User, frontBaseURL string) error
	SendPasswordResetFunc func(ctx context.Context, user *domain.User, frontBaseURL string) error
	RedeemFunc            func(ctx context.Context, code string) (uint, error)
}

// NewMockVerificationService creates a new MockVerificationService with default behaviors
func NewMockVerificationService() *MockVerificationService {
	return &MockVerificationService{}
}

// SendVerification issues a code and sends the verify-email message
func (m *MockVerificationService) SendVerification(ctx context.Context, user *domain.User, frontBaseURL string) error {
	if m.SendVerificationFunc != nil {
		return m.SendVerificationFunc(ctx, user, frontBaseURL)
	}
	// Default behavior: success
	return nil
}

// SendPasswordReset issues a code and sends the reset message
func (m *MockVerificationService) SendPasswordReset(ctx context.Context, user *domain.User, frontBaseURL string) error {
	if m.SendPasswordResetFunc != nil {
		return m.SendPasswordResetFunc(ctx, user, frontBaseURL)
	}
	// Default behavior: success
	return nil
}

// Redeem consumes a code and resolves the owning user
func (m *MockVerificationService) Redeem(ctx context.Context, code string) (uint, error) {
	if m.RedeemFunc != nil {
		return m.RedeemFunc(ctx, code)
	}
	// Default behavior: not found
	return 0, domain.ErrCodeNotFound
}

// Compile-time interface compliance verification
var _ domain.VerificationService = (*MockVerificationService)(nil)
