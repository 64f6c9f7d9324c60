package mocks

import (
	"fmt"
	"time"

	"github.com/you/usersvc/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(user *domain.User) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate generates a token for the user
func (m *MockTokenService) Generate(user *domain.User) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(user)
	}
	// Default behavior: return a mock token
	return fmt.Sprintf("token_user_%d_%s", user.ID, user.Email), nil
}

// Validate validates a token and returns its claims
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: return valid claims for user 1
	now := time.Now()
	return &domain.TokenClaims{
		UserID:    1,
		Email:     "test@example.com",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(24 * time.Hour).Unix(),
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
