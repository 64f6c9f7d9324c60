package mocks

import (
	"context"

	"github.com/you/usersvc/domain"
)

// MockUserService implements domain.UserService interface for testing
type MockUserService struct {
	ListFunc                 func(ctx context.Context) ([]domain.User, error)
	RegisterFunc             func(ctx context.Context, user *domain.User, password, frontBaseURL string) (*domain.User, error)
	GetByIDFunc              func(ctx context.Context, id uint) (*domain.User, error)
	UpdateProfileFunc        func(ctx context.Context, id uint, update domain.ProfileUpdate) (*domain.User, error)
	RemoveFunc               func(ctx context.Context, id uint) error
	VerifyEmailFunc          func(ctx context.Context, code string) error
	LoginFunc                func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	RequestPasswordResetFunc func(ctx context.Context, email, frontBaseURL string) (*domain.User, error)
	ApplyPasswordResetFunc   func(ctx context.Context, code, password string) error
}

// NewMockUserService creates a new MockUserService with default behaviors
func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

// List lists all users
func (m *MockUserService) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.User{}, nil
}

// Register registers a new user
func (m *MockUserService) Register(ctx context.Context, user *domain.User, password, frontBaseURL string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, user, password, frontBaseURL)
	}
	return user, nil
}

// GetByID fetches a user by id
func (m *MockUserService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

// UpdateProfile updates the mutable profile fields
func (m *MockUserService) UpdateProfile(ctx context.Context, id uint, update domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, update)
	}
	return nil, domain.ErrUserNotFound
}

// Remove deletes a user
func (m *MockUserService) Remove(ctx context.Context, id uint) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, id)
	}
	return nil
}

// VerifyEmail redeems a verification code
func (m *MockUserService) VerifyEmail(ctx context.Context, code string) error {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, code)
	}
	return domain.ErrCodeNotFound
}

// Login authenticates a user
func (m *MockUserService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrUserNotFound
}

// RequestPasswordReset starts the reset flow
func (m *MockUserService) RequestPasswordReset(ctx context.Context, email, frontBaseURL string) (*domain.User, error) {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email, frontBaseURL)
	}
	return nil, domain.ErrUserNotFound
}

// ApplyPasswordReset completes the reset flow
func (m *MockUserService) ApplyPasswordReset(ctx context.Context, code, password string) error {
	if m.ApplyPasswordResetFunc != nil {
		return m.ApplyPasswordResetFunc(ctx, code, password)
	}
	return domain.ErrCodeNotFound
}

// Compile-time interface compliance verification
var _ domain.UserService = (*MockUserService)(nil)
