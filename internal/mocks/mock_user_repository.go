package mocks

import (
	"context"

	"github.com/you/usersvc/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *domain.User) error
	FindAllFunc        func(ctx context.Context) ([]domain.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.User, error)
	UpdateProfileFunc  func(ctx context.Context, id uint, update domain.ProfileUpdate) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, id uint, passwordHash string) error
	MarkVerifiedFunc   func(ctx context.Context, id uint) error
	DeleteFunc         func(ctx context.Context, id uint) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindAll lists all users
func (m *MockUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	// Default behavior: empty list
	return []domain.User{}, nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdateProfile updates the mutable profile fields
func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uint, update domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, update)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdatePassword replaces the stored password hash
func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, passwordHash)
	}
	// Default behavior: success
	return nil
}

// MarkVerified marks the user's email as verified
func (m *MockUserRepository) MarkVerified(ctx context.Context, id uint) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Delete removes a user
func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
