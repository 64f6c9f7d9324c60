package mocks

import (
	"context"

	"github.com/you/usersvc/domain"
)

// MockEmailCodeRepository implements domain.EmailCodeRepository interface for testing
type MockEmailCodeRepository struct {
	CreateFunc  func(ctx context.Context, code *domain.EmailCode) error
	ConsumeFunc func(ctx context.Context, code string) (*domain.EmailCode, error)
	DeleteFunc  func(ctx context.Context, code string) error
}

// NewMockEmailCodeRepository creates a new MockEmailCodeRepository with default behaviors
func NewMockEmailCodeRepository() *MockEmailCodeRepository {
	return &MockEmailCodeRepository{}
}

// Create stores a new email code
func (m *MockEmailCodeRepository) Create(ctx context.Context, code *domain.EmailCode) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, code)
	}
	// Default behavior: success
	return nil
}

// Consume atomically redeems and deletes a code
func (m *MockEmailCodeRepository) Consume(ctx context.Context, code string) (*domain.EmailCode, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, code)
	}
	// Default behavior: not found
	return nil, domain.ErrCodeNotFound
}

// Delete removes a code
func (m *MockEmailCodeRepository) Delete(ctx context.Context, code string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, code)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.EmailCodeRepository = (*MockEmailCodeRepository)(nil)
