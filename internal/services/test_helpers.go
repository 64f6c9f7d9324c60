package services

import (
	"testing"
	"time"

	"github.com/you/usersvc/domain"
)

// createVerifiedUser returns a user that completed email verification
func createVerifiedUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           1,
		Email:        "test@example.com",
		PasswordHash: "hashed_securepassword123",
		FirstName:    "Test",
		LastName:     "User",
		Country:      "Peru",
		Image:        "https://example.com/avatar.png",
		IsVerified:   true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// createUnverifiedUser returns a freshly registered user
func createUnverifiedUser(t *testing.T) *domain.User {
	t.Helper()

	user := createVerifiedUser(t)
	user.IsVerified = false
	return user
}
