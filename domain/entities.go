package domain

import "time"

// User represents a user account in the system
type User struct {
	ID           uint
	Email        string
	PasswordHash string `gorm:"column:password"`
	FirstName    string
	LastName     string
	Country      string
	Image        string
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfileUpdate carries the mutable profile fields
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Country   string
	Image     string
}

// EmailCode is a single-use verification code bound to a user.
// Created when an email-verify or password-reset flow starts,
// destroyed exactly once on redemption.
type EmailCode struct {
	ID        uint
	Code      string
	UserID    uint
	CreatedAt time.Time
}

// AuthResult represents a successful login outcome
type AuthResult struct {
	User  *User
	Token string
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
