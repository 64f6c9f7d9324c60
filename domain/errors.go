package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotVerified = errors.New("user not verified")
	ErrEmailTaken      = errors.New("email already registered")
)

// Verification code errors
var (
	ErrCodeNotFound   = errors.New("verification code not found")
	ErrResendThrottle = errors.New("verification email recently sent")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Delivery errors
var (
	ErrMailDelivery = errors.New("email delivery failed")
)
