package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindAll(ctx context.Context) ([]User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	UpdateProfile(ctx context.Context, id uint, update ProfileUpdate) (*User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	MarkVerified(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

// EmailCodeRepository defines verification code data access operations
type EmailCodeRepository interface {
	Create(ctx context.Context, code *EmailCode) error
	// Consume deletes the code and returns it in a single atomic step,
	// so a code can never be redeemed twice.
	Consume(ctx context.Context, code string) (*EmailCode, error)
	Delete(ctx context.Context, code string) error
}

// UserService defines the account workflow business logic
type UserService interface {
	List(ctx context.Context) ([]User, error)
	Register(ctx context.Context, user *User, password, frontBaseURL string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	UpdateProfile(ctx context.Context, id uint, update ProfileUpdate) (*User, error)
	Remove(ctx context.Context, id uint) error
	VerifyEmail(ctx context.Context, code string) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	RequestPasswordReset(ctx context.Context, email, frontBaseURL string) (*User, error)
	ApplyPasswordReset(ctx context.Context, code, password string) error
}

// VerificationService defines the email code workflow
type VerificationService interface {
	SendVerification(ctx context.Context, user *User, frontBaseURL string) error
	SendPasswordReset(ctx context.Context, user *User, frontBaseURL string) error
	Redeem(ctx context.Context, code string) (uint, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	Generate(user *User) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService defines email delivery operations
type NotificationService interface {
	SendEmail(to, subject, html string) error
}
