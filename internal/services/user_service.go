package services

import (
	"context"
	"fmt"

	"github.com/you/usersvc/domain"
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo        domain.UserRepository
	verificationSvc domain.VerificationService
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
}

// NewUserService creates a new user service
func NewUserService(
	userRepo domain.UserRepository,
	verificationSvc domain.VerificationService,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
) domain.UserService {
	return &UserServiceImpl{
		userRepo:        userRepo,
		verificationSvc: verificationSvc,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
	}
}

// List implements domain.UserService
func (s *UserServiceImpl) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.FindAll(ctx)
}

// Register implements domain.UserService. The user is created
// unverified and a verification email is dispatched. A delivery
// failure is reported to the caller; the account itself stays, the
// client can retry via the password-reset flow's sibling endpoint.
func (s *UserServiceImpl) Register(ctx context.Context, user *domain.User, password, frontBaseURL string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existingUser != nil {
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	user.IsVerified = false

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.verificationSvc.SendVerification(ctx, user, frontBaseURL); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByID implements domain.UserService
func (s *UserServiceImpl) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// UpdateProfile implements domain.UserService
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id uint, update domain.ProfileUpdate) (*domain.User, error) {
	return s.userRepo.UpdateProfile(ctx, id, update)
}

// Remove implements domain.UserService
func (s *UserServiceImpl) Remove(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}

// VerifyEmail implements domain.UserService. Redemption consumes the
// code, so a second attempt with the same code fails with NotFound.
func (s *UserServiceImpl) VerifyEmail(ctx context.Context, code string) error {
	userID, err := s.verificationSvc.Redeem(ctx, code)
	if err != nil {
		return err
	}

	if err := s.userRepo.MarkVerified(ctx, userID); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	return nil
}

// Login implements domain.UserService. The checks run in a fixed
// order: unknown email, then wrong password, then unverified account.
func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidPassword
	}

	if !user.IsVerified {
		return nil, domain.ErrUserNotVerified
	}

	token, err := s.tokenSvc.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{
		User:  user,
		Token: token,
	}, nil
}

// RequestPasswordReset implements domain.UserService
func (s *UserServiceImpl) RequestPasswordReset(ctx context.Context, email, frontBaseURL string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	if err := s.verificationSvc.SendPasswordReset(ctx, user, frontBaseURL); err != nil {
		return nil, err
	}

	return user, nil
}

// ApplyPasswordReset implements domain.UserService
func (s *UserServiceImpl) ApplyPasswordReset(ctx context.Context, code, password string) error {
	userID, err := s.verificationSvc.Redeem(ctx, code)
	if err != nil {
		return err
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
