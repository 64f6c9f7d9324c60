package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/you/usersvc/domain"
)

// codeBytes is the entropy width of an email code. 32 random bytes hex
// encoded make collisions and guessing practically impossible.
const codeBytes = 32

// VerificationServiceImpl implements domain.VerificationService. Codes
// are persisted through the repository; Redis throttles how often a
// recipient can be sent a new one.
type VerificationServiceImpl struct {
	codeRepo        domain.EmailCodeRepository
	notificationSvc domain.NotificationService
	redisClient     *redis.Client
	config          VerificationConfig
}

type VerificationConfig struct {
	ResendWindow time.Duration
}

// NewVerificationService creates a new verification service
func NewVerificationService(codeRepo domain.EmailCodeRepository, notificationSvc domain.NotificationService, redisClient *redis.Client, config VerificationConfig) domain.VerificationService {
	return &VerificationServiceImpl{
		codeRepo:        codeRepo,
		notificationSvc: notificationSvc,
		redisClient:     redisClient,
		config:          config,
	}
}

// SendVerification implements domain.VerificationService
func (s *VerificationServiceImpl) SendVerification(ctx context.Context, user *domain.User, frontBaseURL string) error {
	return s.issueAndSend(ctx, user, frontBaseURL, func(link string) (string, string, error) {
		body, err := renderVerifyEmail(verifyEmailData{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Link:      link,
		})
		return subjectVerifyEmail, body, err
	})
}

// SendPasswordReset implements domain.VerificationService
func (s *VerificationServiceImpl) SendPasswordReset(ctx context.Context, user *domain.User, frontBaseURL string) error {
	return s.issueAndSend(ctx, user, frontBaseURL, func(link string) (string, string, error) {
		body, err := renderResetPassword(resetPasswordData{
			Email: user.Email,
			Link:  link,
		})
		return subjectResetPassword, body, err
	})
}

// Redeem implements domain.VerificationService. Consumption is atomic:
// the code is gone the moment it resolves to a user.
func (s *VerificationServiceImpl) Redeem(ctx context.Context, code string) (uint, error) {
	emailCode, err := s.codeRepo.Consume(ctx, code)
	if err != nil {
		return 0, err
	}
	return emailCode.UserID, nil
}

// issueAndSend mints a fresh code, stores it and delivers the rendered
// message. A delivery failure removes the stored code again so the
// recipient is never left with a link that was reported as unsent.
func (s *VerificationServiceImpl) issueAndSend(ctx context.Context, user *domain.User, frontBaseURL string, render func(link string) (subject, body string, err error)) error {
	if err := s.checkResendWindow(ctx, user.Email); err != nil {
		return err
	}

	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	emailCode := &domain.EmailCode{
		Code:   code,
		UserID: user.ID,
	}
	if err := s.codeRepo.Create(ctx, emailCode); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	link := fmt.Sprintf("%s/%s", frontBaseURL, code)
	subject, body, err := render(link)
	if err != nil {
		s.codeRepo.Delete(ctx, code)
		return err
	}

	if err := s.notificationSvc.SendEmail(user.Email, subject, body); err != nil {
		// Clean up the code so the failed send leaves no live link behind
		s.codeRepo.Delete(ctx, code)
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	return nil
}

// checkResendWindow rate limits mail per recipient. Without Redis
// configured the throttle is skipped.
func (s *VerificationServiceImpl) checkResendWindow(ctx context.Context, email string) error {
	if s.redisClient == nil || s.config.ResendWindow <= 0 {
		return nil
	}

	key := fmt.Sprintf("verify:res:%s", email)
	ok, err := s.redisClient.SetNX(ctx, key, 1, s.config.ResendWindow).Result()
	if err != nil {
		return fmt.Errorf("failed to check resend throttle: %w", err)
	}
	if !ok {
		return domain.ErrResendThrottle
	}
	return nil
}

// generateCode produces a cryptographically random opaque code
func (s *VerificationServiceImpl) generateCode() (string, error) {
	bytes := make([]byte, codeBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
