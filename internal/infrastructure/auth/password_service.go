package auth

import (
	"github.com/you/usersvc/domain"
	"golang.org/x/crypto/bcrypt"
)

// PasswordServiceImpl implements domain.PasswordService
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a password service hashing at the given
// bcrypt cost. A cost of zero or less falls back to bcrypt.DefaultCost.
func NewPasswordService(cost int) domain.PasswordService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordServiceImpl{
		cost: cost,
	}
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PasswordService
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
