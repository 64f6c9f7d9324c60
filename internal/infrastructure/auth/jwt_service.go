package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/you/usersvc/domain"
)

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	tokenTTL  time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey string, issuer string, ttl time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		tokenTTL:  ttl,
	}
}

// generateJTI creates a unique JWT ID
func (j *JWTServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// Generate implements domain.TokenService. The token embeds the full
// sanitized user record so clients can render the session without an
// extra round trip.
func (j *JWTServiceImpl) Generate(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user": map[string]any{
			"id":         user.ID,
			"email":      user.Email,
			"firstName":  user.FirstName,
			"lastName":   user.LastName,
			"country":    user.Country,
			"image":      user.Image,
			"isVerified": user.IsVerified,
		},
		"user_id": user.ID,
		"email":   user.Email,
		"iss":     j.issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(j.tokenTTL).Unix(),
		"jti":     j.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate implements domain.TokenService
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil {
		// Parse validates exp itself; keep the expiry sentinel distinct
		// so callers can tell a stale session from a forged one.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.TokenClaims{
		UserID:    uint(userID),
		Email:     email,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}
