package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/usersvc/domain"
)

// UserHandlers handles account HTTP requests
type UserHandlers struct {
	userSvc domain.UserService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService) *UserHandlers {
	return &UserHandlers{
		userSvc: userSvc,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Country      string `json:"country"`
	Image        string `json:"image"`
	FrontBaseURL string `json:"frontBaseUrl" binding:"required"`
}

// UpdateRequest represents a profile update request
type UpdateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Country   string `json:"country"`
	Image     string `json:"image"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResetPasswordRequest represents a password reset request
type ResetPasswordRequest struct {
	Email        string `json:"email" binding:"required,email"`
	FrontBaseURL string `json:"frontBaseUrl" binding:"required"`
}

// NewPasswordRequest carries the replacement password
type NewPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// userJSON serializes a user for responses. The password hash never
// leaves the service.
func userJSON(u *domain.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"firstName":  u.FirstName,
		"lastName":   u.LastName,
		"country":    u.Country,
		"image":      u.Image,
		"isVerified": u.IsVerified,
		"createdAt":  u.CreatedAt,
		"updatedAt":  u.UpdatedAt,
	}
}

// List handles listing all users
func (h *UserHandlers) List(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	results := make([]gin.H, 0, len(users))
	for i := range users {
		results = append(results, userJSON(&users[i]))
	}
	c.JSON(http.StatusOK, results)
}

// Register handles user registration
func (h *UserHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &domain.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Country:   req.Country,
		Image:     req.Image,
	}

	created, err := h.userSvc.Register(c.Request.Context(), user, req.Password, req.FrontBaseURL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		case errors.Is(err, domain.ErrMailDelivery):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send verification email"})
		case errors.Is(err, domain.ErrResendThrottle):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Verification email recently sent"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, userJSON(created))
}

// GetOne handles fetching a single user by id
func (h *UserHandlers) GetOne(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.userSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	c.JSON(http.StatusOK, userJSON(user))
}

// Update handles profile updates
func (h *UserHandlers) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userSvc.UpdateProfile(c.Request.Context(), id, domain.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Country:   req.Country,
		Image:     req.Image,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, userJSON(user))
}

// Remove handles account removal. Deleting an absent id still returns
// 204, matching existing clients.
func (h *UserHandlers) Remove(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.userSvc.Remove(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove user"})
		return
	}

	c.Status(http.StatusNoContent)
}

// VerifyEmail handles email verification via code
func (h *UserHandlers) VerifyEmail(c *gin.Context) {
	code := c.Param("code")

	if err := h.userSvc.VerifyEmail(c.Request.Context(), code); err != nil {
		if errors.Is(err, domain.ErrCodeNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Código inválido"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify email"})
		return
	}

	log.Printf("EMAIL_VERIFIED: code=%s timestamp=%s", code, time.Now().UTC().Format(time.RFC3339))

	c.JSON(http.StatusOK, gin.H{"message": "Código verificado"})
}

// Login handles user login
func (h *UserHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.userSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Correo invalido"})
		case errors.Is(err, domain.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Contraseña incorrecta"})
		case errors.Is(err, domain.ErrUserNotVerified):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Usuario sin verificar"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userJSON(result.User),
		"token": result.Token,
	})
}

// Me handles getting the authenticated user's record
func (h *UserHandlers) Me(c *gin.Context) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	userID, err := strconv.ParseUint(userIDStr.(string), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.userSvc.GetByID(c.Request.Context(), uint(userID))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	c.JSON(http.StatusOK, userJSON(user))
}

// RequestPasswordReset handles requesting a password reset email
func (h *UserHandlers) RequestPasswordReset(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userSvc.RequestPasswordReset(c.Request.Context(), req.Email, req.FrontBaseURL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Correo invalido"})
		case errors.Is(err, domain.ErrMailDelivery):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send reset email"})
		case errors.Is(err, domain.ErrResendThrottle):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Reset email recently sent"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request password reset"})
		}
		return
	}

	c.JSON(http.StatusOK, userJSON(user))
}

// ApplyPasswordReset handles applying a new password via reset code
func (h *UserHandlers) ApplyPasswordReset(c *gin.Context) {
	code := c.Param("code")

	var req NewPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userSvc.ApplyPasswordReset(c.Request.Context(), code, req.Password); err != nil {
		if errors.Is(err, domain.ErrCodeNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Código inválido"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "La contraseña se actualizo con exito"})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
