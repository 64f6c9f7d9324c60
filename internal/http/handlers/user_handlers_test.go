package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/usersvc/domain"
	"github.com/you/usersvc/internal/mocks"
)

func setupTestRouter(userSvc domain.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewUserHandlers(userSvc)
	r := gin.New()

	users := r.Group("/users")
	users.GET("", h.List)
	users.POST("", h.Register)
	users.POST("/login", h.Login)
	users.POST("/verify/:code", h.VerifyEmail)
	users.POST("/reset_password", h.RequestPasswordReset)
	users.PUT("/reset_password/:code", h.ApplyPasswordReset)
	users.GET("/me", fakeAuth("7"), h.Me)
	users.GET("/:id", h.GetOne)
	users.PUT("/:id", h.Update)
	users.DELETE("/:id", h.Remove)

	return r
}

// fakeAuth stands in for the JWT middleware
func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}

func TestUserHandlers_Register(t *testing.T) {
	validBody := gin.H{
		"email":        "new@example.com",
		"password":     "secret123",
		"firstName":    "New",
		"lastName":     "User",
		"country":      "Peru",
		"frontBaseUrl": "https://front.example",
	}

	t.Run("successful registration returns 201 without the hash", func(t *testing.T) {
		userSvc := mocks.NewMockUserService()
		userSvc.RegisterFunc = func(ctx context.Context, user *domain.User, password, frontBaseURL string) (*domain.User, error) {
			user.ID = 42
			user.PasswordHash = "hashed_secret123"
			return user, nil
		}
		r := setupTestRouter(userSvc)

		w := doJSON(t, r, http.MethodPost, "/users", validBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(42), body["id"])
		assert.Equal(t, "new@example.com", body["email"])
		assert.Equal(t, false, body["isVerified"])
		assert.NotContains(t, w.Body.String(), "hashed_secret123")
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		r := setupTestRouter(mocks.NewMockUserService())

		w := doJSON(t, r, http.MethodPost, "/users", gin.H{"email": "x@example.com"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		userSvc := mocks.NewMockUserService()
		userSvc.RegisterFunc = func(ctx context.Context, user *domain.User, password, frontBaseURL string) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		}
		r := setupTestRouter(userSvc)

		w := doJSON(t, r, http.MethodPost, "/users", validBody)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("mail delivery failure returns 502", func(t *testing.T) {
		userSvc := mocks.NewMockUserService()
		userSvc.RegisterFunc = func(ctx context.Context, user *domain.User, password, frontBaseURL string) (*domain.User, error) {
			return nil, fmt.Errorf("%w: smtp down", domain.ErrMailDelivery)
		}
		r := setupTestRouter(userSvc)

		w := doJSON(t, r, http.MethodPost, "/users", validBody)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestUserHandlers_Login(t *testing.T) {
	tests := []struct {
		name            string
		loginErr        error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "unknown email",
			loginErr:        domain.ErrUserNotFound,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Correo invalido",
		},
		{
			name:            "wrong password",
			loginErr:        domain.ErrInvalidPassword,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Contraseña incorrecta",
		},
		{
			name:            "unverified user",
			loginErr:        domain.ErrUserNotVerified,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Usuario sin verificar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userSvc := mocks.NewMockUserService()
			userSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
				return nil, tt.loginErr
			}
			r := setupTestRouter(userSvc)

			w := doJSON(t, r, http.MethodPost, "/users/login", gin.H{
				"email":    "test@example.com",
				"password": "whatever1",
			})

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedMessage, messageOf(t, w))
		})
	}

	t.Run("successful login returns user and token", func(t *testing.T) {
		userSvc := mocks.NewMockUserService()
		userSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			return &domain.AuthResult{
				User: &domain.User{
					ID:         7,
					Email:      email,
					IsVerified: true,
				},
				Token: "signed.jwt.token",
			}, nil
		}
		r := setupTestRouter(userSvc)

		w := doJSON(t, r, http.MethodPost, "/users/login", gin.H{
			"email":    "test@example.com",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "signed.jwt.token", body["token"])
		user := body["user"].(map[string]any)
		assert.Equal(t, "test@example.com", user["email"])
	})
}

func TestUserHandlers_VerifyEmail(t *testing.T) {
	t.Run("valid code", func(t *testing.T) {
		userSvc := mocks.NewMockUserService()
		userSvc.VerifyEmailFunc = func(ctx context.Context, code string) error {
			assert.Equal(t, "goodcode", code)
			return nil
		}
		r := setupTestRouter(userSvc)

		w := doJSON(t, r, http.MethodPost, "/users/verify/goodcode", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Código verificado", messageOf(t, w))
	})

	t.Run("unknown code", func(t *testing.T) {
		r := setupTestRouter(mocks.NewMockUserService())

		w := doJSON(t, r, http.MethodPost, "/users/verify/badcode", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Código inválido", messageOf(t, w))
	})
}

func TestUserHandlers_GetOne(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		userSvc := mocks.NewMockUserService()
		userSvc.GetByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return &domain.User{ID: id, Email: "test@example.com"}, nil
		}
		r := setupTestRouter(userSvc)

		w := doJSON(t, r, http.MethodGet, "/users/7", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing user returns bare 404", func(t *testing.T) {
		r := setupTestRouter(mocks.NewMockUserService())

		w := doJSON(t, r, http.MethodGet, "/users/9999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		r := setupTestRouter(mocks.NewMockUserService())

		w := doJSON(t, r, http.MethodGet, "/users/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandlers_Update(t *testing.T) {
	t.Run("missing user returns 404", func(t *testing.T) {
		r := setupTestRouter(mocks.NewMockUserService())

		w := doJSON(t, r, http.MethodPut, "/users/9999", gin.H{"firstName": "Ghost"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("successful update returns the updated user", func(t *testing.T) {
		userSvc := mocks.NewMockUserService()
		userSvc.UpdateProfileFunc = func(ctx context.Context, id uint, update domain.ProfileUpdate) (*domain.User, error) {
			return &domain.User{ID: id, FirstName: update.FirstName}, nil
		}
		r := setupTestRouter(userSvc)

		w := doJSON(t, r, http.MethodPut, "/users/7", gin.H{"firstName": "Renamed"})

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Renamed", body["firstName"])
	})
}

func TestUserHandlers_Remove(t *testing.T) {
	// Removal is idempotent: 204 whether or not the id existed
	r := setupTestRouter(mocks.NewMockUserService())

	w := doJSON(t, r, http.MethodDelete, "/users/9999", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestUserHandlers_Me(t *testing.T) {
	userSvc := mocks.NewMockUserService()
	userSvc.GetByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		assert.Equal(t, uint(7), id)
		return &domain.User{ID: id, Email: "me@example.com"}, nil
	}
	r := setupTestRouter(userSvc)

	w := doJSON(t, r, http.MethodGet, "/users/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "me@example.com", body["email"])
}

func TestUserHandlers_RequestPasswordReset(t *testing.T) {
	t.Run("unknown email returns 401", func(t *testing.T) {
		r := setupTestRouter(mocks.NewMockUserService())

		w := doJSON(t, r, http.MethodPost, "/users/reset_password", gin.H{
			"email":        "missing@example.com",
			"frontBaseUrl": "https://front.example",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Correo invalido", messageOf(t, w))
	})

	t.Run("successful request returns the user", func(t *testing.T) {
		userSvc := mocks.NewMockUserService()
		userSvc.RequestPasswordResetFunc = func(ctx context.Context, email, frontBaseURL string) (*domain.User, error) {
			return &domain.User{ID: 7, Email: email}, nil
		}
		r := setupTestRouter(userSvc)

		w := doJSON(t, r, http.MethodPost, "/users/reset_password", gin.H{
			"email":        "test@example.com",
			"frontBaseUrl": "https://front.example",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "test@example.com", body["email"])
	})
}

func TestUserHandlers_ApplyPasswordReset(t *testing.T) {
	t.Run("valid code", func(t *testing.T) {
		userSvc := mocks.NewMockUserService()
		userSvc.ApplyPasswordResetFunc = func(ctx context.Context, code, password string) error {
			assert.Equal(t, "resetcode", code)
			return nil
		}
		r := setupTestRouter(userSvc)

		w := doJSON(t, r, http.MethodPut, "/users/reset_password/resetcode", gin.H{
			"password": "newsecret1",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "La contraseña se actualizo con exito", messageOf(t, w))
	})

	t.Run("unknown code returns 401", func(t *testing.T) {
		r := setupTestRouter(mocks.NewMockUserService())

		w := doJSON(t, r, http.MethodPut, "/users/reset_password/badcode", gin.H{
			"password": "newsecret1",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Código inválido", messageOf(t, w))
	})
}
