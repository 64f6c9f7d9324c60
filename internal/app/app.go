package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/usersvc/internal/config"
	httpx "github.com/you/usersvc/internal/http"
	"github.com/you/usersvc/internal/http/handlers"
	"github.com/you/usersvc/internal/http/middleware"
	"github.com/you/usersvc/internal/infrastructure/auth"
	"github.com/you/usersvc/internal/infrastructure/database"
	"github.com/you/usersvc/internal/infrastructure/notifications"
	"github.com/you/usersvc/internal/infrastructure/repositories"
	"github.com/you/usersvc/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Initialize infrastructure services
	passwordSvc := auth.NewPasswordService(cfg.BcryptCost)
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	notificationSvc := notifications.NewSMTPService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(gdb)
	codeRepo := repositories.NewEmailCodeRepository(gdb)

	// Initialize services
	verificationConfig := services.VerificationConfig{
		ResendWindow: cfg.ResendWindow,
	}
	verificationSvc := services.NewVerificationService(codeRepo, notificationSvc, rdb, verificationConfig)
	userSvc := services.NewUserService(userRepo, verificationSvc, passwordSvc, tokenSvc)

	// Initialize handlers and middleware
	userH := handlers.NewUserHandlers(userSvc)
	jwtMW := middleware.AuthMiddleware(tokenSvc)

	// Build router
	r := httpx.BuildRouter(userH, jwtMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
