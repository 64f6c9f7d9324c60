package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/you/usersvc/internal/http/handlers"
)

func BuildRouter(uh *handlers.UserHandlers, jwtmw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	users := r.Group("/users")
	users.GET("", uh.List)
	users.POST("", uh.Register)
	users.POST("/login", uh.Login)
	users.POST("/verify/:code", uh.VerifyEmail)
	users.POST("/reset_password", uh.RequestPasswordReset)
	users.PUT("/reset_password/:code", uh.ApplyPasswordReset)

	users.GET("/me", jwtmw, uh.Me)

	users.GET("/:id", uh.GetOne)
	users.PUT("/:id", uh.Update)
	users.DELETE("/:id", uh.Remove)

	return r
}
