package routes

import (
	"github.com/gin-gonic/gin"

	"netgrid/internal/interfaces/http/handlers"
	"netgrid/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimiter *middleware.RateLimiter
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	if config.RateLimiter != nil {
		auth.Use(config.RateLimiter.Limit())
	}
	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/refresh", config.AuthHandler.Refresh)
	}
}
