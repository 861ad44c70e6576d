package routes

import (
	"github.com/gin-gonic/gin"

	"netgrid/internal/interfaces/http/handlers"
	"netgrid/internal/interfaces/http/middleware"
	"netgrid/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("/me", config.UserHandler.GetProfile)
		users.POST("/me/password", config.UserHandler.ChangePassword)

		users.GET("",
			authorization.RequireAdmin(),
			config.UserHandler.ListUsers)
		users.PUT("/:id", config.UserHandler.UpdateUser)
		users.DELETE("/:id",
			authorization.RequireAdmin(),
			config.UserHandler.DeleteUser)
	}
}
