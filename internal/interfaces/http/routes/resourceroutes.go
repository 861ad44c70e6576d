package routes

import (
	"github.com/gin-gonic/gin"

	"netgrid/internal/interfaces/http/handlers"
	"netgrid/internal/interfaces/http/middleware"
	"netgrid/internal/shared/authorization"
)

type ResourceRouteConfig struct {
	ResourceHandler *handlers.ResourceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupResourceRoutes(engine *gin.Engine, config *ResourceRouteConfig) {
	resources := engine.Group("/resources")
	resources.Use(config.AuthMiddleware.RequireAuth())
	{
		resources.GET("", config.ResourceHandler.ListResources)
		resources.GET("/:id", config.ResourceHandler.GetResource)

		resources.POST("",
			authorization.RequireAdmin(),
			config.ResourceHandler.CreateResource)
		resources.PUT("/:id",
			authorization.RequireAdmin(),
			config.ResourceHandler.UpdateResource)
		resources.DELETE("/:id",
			authorization.RequireAdmin(),
			config.ResourceHandler.DeleteResource)
	}
}
