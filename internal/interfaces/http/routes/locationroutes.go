package routes

import (
	"github.com/gin-gonic/gin"

	"netgrid/internal/interfaces/http/handlers"
	"netgrid/internal/interfaces/http/middleware"
	"netgrid/internal/shared/authorization"
)

type LocationRouteConfig struct {
	LocationHandler *handlers.LocationHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupLocationRoutes(engine *gin.Engine, config *LocationRouteConfig) {
	locations := engine.Group("/locations")
	locations.Use(config.AuthMiddleware.RequireAuth())
	{
		locations.GET("", config.LocationHandler.ListLocations)
		locations.GET("/:id", config.LocationHandler.GetLocation)

		locations.POST("",
			authorization.RequireAdmin(),
			config.LocationHandler.CreateLocation)
		locations.PUT("/:id",
			authorization.RequireAdmin(),
			config.LocationHandler.UpdateLocation)
		locations.DELETE("/:id",
			authorization.RequireAdmin(),
			config.LocationHandler.DeleteLocation)
	}
}
