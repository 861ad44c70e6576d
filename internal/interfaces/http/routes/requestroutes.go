package routes

import (
	"github.com/gin-gonic/gin"

	"netgrid/internal/interfaces/http/handlers"
	"netgrid/internal/interfaces/http/middleware"
	"netgrid/internal/shared/authorization"
)

type RequestRouteConfig struct {
	RequestHandler *handlers.RequestHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRequestRoutes(engine *gin.Engine, config *RequestRouteConfig) {
	requests := engine.Group("/requests")
	requests.Use(config.AuthMiddleware.RequireAuth())
	{
		requests.POST("", config.RequestHandler.CreateRequest)
		requests.GET("", config.RequestHandler.ListRequests)

		// Action endpoints before the parameterized GET to avoid conflicts.
		requests.POST("/:id/approve",
			authorization.RequireAdmin(),
			config.RequestHandler.ApproveRequest)
		requests.POST("/:id/reject",
			authorization.RequireAdmin(),
			config.RequestHandler.RejectRequest)
		requests.POST("/:id/cancel", config.RequestHandler.CancelRequest)

		requests.GET("/:id", config.RequestHandler.GetRequest)
	}

	reports := engine.Group("/reports")
	reports.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		reports.GET("/requests", config.RequestHandler.GenerateReport)
	}
}
