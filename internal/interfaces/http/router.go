package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"netgrid/internal/infrastructure/config"
	"netgrid/internal/interfaces/http/middleware"
	"netgrid/internal/interfaces/http/routes"
	"netgrid/internal/inventory"
	"netgrid/internal/shared/logger"
)

// Router holds the gin engine and everything needed to register routes.
type Router struct {
	engine         *gin.Engine
	container      *Container
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	logger         logger.Interface
}

// NewRouter creates the HTTP router with all dependencies. redisClient
// may be nil, in which case rate limiting is disabled.
func NewRouter(database *gorm.DB, inv *inventory.Inventory, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	container := NewContainer(database, inv, cfg, log)
	authMiddleware := middleware.NewAuthMiddleware(container.JWTManager, log)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, 30, time.Minute)
	}

	return &Router{
		engine:         engine,
		container:      container,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
		logger:         log,
	}
}

// SetupRoutes registers middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS([]string{"http://localhost:3000"}))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.container.AuthHandler,
		RateLimiter: r.rateLimiter,
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.container.UserHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupLocationRoutes(r.engine, &routes.LocationRouteConfig{
		LocationHandler: r.container.LocationHandler,
		AuthMiddleware:  r.authMiddleware,
	})

	routes.SetupResourceRoutes(r.engine, &routes.ResourceRouteConfig{
		ResourceHandler: r.container.ResourceHandler,
		AuthMiddleware:  r.authMiddleware,
	})

	routes.SetupRequestRoutes(r.engine, &routes.RequestRouteConfig{
		RequestHandler: r.container.RequestHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
