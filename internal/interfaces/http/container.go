package http

import (
	"time"

	"gorm.io/gorm"

	locationUC "netgrid/internal/application/location/usecases"
	requestUC "netgrid/internal/application/request/usecases"
	resourceUC "netgrid/internal/application/resource/usecases"
	userUC "netgrid/internal/application/user/usecases"
	"netgrid/internal/infrastructure/auth"
	"netgrid/internal/infrastructure/config"
	"netgrid/internal/infrastructure/repository"
	"netgrid/internal/interfaces/http/handlers"
	"netgrid/internal/inventory"
	"netgrid/internal/shared/db"
	"netgrid/internal/shared/logger"
)

// Container wires repositories, use cases and handlers together.
type Container struct {
	AuthHandler     *handlers.AuthHandler
	UserHandler     *handlers.UserHandler
	LocationHandler *handlers.LocationHandler
	ResourceHandler *handlers.ResourceHandler
	RequestHandler  *handlers.RequestHandler
	JWTManager      *auth.JWTManager
}

// NewContainer builds the full dependency graph for the HTTP interface.
// The inventory engine is shared with the rest of the process so every
// reservation goes through the same counters.
func NewContainer(database *gorm.DB, inv *inventory.Inventory, cfg *config.Config, log logger.Interface) *Container {
	userRepo := repository.NewUserRepository(database)
	locationRepo := repository.NewLocationRepository(database)
	resourceRepo := repository.NewResourceRepository(database)
	requestRepo := repository.NewRequestRepository(database)

	txMgr := db.NewTransactionManager(database)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	jwtManager := auth.NewJWTManager(&cfg.Auth)

	authHandler := handlers.NewAuthHandler(
		userUC.NewRegisterUserUseCase(userRepo, hasher, log),
		userUC.NewLoginUserUseCase(userRepo, hasher, jwtManager, log),
		userUC.NewRefreshTokenUseCase(userRepo, jwtManager, log),
	)

	userHandler := handlers.NewUserHandler(
		userUC.NewGetProfileUseCase(userRepo, log),
		userUC.NewListUsersUseCase(userRepo, log),
		userUC.NewUpdateUserUseCase(userRepo, log),
		userUC.NewDeleteUserUseCase(userRepo, log),
		userUC.NewChangePasswordUseCase(userRepo, hasher, log),
	)

	locationHandler := handlers.NewLocationHandler(
		locationUC.NewCreateLocationUseCase(locationRepo, log),
		locationUC.NewUpdateLocationUseCase(locationRepo, log),
		locationUC.NewDeleteLocationUseCase(locationRepo, requestRepo, log),
		locationUC.NewGetLocationUseCase(locationRepo, log),
		locationUC.NewListLocationsUseCase(locationRepo, log),
	)

	resourceHandler := handlers.NewResourceHandler(
		resourceUC.NewCreateResourceUseCase(resourceRepo, inv, log),
		resourceUC.NewUpdateResourceUseCase(resourceRepo, inv, log),
		resourceUC.NewDeleteResourceUseCase(resourceRepo, requestRepo, inv, log),
		resourceUC.NewGetResourceUseCase(resourceRepo, inv, log),
		resourceUC.NewListResourcesUseCase(resourceRepo, inv, log),
	)

	requestHandler := handlers.NewRequestHandler(
		requestUC.NewCreateRequestUseCase(requestRepo, locationRepo, resourceRepo, inv, txMgr, log),
		requestUC.NewApproveRequestUseCase(requestRepo, txMgr, log),
		requestUC.NewRejectRequestUseCase(requestRepo, resourceRepo, inv, txMgr, log),
		requestUC.NewCancelRequestUseCase(requestRepo, resourceRepo, inv, txMgr, log),
		requestUC.NewGetRequestUseCase(requestRepo, log),
		requestUC.NewListRequestsUseCase(requestRepo, log),
		requestUC.NewGenerateReportUseCase(requestRepo, resourceRepo, log),
		cfg.Inventory.LockRetries,
		time.Duration(cfg.Inventory.RetryDelayMS)*time.Millisecond,
	)

	return &Container{
		AuthHandler:     authHandler,
		UserHandler:     userHandler,
		LocationHandler: locationHandler,
		ResourceHandler: resourceHandler,
		RequestHandler:  requestHandler,
		JWTManager:      jwtManager,
	}
}
