package usecases

import (
	"context"

	"netgrid/internal/application/resource/dto"
	"netgrid/internal/domain/resource"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

// GetResourceUseCase returns one catalog entry with live availability
// from the inventory engine.
type GetResourceUseCase struct {
	resourceRepo resource.Repository
	registry     InventoryRegistry
	logger       logger.Interface
}

func NewGetResourceUseCase(
	resourceRepo resource.Repository,
	registry InventoryRegistry,
	logger logger.Interface,
) *GetResourceUseCase {
	return &GetResourceUseCase{
		resourceRepo: resourceRepo,
		registry:     registry,
		logger:       logger,
	}
}

func (uc *GetResourceUseCase) Execute(ctx context.Context, resourceID uint) (*dto.ResourceDTO, error) {
	if resourceID == 0 {
		return nil, errors.NewValidationError("resource ID is required")
	}

	res, err := uc.resourceRepo.FindByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errors.NewNotFoundError("resource not found")
	}

	// Engine counters are fresher than the persisted row.
	if available, err := uc.registry.Available(res.ID()); err == nil {
		if syncErr := res.SyncAvailable(available); syncErr != nil {
			uc.logger.Warnw("engine availability outside persisted bounds",
				"resource_id", res.ID(), "available", available)
		}
	}

	return dto.ToResourceDTO(res), nil
}
