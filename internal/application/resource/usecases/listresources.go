package usecases

import (
	"context"

	"netgrid/internal/application/resource/dto"
	"netgrid/internal/domain/resource"
	"netgrid/internal/shared/logger"
)

// ListResourcesUseCase lists the catalog with live availability from the
// inventory engine.
type ListResourcesUseCase struct {
	resourceRepo resource.Repository
	registry     InventoryRegistry
	logger       logger.Interface
}

func NewListResourcesUseCase(
	resourceRepo resource.Repository,
	registry InventoryRegistry,
	logger logger.Interface,
) *ListResourcesUseCase {
	return &ListResourcesUseCase{
		resourceRepo: resourceRepo,
		registry:     registry,
		logger:       logger,
	}
}

func (uc *ListResourcesUseCase) Execute(ctx context.Context) ([]*dto.ResourceDTO, error) {
	resources, err := uc.resourceRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list resources", "error", err)
		return nil, err
	}

	for _, res := range resources {
		if available, err := uc.registry.Available(res.ID()); err == nil {
			if syncErr := res.SyncAvailable(available); syncErr != nil {
				uc.logger.Warnw("engine availability outside persisted bounds",
					"resource_id", res.ID(), "available", available)
			}
		}
	}

	return dto.ToResourceDTOs(resources), nil
}
