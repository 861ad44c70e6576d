package usecases

import (
	"context"

	"netgrid/internal/application/resource/dto"
	"netgrid/internal/domain/resource"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type CreateResourceCommand struct {
	ResourceName  string
	QuantityTotal int
}

// CreateResourceUseCase adds a resource to the catalog and registers its
// counters with the inventory engine. New resources start fully
// available.
type CreateResourceUseCase struct {
	resourceRepo resource.Repository
	registry     InventoryRegistry
	logger       logger.Interface
}

func NewCreateResourceUseCase(
	resourceRepo resource.Repository,
	registry InventoryRegistry,
	logger logger.Interface,
) *CreateResourceUseCase {
	return &CreateResourceUseCase{
		resourceRepo: resourceRepo,
		registry:     registry,
		logger:       logger,
	}
}

func (uc *CreateResourceUseCase) Execute(ctx context.Context, cmd CreateResourceCommand) (*dto.ResourceDTO, error) {
	uc.logger.Infow("executing create resource use case", "name", cmd.ResourceName)

	res, err := resource.NewResource(cmd.ResourceName, cmd.QuantityTotal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.resourceRepo.Save(ctx, res); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a resource with this name already exists")
		}
		uc.logger.Errorw("failed to save resource", "error", err)
		return nil, err
	}

	if err := uc.registry.AddResource(res.ID(), res.QuantityTotal(), res.QuantityAvailable()); err != nil {
		uc.logger.Errorw("failed to register resource with inventory engine",
			"resource_id", res.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("resource created", "resource_id", res.ID(), "name", res.Name())
	return dto.ToResourceDTO(res), nil
}
