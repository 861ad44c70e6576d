package usecases

import (
	"context"

	"netgrid/internal/application/resource/dto"
	"netgrid/internal/domain/resource"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type UpdateResourceCommand struct {
	ResourceID    uint
	ResourceName  *string
	QuantityTotal *int
}

// UpdateResourceUseCase renames a resource or changes its total quantity.
// Capacity changes keep the reserved amount fixed, so a total below what
// is currently reserved is rejected. The engine counters move first; if
// persistence then fails the capacity change is reverted.
type UpdateResourceUseCase struct {
	resourceRepo resource.Repository
	registry     InventoryRegistry
	logger       logger.Interface
}

func NewUpdateResourceUseCase(
	resourceRepo resource.Repository,
	registry InventoryRegistry,
	logger logger.Interface,
) *UpdateResourceUseCase {
	return &UpdateResourceUseCase{
		resourceRepo: resourceRepo,
		registry:     registry,
		logger:       logger,
	}
}

func (uc *UpdateResourceUseCase) Execute(ctx context.Context, cmd UpdateResourceCommand) (*dto.ResourceDTO, error) {
	uc.logger.Infow("executing update resource use case", "resource_id", cmd.ResourceID)

	if cmd.ResourceID == 0 {
		return nil, errors.NewValidationError("resource ID is required")
	}
	if cmd.ResourceName == nil && cmd.QuantityTotal == nil {
		return nil, errors.NewValidationError("nothing to update")
	}

	res, err := uc.resourceRepo.FindByID(ctx, cmd.ResourceID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errors.NewNotFoundError("resource not found")
	}

	if cmd.ResourceName != nil {
		if err := res.Rename(*cmd.ResourceName); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	oldTotal := res.QuantityTotal()
	capacityChanged := false
	if cmd.QuantityTotal != nil && *cmd.QuantityTotal != oldTotal {
		if err := uc.registry.SetCapacity(res.ID(), *cmd.QuantityTotal); err != nil {
			return nil, err
		}
		capacityChanged = true

		if err := res.SetTotal(*cmd.QuantityTotal); err != nil {
			// The engine accepted the change, so this only fires on a
			// counter mismatch between engine and store.
			uc.revertCapacity(res.ID(), oldTotal)
			return nil, errors.NewConsistencyError(err.Error())
		}

		available, err := uc.registry.Available(res.ID())
		if err != nil {
			uc.revertCapacity(res.ID(), oldTotal)
			return nil, err
		}
		if err := res.SyncAvailable(available); err != nil {
			uc.revertCapacity(res.ID(), oldTotal)
			return nil, errors.NewConsistencyError(err.Error())
		}
	}

	if err := uc.resourceRepo.Update(ctx, res); err != nil {
		if capacityChanged {
			uc.revertCapacity(res.ID(), oldTotal)
		}
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a resource with this name already exists")
		}
		uc.logger.Errorw("failed to update resource", "resource_id", res.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("resource updated", "resource_id", res.ID())
	return dto.ToResourceDTO(res), nil
}

func (uc *UpdateResourceUseCase) revertCapacity(resourceID uint, total int) {
	if err := uc.registry.SetCapacity(resourceID, total); err != nil {
		uc.logger.Errorw("failed to revert capacity change, counters may drift",
			"resource_id", resourceID, "error", err)
	}
}
