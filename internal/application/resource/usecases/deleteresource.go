package usecases

import (
	"context"

	"netgrid/internal/domain/request"
	"netgrid/internal/domain/resource"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type DeleteResourceCommand struct {
	ResourceID uint
}

// DeleteResourceUseCase removes a resource from the catalog. Resources
// referenced by requests that still hold a reservation cannot be deleted;
// decided history (Rejected, Cancelled) does not block deletion.
type DeleteResourceUseCase struct {
	resourceRepo resource.Repository
	requestRepo  request.Repository
	registry     InventoryRegistry
	logger       logger.Interface
}

func NewDeleteResourceUseCase(
	resourceRepo resource.Repository,
	requestRepo request.Repository,
	registry InventoryRegistry,
	logger logger.Interface,
) *DeleteResourceUseCase {
	return &DeleteResourceUseCase{
		resourceRepo: resourceRepo,
		requestRepo:  requestRepo,
		registry:     registry,
		logger:       logger,
	}
}

func (uc *DeleteResourceUseCase) Execute(ctx context.Context, cmd DeleteResourceCommand) error {
	uc.logger.Infow("executing delete resource use case", "resource_id", cmd.ResourceID)

	if cmd.ResourceID == 0 {
		return errors.NewValidationError("resource ID is required")
	}

	res, err := uc.resourceRepo.FindByID(ctx, cmd.ResourceID)
	if err != nil {
		return err
	}
	if res == nil {
		return errors.NewNotFoundError("resource not found")
	}

	reserved, err := uc.requestRepo.CountReservedByResource(ctx, cmd.ResourceID)
	if err != nil {
		return err
	}
	if reserved > 0 {
		return errors.NewConflictError("resource is referenced by pending or approved requests")
	}

	if err := uc.resourceRepo.Delete(ctx, cmd.ResourceID); err != nil {
		uc.logger.Errorw("failed to delete resource", "resource_id", cmd.ResourceID, "error", err)
		return err
	}

	uc.registry.RemoveResource(cmd.ResourceID)

	uc.logger.Infow("resource deleted", "resource_id", cmd.ResourceID)
	return nil
}
