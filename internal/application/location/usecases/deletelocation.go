package usecases

import (
	"context"

	"netgrid/internal/domain/location"
	"netgrid/internal/domain/request"
	vo "netgrid/internal/domain/request/valueobjects"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

// DeleteLocationUseCase removes a service area. Locations referenced by
// pending or approved requests cannot be deleted.
type DeleteLocationUseCase struct {
	locationRepo location.Repository
	requestRepo  request.Repository
	logger       logger.Interface
}

func NewDeleteLocationUseCase(
	locationRepo location.Repository,
	requestRepo request.Repository,
	logger logger.Interface,
) *DeleteLocationUseCase {
	return &DeleteLocationUseCase{
		locationRepo: locationRepo,
		requestRepo:  requestRepo,
		logger:       logger,
	}
}

func (uc *DeleteLocationUseCase) Execute(ctx context.Context, locationID uint) error {
	uc.logger.Infow("executing delete location use case", "location_id", locationID)

	if locationID == 0 {
		return errors.NewValidationError("location ID is required")
	}

	loc, err := uc.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		return err
	}
	if loc == nil {
		return errors.NewNotFoundError("location not found")
	}

	active, err := uc.requestRepo.CountByLocation(ctx, locationID, []vo.Status{vo.StatusPending, vo.StatusApproved})
	if err != nil {
		return err
	}
	if active > 0 {
		return errors.NewConflictError("location is referenced by pending or approved requests")
	}

	if err := uc.locationRepo.Delete(ctx, locationID); err != nil {
		uc.logger.Errorw("failed to delete location", "location_id", locationID, "error", err)
		return err
	}

	uc.logger.Infow("location deleted", "location_id", locationID)
	return nil
}
