package usecases

import (
	"context"

	"netgrid/internal/application/location/dto"
	"netgrid/internal/domain/location"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type UpdateLocationCommand struct {
	LocationID         uint
	AreaName           string
	IsNetworkAvailable bool
}

// UpdateLocationUseCase renames a service area or toggles its network
// availability. Switching availability off does not touch existing
// requests; it only blocks new ones.
type UpdateLocationUseCase struct {
	locationRepo location.Repository
	logger       logger.Interface
}

func NewUpdateLocationUseCase(locationRepo location.Repository, logger logger.Interface) *UpdateLocationUseCase {
	return &UpdateLocationUseCase{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

func (uc *UpdateLocationUseCase) Execute(ctx context.Context, cmd UpdateLocationCommand) (*dto.LocationDTO, error) {
	uc.logger.Infow("executing update location use case", "location_id", cmd.LocationID)

	if cmd.LocationID == 0 {
		return nil, errors.NewValidationError("location ID is required")
	}

	loc, err := uc.locationRepo.FindByID(ctx, cmd.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, errors.NewNotFoundError("location not found")
	}

	if !loc.HasSameAreaName(cmd.AreaName) {
		existing, err := uc.locationRepo.FindByAreaName(ctx, cmd.AreaName)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID() != loc.ID() {
			return nil, errors.NewConflictError("a location with this area name already exists")
		}
	}

	if err := loc.Update(cmd.AreaName, cmd.IsNetworkAvailable); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.locationRepo.Update(ctx, loc); err != nil {
		uc.logger.Errorw("failed to update location", "location_id", loc.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("location updated", "location_id", loc.ID())
	return dto.ToLocationDTO(loc), nil
}
