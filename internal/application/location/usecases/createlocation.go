package usecases

import (
	"context"

	"netgrid/internal/application/location/dto"
	"netgrid/internal/domain/location"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type CreateLocationCommand struct {
	AreaName           string
	IsNetworkAvailable bool
}

// CreateLocationUseCase adds a service area. Area names are unique
// case-insensitively; the check lives here rather than in the schema so
// the caller gets a clear conflict message.
type CreateLocationUseCase struct {
	locationRepo location.Repository
	logger       logger.Interface
}

func NewCreateLocationUseCase(locationRepo location.Repository, logger logger.Interface) *CreateLocationUseCase {
	return &CreateLocationUseCase{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

func (uc *CreateLocationUseCase) Execute(ctx context.Context, cmd CreateLocationCommand) (*dto.LocationDTO, error) {
	uc.logger.Infow("executing create location use case", "area_name", cmd.AreaName)

	loc, err := location.NewLocation(cmd.AreaName, cmd.IsNetworkAvailable)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.locationRepo.FindByAreaName(ctx, loc.AreaName())
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.HasSameAreaName(loc.AreaName()) {
		return nil, errors.NewConflictError("a location with this area name already exists")
	}

	if err := uc.locationRepo.Save(ctx, loc); err != nil {
		uc.logger.Errorw("failed to save location", "error", err)
		return nil, err
	}

	uc.logger.Infow("location created", "location_id", loc.ID(), "area_name", loc.AreaName())
	return dto.ToLocationDTO(loc), nil
}
