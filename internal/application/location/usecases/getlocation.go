package usecases

import (
	"context"

	"netgrid/internal/application/location/dto"
	"netgrid/internal/domain/location"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type GetLocationUseCase struct {
	locationRepo location.Repository
	logger       logger.Interface
}

func NewGetLocationUseCase(locationRepo location.Repository, logger logger.Interface) *GetLocationUseCase {
	return &GetLocationUseCase{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

func (uc *GetLocationUseCase) Execute(ctx context.Context, locationID uint) (*dto.LocationDTO, error) {
	if locationID == 0 {
		return nil, errors.NewValidationError("location ID is required")
	}

	loc, err := uc.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, errors.NewNotFoundError("location not found")
	}

	return dto.ToLocationDTO(loc), nil
}
