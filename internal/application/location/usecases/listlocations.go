package usecases

import (
	"context"

	"netgrid/internal/application/location/dto"
	"netgrid/internal/domain/location"
	"netgrid/internal/shared/logger"
)

type ListLocationsUseCase struct {
	locationRepo location.Repository
	logger       logger.Interface
}

func NewListLocationsUseCase(locationRepo location.Repository, logger logger.Interface) *ListLocationsUseCase {
	return &ListLocationsUseCase{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

func (uc *ListLocationsUseCase) Execute(ctx context.Context) ([]*dto.LocationDTO, error) {
	locations, err := uc.locationRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list locations", "error", err)
		return nil, err
	}

	return dto.ToLocationDTOs(locations), nil
}
