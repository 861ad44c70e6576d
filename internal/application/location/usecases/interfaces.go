package usecases

import (
	"context"

	"netgrid/internal/application/location/dto"
)

type CreateLocationExecutor interface {
	Execute(ctx context.Context, cmd CreateLocationCommand) (*dto.LocationDTO, error)
}

type UpdateLocationExecutor interface {
	Execute(ctx context.Context, cmd UpdateLocationCommand) (*dto.LocationDTO, error)
}

type DeleteLocationExecutor interface {
	Execute(ctx context.Context, locationID uint) error
}

type GetLocationExecutor interface {
	Execute(ctx context.Context, locationID uint) (*dto.LocationDTO, error)
}

type ListLocationsExecutor interface {
	Execute(ctx context.Context) ([]*dto.LocationDTO, error)
}
