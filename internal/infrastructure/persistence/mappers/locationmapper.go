package mappers

import (
	"time"

	"netgrid/internal/domain/location"
	"netgrid/internal/infrastructure/persistence/models"
)

type LocationMapper interface {
	ToModel(loc *location.Location) *models.LocationModel
	ToDomain(model *models.LocationModel) (*location.Location, error)
}

type LocationMapperImpl struct{}

func NewLocationMapper() LocationMapper {
	return &LocationMapperImpl{}
}

func (m *LocationMapperImpl) ToModel(loc *location.Location) *models.LocationModel {
	return &models.LocationModel{
		ID:                 loc.ID(),
		AreaName:           loc.AreaName(),
		IsNetworkAvailable: loc.IsNetworkAvailable(),
		CreatedAt:          loc.CreatedAt().UnixMilli(),
		UpdatedAt:          loc.UpdatedAt().UnixMilli(),
	}
}

func (m *LocationMapperImpl) ToDomain(model *models.LocationModel) (*location.Location, error) {
	return location.ReconstructLocation(
		model.ID,
		model.AreaName,
		model.IsNetworkAvailable,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
