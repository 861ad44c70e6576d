package mappers

import (
	"time"

	"netgrid/internal/domain/resource"
	"netgrid/internal/infrastructure/persistence/models"
)

type ResourceMapper interface {
	ToModel(res *resource.Resource) *models.ResourceModel
	ToDomain(model *models.ResourceModel) (*resource.Resource, error)
}

type ResourceMapperImpl struct{}

func NewResourceMapper() ResourceMapper {
	return &ResourceMapperImpl{}
}

func (m *ResourceMapperImpl) ToModel(res *resource.Resource) *models.ResourceModel {
	return &models.ResourceModel{
		ID:                res.ID(),
		ResourceName:      res.Name(),
		QuantityTotal:     res.QuantityTotal(),
		QuantityAvailable: res.QuantityAvailable(),
		CreatedAt:         res.CreatedAt().UnixMilli(),
		UpdatedAt:         res.UpdatedAt().UnixMilli(),
	}
}

func (m *ResourceMapperImpl) ToDomain(model *models.ResourceModel) (*resource.Resource, error) {
	return resource.ReconstructResource(
		model.ID,
		model.ResourceName,
		model.QuantityTotal,
		model.QuantityAvailable,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
