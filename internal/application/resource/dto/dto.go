package dto

import (
	"time"

	"netgrid/internal/domain/resource"
)

type ResourceDTO struct {
	ID                uint      `json:"id"`
	ResourceName      string    `json:"resource_name"`
	QuantityTotal     int       `json:"quantity_total"`
	QuantityAvailable int       `json:"quantity_available"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func ToResourceDTO(res *resource.Resource) *ResourceDTO {
	if res == nil {
		return nil
	}
	return &ResourceDTO{
		ID:                res.ID(),
		ResourceName:      res.Name(),
		QuantityTotal:     res.QuantityTotal(),
		QuantityAvailable: res.QuantityAvailable(),
		CreatedAt:         res.CreatedAt(),
		UpdatedAt:         res.UpdatedAt(),
	}
}

func ToResourceDTOs(resources []*resource.Resource) []*ResourceDTO {
	dtos := make([]*ResourceDTO, 0, len(resources))
	for _, res := range resources {
		dtos = append(dtos, ToResourceDTO(res))
	}
	return dtos
}
