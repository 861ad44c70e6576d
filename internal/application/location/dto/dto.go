package dto

import (
	"time"

	"netgrid/internal/domain/location"
)

type LocationDTO struct {
	ID                 uint      `json:"id"`
	AreaName           string    `json:"area_name"`
	IsNetworkAvailable bool      `json:"is_network_available"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func ToLocationDTO(loc *location.Location) *LocationDTO {
	if loc == nil {
		return nil
	}
	return &LocationDTO{
		ID:                 loc.ID(),
		AreaName:           loc.AreaName(),
		IsNetworkAvailable: loc.IsNetworkAvailable(),
		CreatedAt:          loc.CreatedAt(),
		UpdatedAt:          loc.UpdatedAt(),
	}
}

func ToLocationDTOs(locations []*location.Location) []*LocationDTO {
	dtos := make([]*LocationDTO, 0, len(locations))
	for _, loc := range locations {
		dtos = append(dtos, ToLocationDTO(loc))
	}
	return dtos
}
