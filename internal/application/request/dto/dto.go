package dto

import (
	"time"

	"netgrid/internal/domain/request"
)

type RequestDTO struct {
	ID             uint       `json:"id"`
	UserID         uint       `json:"user_id"`
	LocationID     uint       `json:"location_id"`
	ConnectionType string     `json:"connection_type"`
	Status         string     `json:"status"`
	Lines          []LineDTO  `json:"lines"`
	DecidedBy      *uint      `json:"decided_by"`
	DecidedAt      *time.Time `json:"decided_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type LineDTO struct {
	ResourceID uint `json:"resource_id"`
	Quantity   int  `json:"quantity"`
}

// ReportDTO is the aggregated view over a report window. Counts are keyed
// by the display value (status name, area name, connection type).
type ReportDTO struct {
	Period               string             `json:"period"`
	Start                time.Time          `json:"start"`
	End                  time.Time          `json:"end"`
	GeneratedAt          time.Time          `json:"generatedAt"`
	TotalRequests        int64              `json:"totalRequests"`
	StatusCounts         map[string]int64   `json:"statusCounts"`
	LocationCounts       map[string]int64   `json:"locationCounts"`
	ConnectionTypeCounts map[string]int64   `json:"connectionTypeCounts"`
	Resources            []ResourceUsageDTO `json:"resources"`
}

// ResourceUsageDTO is the utilization of one resource at report time.
type ResourceUsageDTO struct {
	ResourceID        uint   `json:"resource_id"`
	ResourceName      string `json:"resource_name"`
	QuantityTotal     int    `json:"quantity_total"`
	QuantityAvailable int    `json:"quantity_available"`
	QuantityReserved  int    `json:"quantity_reserved"`
}

func ToRequestDTO(req *request.Request) *RequestDTO {
	if req == nil {
		return nil
	}

	lines := make([]LineDTO, 0, len(req.Lines()))
	for _, line := range req.Lines() {
		lines = append(lines, LineDTO{
			ResourceID: line.ResourceID(),
			Quantity:   line.Quantity(),
		})
	}

	return &RequestDTO{
		ID:             req.ID(),
		UserID:         req.UserID(),
		LocationID:     req.LocationID(),
		ConnectionType: req.ConnectionType().String(),
		Status:         req.Status().String(),
		Lines:          lines,
		DecidedBy:      req.DecidedBy(),
		DecidedAt:      req.DecidedAt(),
		CreatedAt:      req.CreatedAt(),
		UpdatedAt:      req.UpdatedAt(),
	}
}

func ToRequestDTOs(reqs []*request.Request) []*RequestDTO {
	dtos := make([]*RequestDTO, 0, len(reqs))
	for _, req := range reqs {
		dtos = append(dtos, ToRequestDTO(req))
	}
	return dtos
}
