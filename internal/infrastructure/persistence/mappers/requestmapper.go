package mappers

import (
	"time"

	"netgrid/internal/domain/request"
	vo "netgrid/internal/domain/request/valueobjects"
	"netgrid/internal/infrastructure/persistence/models"
)

// RequestMapper handles the conversion between Request domain entities
// and persistence models.
type RequestMapper interface {
	ToModel(req *request.Request) *models.RequestModel
	LinesToModels(req *request.Request) []models.RequestResourceModel
	ToDomain(model *models.RequestModel, lineModels []models.RequestResourceModel) (*request.Request, error)
}

type RequestMapperImpl struct{}

func NewRequestMapper() RequestMapper {
	return &RequestMapperImpl{}
}

func (m *RequestMapperImpl) ToModel(req *request.Request) *models.RequestModel {
	model := &models.RequestModel{
		ID:             req.ID(),
		UserID:         req.UserID(),
		LocationID:     req.LocationID(),
		ConnectionType: req.ConnectionType().String(),
		Status:         req.Status().String(),
		DecidedBy:      req.DecidedBy(),
		CreatedAt:      req.CreatedAt().UnixMilli(),
		UpdatedAt:      req.UpdatedAt().UnixMilli(),
	}

	if req.DecidedAt() != nil {
		decidedAt := req.DecidedAt().UnixMilli()
		model.DecidedAt = &decidedAt
	}

	return model
}

func (m *RequestMapperImpl) LinesToModels(req *request.Request) []models.RequestResourceModel {
	lines := req.Lines()
	lineModels := make([]models.RequestResourceModel, 0, len(lines))
	for _, line := range lines {
		lineModels = append(lineModels, models.RequestResourceModel{
			RequestID:  req.ID(),
			ResourceID: line.ResourceID(),
			Quantity:   line.Quantity(),
		})
	}
	return lineModels
}

func (m *RequestMapperImpl) ToDomain(model *models.RequestModel, lineModels []models.RequestResourceModel) (*request.Request, error) {
	connectionType, err := vo.NewConnectionType(model.ConnectionType)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]request.Line, 0, len(lineModels))
	for _, lm := range lineModels {
		line, err := request.NewLine(lm.ResourceID, lm.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	var decidedAt *time.Time
	if model.DecidedAt != nil {
		t := time.UnixMilli(*model.DecidedAt).UTC()
		decidedAt = &t
	}

	return request.ReconstructRequest(
		model.ID,
		model.UserID,
		model.LocationID,
		connectionType,
		status,
		lines,
		model.DecidedBy,
		decidedAt,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
