package usecases

import (
	"context"
	"time"

	"netgrid/internal/application/request/dto"
	"netgrid/internal/domain/request"
	vo "netgrid/internal/domain/request/valueobjects"
	"netgrid/internal/shared/authorization"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type ListRequestsCommand struct {
	ActorID   uint
	ActorRole authorization.UserRole
	Status    string
	UserID    *uint
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}

type ListRequestsResult struct {
	Requests []*dto.RequestDTO
	Total    int64
	Page     int
	PageSize int
}

// ListRequestsUseCase lists requests with optional filters.
// Administrators see every request; regular users only their own.
type ListRequestsUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewListRequestsUseCase(requestRepo request.Repository, logger logger.Interface) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, cmd ListRequestsCommand) (*ListRequestsResult, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	filter := request.Filter{
		StartDate: cmd.StartDate,
		EndDate:   cmd.EndDate,
		Page:      cmd.Page,
		PageSize:  cmd.PageSize,
	}

	if cmd.Status != "" {
		status, err := vo.NewStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if cmd.ActorRole.IsAdmin() {
		filter.UserID = cmd.UserID
	} else {
		// Regular users are pinned to their own requests regardless of
		// the requested filter.
		actorID := cmd.ActorID
		filter.UserID = &actorID
	}

	requests, total, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "error", err)
		return nil, err
	}

	return &ListRequestsResult{
		Requests: dto.ToRequestDTOs(requests),
		Total:    total,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}, nil
}
