package usecases

import (
	"context"

	"netgrid/internal/application/request/dto"
	"netgrid/internal/domain/request"
	"netgrid/internal/shared/authorization"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type GetRequestCommand struct {
	RequestID uint
	ActorID   uint
	ActorRole authorization.UserRole
}

type GetRequestUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewGetRequestUseCase(requestRepo request.Repository, logger logger.Interface) *GetRequestUseCase {
	return &GetRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, cmd GetRequestCommand) (*dto.RequestDTO, error) {
	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	req, err := uc.requestRepo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errors.NewNotFoundError("request not found")
	}

	if !authorization.CanAccessResource(cmd.ActorID, cmd.ActorRole, req) {
		return nil, errors.NewForbiddenError("you can only view your own requests")
	}

	return dto.ToRequestDTO(req), nil
}
