package usecases

import (
	"context"

	"netgrid/internal/domain/request"
	"netgrid/internal/shared/authorization"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type CancelRequestCommand struct {
	RequestID uint
	ActorID   uint
	ActorRole authorization.UserRole
}

// CancelRequestUseCase transitions a pending request to Cancelled and
// returns its reserved quantities. Owners can cancel their own requests;
// administrators can cancel any.
type CancelRequestUseCase struct {
	requestRepo  request.Repository
	resourceRepo availabilityWriter
	engine       ReservationEngine
	txMgr        TxManager
	logger       logger.Interface
}

func NewCancelRequestUseCase(
	requestRepo request.Repository,
	resourceRepo availabilityWriter,
	engine ReservationEngine,
	txMgr TxManager,
	logger logger.Interface,
) *CancelRequestUseCase {
	return &CancelRequestUseCase{
		requestRepo:  requestRepo,
		resourceRepo: resourceRepo,
		engine:       engine,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *CancelRequestUseCase) Execute(ctx context.Context, cmd CancelRequestCommand) (*DecideRequestResult, error) {
	uc.logger.Infow("executing cancel request use case",
		"request_id", cmd.RequestID, "actor_id", cmd.ActorID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	req, err := uc.requestRepo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errors.NewNotFoundError("request not found")
	}

	if !authorization.CanAccessResource(cmd.ActorID, cmd.ActorRole, req) {
		return nil, errors.NewForbiddenError("you can only cancel your own requests")
	}

	if err := req.Cancel(cmd.ActorID); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	result, err := releaseAndPersist(ctx, uc.requestRepo, uc.resourceRepo, uc.engine, uc.txMgr, uc.logger, req, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("request cancelled", "request_id", req.ID(), "decided_by", cmd.ActorID)
	return result, nil
}
