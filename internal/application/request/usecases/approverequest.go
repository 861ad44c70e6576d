package usecases

import (
	"context"
	"time"

	"netgrid/internal/domain/request"
	"netgrid/internal/shared/authorization"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type ApproveRequestCommand struct {
	RequestID uint
	ActorID   uint
	ActorRole authorization.UserRole
}

// DecideRequestResult is shared by the approve, reject and cancel use
// cases.
type DecideRequestResult struct {
	RequestID uint
	Status    string
	DecidedBy uint
	DecidedAt time.Time
}

// ApproveRequestUseCase transitions a pending request to Approved. The
// reservation made at creation stays consumed; no counter moves.
type ApproveRequestUseCase struct {
	requestRepo request.Repository
	txMgr       TxManager
	logger      logger.Interface
}

func NewApproveRequestUseCase(
	requestRepo request.Repository,
	txMgr TxManager,
	logger logger.Interface,
) *ApproveRequestUseCase {
	return &ApproveRequestUseCase{
		requestRepo: requestRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *ApproveRequestUseCase) Execute(ctx context.Context, cmd ApproveRequestCommand) (*DecideRequestResult, error) {
	uc.logger.Infow("executing approve request use case",
		"request_id", cmd.RequestID, "actor_id", cmd.ActorID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}
	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can approve requests")
	}

	req, err := uc.requestRepo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errors.NewNotFoundError("request not found")
	}

	if err := req.Approve(cmd.ActorID); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.requestRepo.Update(txCtx, req)
	})
	if txErr != nil {
		if errors.Is(txErr, request.ErrAlreadyDecided) {
			uc.logger.Warnw("approval lost to a concurrent decision", "request_id", cmd.RequestID)
			return nil, errors.NewConflictError("request was already decided")
		}
		uc.logger.Errorw("failed to persist request approval",
			"request_id", cmd.RequestID, "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("request approved", "request_id", req.ID(), "decided_by", cmd.ActorID)

	return &DecideRequestResult{
		RequestID: req.ID(),
		Status:    req.Status().String(),
		DecidedBy: cmd.ActorID,
		DecidedAt: *req.DecidedAt(),
	}, nil
}
