package usecases

import (
	"context"

	"netgrid/internal/domain/request"
	"netgrid/internal/shared/authorization"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type RejectRequestCommand struct {
	RequestID uint
	ActorID   uint
	ActorRole authorization.UserRole
}

// RejectRequestUseCase transitions a pending request to Rejected and
// returns its reserved quantities to the pool. The release lands before
// the transaction carrying the new status commits, so no reader ever
// sees a rejected request that still holds a reservation.
type RejectRequestUseCase struct {
	requestRepo  request.Repository
	resourceRepo availabilityWriter
	engine       ReservationEngine
	txMgr        TxManager
	logger       logger.Interface
}

// availabilityWriter is the slice of resource.Repository the release path
// needs.
type availabilityWriter interface {
	AdjustAvailability(ctx context.Context, deltas map[uint]int) error
}

func NewRejectRequestUseCase(
	requestRepo request.Repository,
	resourceRepo availabilityWriter,
	engine ReservationEngine,
	txMgr TxManager,
	logger logger.Interface,
) *RejectRequestUseCase {
	return &RejectRequestUseCase{
		requestRepo:  requestRepo,
		resourceRepo: resourceRepo,
		engine:       engine,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *RejectRequestUseCase) Execute(ctx context.Context, cmd RejectRequestCommand) (*DecideRequestResult, error) {
	uc.logger.Infow("executing reject request use case",
		"request_id", cmd.RequestID, "actor_id", cmd.ActorID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}
	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can reject requests")
	}

	req, err := uc.requestRepo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errors.NewNotFoundError("request not found")
	}

	if err := req.Reject(cmd.ActorID); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	result, err := releaseAndPersist(ctx, uc.requestRepo, uc.resourceRepo, uc.engine, uc.txMgr, uc.logger, req, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("request rejected", "request_id", req.ID(), "decided_by", cmd.ActorID)
	return result, nil
}

// releaseAndPersist persists a transition that gives a reservation back.
// Shared by reject and cancel. The status row is claimed first: the store
// only accepts a decision while the row is still Pending, so of two
// concurrent deciders exactly one reaches the release. The quantities
// then return to the engine before the transaction commits, keeping the
// decided status invisible until the counters already reflect it.
func releaseAndPersist(
	ctx context.Context,
	requestRepo request.Repository,
	resourceRepo availabilityWriter,
	engine ReservationEngine,
	txMgr TxManager,
	log logger.Interface,
	req *request.Request,
	actorID uint,
) (*DecideRequestResult, error) {
	quantities := req.LineQuantities()

	released := false
	txErr := txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := requestRepo.Update(txCtx, req); err != nil {
			return err
		}

		// The transition is won; give the quantities back. A clamped
		// release means the counters and the request store disagree.
		// Surface it and let the rollback keep the row Pending.
		if err := engine.Release(quantities); err != nil {
			log.Errorw("release failed during request decision",
				"request_id", req.ID(), "error", err)
			return err
		}
		released = true

		deltas := make(map[uint]int, len(quantities))
		for id, quantity := range quantities {
			deltas[id] = quantity
		}
		return resourceRepo.AdjustAvailability(txCtx, deltas)
	})
	if txErr != nil {
		if errors.Is(txErr, request.ErrAlreadyDecided) {
			log.Warnw("decision lost to a concurrent decider", "request_id", req.ID())
			return nil, errors.NewConflictError("request was already decided")
		}
		if released {
			log.Errorw("failed to persist request decision, re-reserving released quantities",
				"request_id", req.ID(), "error", txErr)
			if reserveErr := engine.TryReserve(ctx, quantities); reserveErr != nil {
				log.Errorw("failed to re-reserve after persistence failure, counters may drift",
					"request_id", req.ID(), "error", reserveErr)
			}
		}
		return nil, txErr
	}

	return &DecideRequestResult{
		RequestID: req.ID(),
		Status:    req.Status().String(),
		DecidedBy: actorID,
		DecidedAt: *req.DecidedAt(),
	}, nil
}
