package usecases

import (
	"context"
	"time"

	"netgrid/internal/domain/location"
	"netgrid/internal/domain/request"
	vo "netgrid/internal/domain/request/valueobjects"
	"netgrid/internal/domain/resource"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type CreateRequestLine struct {
	ResourceID uint
	Quantity   int
}

type CreateRequestCommand struct {
	UserID         uint
	LocationID     uint
	ConnectionType string
	Lines          []CreateRequestLine
}

type CreateRequestResult struct {
	RequestID uint
	Status    string
	CreatedAt time.Time
}

// CreateRequestUseCase creates a request in Pending and reserves its
// resource quantities atomically. The reservation happens before the
// request row exists; if persistence fails the reservation is rolled
// back so no quantity leaks.
type CreateRequestUseCase struct {
	requestRepo  request.Repository
	locationRepo location.Repository
	resourceRepo resource.Repository
	engine       ReservationEngine
	txMgr        TxManager
	logger       logger.Interface
}

func NewCreateRequestUseCase(
	requestRepo request.Repository,
	locationRepo location.Repository,
	resourceRepo resource.Repository,
	engine ReservationEngine,
	txMgr TxManager,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo:  requestRepo,
		locationRepo: locationRepo,
		resourceRepo: resourceRepo,
		engine:       engine,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error) {
	uc.logger.Infow("executing create request use case",
		"user_id", cmd.UserID, "location_id", cmd.LocationID, "lines", len(cmd.Lines))

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create request command", "error", err)
		return nil, err
	}

	loc, err := uc.locationRepo.FindByID(ctx, cmd.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, errors.NewNotFoundError("location not found")
	}
	if !loc.IsNetworkAvailable() {
		return nil, errors.NewValidationError("network is not available at this location")
	}

	connectionType, err := vo.NewConnectionType(cmd.ConnectionType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	lines := make([]request.Line, 0, len(cmd.Lines))
	for _, l := range cmd.Lines {
		line, err := request.NewLine(l.ResourceID, l.Quantity)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		lines = append(lines, line)
	}

	newRequest, err := request.NewRequest(cmd.UserID, cmd.LocationID, connectionType, lines)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ensureResourcesExist(ctx, newRequest.LineQuantities()); err != nil {
		return nil, err
	}

	quantities := newRequest.LineQuantities()
	if err := uc.engine.TryReserve(ctx, quantities); err != nil {
		uc.logger.Infow("reservation failed", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.requestRepo.Save(txCtx, newRequest); err != nil {
			return err
		}
		return uc.persistAvailability(txCtx, quantities)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to persist request, rolling back reservation",
			"user_id", cmd.UserID, "error", txErr)
		if releaseErr := uc.engine.Release(quantities); releaseErr != nil {
			uc.logger.Errorw("reservation rollback failed", "error", releaseErr)
		}
		return nil, txErr
	}

	uc.logger.Infow("request created",
		"request_id", newRequest.ID(), "user_id", cmd.UserID, "status", newRequest.Status().String())

	return &CreateRequestResult{
		RequestID: newRequest.ID(),
		Status:    newRequest.Status().String(),
		CreatedAt: newRequest.CreatedAt(),
	}, nil
}

func (uc *CreateRequestUseCase) validateCommand(cmd CreateRequestCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.LocationID == 0 {
		return errors.NewValidationError("location ID is required")
	}
	if len(cmd.Lines) == 0 {
		return errors.NewValidationError("at least one resource line is required")
	}
	return nil
}

func (uc *CreateRequestUseCase) ensureResourcesExist(ctx context.Context, quantities map[uint]int) error {
	ids := make([]uint, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}

	resources, err := uc.resourceRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}

	found := make(map[uint]bool, len(resources))
	for _, res := range resources {
		found[res.ID()] = true
	}
	for _, id := range ids {
		if !found[id] {
			return errors.NewNotFoundError("resource not found")
		}
	}
	return nil
}

// persistAvailability records the reservation against the stored counters
// in the same transaction as the request row. The write is relative, not
// a snapshot of the engine, so transactions that commit in a different
// order than their reservations were granted still land on the right
// totals.
func (uc *CreateRequestUseCase) persistAvailability(ctx context.Context, quantities map[uint]int) error {
	deltas := make(map[uint]int, len(quantities))
	for id, quantity := range quantities {
		deltas[id] = -quantity
	}
	return uc.resourceRepo.AdjustAvailability(ctx, deltas)
}
