package usecases

import (
	"context"

	"netgrid/internal/application/request/dto"
)

// TxManager runs a function inside a database transaction. Satisfied by
// db.TransactionManager.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReservationEngine is the in-process inventory counter engine the
// request lifecycle reserves against. Satisfied by inventory.Inventory.
type ReservationEngine interface {
	TryReserve(ctx context.Context, lines map[uint]int) error
	Release(lines map[uint]int) error
}

type CreateRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error)
}

type ApproveRequestExecutor interface {
	Execute(ctx context.Context, cmd ApproveRequestCommand) (*DecideRequestResult, error)
}

type RejectRequestExecutor interface {
	Execute(ctx context.Context, cmd RejectRequestCommand) (*DecideRequestResult, error)
}

type CancelRequestExecutor interface {
	Execute(ctx context.Context, cmd CancelRequestCommand) (*DecideRequestResult, error)
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, cmd GetRequestCommand) (*dto.RequestDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, cmd ListRequestsCommand) (*ListRequestsResult, error)
}

type GenerateReportExecutor interface {
	Execute(ctx context.Context, cmd GenerateReportCommand) (*dto.ReportDTO, error)
}
