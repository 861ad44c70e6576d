package request

import (
	"context"
	"errors"
	"time"

	vo "netgrid/internal/domain/request/valueobjects"
)

// ErrAlreadyDecided is returned by Update when the stored row is no
// longer Pending: a concurrent decider won the transition first.
var ErrAlreadyDecided = errors.New("request was already decided")

type Repository interface {
	Save(ctx context.Context, req *Request) error
	// Update persists a decision. Every transition leaves Pending, so the
	// write is conditional on the stored row still being Pending; of two
	// concurrent deciders exactly one wins and the other gets
	// ErrAlreadyDecided.
	Update(ctx context.Context, req *Request) error
	FindByID(ctx context.Context, id uint) (*Request, error)
	List(ctx context.Context, filter Filter) ([]*Request, int64, error)
	// CountReservedByResource sums line quantities of requests that hold a
	// reservation (Pending or Approved) for the given resource.
	CountReservedByResource(ctx context.Context, resourceID uint) (int64, error)
	// StatusCounts / LocationCounts / ConnectionTypeCounts aggregate
	// requests inside a time window for reporting.
	StatusCounts(ctx context.Context, filter ReportFilter) (map[string]int64, error)
	LocationCounts(ctx context.Context, filter ReportFilter) (map[string]int64, error)
	ConnectionTypeCounts(ctx context.Context, filter ReportFilter) (map[string]int64, error)
	CountByLocation(ctx context.Context, locationID uint, statuses []vo.Status) (int64, error)
}

type Filter struct {
	Status    *vo.Status
	UserID    *uint
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}

type ReportFilter struct {
	Start  time.Time
	End    time.Time
	Status *vo.Status
}
