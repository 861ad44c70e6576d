package resource

import "context"

type Repository interface {
	Save(ctx context.Context, res *Resource) error
	Update(ctx context.Context, res *Resource) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Resource, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*Resource, error)
	List(ctx context.Context) ([]*Resource, error)
	// AdjustAvailability applies relative changes to the stored available
	// counters, negative for a reservation and positive for a release.
	// Used inside the same transaction as request writes so a reporter
	// never observes a request/counter mismatch, and relative so the
	// commit order of concurrent transactions doesn't matter.
	AdjustAvailability(ctx context.Context, deltas map[uint]int) error
}
