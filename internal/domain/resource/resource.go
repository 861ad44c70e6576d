package resource

import (
	"fmt"
	"strings"
	"time"

	"netgrid/internal/shared/biztime"
)

// Resource is a finite resource type with total and available quantity
// counters. The invariant 0 <= available <= total holds at every
// observable point; the runtime counters live in the inventory engine and
// are persisted back through this aggregate.
type Resource struct {
	id                uint
	name              string
	quantityTotal     int
	quantityAvailable int
	createdAt         time.Time
	updatedAt         time.Time
}

func NewResource(name string, quantityTotal int) (*Resource, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("resource name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("resource name exceeds maximum length of 100 characters")
	}
	if quantityTotal < 0 {
		return nil, fmt.Errorf("total quantity cannot be negative")
	}

	now := biztime.NowUTC()
	return &Resource{
		name:              name,
		quantityTotal:     quantityTotal,
		quantityAvailable: quantityTotal,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructResource(
	id uint,
	name string,
	quantityTotal int,
	quantityAvailable int,
	createdAt, updatedAt time.Time,
) (*Resource, error) {
	if id == 0 {
		return nil, fmt.Errorf("resource ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("resource name is required")
	}
	if quantityAvailable < 0 || quantityAvailable > quantityTotal {
		return nil, fmt.Errorf("available quantity %d outside [0, %d] for resource %d",
			quantityAvailable, quantityTotal, id)
	}

	return &Resource{
		id:                id,
		name:              name,
		quantityTotal:     quantityTotal,
		quantityAvailable: quantityAvailable,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (r *Resource) ID() uint {
	return r.id
}

func (r *Resource) Name() string {
	return r.name
}

func (r *Resource) QuantityTotal() int {
	return r.quantityTotal
}

func (r *Resource) QuantityAvailable() int {
	return r.quantityAvailable
}

func (r *Resource) Reserved() int {
	return r.quantityTotal - r.quantityAvailable
}

func (r *Resource) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Resource) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Resource) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("resource ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("resource ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Resource) Rename(name string) error {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return fmt.Errorf("resource name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("resource name exceeds maximum length of 100 characters")
	}

	r.name = name
	r.updatedAt = biztime.NowUTC()
	return nil
}

// SetTotal changes the total quantity. The reserved amount stays fixed,
// so available moves with total; totals below the reserved amount are
// rejected.
func (r *Resource) SetTotal(quantityTotal int) error {
	if quantityTotal < 0 {
		return fmt.Errorf("total quantity cannot be negative")
	}

	reserved := r.Reserved()
	if quantityTotal < reserved {
		return fmt.Errorf("total quantity %d is below the reserved amount %d", quantityTotal, reserved)
	}

	r.quantityTotal = quantityTotal
	r.quantityAvailable = quantityTotal - reserved
	r.updatedAt = biztime.NowUTC()
	return nil
}

// SyncAvailable records the availability counter reported by the
// inventory engine.
func (r *Resource) SyncAvailable(available int) error {
	if available < 0 || available > r.quantityTotal {
		return fmt.Errorf("available quantity %d outside [0, %d]", available, r.quantityTotal)
	}

	r.quantityAvailable = available
	r.updatedAt = biztime.NowUTC()
	return nil
}
