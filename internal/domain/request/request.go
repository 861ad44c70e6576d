package request

import (
	"fmt"
	"time"

	vo "netgrid/internal/domain/request/valueobjects"
	"netgrid/internal/shared/biztime"
)

// Request is the aggregate root for a resource allocation request. It is
// created in Pending and moves through the status state machine exactly
// once; the resource lines are fixed at creation.
type Request struct {
	id             uint
	userID         uint
	locationID     uint
	connectionType vo.ConnectionType
	status         vo.Status
	lines          []Line
	decidedBy      *uint
	decidedAt      *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRequest(
	userID uint,
	locationID uint,
	connectionType vo.ConnectionType,
	lines []Line,
) (*Request, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if locationID == 0 {
		return nil, fmt.Errorf("location ID is required")
	}
	if !connectionType.IsValid() {
		return nil, fmt.Errorf("invalid connection type")
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("at least one resource line is required")
	}

	seen := make(map[uint]bool, len(lines))
	for _, line := range lines {
		if line.Quantity() <= 0 {
			return nil, fmt.Errorf("quantity must be positive")
		}
		if seen[line.ResourceID()] {
			return nil, fmt.Errorf("duplicate resource %d in request lines", line.ResourceID())
		}
		seen[line.ResourceID()] = true
	}

	now := biztime.NowUTC()
	return &Request{
		userID:         userID,
		locationID:     locationID,
		connectionType: connectionType,
		status:         vo.StatusPending,
		lines:          append([]Line(nil), lines...),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructRequest(
	id uint,
	userID uint,
	locationID uint,
	connectionType vo.ConnectionType,
	status vo.Status,
	lines []Line,
	decidedBy *uint,
	decidedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Request, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !connectionType.IsValid() {
		return nil, fmt.Errorf("invalid connection type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Request{
		id:             id,
		userID:         userID,
		locationID:     locationID,
		connectionType: connectionType,
		status:         status,
		lines:          append([]Line(nil), lines...),
		decidedBy:      decidedBy,
		decidedAt:      decidedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (r *Request) ID() uint {
	return r.id
}

func (r *Request) UserID() uint {
	return r.userID
}

func (r *Request) LocationID() uint {
	return r.locationID
}

func (r *Request) ConnectionType() vo.ConnectionType {
	return r.connectionType
}

func (r *Request) Status() vo.Status {
	return r.status
}

func (r *Request) Lines() []Line {
	linesCopy := make([]Line, len(r.lines))
	copy(linesCopy, r.lines)
	return linesCopy
}

// LineQuantities returns the lines as a resource-id to quantity map, the
// shape the inventory reserve/release primitives take.
func (r *Request) LineQuantities() map[uint]int {
	quantities := make(map[uint]int, len(r.lines))
	for _, line := range r.lines {
		quantities[line.ResourceID()] = line.Quantity()
	}
	return quantities
}

func (r *Request) DecidedBy() *uint {
	return r.decidedBy
}

func (r *Request) DecidedAt() *time.Time {
	return r.decidedAt
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// GetOwnerID implements authorization.OwnedResource.
func (r *Request) GetOwnerID() uint {
	return r.userID
}

// Approve transitions Pending -> Approved. The reservation stays consumed.
func (r *Request) Approve(decidedBy uint) error {
	return r.decide(vo.StatusApproved, decidedBy)
}

// Reject transitions Pending -> Rejected. The caller releases the
// reservation before persisting the transition.
func (r *Request) Reject(decidedBy uint) error {
	return r.decide(vo.StatusRejected, decidedBy)
}

// Cancel transitions Pending -> Cancelled.
func (r *Request) Cancel(decidedBy uint) error {
	return r.decide(vo.StatusCancelled, decidedBy)
}

func (r *Request) decide(newStatus vo.Status, decidedBy uint) error {
	if decidedBy == 0 {
		return fmt.Errorf("deciding user ID is required")
	}
	if !r.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", r.status, newStatus)
	}

	now := biztime.NowUTC()
	r.status = newStatus
	r.decidedBy = &decidedBy
	r.decidedAt = &now
	r.updatedAt = now

	return nil
}
