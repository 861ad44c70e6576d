package valueobjects

import "fmt"

// Status values are capitalized on the wire to match the client.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
)

var validStatuses = map[Status]bool{
	StatusPending:   true,
	StatusApproved:  true,
	StatusRejected:  true,
	StatusCancelled: true,
}

// Pending is the only non-terminal state. Nothing transitions back into
// Pending and nothing leaves a terminal state.
var statusTransitions = map[Status][]Status{
	StatusPending: {
		StatusApproved,
		StatusRejected,
		StatusCancelled,
	},
	StatusApproved:  {},
	StatusRejected:  {},
	StatusCancelled: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsApproved() bool {
	return s == StatusApproved
}

func (s Status) IsRejected() bool {
	return s == StatusRejected
}

func (s Status) IsCancelled() bool {
	return s == StatusCancelled
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s.IsValid() && s != StatusPending
}

// HoldsReservation reports whether requests in this status count against
// resource availability. Approved requests permanently consume their
// reservation; Rejected and Cancelled requests hold none.
func (s Status) HoldsReservation() bool {
	return s == StatusPending || s == StatusApproved
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	allowedTransitions, ok := statusTransitions[s]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return status, nil
}
