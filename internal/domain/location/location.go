package location

import (
	"fmt"
	"strings"
	"time"

	"netgrid/internal/shared/biztime"
)

// Location is a named service area. Requests can only target locations
// with network availability switched on.
type Location struct {
	id                 uint
	areaName           string
	isNetworkAvailable bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewLocation(areaName string, isNetworkAvailable bool) (*Location, error) {
	areaName = strings.TrimSpace(areaName)
	if len(areaName) == 0 {
		return nil, fmt.Errorf("area name is required")
	}
	if len(areaName) > 100 {
		return nil, fmt.Errorf("area name exceeds maximum length of 100 characters")
	}

	now := biztime.NowUTC()
	return &Location{
		areaName:           areaName,
		isNetworkAvailable: isNetworkAvailable,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructLocation(
	id uint,
	areaName string,
	isNetworkAvailable bool,
	createdAt, updatedAt time.Time,
) (*Location, error) {
	if id == 0 {
		return nil, fmt.Errorf("location ID cannot be zero")
	}
	if len(areaName) == 0 {
		return nil, fmt.Errorf("area name is required")
	}

	return &Location{
		id:                 id,
		areaName:           areaName,
		isNetworkAvailable: isNetworkAvailable,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (l *Location) ID() uint {
	return l.id
}

func (l *Location) AreaName() string {
	return l.areaName
}

func (l *Location) IsNetworkAvailable() bool {
	return l.isNetworkAvailable
}

func (l *Location) CreatedAt() time.Time {
	return l.createdAt
}

func (l *Location) UpdatedAt() time.Time {
	return l.updatedAt
}

func (l *Location) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("location ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("location ID cannot be zero")
	}
	l.id = id
	return nil
}

// HasSameAreaName compares area names case-insensitively. Area name
// uniqueness is a user-facing clarity check, not a database constraint.
func (l *Location) HasSameAreaName(areaName string) bool {
	return strings.EqualFold(l.areaName, strings.TrimSpace(areaName))
}

func (l *Location) Update(areaName string, isNetworkAvailable bool) error {
	areaName = strings.TrimSpace(areaName)
	if len(areaName) == 0 {
		return fmt.Errorf("area name is required")
	}
	if len(areaName) > 100 {
		return fmt.Errorf("area name exceeds maximum length of 100 characters")
	}

	l.areaName = areaName
	l.isNetworkAvailable = isNetworkAvailable
	l.updatedAt = biztime.NowUTC()
	return nil
}
