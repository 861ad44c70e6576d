package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "netgrid/internal/domain/request/valueobjects"
)

func mustLine(t *testing.T, resourceID uint, quantity int) Line {
	t.Helper()
	line, err := NewLine(resourceID, quantity)
	require.NoError(t, err)
	return line
}

func TestNewRequest(t *testing.T) {
	lines := []Line{mustLine(t, 1, 2), mustLine(t, 3, 1)}

	req, err := NewRequest(7, 3, vo.ConnectionFiber, lines)
	require.NoError(t, err)

	assert.Equal(t, uint(7), req.UserID())
	assert.Equal(t, uint(3), req.LocationID())
	assert.Equal(t, vo.StatusPending, req.Status())
	assert.Equal(t, map[uint]int{1: 2, 3: 1}, req.LineQuantities())
	assert.Nil(t, req.DecidedBy())
	assert.Nil(t, req.DecidedAt())
	assert.False(t, req.CreatedAt().IsZero())
}

func TestNewRequest_Validation(t *testing.T) {
	line := mustLine(t, 1, 2)

	tests := []struct {
		name           string
		userID         uint
		locationID     uint
		connectionType vo.ConnectionType
		lines          []Line
	}{
		{"missing user", 0, 3, vo.ConnectionFiber, []Line{line}},
		{"missing location", 7, 0, vo.ConnectionFiber, []Line{line}},
		{"invalid connection type", 7, 3, vo.ConnectionType("Telegraph"), []Line{line}},
		{"no lines", 7, 3, vo.ConnectionFiber, nil},
		{"duplicate resource", 7, 3, vo.ConnectionFiber, []Line{line, mustLine(t, 1, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRequest(tt.userID, tt.locationID, tt.connectionType, tt.lines)
			assert.Error(t, err)
		})
	}
}

func TestNewLine_RejectsNonPositiveQuantity(t *testing.T) {
	_, err := NewLine(1, 0)
	assert.Error(t, err)

	_, err = NewLine(1, -3)
	assert.Error(t, err)
}

func TestRequest_Decisions(t *testing.T) {
	newPending := func(t *testing.T) *Request {
		req, err := NewRequest(7, 3, vo.ConnectionFiber, []Line{mustLine(t, 1, 2)})
		require.NoError(t, err)
		return req
	}

	t.Run("approve", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Approve(42))
		assert.Equal(t, vo.StatusApproved, req.Status())
		require.NotNil(t, req.DecidedBy())
		assert.Equal(t, uint(42), *req.DecidedBy())
		assert.NotNil(t, req.DecidedAt())
	})

	t.Run("reject", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Reject(42))
		assert.Equal(t, vo.StatusRejected, req.Status())
	})

	t.Run("cancel by owner", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Cancel(7))
		assert.Equal(t, vo.StatusCancelled, req.Status())
		require.NotNil(t, req.DecidedBy())
		assert.Equal(t, uint(7), *req.DecidedBy())
	})

	t.Run("decided requests are immutable", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Approve(42))

		assert.Error(t, req.Reject(42))
		assert.Error(t, req.Cancel(42))
		assert.Error(t, req.Approve(42))
		assert.Equal(t, vo.StatusApproved, req.Status())
	})

	t.Run("decider is required", func(t *testing.T) {
		req := newPending(t)
		assert.Error(t, req.Approve(0))
		assert.Equal(t, vo.StatusPending, req.Status())
	})
}

func TestRequest_SetID(t *testing.T) {
	req, err := NewRequest(7, 3, vo.ConnectionFiber, []Line{mustLine(t, 1, 2)})
	require.NoError(t, err)

	require.NoError(t, req.SetID(11))
	assert.Equal(t, uint(11), req.ID())

	assert.Error(t, req.SetID(12), "ID can only be assigned once")
}

func TestRequest_GetOwnerID(t *testing.T) {
	req, err := NewRequest(7, 3, vo.ConnectionFiber, []Line{mustLine(t, 1, 2)})
	require.NoError(t, err)
	assert.Equal(t, uint(7), req.GetOwnerID())
}
