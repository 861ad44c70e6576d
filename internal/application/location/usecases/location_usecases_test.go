package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netgrid/internal/domain/location"
	vo "netgrid/internal/domain/request/valueobjects"
	apperrors "netgrid/internal/shared/errors"
)

func testLocation(t *testing.T, id uint, areaName string) *location.Location {
	t.Helper()
	loc, err := location.ReconstructLocation(id, areaName, true, time.Now(), time.Now())
	require.NoError(t, err)
	return loc
}

func TestCreateLocationUseCase_Execute(t *testing.T) {
	t.Run("creates location", func(t *testing.T) {
		useCase := NewCreateLocationUseCase(
			&mockLocationRepository{
				SaveFunc: func(ctx context.Context, loc *location.Location) error {
					return loc.SetID(3)
				},
			},
			&mockLogger{},
		)

		result, err := useCase.Execute(context.Background(), CreateLocationCommand{
			AreaName:           "East Ridge",
			IsNetworkAvailable: true,
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, uint(3), result.ID)
		assert.Equal(t, "East Ridge", result.AreaName)
		assert.True(t, result.IsNetworkAvailable)
	})

	t.Run("duplicate area name differing only in case", func(t *testing.T) {
		useCase := NewCreateLocationUseCase(
			&mockLocationRepository{
				FindByAreaNameFunc: func(ctx context.Context, areaName string) (*location.Location, error) {
					return testLocation(t, 1, "east ridge"), nil
				},
			},
			&mockLogger{},
		)

		result, err := useCase.Execute(context.Background(), CreateLocationCommand{
			AreaName: "East Ridge",
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("blank area name", func(t *testing.T) {
		useCase := NewCreateLocationUseCase(&mockLocationRepository{}, &mockLogger{})

		result, err := useCase.Execute(context.Background(), CreateLocationCommand{AreaName: "   "})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestUpdateLocationUseCase_Execute(t *testing.T) {
	t.Run("toggles network availability", func(t *testing.T) {
		useCase := NewUpdateLocationUseCase(
			&mockLocationRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*location.Location, error) {
					return testLocation(t, id, "East Ridge"), nil
				},
			},
			&mockLogger{},
		)

		result, err := useCase.Execute(context.Background(), UpdateLocationCommand{
			LocationID:         1,
			AreaName:           "East Ridge",
			IsNetworkAvailable: false,
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.False(t, result.IsNetworkAvailable)
	})

	t.Run("rename into an existing area name", func(t *testing.T) {
		useCase := NewUpdateLocationUseCase(
			&mockLocationRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*location.Location, error) {
					return testLocation(t, id, "East Ridge"), nil
				},
				FindByAreaNameFunc: func(ctx context.Context, areaName string) (*location.Location, error) {
					return testLocation(t, 2, "West Valley"), nil
				},
			},
			&mockLogger{},
		)

		result, err := useCase.Execute(context.Background(), UpdateLocationCommand{
			LocationID:         1,
			AreaName:           "West Valley",
			IsNetworkAvailable: true,
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("unknown location", func(t *testing.T) {
		useCase := NewUpdateLocationUseCase(&mockLocationRepository{}, &mockLogger{})

		result, err := useCase.Execute(context.Background(), UpdateLocationCommand{
			LocationID: 404,
			AreaName:   "Nowhere",
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestDeleteLocationUseCase_Execute(t *testing.T) {
	t.Run("deletes unreferenced location", func(t *testing.T) {
		deleted := false

		useCase := NewDeleteLocationUseCase(
			&mockLocationRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*location.Location, error) {
					return testLocation(t, id, "East Ridge"), nil
				},
				DeleteFunc: func(ctx context.Context, id uint) error {
					deleted = true
					return nil
				},
			},
			&mockRequestRepository{},
			&mockLogger{},
		)

		err := useCase.Execute(context.Background(), 1)

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("location with active requests cannot be deleted", func(t *testing.T) {
		var capturedStatuses []vo.Status

		useCase := NewDeleteLocationUseCase(
			&mockLocationRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*location.Location, error) {
					return testLocation(t, id, "East Ridge"), nil
				},
			},
			&mockRequestRepository{
				CountByLocationFunc: func(ctx context.Context, locationID uint, statuses []vo.Status) (int64, error) {
					capturedStatuses = statuses
					return 3, nil
				},
			},
			&mockLogger{},
		)

		err := useCase.Execute(context.Background(), 1)

		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
		assert.ElementsMatch(t, []vo.Status{vo.StatusPending, vo.StatusApproved}, capturedStatuses)
	})
}
