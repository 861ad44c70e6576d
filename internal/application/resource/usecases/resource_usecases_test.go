package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netgrid/internal/domain/resource"
	apperrors "netgrid/internal/shared/errors"
)

func testResource(t *testing.T, id uint, total, available int) *resource.Resource {
	t.Helper()
	res, err := resource.ReconstructResource(id, "Router", total, available, time.Now(), time.Now())
	require.NoError(t, err)
	return res
}

func TestCreateResourceUseCase_Execute(t *testing.T) {
	t.Run("creates and registers with engine", func(t *testing.T) {
		var registeredTotal, registeredAvailable int

		useCase := NewCreateResourceUseCase(
			&mockResourceRepository{
				SaveFunc: func(ctx context.Context, res *resource.Resource) error {
					return res.SetID(5)
				},
			},
			&mockInventoryRegistry{
				AddResourceFunc: func(resourceID uint, total, available int) error {
					registeredTotal = total
					registeredAvailable = available
					return nil
				},
			},
			&mockLogger{},
		)

		result, err := useCase.Execute(context.Background(), CreateResourceCommand{
			ResourceName:  "Switch",
			QuantityTotal: 12,
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, uint(5), result.ID)
		assert.Equal(t, "Switch", result.ResourceName)
		assert.Equal(t, 12, registeredTotal)
		assert.Equal(t, 12, registeredAvailable)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		useCase := NewCreateResourceUseCase(&mockResourceRepository{}, &mockInventoryRegistry{}, &mockLogger{})

		result, err := useCase.Execute(context.Background(), CreateResourceCommand{
			ResourceName:  "  ",
			QuantityTotal: 12,
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("rejects negative total", func(t *testing.T) {
		useCase := NewCreateResourceUseCase(&mockResourceRepository{}, &mockInventoryRegistry{}, &mockLogger{})

		result, err := useCase.Execute(context.Background(), CreateResourceCommand{
			ResourceName:  "Switch",
			QuantityTotal: -1,
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestUpdateResourceUseCase_Execute(t *testing.T) {
	t.Run("raises capacity", func(t *testing.T) {
		newTotal := 20

		useCase := NewUpdateResourceUseCase(
			&mockResourceRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*resource.Resource, error) {
					return testResource(t, id, 10, 6), nil
				},
			},
			&mockInventoryRegistry{
				AvailableFunc: func(resourceID uint) (int, error) {
					return 16, nil
				},
			},
			&mockLogger{},
		)

		result, err := useCase.Execute(context.Background(), UpdateResourceCommand{
			ResourceID:    1,
			QuantityTotal: &newTotal,
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 20, result.QuantityTotal)
		assert.Equal(t, 16, result.QuantityAvailable)
	})

	t.Run("capacity below reserved is rejected and not persisted", func(t *testing.T) {
		newTotal := 3
		updateCalled := false

		useCase := NewUpdateResourceUseCase(
			&mockResourceRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*resource.Resource, error) {
					return testResource(t, id, 10, 6), nil
				},
				UpdateFunc: func(ctx context.Context, res *resource.Resource) error {
					updateCalled = true
					return nil
				},
			},
			&mockInventoryRegistry{
				SetCapacityFunc: func(resourceID uint, total int) error {
					return apperrors.NewConflictError("total quantity is below the reserved amount")
				},
			},
			&mockLogger{},
		)

		result, err := useCase.Execute(context.Background(), UpdateResourceCommand{
			ResourceID:    1,
			QuantityTotal: &newTotal,
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsConflictError(err))
		assert.False(t, updateCalled)
	})

	t.Run("nothing to update", func(t *testing.T) {
		useCase := NewUpdateResourceUseCase(&mockResourceRepository{}, &mockInventoryRegistry{}, &mockLogger{})

		result, err := useCase.Execute(context.Background(), UpdateResourceCommand{ResourceID: 1})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestDeleteResourceUseCase_Execute(t *testing.T) {
	t.Run("deletes unreferenced resource", func(t *testing.T) {
		deleted := false
		var removedID uint

		useCase := NewDeleteResourceUseCase(
			&mockResourceRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*resource.Resource, error) {
					return testResource(t, id, 10, 10), nil
				},
				DeleteFunc: func(ctx context.Context, id uint) error {
					deleted = true
					return nil
				},
			},
			&mockRequestRepository{},
			&mockInventoryRegistry{
				RemoveResourceFunc: func(resourceID uint) {
					removedID = resourceID
				},
			},
			&mockLogger{},
		)

		err := useCase.Execute(context.Background(), DeleteResourceCommand{ResourceID: 1})

		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, uint(1), removedID)
	})

	t.Run("referenced resource cannot be deleted", func(t *testing.T) {
		deleteCalled := false

		useCase := NewDeleteResourceUseCase(
			&mockResourceRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*resource.Resource, error) {
					return testResource(t, id, 10, 4), nil
				},
				DeleteFunc: func(ctx context.Context, id uint) error {
					deleteCalled = true
					return nil
				},
			},
			&mockRequestRepository{
				CountReservedByResourceFunc: func(ctx context.Context, resourceID uint) (int64, error) {
					return 2, nil
				},
			},
			&mockInventoryRegistry{},
			&mockLogger{},
		)

		err := useCase.Execute(context.Background(), DeleteResourceCommand{ResourceID: 1})

		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
		assert.False(t, deleteCalled)
	})

	t.Run("unknown resource", func(t *testing.T) {
		useCase := NewDeleteResourceUseCase(
			&mockResourceRepository{},
			&mockRequestRepository{},
			&mockInventoryRegistry{},
			&mockLogger{},
		)

		err := useCase.Execute(context.Background(), DeleteResourceCommand{ResourceID: 404})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestGetResourceUseCase_Execute(t *testing.T) {
	useCase := NewGetResourceUseCase(
		&mockResourceRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*resource.Resource, error) {
				if id != 1 {
					return nil, nil
				}
				return testResource(t, 1, 10, 10), nil
			},
		},
		&mockInventoryRegistry{
			AvailableFunc: func(resourceID uint) (int, error) {
				return 7, nil
			},
		},
		&mockLogger{},
	)

	t.Run("returns live availability", func(t *testing.T) {
		result, err := useCase.Execute(context.Background(), 1)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 7, result.QuantityAvailable)
	})

	t.Run("unknown resource", func(t *testing.T) {
		result, err := useCase.Execute(context.Background(), 404)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
