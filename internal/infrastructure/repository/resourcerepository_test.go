package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netgrid/internal/domain/resource"
	"netgrid/internal/shared/errors"
)

func seedResource(t *testing.T, repo *ResourceRepository, name string, total int) *resource.Resource {
	t.Helper()

	res, err := resource.NewResource(name, total)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), res))
	return res
}

func TestResourceRepository_SaveAndFindByID(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))
	ctx := context.Background()

	res := seedResource(t, repo, "IP Address Block", 256)
	require.NotZero(t, res.ID())

	found, err := repo.FindByID(ctx, res.ID())
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, "IP Address Block", found.Name())
	assert.Equal(t, 256, found.QuantityTotal())
	assert.Equal(t, 256, found.QuantityAvailable())
}

func TestResourceRepository_Save_DuplicateName(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))
	ctx := context.Background()

	seedResource(t, repo, "Router Port", 48)

	dup, err := resource.NewResource("Router Port", 24)
	require.NoError(t, err)

	err = repo.Save(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}

func TestResourceRepository_FindByIDs(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))
	ctx := context.Background()

	a := seedResource(t, repo, "Fiber Strand", 100)
	b := seedResource(t, repo, "ONT Device", 50)
	seedResource(t, repo, "Splitter", 20)

	found, err := repo.FindByIDs(ctx, []uint{a.ID(), b.ID(), 999})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestResourceRepository_AdjustAvailability(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))
	ctx := context.Background()

	a := seedResource(t, repo, "Fiber Strand", 100)
	b := seedResource(t, repo, "ONT Device", 50)

	err := repo.AdjustAvailability(ctx, map[uint]int{a.ID(): -7, b.ID(): -2})
	require.NoError(t, err)

	foundA, err := repo.FindByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, 93, foundA.QuantityAvailable())
	assert.Equal(t, 100, foundA.QuantityTotal())

	// A release adds the quantity back.
	err = repo.AdjustAvailability(ctx, map[uint]int{b.ID(): 2})
	require.NoError(t, err)

	foundB, err := repo.FindByID(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, 50, foundB.QuantityAvailable())
}

func TestResourceRepository_Delete(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))
	ctx := context.Background()

	res := seedResource(t, repo, "Splitter", 20)
	require.NoError(t, repo.Delete(ctx, res.ID()))

	found, err := repo.FindByID(ctx, res.ID())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestResourceRepository_List_OrderedByID(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))
	ctx := context.Background()

	seedResource(t, repo, "Zeta", 1)
	seedResource(t, repo, "Alpha", 2)

	resources, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, "Zeta", resources[0].Name())
	assert.Equal(t, "Alpha", resources[1].Name())
}
