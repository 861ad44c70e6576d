package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netgrid/internal/domain/location"
)

func seedLocation(t *testing.T, repo *LocationRepository, areaName string, networkAvailable bool) *location.Location {
	t.Helper()

	loc, err := location.NewLocation(areaName, networkAvailable)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), loc))
	return loc
}

func TestLocationRepository_SaveAndFindByID(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	loc := seedLocation(t, repo, "Downtown", true)
	require.NotZero(t, loc.ID())

	found, err := repo.FindByID(ctx, loc.ID())
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, "Downtown", found.AreaName())
	assert.True(t, found.IsNetworkAvailable())
}

func TestLocationRepository_FindByAreaName_CaseInsensitive(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	seedLocation(t, repo, "Harbor District", false)

	found, err := repo.FindByAreaName(ctx, "HARBOR district")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Harbor District", found.AreaName())

	missing, err := repo.FindByAreaName(ctx, "Nowhere")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLocationRepository_Update(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	loc := seedLocation(t, repo, "Old Town", false)
	require.NoError(t, loc.Update("Old Town", true))
	require.NoError(t, repo.Update(ctx, loc))

	found, err := repo.FindByID(ctx, loc.ID())
	require.NoError(t, err)
	assert.True(t, found.IsNetworkAvailable())
}

func TestLocationRepository_Delete(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	loc := seedLocation(t, repo, "Old Town", false)
	require.NoError(t, repo.Delete(ctx, loc.ID()))

	found, err := repo.FindByID(ctx, loc.ID())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestLocationRepository_List_OrderedByAreaName(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	seedLocation(t, repo, "Harbor", true)
	seedLocation(t, repo, "Airport", false)

	locations, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "Airport", locations[0].AreaName())
	assert.Equal(t, "Harbor", locations[1].AreaName())
}
