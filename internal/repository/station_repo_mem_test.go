package repository

import (
	"context"
	"testing"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	store := NewMemoryStore()
	require.NoError(t, Seed(context.Background(), store))
	return store
}

func TestStationRepository_SearchByCity(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	found, err := store.Stations.SearchByCity(ctx, "cairo")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Cairo Central Station", found[0].Name)

	found, err = store.Stations.SearchByCity(ctx, "A")
	require.NoError(t, err)
	codes := make([]string, 0, len(found))
	for _, s := range found {
		codes = append(codes, s.Code)
	}
	assert.Equal(t, []string{"CAI", "ALX", "ASW", "GZA", "PSD"}, codes)

	found, err = store.Stations.SearchByCity(ctx, "Berlin")
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestStationRepository_GetByCode(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	s, err := store.Stations.GetByCode(ctx, "LXR")
	require.NoError(t, err)
	assert.Equal(t, "Luxor", s.City)

	_, err = store.Stations.GetByCode(ctx, "lxr")
	assert.ErrorIs(t, err, domain.ErrStationNotFound)
}

func TestStationRepository_CRUD(t *testing.T) {
	repo := NewStationRepository()
	ctx := context.Background()

	station := &domain.Station{Name: "Tanta Station", Code: "TNT", City: "Tanta", Address: "Tanta", Facilities: []string{"WiFi"}}
	require.NoError(t, repo.Create(ctx, station))
	require.NotEmpty(t, station.ID)

	// duplicate codes are accepted
	require.NoError(t, repo.Create(ctx, &domain.Station{Name: "Tanta East", Code: "TNT", City: "Tanta"}))

	platforms := 3
	updated, err := repo.Update(ctx, station.ID, domain.StationPatch{Platforms: &platforms})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Platforms)
	assert.Equal(t, "Tanta Station", updated.Name)

	_, err = repo.Update(ctx, "missing", domain.StationPatch{Platforms: &platforms})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	deleted, err := repo.Delete(ctx, station.ID)
	require.NoError(t, err)
	assert.Equal(t, station.ID, deleted.ID)

	_, err = repo.GetByID(ctx, station.ID)
	assert.ErrorIs(t, err, domain.ErrStationNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStationRepository_ReturnsCopies(t *testing.T) {
	repo := NewStationRepository()
	ctx := context.Background()
	station := &domain.Station{ID: "s1", Facilities: []string{"WiFi"}}
	require.NoError(t, repo.Create(ctx, station))

	got, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	got.Facilities[0] = "changed"

	again, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "WiFi", again.Facilities[0])
}
