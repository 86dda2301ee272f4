package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/cavegen/internal/caveinfo"
	"github.com/cory-johannsen/cavegen/internal/config"
	"github.com/cory-johannsen/cavegen/internal/storage/postgres"
	"github.com/cory-johannsen/cavegen/internal/testutil"
)

func setupOrderingRepo(t *testing.T) *postgres.OrderingRepository {
	t.Helper()
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return pc.Pool.Orderings()
}

func TestOrderingRepository_SaveAndLatest(t *testing.T) {
	repo := setupOrderingRepo(t)
	ctx := context.Background()

	units := []caveinfo.UnitKey{
		{UnitFolderName: "room_a", Rotation: 0},
		{UnitFolderName: "room_a", Rotation: 3},
		{UnitFolderName: "way_b", Rotation: 1},
	}
	id, err := repo.Save(ctx, "scx7", units)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	got, err := repo.Latest(ctx, "scx7")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "scx7", got.Sublevel)
	assert.Equal(t, units, got.Units)
	assert.WithinDuration(t, time.Now(), got.RecordedAt, time.Minute)
}

func TestOrderingRepository_LatestWins(t *testing.T) {
	repo := setupOrderingRepo(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, "gk3", []caveinfo.UnitKey{{UnitFolderName: "old", Rotation: 0}})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	newest, err := repo.Save(ctx, "gk3", []caveinfo.UnitKey{{UnitFolderName: "new", Rotation: 2}})
	require.NoError(t, err)

	got, err := repo.Latest(ctx, "gk3")
	require.NoError(t, err)
	assert.Equal(t, newest, got.ID)
	assert.Equal(t, "new", got.Units[0].UnitFolderName)
}

func TestOrderingRepository_NotFound(t *testing.T) {
	repo := setupOrderingRepo(t)
	_, err := repo.Latest(context.Background(), "bk1")
	assert.ErrorIs(t, err, postgres.ErrOrderingNotFound)
}

func TestOrderingRepository_RoundTripsPreparedFloor(t *testing.T) {
	repo := setupOrderingRepo(t)
	ctx := context.Background()

	floor := &caveinfo.FloorInfo{CaveName: "SH", Sublevel: 1, CaveUnits: []*caveinfo.CaveUnit{
		{UnitFolderName: "big", Width: 3, Height: 2, NumDoors: 2, Doors: []caveinfo.Door{{Direction: 0}, {Direction: 2}}},
		{UnitFolderName: "cap", Width: 1, Height: 1, NumDoors: 1, Doors: []caveinfo.Door{{Direction: 2}}},
	}}
	prepared := caveinfo.Prepare(floor)

	_, err := repo.Save(ctx, "sh2", caveinfo.Keys(prepared.CaveUnits))
	require.NoError(t, err)

	got, err := repo.Latest(ctx, "sh2")
	require.NoError(t, err)
	assert.NoError(t, caveinfo.VerifyOrdering(got.Units, prepared.CaveUnits))
}

func TestPool_Health(t *testing.T) {
	pc := testutil.NewPostgresContainer(t)
	require.NoError(t, pc.Pool.Health(context.Background(), 5*time.Second))
}

func TestNewPool_Unreachable(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     1,
		User:     "nobody",
		Name:     "nothing",
		SSLMode:  "disable",
		MaxConns: 1,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := postgres.NewPool(ctx, cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:1/nothing")
}
