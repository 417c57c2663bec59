package storage

import (
	"context"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/state"
)

func newTestRedis(t *testing.T) *RedisStorage {
	t.Helper()
	mr := miniredis.RunT(t)
	rs := NewRedisStorage(mr.Addr(), slog.New(slog.DiscardHandler))
	t.Cleanup(func() { _ = rs.Close() })
	return rs
}

func TestRedisPing(t *testing.T) {
	rs := newTestRedis(t)
	assert.NoError(t, rs.Ping(context.Background()))
}

func TestRedisSaveAndLoadGameState(t *testing.T) {
	rs := newTestRedis(t)
	ctx := context.Background()

	c := catalog.Default()
	gs := state.NewGameState(c, "Wren")
	gs.Player.Gold = 42
	gs.GameTime = 7

	require.NoError(t, rs.SaveGameState(ctx, gs.ID, gs))

	loaded, err := rs.LoadGameState(ctx, gs.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, gs.ID, loaded.ID)
	assert.Equal(t, "Wren", loaded.Player.Name)
	assert.Equal(t, 42, loaded.Player.Gold)
	assert.Equal(t, 7, loaded.GameTime)
	assert.Equal(t, gs.CurrentLocationID, loaded.CurrentLocationID)
}

func TestRedisLoadMissingReturnsNil(t *testing.T) {
	rs := newTestRedis(t)

	loaded, err := rs.LoadGameState(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisDeleteGameState(t *testing.T) {
	rs := newTestRedis(t)
	ctx := context.Background()

	c := catalog.Default()
	gs := state.NewGameState(c, "Wren")
	require.NoError(t, rs.SaveGameState(ctx, gs.ID, gs))
	require.NoError(t, rs.DeleteGameState(ctx, gs.ID))

	loaded, err := rs.LoadGameState(ctx, gs.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisSessionExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	rs := NewRedisStorage(mr.Addr(), slog.New(slog.DiscardHandler))
	t.Cleanup(func() { _ = rs.Close() })
	ctx := context.Background()

	c := catalog.Default()
	gs := state.NewGameState(c, "Wren")
	require.NoError(t, rs.SaveGameState(ctx, gs.ID, gs))

	mr.FastForward(sessionTTL + 1)

	loaded, err := rs.LoadGameState(ctx, gs.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
