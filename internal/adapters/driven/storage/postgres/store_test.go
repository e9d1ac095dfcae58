package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

// setupTestStore connects to the database named by LENRMC_TEST_POSTGRES_DSN,
// skipping when the variable is unset so the suite runs without a server.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("LENRMC_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("LENRMC_TEST_POSTGRES_DSN not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := NewStore(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Clear(context.Background()))
		assert.NoError(t, store.Close())
	})
	return store
}

func TestStore_PutAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	key := fmt.Sprintf("test-%d", time.Now().UnixNano())

	require.NoError(t, store.Put(ctx, key, []byte("payload")))

	payload, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), payload)
}

func TestStore_GetMissing(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Get(context.Background(), "absent")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_PutReplacesExistingKey(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	key := fmt.Sprintf("test-%d", time.Now().UnixNano())

	require.NoError(t, store.Put(ctx, key, []byte("first")))
	require.NoError(t, store.Put(ctx, key, []byte("second")))

	payload, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), payload)
}

func TestStore_StatsAndClear(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "stats-key", []byte("payload")))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.Entries, int64(1))

	require.NoError(t, store.Clear(ctx))
	stats, err = store.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Entries)
}
