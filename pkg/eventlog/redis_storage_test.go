package eventlog_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotekit/quotekit/pkg/eventlog"
)

func newRedisStorage(t *testing.T, capacity int) *eventlog.RedisStorage {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	storage, err := eventlog.NewRedisStorage(client, "", capacity)
	require.NoError(t, err)
	return storage
}

func TestRedisStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("lists oldest first", func(t *testing.T) {
		t.Parallel()

		storage := newRedisStorage(t, 10)
		for i := 0; i < 3; i++ {
			require.NoError(t, storage.Append(ctx, eventlog.Event{
				ID:   fmt.Sprintf("id-%d", i),
				Name: "test_event",
			}))
		}

		events, err := storage.List(ctx)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, "id-0", events[0].ID)
		assert.Equal(t, "id-2", events[2].ID)
	})

	t.Run("trims to capacity oldest first", func(t *testing.T) {
		t.Parallel()

		storage := newRedisStorage(t, 5)
		for i := 0; i < 8; i++ {
			require.NoError(t, storage.Append(ctx, eventlog.Event{
				ID:   fmt.Sprintf("id-%d", i),
				Name: "test_event",
			}))
		}

		events, err := storage.List(ctx)
		require.NoError(t, err)
		require.Len(t, events, 5)
		assert.Equal(t, "id-3", events[0].ID)
		assert.Equal(t, "id-7", events[4].ID)
	})

	t.Run("nil client rejected", func(t *testing.T) {
		t.Parallel()

		_, err := eventlog.NewRedisStorage(nil, "", 0)
		assert.Error(t, err)
	})
}
