package entitlement_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotekit/quotekit/pkg/entitlement"
)

func TestFileStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()

		store, err := entitlement.NewFileStore(filepath.Join(t.TempDir(), "entitlement.json"))
		require.NoError(t, err)

		sub, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, entitlement.DefaultSubscription(), sub)
	})

	t.Run("round-trips every field", func(t *testing.T) {
		t.Parallel()

		store, err := entitlement.NewFileStore(filepath.Join(t.TempDir(), "entitlement.json"))
		require.NoError(t, err)

		orig := fullRecord()
		require.NoError(t, store.Save(ctx, orig))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, orig, loaded)
	})

	t.Run("corrupted file degrades to defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "entitlement.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"planType": not-json`), 0o644))

		store, err := entitlement.NewFileStore(path)
		require.NoError(t, err)

		sub, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, entitlement.DefaultSubscription(), sub)
	})

	t.Run("save overwrites atomically", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "entitlement.json")
		store, err := entitlement.NewFileStore(path)
		require.NoError(t, err)

		first := fullRecord()
		require.NoError(t, store.Save(ctx, first))

		second := entitlement.DefaultSubscription()
		second.QuotesCreated = 1
		require.NoError(t, store.Save(ctx, second))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, second, loaded)

		// No stray temp files left behind.
		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("empty path rejected", func(t *testing.T) {
		t.Parallel()

		_, err := entitlement.NewFileStore("")
		assert.ErrorIs(t, err, entitlement.ErrInvalidConfig)
	})
}
