package storage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	t.Run("missing key", func(t *testing.T) {
		_, ok := store.Get("nope")
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		store.Set("k", "v1")
		v, ok := store.Get("k")
		require.True(t, ok)
		assert.Equal(t, "v1", v)
	})

	t.Run("overwrite", func(t *testing.T) {
		store.Set("k", "v2")
		v, _ := store.Get("k")
		assert.Equal(t, "v2", v)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		store.Remove("k")
		store.Remove("k")
		_, ok := store.Get("k")
		assert.False(t, ok)
	})
}

func TestMemoryStoreConcurrent(t *testing.T) {
	store := NewMemoryStore()

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		i := i
		g.Go(func() error {
			key := fmt.Sprintf("key-%d", i)
			store.Set(key, "v")
			if _, ok := store.Get(key); !ok {
				return fmt.Errorf("key %s vanished", key)
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, 50, store.Len())
}
