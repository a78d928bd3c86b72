package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zafahi/tralashop/internal/adapter/storage"
	"github.com/zafahi/tralashop/internal/core/port"
)

// contract runs the shared KeyValueStore behavior against any backend.
func contract(t *testing.T, newStore func(t *testing.T) port.KeyValueStore) {
	t.Run("RoundTrip", func(t *testing.T) {
		s := newStore(t)

		type nested struct {
			Name  string   `json:"name"`
			Count int      `json:"count"`
			Tags  []string `json:"tags"`
		}

		in := nested{Name: "cart", Count: 3, Tags: []string{"new", "sale"}}
		require.True(t, s.Set("k", in))

		var out nested
		require.True(t, s.Get("k", &out))
		assert.Equal(t, in, out)
	})

	t.Run("MissingKeyKeepsDefault", func(t *testing.T) {
		s := newStore(t)

		v := "fallback"
		assert.False(t, s.Get("absent", &v))
		assert.Equal(t, "fallback", v)
	})

	t.Run("OverwriteReplaces", func(t *testing.T) {
		s := newStore(t)

		require.True(t, s.Set("k", 1))
		require.True(t, s.Set("k", 2))

		var v int
		require.True(t, s.Get("k", &v))
		assert.Equal(t, 2, v)
	})

	t.Run("Remove", func(t *testing.T) {
		s := newStore(t)

		require.True(t, s.Set("k", "v"))
		assert.True(t, s.Remove("k"))

		var v string
		assert.False(t, s.Get("k", &v))
		assert.True(t, s.Remove("k"), "removing an absent key still succeeds")
	})

	t.Run("Clear", func(t *testing.T) {
		s := newStore(t)

		require.True(t, s.Set("a", 1))
		require.True(t, s.Set("b", 2))
		assert.True(t, s.Clear())

		var v int
		assert.False(t, s.Get("a", &v))
		assert.False(t, s.Get("b", &v))
	})

	t.Run("UnencodableValueFails", func(t *testing.T) {
		s := newStore(t)
		assert.False(t, s.Set("bad", func() {}))
	})
}

func TestMemoryStore(t *testing.T) {
	contract(t, func(t *testing.T) port.KeyValueStore {
		return storage.NewMemoryStore()
	})
}

func TestFileStore(t *testing.T) {
	contract(t, func(t *testing.T) port.KeyValueStore {
		return storage.NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	})

	t.Run("ReloadsFromDisk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.json")

		s := storage.NewFileStore(path)
		require.True(t, s.Set("theme", "dark"))

		reloaded := storage.NewFileStore(path)
		var theme string
		require.True(t, reloaded.Get("theme", &theme))
		assert.Equal(t, "dark", theme)
	})

	t.Run("CorruptDocumentStartsEmpty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		s := storage.NewFileStore(path)
		var v string
		assert.False(t, s.Get("anything", &v))
		assert.True(t, s.Set("k", "v"), "store is usable after a corrupt load")
	})

	t.Run("CreatesParentDirectory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deep", "nested", "store.json")

		s := storage.NewFileStore(path)
		require.True(t, s.Set("k", "v"))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})
}
