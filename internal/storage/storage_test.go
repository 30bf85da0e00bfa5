package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/pokedex-cli/internal/config"
)

// backends returns one instance of every Store implementation, each backed
// by a fresh temp location.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	fileStore, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	sqliteStore, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		"file":   fileStore,
		"sqlite": sqliteStore,
		"memory": NewMemoryStore(),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get("favorites")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set("favorites", []byte(`[1,4,7]`)))
			got, err := store.Get("favorites")
			require.NoError(t, err)
			assert.Equal(t, `[1,4,7]`, string(got))

			// Overwrite replaces wholesale.
			require.NoError(t, store.Set("favorites", []byte(`[25]`)))
			got, err = store.Get("favorites")
			require.NoError(t, err)
			assert.Equal(t, `[25]`, string(got))
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set("pokedex_lang", []byte("fr")))
			require.NoError(t, store.Delete("pokedex_lang"))

			_, err := store.Get("pokedex_lang")
			assert.ErrorIs(t, err, ErrNotFound)

			// Deleting a missing key is not an error.
			assert.NoError(t, store.Delete("pokedex_lang"))
		})
	}
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("../escape/attempt", []byte("x")))

	got, err := store.Get("../escape/attempt")
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))

	// Everything stays inside the store directory.
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("pokedex_favorites", []byte(`[151]`)))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("pokedex_favorites")
	require.NoError(t, err)
	assert.Equal(t, `[151]`, string(got))
}

func TestNewForBackend(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	config.Load()

	tests := []struct {
		backend string
		wantErr bool
	}{
		{backend: "file"},
		{backend: "sqlite"},
		{backend: "memory"},
		{backend: ""},
		{backend: "cloud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("backend_"+tt.backend, func(t *testing.T) {
			store, err := NewForBackend(tt.backend)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, store.Close())
		})
	}
}
