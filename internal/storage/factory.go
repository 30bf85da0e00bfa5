package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/pokedex-cli/internal/colors"
	"github.com/cristianoliveira/pokedex-cli/internal/config"
)

const (
	// BackendFile selects file-based storage, one JSON file per key.
	BackendFile = "file"
	// BackendSQLite selects SQLite-backed storage.
	BackendSQLite = "sqlite"
	// BackendMemory selects in-memory storage (session-scoped).
	BackendMemory = "memory"

	stateDBFileName = "state.db"
)

var _ Store = (*FileStore)(nil)
var _ Store = (*SQLiteStore)(nil)
var _ Store = (*MemoryStore)(nil)

// NewFromConfig creates the persistent store selected by configuration.
func NewFromConfig() (Store, error) {
	backend := config.Get("storage_backend", BackendFile)
	return NewForBackend(backend)
}

// NewForBackend creates a store for the provided backend name.
func NewForBackend(backend string) (Store, error) {
	stateDir := config.StateDir()
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return NewFileStore(stateDir)
	case BackendSQLite:
		dbPath := filepath.Join(stateDir, stateDBFileName)
		store, err := NewSQLiteStore(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to file: %v", err))
			return NewFileStore(stateDir)
		}
		return store, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
