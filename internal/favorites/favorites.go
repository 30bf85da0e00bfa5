// Package favorites maintains the user's persisted set of favourite
// Pokémon, stored as a JSON array of numeric IDs.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/cristianoliveira/pokedex-cli/internal/logging"
	"github.com/cristianoliveira/pokedex-cli/internal/storage"
)

// StorageKey is the key the favourites array is persisted under.
const StorageKey = "pokedex_favorites"

// ErrNotInitialized is returned when the store is used before Init. It
// signals a wiring mistake, not a runtime condition.
var ErrNotInitialized = errors.New("favorites: store used before Init")

// Store is an in-memory favourites set backed by persistent storage.
// The persisted array is read once at Init; afterwards memory is the
// source of truth and every mutation re-serializes the full set.
type Store struct {
	mu          sync.RWMutex
	backend     storage.Store
	ids         map[int]struct{}
	initialized bool
	logger      logging.Logger
}

// NewStore creates a store over the given backend. Call Init before use.
func NewStore(backend storage.Store) *Store {
	return &Store{
		backend: backend,
		ids:     make(map[int]struct{}),
		logger:  logging.GetGlobal(),
	}
}

// Init loads the persisted favourites. A missing key or an unreadable
// value both yield an empty set, so Init never fails. Calling it more
// than once is a no-op.
func (s *Store) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return
	}
	s.initialized = true

	data, err := s.backend.Get(StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("favorites load failed, starting empty", "err", err)
		}
		return
	}

	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		s.logger.Warn("favorites blob malformed, starting empty", "err", err)
		return
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// IsFavorite reports whether the ID is in the set.
func (s *Store) IsFavorite(id int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return false, ErrNotInitialized
	}
	_, ok := s.ids[id]
	return ok, nil
}

// Toggle adds the ID to the set, or removes it when present, and
// persists the updated set. Returns the new membership state.
func (s *Store) Toggle(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return false, ErrNotInitialized
	}

	_, present := s.ids[id]
	if present {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}

	if err := s.persistLocked(); err != nil {
		// Roll back so memory and storage cannot drift apart.
		if present {
			s.ids[id] = struct{}{}
		} else {
			delete(s.ids, id)
		}
		return present, fmt.Errorf("persisting favorites: %w", err)
	}
	return !present, nil
}

// List returns the favourite IDs in ascending order.
func (s *Store) List() ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return nil, ErrNotInitialized
	}
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// Count returns the number of favourites.
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return 0, ErrNotInitialized
	}
	return len(s.ids), nil
}

func (s *Store) persistLocked() error {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.backend.Set(StorageKey, data)
}
