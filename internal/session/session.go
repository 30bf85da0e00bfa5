// Package session persists and replays per-view browsing state so that
// returning to a listing view resumes exactly where the user left off.
// It is a best-effort affordance: every storage or parse failure degrades
// silently to defaults.
package session

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/cristianoliveira/pokedex-cli/internal/listing"
	"github.com/cristianoliveira/pokedex-cli/internal/logging"
	"github.com/cristianoliveira/pokedex-cli/internal/storage"
)

// View state keys, one per listing view.
const (
	OthersStateKey = "others_search_state"
	Gen1StateKey   = "gen1_search_state"
)

// Snapshot is the serialized view state. Every field is optional; absent
// or malformed fields are ignored individually on restore.
type Snapshot struct {
	Query       *string  `json:"query,omitempty"`
	ActiveTypes []string `json:"activeTypes,omitempty"`
	CurrentPage *int     `json:"currentPage,omitempty"`
	ScrollY     *int     `json:"scrollY,omitempty"`
	Lang        *string  `json:"lang,omitempty"`
}

// FromFilterState builds a snapshot of the given filter state.
func FromFilterState(state listing.FilterState, scrollY int, lang string) Snapshot {
	query := state.Query
	page := state.Page
	scroll := scrollY
	language := lang
	return Snapshot{
		Query:       &query,
		ActiveTypes: state.ActiveTypes,
		CurrentPage: &page,
		ScrollY:     &scroll,
		Lang:        &language,
	}
}

// Apply overlays the snapshot's present fields onto a filter state.
func (s Snapshot) Apply(state listing.FilterState) listing.FilterState {
	if s.Query != nil {
		state.Query = *s.Query
	}
	if s.ActiveTypes != nil {
		state.ActiveTypes = s.ActiveTypes
	}
	if s.CurrentPage != nil {
		state.Page = *s.CurrentPage
	}
	return state
}

// Manager reads and writes one view's snapshot under a fixed key.
type Manager struct {
	store  storage.Store
	key    string
	logger logging.Logger
}

// NewManager creates a manager over the given store and view key.
func NewManager(store storage.Store, key string) *Manager {
	return &Manager{store: store, key: key, logger: logging.GetGlobal()}
}

// Save serializes the snapshot under the view key, overwriting any prior
// value. Failures are swallowed.
func (m *Manager) Save(snap Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		m.logger.Debug("session save skipped", "key", m.key, "err", err)
		return
	}
	if err := m.store.Set(m.key, data); err != nil {
		m.logger.Debug("session save failed", "key", m.key, "err", err)
	}
}

// Clear removes the stored snapshot. Failures are swallowed.
func (m *Manager) Clear() {
	if err := m.store.Delete(m.key); err != nil {
		m.logger.Debug("session clear failed", "key", m.key, "err", err)
	}
}

// Restore reads the stored snapshot. The second return is false when
// nothing usable was stored. Each field is decoded independently, so a
// single corrupt field cannot block restoration of the others.
func (m *Manager) Restore() (Snapshot, bool) {
	data, err := m.store.Get(m.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.logger.Debug("session restore failed", "key", m.key, "err", err)
		}
		return Snapshot{}, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		m.logger.Debug("session blob malformed", "key", m.key, "err", err)
		return Snapshot{}, false
	}

	var snap Snapshot
	restored := false
	if field, ok := raw["query"]; ok {
		var query string
		if json.Unmarshal(field, &query) == nil {
			snap.Query = &query
			restored = true
		}
	}
	if field, ok := raw["activeTypes"]; ok {
		var types []string
		if json.Unmarshal(field, &types) == nil && types != nil {
			// Drop empty entries, they cannot name a type.
			kept := make([]string, 0, len(types))
			for _, t := range types {
				if t != "" {
					kept = append(kept, t)
				}
			}
			snap.ActiveTypes = kept
			restored = true
		}
	}
	if field, ok := raw["currentPage"]; ok {
		var page int
		if json.Unmarshal(field, &page) == nil {
			snap.CurrentPage = &page
			restored = true
		}
	}
	if field, ok := raw["scrollY"]; ok {
		var scroll int
		if json.Unmarshal(field, &scroll) == nil {
			snap.ScrollY = &scroll
			restored = true
		}
	}
	if field, ok := raw["lang"]; ok {
		var lang string
		if json.Unmarshal(field, &lang) == nil {
			snap.Lang = &lang
			restored = true
		}
	}
	return snap, restored
}

// ScrollRestorer defers scroll restoration until the corresponding data
// has loaded, and applies it at most once so re-renders cannot keep
// jumping.
type ScrollRestorer struct {
	mu      sync.Mutex
	pending *int
}

// SetPending records the offset to restore.
func (r *ScrollRestorer) SetPending(y int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = &y
}

// Take returns the pending offset and clears it. The second return is
// false when nothing is pending.
func (r *ScrollRestorer) Take() (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending == nil {
		return 0, false
	}
	y := *r.pending
	r.pending = nil
	return y, true
}
