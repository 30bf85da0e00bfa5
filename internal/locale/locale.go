// Package locale holds the active display language as an observable
// store. Views subscribe to changes instead of polling, so a language
// switch re-renders everything that displays localized text.
package locale

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cristianoliveira/pokedex-cli/internal/logging"
	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
	"github.com/cristianoliveira/pokedex-cli/internal/storage"
)

// StorageKey is the key the language code is persisted under, as a bare
// string rather than a JSON document.
const StorageKey = "pokedex_lang"

// ErrUnsupported is returned by Set for a language outside the
// supported set.
var ErrUnsupported = errors.New("locale: unsupported language")

// Store is the observable locale store. The zero value is not usable;
// construct it with NewStore.
type Store struct {
	mu      sync.RWMutex
	backend storage.Store
	current string
	nextID  int
	subs    map[int]func(string)
	logger  logging.Logger
}

// NewStore loads the persisted language, falling back to the default
// when nothing valid is stored.
func NewStore(backend storage.Store) *Store {
	s := &Store{
		backend: backend,
		current: pokemon.DefaultLocale,
		subs:    make(map[int]func(string)),
		logger:  logging.GetGlobal(),
	}
	data, err := backend.Get(StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("locale load failed, using default", "err", err)
		}
		return s
	}
	if lang := string(data); isSupported(lang) {
		s.current = lang
	} else {
		s.logger.Warn("ignoring unsupported persisted locale", "lang", string(data))
	}
	return s
}

// Current returns the active language code.
func (s *Store) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set switches the active language, persists it and notifies every
// subscriber. Setting the current language again is a no-op. A persist
// failure does not block the switch; the choice just will not survive
// a restart.
func (s *Store) Set(lang string) error {
	if !isSupported(lang) {
		return fmt.Errorf("%w: %q", ErrUnsupported, lang)
	}

	s.mu.Lock()
	if lang == s.current {
		s.mu.Unlock()
		return nil
	}
	s.current = lang
	subs := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if err := s.backend.Set(StorageKey, []byte(lang)); err != nil {
		s.logger.Warn("locale persist failed", "lang", lang, "err", err)
	}
	for _, fn := range subs {
		fn(lang)
	}
	return nil
}

// Subscribe registers a callback invoked on every language change. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func(lang string)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func isSupported(lang string) bool {
	for _, l := range pokemon.SupportedLocales {
		if l == lang {
			return true
		}
	}
	return false
}
