// Package search provides the multi-language name index used for
// substring search across every supported language, independent of the
// locale currently displayed.
package search

import (
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/pokedex-cli/internal/logging"
)

// IndexLanguages are the languages the index covers.
var IndexLanguages = []string{"en", "fr", "de", "es", "it", "ja"}

// NameSource supplies the complete ordered name list for one language.
// The Nth name corresponds to identifier N+1 (ordinal correspondence with
// the upstream numbering convention). This mapping is known not to hold
// for non-contiguous or modern identifier ranges; the fallback-name check
// in Matches compensates for the gap.
type NameSource interface {
	All(lang string) ([]string, error)
}

// Option configures an Index.
type Option func(*Index)

// WithLanguages overrides the set of indexed languages.
func WithLanguages(langs []string) Option {
	return func(i *Index) { i.languages = langs }
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(i *Index) { i.logger = l }
}

// Index is the lazily-built name index: identifier to the set of
// lowercased name variants across all indexed languages. It builds at most
// once per process; the source is static so no invalidation is needed.
type Index struct {
	source    NameSource
	languages []string
	logger    logging.Logger

	once  sync.Once
	mu    sync.RWMutex
	names map[int]map[string]struct{}
}

// NewIndex creates an index over the given source. Nothing is loaded until
// the first search.
func NewIndex(source NameSource, opts ...Option) *Index {
	idx := &Index{
		source:    source,
		languages: IndexLanguages,
		logger:    logging.GetGlobal(),
		names:     make(map[int]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// EnsureLoaded builds the index if it has not been built yet. Safe for
// concurrent use; concurrent callers block until the single build
// finishes. A language that fails to load is skipped with a warning; the
// index is never rebuilt to fill such gaps.
func (i *Index) EnsureLoaded() {
	i.once.Do(i.build)
}

func (i *Index) build() {
	built := make(map[int]map[string]struct{})
	for _, lang := range i.languages {
		all, err := i.source.All(lang)
		if err != nil {
			i.logger.Warn("could not load names for language", "lang", lang, "err", err)
			continue
		}
		for n, name := range all {
			id := n + 1
			if built[id] == nil {
				built[id] = make(map[string]struct{})
			}
			built[id][strings.ToLower(name)] = struct{}{}
		}
	}
	i.mu.Lock()
	i.names = built
	i.mu.Unlock()
}

// Matches reports whether the identifier matches the query: by the string
// form of the identifier, by the optional fallback display name, or by any
// indexed localized name. Comparison is case-insensitive substring
// containment; an empty query always matches.
func (i *Index) Matches(id int, query string, fallbackName string) bool {
	if query == "" {
		return true
	}

	i.EnsureLoaded()

	q := strings.ToLower(strings.TrimSpace(query))

	if strings.Contains(strconv.Itoa(id), q) {
		return true
	}

	// The fallback name comes from the live API, so it covers identifiers
	// the static source does not.
	if fallbackName != "" && strings.Contains(strings.ToLower(fallbackName), q) {
		return true
	}

	i.mu.RLock()
	defer i.mu.RUnlock()
	for name := range i.names[id] {
		if strings.Contains(name, q) {
			return true
		}
	}
	return false
}
