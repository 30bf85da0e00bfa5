package search

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
)

// mapSource serves fixed name lists and counts loads per language.
type mapSource struct {
	names map[string][]string
	loads atomic.Int32
}

func (m *mapSource) All(lang string) ([]string, error) {
	m.loads.Add(1)
	names, ok := m.names[lang]
	if !ok {
		return nil, errors.New("language not available")
	}
	return names, nil
}

func newTestIndex() (*Index, *mapSource) {
	source := &mapSource{names: map[string][]string{
		"en": {"Bulbasaur", "Ivysaur", "Venusaur"},
		"fr": {"Bulbizarre", "Herbizarre", "Florizarre"},
	}}
	return NewIndex(source, WithLanguages([]string{"en", "fr"})), source
}

func TestMatchesAcrossLanguages(t *testing.T) {
	idx, _ := newTestIndex()

	tests := []struct {
		name     string
		id       int
		query    string
		fallback string
		expected bool
	}{
		{name: "empty query matches all", id: 1, query: "", expected: true},
		{name: "english name", id: 1, query: "bulba", expected: true},
		{name: "french name while displaying another locale", id: 1, query: "bulbizarre", expected: true},
		{name: "case insensitive", id: 3, query: "FLORI", expected: true},
		{name: "identifier substring", id: 2, query: "2", expected: true},
		{name: "no match", id: 1, query: "pikachu", expected: false},
		{name: "fallback name covers unindexed id", id: 900, query: "kleavor", fallback: "kleavor", expected: true},
		{name: "unindexed id without fallback", id: 900, query: "kleavor", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, idx.Matches(tt.id, tt.query, tt.fallback))
		})
	}
}

func TestBuildHappensOnce(t *testing.T) {
	idx, source := newTestIndex()

	idx.Matches(1, "bulba", "")
	idx.Matches(2, "ivy", "")
	idx.EnsureLoaded()

	assert.Equal(t, int32(2), source.loads.Load(), "one load per language, ever")
}

func TestFailedLanguageIsSkipped(t *testing.T) {
	source := &mapSource{names: map[string][]string{
		"en": {"Bulbasaur"},
	}}
	idx := NewIndex(source, WithLanguages([]string{"en", "ja"}))

	assert.True(t, idx.Matches(1, "bulba", ""))
	assert.False(t, idx.Matches(1, "フシギダネ", ""))
}

type staticLister struct {
	records []pokemon.Pokemon
}

func (s *staticLister) Pokemons(ctx context.Context, locale string) ([]pokemon.Pokemon, error) {
	return s.records, nil
}

func TestServiceSourceOrdersByID(t *testing.T) {
	lister := &staticLister{records: []pokemon.Pokemon{
		{ID: 2, Names: pokemon.LocalizedNames{"en": "Ivysaur"}},
		{ID: 1, Names: pokemon.LocalizedNames{"en": "Bulbasaur"}},
	}}

	names, err := NewServiceSource(lister).All("en")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bulbasaur", "Ivysaur"}, names)
}
