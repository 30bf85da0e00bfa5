package search

import (
	"context"
	"sort"

	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
)

// PokemonLister is the subset of the data-service client the source needs.
type PokemonLister interface {
	Pokemons(ctx context.Context, locale string) ([]pokemon.Pokemon, error)
}

// ServiceSource adapts the canonical data service into a NameSource: for a
// language it returns names ordered by identifier, so the ordinal
// contract (Nth name, identifier N+1) holds for the contiguous range the
// service covers.
type ServiceSource struct {
	lister PokemonLister
}

// NewServiceSource creates a source over the data-service client.
func NewServiceSource(lister PokemonLister) *ServiceSource {
	return &ServiceSource{lister: lister}
}

// All returns the ordered name list for lang.
func (s *ServiceSource) All(lang string) ([]string, error) {
	records, err := s.lister.Pokemons(context.Background(), lang)
	if err != nil {
		return nil, err
	}
	sorted := make([]pokemon.Pokemon, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	names := make([]string, 0, len(sorted))
	for _, p := range sorted {
		names = append(names, p.Name(lang))
	}
	return names, nil
}
