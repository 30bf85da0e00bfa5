// Package listing implements the central query logic: resolving a catalog,
// a query string, active type filters and a page cursor into a concrete,
// hydrated page of Pokémon.
//
// Two listing contexts exist with different cost tradeoffs. The bounded,
// locale-aware catalog is filtered synchronously in FilterLocal; the large
// global catalog goes through the Resolver's multi-stage pipeline. The two
// code paths are deliberately separate: one is a pure in-memory filter,
// the other is network-bound.
package listing

import (
	"strings"

	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
)

// FilterState holds the user-controlled filter criteria for one listing
// view. Each view owns its own instance.
type FilterState struct {
	// Query is the free-text search, possibly empty.
	Query string `json:"query"`
	// ActiveTypes is the set of selected type identifiers, combined with
	// AND semantics. Unordered, deduplicated.
	ActiveTypes []string `json:"activeTypes"`
	// Page is the zero-based page index. Only the global context
	// paginates.
	Page int `json:"currentPage"`
}

// IsEmpty reports whether no filter criteria are set.
func (s FilterState) IsEmpty() bool {
	return s.Query == "" && len(s.ActiveTypes) == 0
}

// ToggleType adds the type to the active set, or removes it when present.
// Returns the updated state; the receiver is not mutated.
func (s FilterState) ToggleType(typeID string) FilterState {
	for i, t := range s.ActiveTypes {
		if t == typeID {
			updated := make([]string, 0, len(s.ActiveTypes)-1)
			updated = append(updated, s.ActiveTypes[:i]...)
			updated = append(updated, s.ActiveTypes[i+1:]...)
			s.ActiveTypes = updated
			return s
		}
	}
	s.ActiveTypes = append(append([]string(nil), s.ActiveTypes...), typeID)
	return s
}

// Clear resets the state to defaults.
func (s FilterState) Clear() FilterState {
	return FilterState{}
}

// FilterLocal filters a bounded, locale-aware catalog synchronously.
// A candidate passes the query when the query is empty, its localized
// display name contains the query, its identifier equals the query after
// leading-zero stripping, or any of its types' localized labels (current
// locale, then "en", then the raw identifier) contains the query. The
// candidate's type set must additionally be a superset of the active
// types. No pagination is applied in this context.
func FilterLocal(records []pokemon.Pokemon, typesMap pokemon.TypesMap, locale string, state FilterState) []pokemon.Pokemon {
	if records == nil {
		return []pokemon.Pokemon{}
	}

	q := strings.ToLower(strings.TrimSpace(state.Query))
	hasQuery := q != ""

	result := make([]pokemon.Pokemon, 0, len(records))
	for _, p := range records {
		if !p.HasAllTypes(state.ActiveTypes) {
			continue
		}
		if !hasQuery {
			result = append(result, p)
			continue
		}
		if matchesLocalQuery(p, typesMap, locale, q) {
			result = append(result, p)
		}
	}
	return result
}

func matchesLocalQuery(p pokemon.Pokemon, typesMap pokemon.TypesMap, locale, q string) bool {
	if strings.Contains(strings.ToLower(p.Name(locale)), q) {
		return true
	}
	if pokemon.MatchesID(p.ID, q) {
		return true
	}
	for _, t := range p.Types {
		// The query can hit the label in the current locale, the "en"
		// label, or the raw identifier.
		info := typesMap[t]
		candidates := []string{info.Translations[locale], info.Translations[pokemon.FallbackLocale], t}
		for _, candidate := range candidates {
			if candidate != "" && strings.Contains(strings.ToLower(candidate), q) {
				return true
			}
		}
	}
	return false
}
