// Package tui implements the interactive Pokédex browser built on
// bubbletea. One model owns the whole screen: a search input, the type
// filter bar, the hydrated page of entries and a paginator.
package tui

import (
	"github.com/cristianoliveira/pokedex-cli/internal/listing"
	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
)

// catalogLoadedMsg is sent once the unpaginated catalog has been fetched.
type catalogLoadedMsg struct {
	entries []pokemon.ListingEntry
}

// typesLoadedMsg is sent once the type metadata map has been fetched.
// Absent metadata degrades the type bar to raw identifiers.
type typesLoadedMsg struct {
	types pokemon.TypesMap
}

// pageResolvedMsg carries one completed resolution. Stale resolutions
// never produce this message.
type pageResolvedMsg struct {
	result listing.Result
}

// loadFailedMsg is sent when a fetch or resolution fails for good.
type loadFailedMsg struct {
	err error
}

// favoriteToggledMsg reports the new membership state after a toggle.
type favoriteToggledMsg struct {
	id       int
	favorite bool
}

// localeChangedMsg re-renders localized text after a language switch.
type localeChangedMsg struct {
	lang string
}
