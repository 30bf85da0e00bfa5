package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/pokedex-cli/internal/favorites"
	"github.com/cristianoliveira/pokedex-cli/internal/listing"
	"github.com/cristianoliveira/pokedex-cli/internal/locale"
	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
	"github.com/cristianoliveira/pokedex-cli/internal/session"
	"github.com/cristianoliveira/pokedex-cli/internal/storage"
)

// fakeBackend serves a three-entry catalog with details and type lists.
type fakeBackend struct {
	entries []pokemon.ListingEntry
	details map[string]pokemon.Pokemon
	byType  map[string][]pokemon.ListingEntry
}

func newFakeBackend() *fakeBackend {
	f := &fakeBackend{details: make(map[string]pokemon.Pokemon)}
	for i, name := range []string{"bulbasaur", "charmander", "squirtle"} {
		id := i + 1
		url := fmt.Sprintf("https://pokeapi.test/pokemon/%d/", id)
		f.entries = append(f.entries, pokemon.ListingEntry{Name: name, URL: url})
		f.details[url] = pokemon.Pokemon{ID: id, Names: pokemon.LocalizedNames{"en": name}}
	}
	f.byType = map[string][]pokemon.ListingEntry{
		"fire": {f.entries[1]},
	}
	return f
}

func (f *fakeBackend) FetchListing(ctx context.Context) ([]pokemon.ListingEntry, error) {
	return f.entries, nil
}

func (f *fakeBackend) FetchByType(ctx context.Context, typeID string) ([]pokemon.ListingEntry, error) {
	return f.byType[typeID], nil
}

func (f *fakeBackend) FetchDetails(ctx context.Context, url string) (pokemon.Pokemon, error) {
	return f.details[url], nil
}

func newTestModel(t *testing.T) (*Model, storage.Store) {
	t.Helper()
	backend := newFakeBackend()
	store := storage.NewMemoryStore()
	favs := favorites.NewStore(store)
	favs.Init()
	resolver := listing.NewResolver(backend, listing.WithPageSize(2))
	m := NewModel(backend, nil, resolver, favs, session.NewManager(store, session.OthersStateKey), locale.NewStore(store))
	return m, store
}

// drain runs a command and feeds any resulting message back into the
// model, returning once no command is pending.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				drain(t, m, c)
			}
			return
		}
		_, cmd = m.Update(msg)
	}
}

func TestCatalogLoadTriggersResolution(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(catalogLoadedMsg{entries: mustEntries(m)})
	require.NotNil(t, cmd)
	drain(t, m, cmd)

	assert.False(t, m.loading)
	assert.Equal(t, 3, m.result.TotalItems)
	assert.Equal(t, 2, m.result.TotalPages)
	assert.Len(t, m.result.Displayed, 2)
}

func mustEntries(m *Model) []pokemon.ListingEntry {
	entries, _ := m.client.FetchListing(context.Background())
	return entries
}

func TestCursorMovementStaysInBounds(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(catalogLoadedMsg{entries: mustEntries(m)})
	drain(t, m, cmd)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Zero(t, m.cursor, "cannot move above the first row")

	for i := 0; i < 10; i++ {
		_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	}
	assert.Equal(t, 1, m.cursor, "cannot move past the last visible row")
}

func TestPageNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(catalogLoadedMsg{entries: mustEntries(m)})
	drain(t, m, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	drain(t, m, cmd)
	assert.Equal(t, 1, m.state.Page)
	assert.Len(t, m.result.Displayed, 1, "last page holds the remainder")

	// Already on the last page.
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
}

func TestSearchApplyResetsPage(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(catalogLoadedMsg{entries: mustEntries(m)})
	drain(t, m, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	drain(t, m, cmd)
	require.Equal(t, 1, m.state.Page)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	require.True(t, m.search.Focused())
	m.search.SetValue("char")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drain(t, m, cmd)

	assert.Zero(t, m.state.Page)
	assert.Equal(t, "char", m.state.Query)
	require.Len(t, m.result.Displayed, 1)
	assert.Equal(t, 2, m.result.Displayed[0].ID)
}

func TestFavoriteToggleFromKeyboard(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(catalogLoadedMsg{entries: mustEntries(m)})
	drain(t, m, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	require.NotNil(t, cmd)
	msg := cmd()
	toggled, ok := msg.(favoriteToggledMsg)
	require.True(t, ok)
	assert.Equal(t, 1, toggled.id)
	assert.True(t, toggled.favorite)

	fav, err := m.favorites.IsFavorite(1)
	require.NoError(t, err)
	assert.True(t, fav)
}

func TestQuitPersistsSession(t *testing.T) {
	m, store := newTestModel(t)
	_, cmd := m.Update(catalogLoadedMsg{entries: mustEntries(m)})
	drain(t, m, cmd)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m.search.SetValue("char")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drain(t, m, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)

	snap, ok := session.NewManager(store, session.OthersStateKey).Restore()
	require.True(t, ok)
	require.NotNil(t, snap.Query)
	assert.Equal(t, "char", *snap.Query)
}

func TestSessionRestoredOnCatalogLoad(t *testing.T) {
	backend := newFakeBackend()
	store := storage.NewMemoryStore()
	favs := favorites.NewStore(store)
	favs.Init()
	mgr := session.NewManager(store, session.OthersStateKey)
	mgr.Save(session.FromFilterState(listing.FilterState{Query: "squi", Page: 0}, 0, "en"))

	resolver := listing.NewResolver(backend, listing.WithPageSize(2))
	m := NewModel(backend, nil, resolver, favs, mgr, locale.NewStore(store))

	_, cmd := m.Update(catalogLoadedMsg{entries: backend.entries})
	drain(t, m, cmd)

	assert.Equal(t, "squi", m.state.Query)
	require.Len(t, m.result.Displayed, 1)
	assert.Equal(t, 3, m.result.Displayed[0].ID)
}

func TestIDQueryNormalizedBeforeResolution(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(catalogLoadedMsg{entries: mustEntries(m)})
	drain(t, m, cmd)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m.search.SetValue("003")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drain(t, m, cmd)

	require.Len(t, m.result.Displayed, 1)
	assert.Equal(t, 3, m.result.Displayed[0].ID)
}
