package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/pokedex-cli/internal/favorites"
	"github.com/cristianoliveira/pokedex-cli/internal/listing"
	"github.com/cristianoliveira/pokedex-cli/internal/locale"
	"github.com/cristianoliveira/pokedex-cli/internal/logging"
	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
	"github.com/cristianoliveira/pokedex-cli/internal/session"
)

// CatalogClient provides the unpaginated catalog.
type CatalogClient interface {
	FetchListing(ctx context.Context) ([]pokemon.ListingEntry, error)
}

// TypeCatalog provides type metadata. Optional; without it the type bar
// shows raw identifiers without colours.
type TypeCatalog interface {
	Types(ctx context.Context, locale string) (pokemon.TypesMap, error)
}

// Model is the bubbletea model of the browser view.
type Model struct {
	client    CatalogClient
	typeStore TypeCatalog
	resolver  *listing.Resolver
	favorites *favorites.Store
	session   *session.Manager
	locales   *locale.Store
	logger    logging.Logger

	catalog   []pokemon.ListingEntry
	types     pokemon.TypesMap
	typeOrder []string

	state  listing.FilterState
	token  listing.Token
	result listing.Result
	lang   string

	search textinput.Model
	pager  paginator.Model
	spin   spinner.Model

	cursor     int
	typeCursor int
	typeMode   bool
	loading    bool
	scroll     session.ScrollRestorer

	width, height int
	err           error
	quitting      bool
}

// NewModel wires the browser over its collaborators. typeStore may be nil.
func NewModel(client CatalogClient, typeStore TypeCatalog, resolver *listing.Resolver, favs *favorites.Store, sess *session.Manager, locales *locale.Store) *Model {
	search := textinput.New()
	search.Placeholder = "name, number or type"
	search.CharLimit = 64

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = resolver.PageSize()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	return &Model{
		client:    client,
		typeStore: typeStore,
		resolver:  resolver,
		favorites: favs,
		session:   sess,
		locales:   locales,
		logger:    logging.GetGlobal(),
		lang:      locales.Current(),
		search:    search,
		pager:     pager,
		spin:      spin,
		loading:   true,
	}
}

// Init starts the catalog and type metadata fetches.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCatalogCmd(), m.loadTypesCmd())
}

func (m *Model) loadCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.client.FetchListing(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return catalogLoadedMsg{entries: entries}
	}
}

func (m *Model) loadTypesCmd() tea.Cmd {
	if m.typeStore == nil {
		return nil
	}
	lang := m.lang
	return func() tea.Msg {
		types, err := m.typeStore.Types(context.Background(), lang)
		if err != nil {
			// The browser works without type metadata, so this only
			// degrades the type bar.
			return typesLoadedMsg{types: pokemon.TypesMap{}}
		}
		return typesLoadedMsg{types: types}
	}
}

// resolveCmd starts a resolution for the current filter state. Any
// resolution still in flight is superseded by the fresh token.
func (m *Model) resolveCmd() tea.Cmd {
	m.loading = true
	m.token = m.resolver.NewToken()
	token := m.token
	catalog := m.catalog
	state := m.normalizedState()
	return func() tea.Msg {
		res, err := m.resolver.Resolve(context.Background(), token, catalog, state)
		if errors.Is(err, listing.ErrSuperseded) {
			return nil
		}
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return pageResolvedMsg{result: res}
	}
}

// normalizedState applies ID-query normalization before resolution.
func (m *Model) normalizedState() listing.FilterState {
	state := m.state
	if q, ok := pokemon.NormalizeIDQuery(state.Query); ok {
		state.Query = q
	}
	return state
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case catalogLoadedMsg:
		m.catalog = msg.entries
		m.restoreSession()
		return m, m.resolveCmd()
	case typesLoadedMsg:
		m.types = msg.types
		m.typeOrder = sortedTypeIDs(msg.types)
		return m, nil
	case pageResolvedMsg:
		return m.handleResolved(msg)
	case loadFailedMsg:
		m.loading = false
		m.err = msg.err
		return m, nil
	case favoriteToggledMsg:
		return m, nil
	case localeChangedMsg:
		m.lang = msg.lang
		return m, m.loadTypesCmd()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleResolved(msg pageResolvedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.err = nil
	m.result = msg.result
	if msg.result.TotalPages > 0 {
		m.pager.SetTotalPages(msg.result.TotalItems)
		m.pager.Page = msg.result.Page
	}
	if y, ok := m.scroll.Take(); ok {
		m.cursor = y
	}
	if max := len(msg.result.Displayed) - 1; m.cursor > max {
		if max < 0 {
			max = 0
		}
		m.cursor = max
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}
	if m.typeMode {
		return m.handleTypeKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m.teardown()
	case "/":
		m.search.SetValue(m.state.Query)
		return m, m.search.Focus()
	case "t":
		if len(m.typeOrder) > 0 {
			m.typeMode = true
		}
		return m, nil
	case "f":
		return m.toggleFavorite()
	case "l":
		return m.cycleLanguage()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.result.Displayed)-1 {
			m.cursor++
		}
		return m, nil
	case "left", "h":
		if m.state.Page > 0 {
			m.state.Page--
			m.saveSession()
			return m, m.resolveCmd()
		}
		return m, nil
	case "right", "L":
		if m.state.Page < m.result.TotalPages-1 {
			m.state.Page++
			m.saveSession()
			return m, m.resolveCmd()
		}
		return m, nil
	case "c":
		m.state = m.state.Clear()
		m.saveSession()
		return m, m.resolveCmd()
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		m.state.Query = strings.TrimSpace(m.search.Value())
		m.state.Page = 0
		m.saveSession()
		return m, m.resolveCmd()
	case "esc":
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) handleTypeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "t":
		m.typeMode = false
		return m, nil
	case "left", "h":
		if m.typeCursor > 0 {
			m.typeCursor--
		}
		return m, nil
	case "right", "l":
		if m.typeCursor < len(m.typeOrder)-1 {
			m.typeCursor++
		}
		return m, nil
	case "enter", " ":
		m.state = m.state.ToggleType(m.typeOrder[m.typeCursor])
		m.state.Page = 0
		m.saveSession()
		return m, m.resolveCmd()
	}
	return m, nil
}

func (m *Model) toggleFavorite() (tea.Model, tea.Cmd) {
	selected, ok := m.selected()
	if !ok {
		return m, nil
	}
	on, err := m.favorites.Toggle(selected.ID)
	if err != nil {
		m.err = err
		return m, nil
	}
	return m, func() tea.Msg {
		return favoriteToggledMsg{id: selected.ID, favorite: on}
	}
}

func (m *Model) cycleLanguage() (tea.Model, tea.Cmd) {
	next := nextLocale(m.lang)
	if err := m.locales.Set(next); err != nil {
		m.err = err
		return m, nil
	}
	m.saveSession()
	return m, func() tea.Msg { return localeChangedMsg{lang: next} }
}

// teardown persists the session and supersedes in-flight work before
// quitting, so a late resolution cannot commit into a dead view.
func (m *Model) teardown() (tea.Model, tea.Cmd) {
	m.saveSession()
	m.token.Cancel()
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) saveSession() {
	m.session.Save(session.FromFilterState(m.state, m.cursor, m.lang))
}

func (m *Model) restoreSession() {
	snap, ok := m.session.Restore()
	if !ok {
		return
	}
	m.state = snap.Apply(m.state)
	if snap.ScrollY != nil {
		m.scroll.SetPending(*snap.ScrollY)
	}
}

func (m *Model) selected() (pokemon.Pokemon, bool) {
	if m.cursor < 0 || m.cursor >= len(m.result.Displayed) {
		return pokemon.Pokemon{}, false
	}
	return m.result.Displayed[m.cursor], true
}

// View renders the full screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Pokédex"))
	fmt.Fprintf(&b, "  %s\n\n", dimStyle.Render(m.lang))

	if m.search.Focused() {
		b.WriteString(m.search.View() + "\n")
	} else if m.state.Query != "" {
		fmt.Fprintf(&b, "search: %s\n", m.state.Query)
	}

	if len(m.typeOrder) > 0 {
		b.WriteString(m.typeBarView() + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		fmt.Fprintf(&b, "error: %v\n", m.err)
	case m.loading:
		fmt.Fprintf(&b, "%s loading…\n", m.spin.View())
	case len(m.result.Displayed) == 0:
		b.WriteString(dimStyle.Render("no Pokémon match the current filters") + "\n")
	default:
		for i, p := range m.result.Displayed {
			fav := false
			if on, err := m.favorites.IsFavorite(p.ID); err == nil {
				fav = on
			}
			b.WriteString(renderRow(p, m.types, m.lang, i == m.cursor, fav) + "\n")
		}
		if p, ok := m.selected(); ok {
			b.WriteString("\n" + renderStats(p))
		}
	}

	if m.result.TotalPages > 1 {
		fmt.Fprintf(&b, "\npage %d/%d  %s\n", m.result.Page+1, m.result.TotalPages, m.pager.View())
	}
	b.WriteString("\n" + renderFooter(m.search.Focused()))
	return b.String()
}

func (m *Model) typeBarView() string {
	bar := renderTypeBar(m.types, m.typeOrder, m.state.ActiveTypes, m.lang)
	if m.typeMode {
		cursor := m.typeOrder[m.typeCursor]
		return bar + "  " + dimStyle.Render("selecting: "+cursor)
	}
	return bar
}

// Run starts the interactive browser.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func sortedTypeIDs(types pokemon.TypesMap) []string {
	ids := make([]string, 0, len(types))
	for id := range types {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func nextLocale(current string) string {
	for i, l := range pokemon.SupportedLocales {
		if l == current {
			return pokemon.SupportedLocales[(i+1)%len(pokemon.SupportedLocales)]
		}
	}
	return pokemon.DefaultLocale
}
