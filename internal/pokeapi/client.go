// Package pokeapi implements the remote data client for the upstream
// creature-database REST API. It translates the raw API shapes into the
// canonical pokemon types and applies defensive fallbacks.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/cristianoliveira/pokedex-cli/internal/logging"
	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
)

// listingLimit bounds the full-catalog request. The catalog is assumed to
// stay well under this (currently ~1300 entries).
const listingLimit = 10000

// DefaultBaseURL is the public upstream API.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// DefaultPlaceholderImage is used when a detail record carries no sprite
// at all.
const DefaultPlaceholderImage = "/pokeball.webp"

// Client fetches from the upstream API. It keeps a single in-memory copy
// of the full catalog listing for the lifetime of the session; everything
// else is fetched fresh per call.
type Client struct {
	baseURL     string
	placeholder string
	httpClient  *http.Client
	logger      logging.Logger

	mu      sync.Mutex
	listing []pokemon.ListingEntry // session cache, never invalidated
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithPlaceholderImage overrides the image used when no sprite resolves.
func WithPlaceholderImage(path string) Option {
	return func(c *Client) { c.placeholder = path }
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client against the given base URL. An empty base URL
// selects the public upstream API.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		placeholder: DefaultPlaceholderImage,
		httpClient:  http.DefaultClient,
		logger:      logging.GetGlobal(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fetchJSON issues a GET and decodes the response body into out. Any
// transport failure or non-success status yields a NetworkError.
func (c *Client) fetchJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &NetworkError{URL: url, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	return nil
}

// FetchListing returns the full unpaginated catalog as lightweight entries.
// The result is cached in memory for the lifetime of the session; names
// here are un-localized slugs, so the cache is locale-independent.
func (c *Client) FetchListing(ctx context.Context) ([]pokemon.ListingEntry, error) {
	c.mu.Lock()
	cached := c.listing
	c.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	var result listResult
	url := fmt.Sprintf("%s/pokemon?limit=%d", c.baseURL, listingLimit)
	if err := c.fetchJSON(ctx, url, &result); err != nil {
		return nil, err
	}

	entries := make([]pokemon.ListingEntry, 0, len(result.Results))
	for _, r := range result.Results {
		entries = append(entries, pokemon.ListingEntry{Name: r.Name, URL: r.URL})
	}

	c.mu.Lock()
	// A concurrent fetch may have won; either copy is equally valid.
	if c.listing == nil {
		c.listing = entries
	}
	entries = c.listing
	c.mu.Unlock()

	c.logger.Debug("catalog listing fetched", "count", len(entries))
	return entries, nil
}

// FetchDetails fetches the detail record behind a listing entry URL.
func (c *Client) FetchDetails(ctx context.Context, url string) (pokemon.Pokemon, error) {
	return c.fetchDetails(ctx, url)
}

// FetchDetailsByID fetches the detail record for a Pokédex number.
func (c *Client) FetchDetailsByID(ctx context.Context, id int) (pokemon.Pokemon, error) {
	return c.fetchDetails(ctx, fmt.Sprintf("%s/pokemon/%d", c.baseURL, id))
}

// FetchDetailsByName fetches the detail record for a slug name.
func (c *Client) FetchDetailsByName(ctx context.Context, name string) (pokemon.Pokemon, error) {
	return c.fetchDetails(ctx, fmt.Sprintf("%s/pokemon/%s", c.baseURL, strings.ToLower(strings.TrimSpace(name))))
}

func (c *Client) fetchDetails(ctx context.Context, url string) (pokemon.Pokemon, error) {
	var raw rawPokemon
	if err := c.fetchJSON(ctx, url, &raw); err != nil {
		return pokemon.Pokemon{}, err
	}

	// The species resource carries localized names and the evolution
	// chain. Its failure is a soft-fail: partial data beats aborting.
	names := pokemon.LocalizedNames{}
	evolutionChainURL := ""
	var species rawSpecies
	speciesURL := fmt.Sprintf("%s/pokemon-species/%d", c.baseURL, raw.ID)
	if err := c.fetchJSON(ctx, speciesURL, &species); err != nil {
		c.logger.Debug("species lookup failed, falling back to slug name", "id", raw.ID, "err", err)
		names[pokemon.FallbackLocale] = raw.Name
	} else {
		for _, n := range species.Names {
			names[n.Language.Name] = n.Name
		}
		evolutionChainURL = species.EvolutionChain.URL
	}

	types := make([]string, 0, len(raw.Types))
	for _, t := range raw.Types {
		types = append(types, t.Type.Name)
	}
	moves := make([]string, 0, len(raw.Moves))
	for _, m := range raw.Moves {
		moves = append(moves, m.Move.Name)
	}

	return pokemon.Pokemon{
		ID:                raw.ID,
		Height:            raw.Height,
		Weight:            raw.Weight,
		Image:             c.resolveImage(raw),
		Types:             types,
		Moves:             moves,
		Names:             names,
		Stats:             resolveStats(raw),
		EvolutionChainURL: evolutionChainURL,
	}, nil
}

// resolveImage applies the image fallback chain: official artwork, then
// the "home" sprite, then the default sprite, then the local placeholder.
func (c *Client) resolveImage(raw rawPokemon) string {
	if img := raw.Sprites.Other.OfficialArtwork.FrontDefault; img != "" {
		return img
	}
	if img := raw.Sprites.Other.Home.FrontDefault; img != "" {
		return img
	}
	if img := raw.Sprites.FrontDefault; img != "" {
		return img
	}
	return c.placeholder
}

func resolveStats(raw rawPokemon) pokemon.Stats {
	var stats pokemon.Stats
	for _, s := range raw.Stats {
		switch s.Stat.Name {
		case "hp":
			stats.HP = s.BaseStat
		case "attack":
			stats.Attack = s.BaseStat
		case "defense":
			stats.Defense = s.BaseStat
		case "special-attack":
			stats.SpecialAttack = s.BaseStat
		case "special-defense":
			stats.SpecialDefense = s.BaseStat
		case "speed":
			stats.Speed = s.BaseStat
		}
	}
	return stats
}

// FetchByType returns the member list of a single type. Used by the filter
// engine's intersection step; each call is fresh, the upstream offers no
// bulk per-locale shortcut on this axis.
func (c *Client) FetchByType(ctx context.Context, typeID string) ([]pokemon.ListingEntry, error) {
	var raw rawType
	url := fmt.Sprintf("%s/type/%s", c.baseURL, typeID)
	if err := c.fetchJSON(ctx, url, &raw); err != nil {
		return nil, err
	}
	entries := make([]pokemon.ListingEntry, 0, len(raw.Pokemon))
	for _, p := range raw.Pokemon {
		entries = append(entries, pokemon.ListingEntry{Name: p.Pokemon.Name, URL: p.Pokemon.URL})
	}
	return entries, nil
}

// MoveInfo carries the localized labels of a single move.
type MoveInfo struct {
	Name  string
	Names pokemon.LocalizedNames
}

// FetchMove returns localized labels for a move identifier.
func (c *Client) FetchMove(ctx context.Context, name string) (MoveInfo, error) {
	var raw rawMove
	url := fmt.Sprintf("%s/move/%s", c.baseURL, name)
	if err := c.fetchJSON(ctx, url, &raw); err != nil {
		return MoveInfo{}, err
	}
	info := MoveInfo{Name: raw.Name, Names: pokemon.LocalizedNames{}}
	for _, n := range raw.Names {
		info.Names[n.Language.Name] = n.Name
	}
	return info, nil
}

// FetchEvolutionChain resolves an evolution-chain resource URL into the
// ordered sequence of species slugs, walking the first branch at each link.
func (c *Client) FetchEvolutionChain(ctx context.Context, url string) ([]string, error) {
	var raw rawEvolutionChain
	if err := c.fetchJSON(ctx, url, &raw); err != nil {
		return nil, err
	}
	var chain []string
	link := &raw.Chain
	for link != nil {
		if link.Species.Name != "" {
			chain = append(chain, link.Species.Name)
		}
		if len(link.EvolvesTo) == 0 {
			break
		}
		link = &link.EvolvesTo[0]
	}
	return chain, nil
}
