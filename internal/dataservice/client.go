// Package dataservice implements the client for the canonical Pokémon data
// service, which serves locale-aware catalog and type metadata.
package dataservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cristianoliveira/pokedex-cli/internal/config"
	"github.com/cristianoliveira/pokedex-cli/internal/pokeapi"
	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
)

// ConfigurationError indicates a required endpoint is not configured.
// It is fatal to the data operation that needed the endpoint and is caught
// at the same boundary as network errors.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s is not set", e.Key)
}

// Client fetches canonical shapes from the configured endpoints.
type Client struct {
	pokemonsURL string
	typesURL    string
	httpClient  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client against explicit endpoint URLs. Either may be
// empty; the corresponding operation then fails with a ConfigurationError.
func NewClient(pokemonsURL, typesURL string, opts ...Option) *Client {
	c := &Client{
		pokemonsURL: pokemonsURL,
		typesURL:    typesURL,
		httpClient:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig creates a client from the global configuration.
func NewFromConfig(opts ...Option) *Client {
	return NewClient(
		config.Get("pokemons_api", ""),
		config.Get("types_api", ""),
		opts...,
	)
}

// withLang appends the language query parameter to a base URL. Invalid
// base URLs are returned unchanged.
func withLang(base, lang string) string {
	if lang == "" {
		return base
	}
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("lang", lang)
	u.RawQuery = q.Encode()
	return u.String()
}

// fetchJSON issues a GET and decodes the response into out. Failures are
// reported as NetworkError, matching the remote data client.
func (c *Client) fetchJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &pokeapi.NetworkError{URL: rawURL, Err: err}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &pokeapi.NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &pokeapi.NetworkError{URL: rawURL, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &pokeapi.NetworkError{URL: rawURL, Err: err}
	}
	return nil
}

// Pokemons returns the canonical catalog for the given locale.
func (c *Client) Pokemons(ctx context.Context, locale string) ([]pokemon.Pokemon, error) {
	if c.pokemonsURL == "" {
		return nil, &ConfigurationError{Key: "pokemons_api"}
	}
	var result []pokemon.Pokemon
	if err := c.fetchJSON(ctx, withLang(c.pokemonsURL, locale), &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Types returns the per-locale type metadata map. The caller treats the
// map as immutable and replaces it wholesale on locale change.
func (c *Client) Types(ctx context.Context, locale string) (pokemon.TypesMap, error) {
	if c.typesURL == "" {
		return nil, &ConfigurationError{Key: "types_api"}
	}
	var result pokemon.TypesMap
	if err := c.fetchJSON(ctx, withLang(c.typesURL, locale), &result); err != nil {
		return nil, err
	}
	return result, nil
}
