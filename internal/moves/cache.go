// Package moves resolves move slugs into localized display labels with a
// session-lifetime cache. Move labels never change mid-session, so every
// slug is fetched at most once and failures fall back to the slug itself.
package moves

import (
	"context"
	"sync"

	"github.com/cristianoliveira/pokedex-cli/internal/logging"
	"github.com/cristianoliveira/pokedex-cli/internal/pokeapi"
	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
)

// Fetcher is the subset of the remote client the cache needs.
type Fetcher interface {
	FetchMove(ctx context.Context, name string) (pokeapi.MoveInfo, error)
}

// Cache resolves and memoizes move labels. Safe for concurrent use.
type Cache struct {
	fetcher Fetcher
	logger  logging.Logger

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	once  sync.Once
	names pokemon.LocalizedNames
	err   error
}

// NewCache creates a cache over the fetcher.
func NewCache(fetcher Fetcher) *Cache {
	return &Cache{
		fetcher: fetcher,
		logger:  logging.GetGlobal(),
		entries: make(map[string]*entry),
	}
}

// Label returns the move's display label in the given locale, falling
// back to "en" and finally to the slug itself. A failed fetch is not
// cached, so a later call can retry.
func (c *Cache) Label(ctx context.Context, slug, locale string) string {
	names, err := c.names(ctx, slug)
	if err != nil {
		c.logger.Debug("move label fetch failed", "move", slug, "err", err)
		return slug
	}
	if label, ok := names[locale]; ok && label != "" {
		return label
	}
	if label, ok := names[pokemon.FallbackLocale]; ok && label != "" {
		return label
	}
	return slug
}

// Labels resolves a batch of slugs concurrently, preserving order.
func (c *Cache) Labels(ctx context.Context, slugs []string, locale string) []string {
	labels := make([]string, len(slugs))
	var wg sync.WaitGroup
	for i, slug := range slugs {
		wg.Add(1)
		go func(i int, slug string) {
			defer wg.Done()
			labels[i] = c.Label(ctx, slug, locale)
		}(i, slug)
	}
	wg.Wait()
	return labels
}

func (c *Cache) names(ctx context.Context, slug string) (pokemon.LocalizedNames, error) {
	c.mu.Lock()
	e, ok := c.entries[slug]
	if !ok {
		e = &entry{}
		c.entries[slug] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		info, err := c.fetcher.FetchMove(ctx, slug)
		if err != nil {
			e.err = err
			return
		}
		e.names = info.Names
	})

	if e.err != nil {
		// Drop the failed entry so the next lookup retries.
		c.mu.Lock()
		if c.entries[slug] == e {
			delete(c.entries, slug)
		}
		c.mu.Unlock()
		return nil, e.err
	}
	return e.names, nil
}
