package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cristianoliveira/pokedex-cli/internal/logging"
	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
)

// DefaultPageSize is the number of entries hydrated per page.
const DefaultPageSize = 100

// ErrSuperseded is returned when a resolution loses to a newer one. The
// caller must discard the result instead of committing it.
var ErrSuperseded = errors.New("listing: resolution superseded")

// FilterResolutionError reports a failed per-type fetch during the
// intersection stage. Partial type data would silently produce a too-broad
// result set, so the whole stage aborts instead of degrading.
type FilterResolutionError struct {
	TypeID string
	Err    error
}

func (e *FilterResolutionError) Error() string {
	return fmt.Sprintf("type filter failed for %q: %v", e.TypeID, e.Err)
}

func (e *FilterResolutionError) Unwrap() error { return e.Err }

// RemoteClient is the subset of the remote data client the resolver needs.
type RemoteClient interface {
	FetchByType(ctx context.Context, typeID string) ([]pokemon.ListingEntry, error)
	FetchDetails(ctx context.Context, url string) (pokemon.Pokemon, error)
}

// Result is one resolved page.
type Result struct {
	// Displayed holds the hydrated records of the current page, in
	// catalog order.
	Displayed []pokemon.Pokemon
	// TotalItems is the size of the filtered set before pagination.
	TotalItems int
	// TotalPages is ceil(TotalItems / pageSize).
	TotalPages int
	// Page echoes the requested page index.
	Page int
}

// Resolver runs the global-catalog pipeline: name/ID filter, type
// intersection, pagination, page hydration. It does not reset the page
// index on filter changes; callers decide, which keeps the session-replay
// "keep page on restore" behaviour possible.
type Resolver struct {
	client   RemoteClient
	pageSize int
	logger   logging.Logger

	gen atomic.Uint64

	// Optional session-scoped memo of per-type member lists. Off by
	// default: every filter change then re-fetches, matching the
	// always-fresh behaviour of the type endpoint.
	memoTypes bool
	memoMu    sync.Mutex
	typeMemo  map[string][]pokemon.ListingEntry
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithPageSize overrides the page size.
func WithPageSize(n int) ResolverOption {
	return func(r *Resolver) {
		if n > 0 {
			r.pageSize = n
		}
	}
}

// WithTypeMemo caches per-type member lists for the session, trading
// freshness for one request per type instead of one per filter change.
func WithTypeMemo() ResolverOption {
	return func(r *Resolver) {
		r.memoTypes = true
		r.typeMemo = make(map[string][]pokemon.ListingEntry)
	}
}

// WithResolverLogger sets the structured logger.
func WithResolverLogger(l logging.Logger) ResolverOption {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver creates a resolver over the remote client.
func NewResolver(client RemoteClient, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		client:   client,
		pageSize: DefaultPageSize,
		logger:   logging.GetGlobal(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// PageSize returns the configured page size.
func (r *Resolver) PageSize() int { return r.pageSize }

// Token identifies one resolution. Starting a new resolution supersedes
// every token handed out before it.
type Token struct {
	gen      uint64
	resolver *Resolver
}

// NewToken supersedes all outstanding resolutions and returns the token
// for the next one. Call it before every Resolve, and once more on
// view teardown so in-flight work cannot commit.
func (r *Resolver) NewToken() Token {
	return Token{gen: r.gen.Add(1), resolver: r}
}

// Cancel supersedes this token without starting a new resolution.
func (t Token) Cancel() {
	t.resolver.gen.Add(1)
}

// Stale reports whether a newer token exists.
func (t Token) Stale() bool {
	return t.resolver.gen.Load() != t.gen
}

// Resolve runs the pipeline for the given catalog and filter state.
// Stages run strictly in order; each stage's output is the next stage's
// input domain. The token is checked after every suspension point: a
// superseded resolution returns ErrSuperseded instead of a result. An
// empty filtered set is a normal result, not an error.
func (r *Resolver) Resolve(ctx context.Context, token Token, catalog []pokemon.ListingEntry, state FilterState) (Result, error) {
	// Stage 1: name/ID filter, pure and in-memory.
	filtered := filterByNameOrID(catalog, state.Query)

	// Stage 2: type intersection, one request per active type.
	if len(state.ActiveTypes) > 0 {
		counts, err := r.typeOccurrences(ctx, state.ActiveTypes)
		if err != nil {
			return Result{}, err
		}
		if token.Stale() {
			return Result{}, ErrSuperseded
		}
		// A candidate survives only when it appears in every requested
		// type's member list.
		want := len(state.ActiveTypes)
		intersected := make([]pokemon.ListingEntry, 0, len(filtered))
		for _, entry := range filtered {
			if counts[entry.Name] == want {
				intersected = append(intersected, entry)
			}
		}
		filtered = intersected
	}

	// Stage 3: record the total match count.
	totalItems := len(filtered)
	totalPages := (totalItems + r.pageSize - 1) / r.pageSize

	// Stage 4: page slice over the filtered list.
	start := state.Page * r.pageSize
	var pageItems []pokemon.ListingEntry
	if start < len(filtered) {
		end := start + r.pageSize
		if end > len(filtered) {
			end = len(filtered)
		}
		pageItems = filtered[start:end]
	}

	// Stage 5: hydrate only the visible page.
	displayed, err := r.hydrate(ctx, pageItems)
	if err != nil {
		return Result{}, err
	}
	if token.Stale() {
		return Result{}, ErrSuperseded
	}

	r.logger.Debug("listing resolved",
		"query", state.Query, "types", len(state.ActiveTypes),
		"page", state.Page, "total", totalItems)

	return Result{
		Displayed:  displayed,
		TotalItems: totalItems,
		TotalPages: totalPages,
		Page:       state.Page,
	}, nil
}

// filterByNameOrID keeps entries whose resource URL's numeric suffix
// exactly equals the trimmed, lowercased query, or whose slug name
// contains it. An empty query passes everything through.
func filterByNameOrID(catalog []pokemon.ListingEntry, query string) []pokemon.ListingEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return catalog
	}
	filtered := make([]pokemon.ListingEntry, 0, len(catalog))
	for _, entry := range catalog {
		if pokemon.IDFromURL(entry.URL) == q || strings.Contains(entry.Name, q) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// typeOccurrences fetches the member list of every active type
// concurrently and counts slug-name occurrences across the lists. Any
// fetch failure aborts the stage.
func (r *Resolver) typeOccurrences(ctx context.Context, activeTypes []string) (map[string]int, error) {
	lists := make([][]pokemon.ListingEntry, len(activeTypes))
	errs := make([]error, len(activeTypes))

	var wg sync.WaitGroup
	for i, typeID := range activeTypes {
		wg.Add(1)
		go func(i int, typeID string) {
			defer wg.Done()
			lists[i], errs[i] = r.fetchByType(ctx, typeID)
		}(i, typeID)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, &FilterResolutionError{TypeID: activeTypes[i], Err: err}
		}
	}

	counts := make(map[string]int)
	for _, list := range lists {
		for _, entry := range list {
			counts[entry.Name]++
		}
	}
	return counts, nil
}

func (r *Resolver) fetchByType(ctx context.Context, typeID string) ([]pokemon.ListingEntry, error) {
	if r.memoTypes {
		r.memoMu.Lock()
		cached, ok := r.typeMemo[typeID]
		r.memoMu.Unlock()
		if ok {
			return cached, nil
		}
	}
	list, err := r.client.FetchByType(ctx, typeID)
	if err != nil {
		return nil, err
	}
	if r.memoTypes {
		r.memoMu.Lock()
		r.typeMemo[typeID] = list
		r.memoMu.Unlock()
	}
	return list, nil
}

// hydrate fetches the detail record of every page entry concurrently,
// preserving catalog order. The cost of any filter or page change is
// bounded by one page of detail fetches.
func (r *Resolver) hydrate(ctx context.Context, entries []pokemon.ListingEntry) ([]pokemon.Pokemon, error) {
	displayed := make([]pokemon.Pokemon, len(entries))
	errs := make([]error, len(entries))

	var wg sync.WaitGroup
	for i, entry := range entries {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			displayed[i], errs[i] = r.client.FetchDetails(ctx, url)
		}(i, entry.URL)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return displayed, nil
}
