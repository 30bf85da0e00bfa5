/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/cristianoliveira/pokedex-cli/internal/config"
	"github.com/cristianoliveira/pokedex-cli/internal/dataservice"
	"github.com/cristianoliveira/pokedex-cli/internal/favorites"
	"github.com/cristianoliveira/pokedex-cli/internal/listing"
	"github.com/cristianoliveira/pokedex-cli/internal/locale"
	"github.com/cristianoliveira/pokedex-cli/internal/moves"
	"github.com/cristianoliveira/pokedex-cli/internal/pokeapi"
	"github.com/cristianoliveira/pokedex-cli/internal/session"
	"github.com/cristianoliveira/pokedex-cli/internal/storage"
)

// app bundles the wired collaborators every command draws from.
type app struct {
	store     storage.Store
	api       *pokeapi.Client
	data      *dataservice.Client
	resolver  *listing.Resolver
	favorites *favorites.Store
	locales   *locale.Store
	session   *session.Manager
	moves     *moves.Cache
}

// newAppFunc builds the command dependencies. Can be changed for testing.
var newAppFunc = buildApp

func buildApp() (*app, error) {
	store, err := storage.NewFromConfig()
	if err != nil {
		return nil, fmt.Errorf("opening state storage: %w", err)
	}

	api := pokeapi.NewClient(
		config.Get("api_base_url", pokeapi.DefaultBaseURL),
		pokeapi.WithPlaceholderImage(config.Get("placeholder_image", pokeapi.DefaultPlaceholderImage)),
	)

	favs := favorites.NewStore(store)
	favs.Init()

	locales := locale.NewStore(store)

	resolverOpts := []listing.ResolverOption{
		listing.WithPageSize(config.GetInt("page_size", listing.DefaultPageSize)),
	}
	if config.GetBool("type_memo", false) {
		resolverOpts = append(resolverOpts, listing.WithTypeMemo())
	}

	return &app{
		store:     store,
		api:       api,
		data:      dataservice.NewFromConfig(),
		resolver:  listing.NewResolver(api, resolverOpts...),
		favorites: favs,
		locales:   locales,
		session:   session.NewManager(store, session.OthersStateKey),
		moves:     moves.NewCache(api),
	}, nil
}

func (a *app) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}

// lang returns the effective language: the --lang flag when set,
// otherwise the persisted choice.
func (a *app) lang(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return a.locales.Current()
}
