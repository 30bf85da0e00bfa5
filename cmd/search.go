/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pokedex-cli/internal/colors"
	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
	"github.com/cristianoliveira/pokedex-cli/internal/search"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog across all languages",
	Long: `Search the catalog across all languages.

USAGE:
    pokedex search [OPTIONS] <query>

The query matches numbers, slug names and localized names in every
indexed language, regardless of the display language.

OPTIONS:
    --limit <n>      Maximum number of results (default: 20)
    -h, --help       Show this help

EXAMPLES:
    pokedex search glumanda     # German name, found from any locale
    pokedex search 151`,
	Args: cobra.ExactArgs(1),
	Run:  runSearch,
}

var searchLimit int

// searchOutputWriter is the writer used by runSearch. Can be changed for testing.
var searchOutputWriter io.Writer = os.Stdout

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "Maximum number of results")
}

func runSearch(cmd *cobra.Command, args []string) {
	a, err := newAppFunc()
	if err != nil {
		colors.Error(err.Error())
		return
	}
	defer a.Close()

	ctx := context.Background()
	query := args[0]

	catalog, err := a.api.FetchListing(ctx)
	if err != nil {
		colors.Error("loading catalog: " + err.Error())
		return
	}

	index := search.NewIndex(search.NewServiceSource(a.data))

	shown := 0
	for _, entry := range catalog {
		id, err := strconv.Atoi(pokemon.IDFromURL(entry.URL))
		if err != nil {
			continue
		}
		if !index.Matches(id, query, entry.Name) {
			continue
		}
		fmt.Fprintf(searchOutputWriter, "%s  %s\n", pokemon.FormatID(id), entry.Name)
		shown++
		if shown >= searchLimit {
			break
		}
	}
	if shown == 0 {
		fmt.Fprintf(searchOutputWriter, "No results for %q.\n", query)
	}
}
