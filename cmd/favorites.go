/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pokedex-cli/internal/colors"
	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
)

// favoritesCmd represents the favorites command
var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favourite Pokémon",
	Long: `List favourite Pokémon.

USAGE:
    pokedex favorites [OPTIONS]

OPTIONS:
    --lang <code>    Display language (default: persisted choice)
    --ids            Print only the Pokédex numbers
    -h, --help       Show this help`,
	Run: runFavorites,
}

var (
	favoritesLang string
	favoritesIDs  bool
)

// favoritesOutputWriter is the writer used by runFavorites. Can be changed for testing.
var favoritesOutputWriter io.Writer = os.Stdout

func init() {
	rootCmd.AddCommand(favoritesCmd)

	favoritesCmd.Flags().StringVar(&favoritesLang, "lang", "", "Display language")
	favoritesCmd.Flags().BoolVar(&favoritesIDs, "ids", false, "Print only the Pokédex numbers")
}

func runFavorites(cmd *cobra.Command, args []string) {
	a, err := newAppFunc()
	if err != nil {
		colors.Error(err.Error())
		return
	}
	defer a.Close()

	ids, err := a.favorites.List()
	if err != nil {
		colors.Error("loading favourites: " + err.Error())
		return
	}
	if len(ids) == 0 {
		fmt.Fprintln(favoritesOutputWriter, "No favourites yet.")
		return
	}

	if favoritesIDs {
		for _, id := range ids {
			fmt.Fprintln(favoritesOutputWriter, id)
		}
		return
	}

	ctx := context.Background()
	lang := a.lang(favoritesLang)
	for _, id := range ids {
		p, err := a.api.FetchDetailsByID(ctx, id)
		if err != nil {
			// Still list the entry; the name just degrades to the number.
			fmt.Fprintf(favoritesOutputWriter, "%s  (unavailable)\n", pokemon.FormatID(id))
			continue
		}
		fmt.Fprintf(favoritesOutputWriter, "%s  %s\n", pokemon.FormatID(id), p.Name(lang))
	}
}
