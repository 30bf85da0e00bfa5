/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pokedex-cli/internal/colors"
	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
)

// favoriteCmd represents the favorite command
var favoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a Pokémon as favourite",
	Long: `Toggle a Pokémon as favourite.

USAGE:
    pokedex favorite <id>

Adds the Pokédex number to the favourites, or removes it when already
present.`,
	Args: cobra.ExactArgs(1),
	Run:  runFavorite,
}

func init() {
	rootCmd.AddCommand(favoriteCmd)
}

func runFavorite(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		colors.Error("'favorite' requires a positive Pokédex number")
		return
	}

	a, err := newAppFunc()
	if err != nil {
		colors.Error(err.Error())
		return
	}
	defer a.Close()

	on, err := a.favorites.Toggle(id)
	if err != nil {
		colors.Error("updating favourites: " + err.Error())
		return
	}
	if on {
		colors.Success("Added " + pokemon.FormatID(id) + " to favourites")
	} else {
		colors.Info("Removed " + pokemon.FormatID(id) + " from favourites")
	}
}
