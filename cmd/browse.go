/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pokedex-cli/internal/colors"
	"github.com/cristianoliveira/pokedex-cli/internal/tui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the full Pokédex interactively",
	Long: `Browse the full Pokédex interactively.

USAGE:
    pokedex browse

Search by name or number, filter by type, page through results and mark
favourites. The view reopens where you left off.`,
	Run: runBrowse,
}

// runBrowseFunc starts the interactive program. Can be changed for testing.
var runBrowseFunc = tui.Run

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) {
	a, err := newAppFunc()
	if err != nil {
		colors.Error(err.Error())
		return
	}
	defer a.Close()

	model := tui.NewModel(a.api, a.data, a.resolver, a.favorites, a.session, a.locales)
	if err := runBrowseFunc(model); err != nil {
		colors.Error("browser exited with error: " + err.Error())
	}
}
