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
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pokedex-cli/internal/colors"
	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <id-or-name>",
	Short: "Show one Pokémon in detail",
	Long: `Show one Pokémon in detail.

USAGE:
    pokedex show [OPTIONS] <id-or-name>

OPTIONS:
    --lang <code>     Display language (default: persisted choice)
    --moves <n>       Number of moves to list (default: 5, 0 hides them)
    -h, --help        Show this help

EXAMPLES:
    pokedex show 25
    pokedex show charizard --lang fr`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

var (
	showLang  string
	showMoves int
)

// showOutputWriter is the writer used by runShow. Can be changed for testing.
var showOutputWriter io.Writer = os.Stdout

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVar(&showLang, "lang", "", "Display language")
	showCmd.Flags().IntVar(&showMoves, "moves", 5, "Number of moves to list")
}

func runShow(cmd *cobra.Command, args []string) {
	a, err := newAppFunc()
	if err != nil {
		colors.Error(err.Error())
		return
	}
	defer a.Close()

	ctx := context.Background()
	lang := a.lang(showLang)

	p, err := fetchByIDOrName(ctx, a, args[0])
	if err != nil {
		colors.Error("fetching Pokémon: " + err.Error())
		return
	}

	types, typesErr := a.data.Types(ctx, lang)
	if typesErr != nil {
		types = pokemon.TypesMap{}
	}

	w := showOutputWriter
	fmt.Fprintf(w, "%s %s\n", pokemon.FormatID(p.ID), p.Name(lang))
	labels := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		labels = append(labels, types[t].Label(t, lang))
	}
	fmt.Fprintf(w, "Types:   %s\n", strings.Join(labels, ", "))
	fmt.Fprintf(w, "Height:  %.1f m\n", float64(p.Height)/10)
	fmt.Fprintf(w, "Weight:  %.1f kg\n", float64(p.Weight)/10)
	fmt.Fprintf(w, "Image:   %s\n", p.Image)
	fmt.Fprintln(w, "Stats:")
	fmt.Fprintf(w, "  HP %d  Atk %d  Def %d  SpA %d  SpD %d  Spe %d\n",
		p.Stats.HP, p.Stats.Attack, p.Stats.Defense,
		p.Stats.SpecialAttack, p.Stats.SpecialDefense, p.Stats.Speed)

	if showMoves > 0 && len(p.Moves) > 0 {
		slugs := p.Moves
		if len(slugs) > showMoves {
			slugs = slugs[:showMoves]
		}
		fmt.Fprintf(w, "Moves:   %s\n", strings.Join(a.moves.Labels(ctx, slugs, lang), ", "))
	}

	if p.EvolutionChainURL != "" {
		if chain, err := a.api.FetchEvolutionChain(ctx, p.EvolutionChainURL); err == nil && len(chain) > 1 {
			fmt.Fprintf(w, "Evolves: %s\n", strings.Join(chain, " → "))
		}
	}

	if fav, err := a.favorites.IsFavorite(p.ID); err == nil && fav {
		fmt.Fprintln(w, "Marked as favourite "+colors.Red+"♥"+colors.Reset)
	}
}

// fetchByIDOrName resolves a numeric argument as a Pokédex number and
// anything else as a slug name.
func fetchByIDOrName(ctx context.Context, a *app, arg string) (pokemon.Pokemon, error) {
	if q, ok := pokemon.NormalizeIDQuery(arg); ok && q != "" {
		id, err := strconv.Atoi(q)
		if err == nil {
			return a.api.FetchDetailsByID(ctx, id)
		}
	}
	return a.api.FetchDetailsByName(ctx, arg)
}
