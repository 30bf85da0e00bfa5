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
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <first> <second>",
	Short: "Compare the base stats of two Pokémon",
	Long: `Compare the base stats of two Pokémon.

USAGE:
    pokedex compare [OPTIONS] <first> <second>

Both arguments accept a Pokédex number or a slug name.

OPTIONS:
    --lang <code>    Display language (default: persisted choice)
    -h, --help       Show this help

EXAMPLES:
    pokedex compare 6 9
    pokedex compare pikachu raichu`,
	Args: cobra.ExactArgs(2),
	Run:  runCompare,
}

var compareLang string

// compareOutputWriter is the writer used by runCompare. Can be changed for testing.
var compareOutputWriter io.Writer = os.Stdout

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareLang, "lang", "", "Display language")
}

func runCompare(cmd *cobra.Command, args []string) {
	a, err := newAppFunc()
	if err != nil {
		colors.Error(err.Error())
		return
	}
	defer a.Close()

	ctx := context.Background()
	lang := a.lang(compareLang)

	first, err := fetchByIDOrName(ctx, a, args[0])
	if err != nil {
		colors.Error("fetching " + args[0] + ": " + err.Error())
		return
	}
	second, err := fetchByIDOrName(ctx, a, args[1])
	if err != nil {
		colors.Error("fetching " + args[1] + ": " + err.Error())
		return
	}

	w := compareOutputWriter
	fmt.Fprintf(w, "%-10s %14s %14s\n", "", first.Name(lang), second.Name(lang))
	rows := []struct {
		label string
		a, b  int
	}{
		{"HP", first.Stats.HP, second.Stats.HP},
		{"Attack", first.Stats.Attack, second.Stats.Attack},
		{"Defense", first.Stats.Defense, second.Stats.Defense},
		{"Sp. Atk", first.Stats.SpecialAttack, second.Stats.SpecialAttack},
		{"Sp. Def", first.Stats.SpecialDefense, second.Stats.SpecialDefense},
		{"Speed", first.Stats.Speed, second.Stats.Speed},
	}
	totalA, totalB := 0, 0
	for _, row := range rows {
		totalA += row.a
		totalB += row.b
		fmt.Fprintf(w, "%-10s %14s %14s\n", row.label, markHigher(row.a, row.b), markHigher(row.b, row.a))
	}
	fmt.Fprintf(w, "%-10s %14d %14d\n", "Total", totalA, totalB)
}

// markHigher renders a stat value, flagging it when it beats the other side.
func markHigher(value, other int) string {
	if value > other {
		return fmt.Sprintf("%d %s", value, "✓")
	}
	return fmt.Sprintf("%d", value)
}
