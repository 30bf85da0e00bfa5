/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pokedex-cli/internal/colors"
	"github.com/cristianoliveira/pokedex-cli/internal/listing"
	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List Pokémon from the curated catalog",
	Long: `List Pokémon from the curated catalog.

USAGE:
    pokedex list [OPTIONS]

OPTIONS:
    --query <text>       Filter by name, number or type label
    --type <id>          Require a type (repeatable, all must match)
    --lang <code>        Display language (default: persisted choice)
    --format <format>    Output format: table, json (default: table)
    -h, --help           Show this help

EXAMPLES:
    pokedex list --type fire --type flying
    pokedex list --query drago --lang fr`,
	Run: runList,
}

var (
	listQuery  string
	listTypes  []string
	listLang   string
	listFormat string
)

// listOutputWriter is the writer used by runList. Can be changed for testing.
var listOutputWriter io.Writer = os.Stdout

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listQuery, "query", "", "Filter by name, number or type label")
	listCmd.Flags().StringArrayVar(&listTypes, "type", nil, "Require a type (repeatable)")
	listCmd.Flags().StringVar(&listLang, "lang", "", "Display language")
	listCmd.Flags().StringVar(&listFormat, "format", "table", "Output format: table, json")
}

func runList(cmd *cobra.Command, args []string) {
	a, err := newAppFunc()
	if err != nil {
		colors.Error(err.Error())
		return
	}
	defer a.Close()

	ctx := context.Background()
	lang := a.lang(listLang)

	records, err := a.data.Pokemons(ctx, lang)
	if err != nil {
		colors.Error("loading catalog: " + err.Error())
		return
	}
	types, err := a.data.Types(ctx, lang)
	if err != nil {
		colors.Warning("type metadata unavailable: " + err.Error())
		types = pokemon.TypesMap{}
	}

	state := listing.FilterState{Query: listQuery, ActiveTypes: listTypes}
	matched := listing.FilterLocal(records, types, lang, state)

	if listFormat == "json" {
		enc := json.NewEncoder(listOutputWriter)
		enc.SetIndent("", "  ")
		if err := enc.Encode(matched); err != nil {
			colors.Error("encoding output: " + err.Error())
		}
		return
	}

	for _, p := range matched {
		labels := make([]string, 0, len(p.Types))
		for _, t := range p.Types {
			labels = append(labels, types[t].Label(t, lang))
		}
		fmt.Fprintf(listOutputWriter, "%s  %-20s %s\n", pokemon.FormatID(p.ID), p.Name(lang), strings.Join(labels, ", "))
	}
	if len(matched) == 0 {
		fmt.Fprintln(listOutputWriter, "No Pokémon match the given filters.")
	}
}
