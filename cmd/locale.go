/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pokedex-cli/internal/colors"
	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
)

// localeCmd represents the locale command
var localeCmd = &cobra.Command{
	Use:   "locale [code]",
	Short: "Show or change the display language",
	Long: `Show or change the display language.

USAGE:
    pokedex locale           # print the current language
    pokedex locale <code>    # switch and persist the language

Supported codes: ` + strings.Join(pokemon.SupportedLocales, ", "),
	Args: cobra.MaximumNArgs(1),
	Run:  runLocale,
}

// localeOutputWriter is the writer used by runLocale. Can be changed for testing.
var localeOutputWriter io.Writer = os.Stdout

func init() {
	rootCmd.AddCommand(localeCmd)
}

func runLocale(cmd *cobra.Command, args []string) {
	a, err := newAppFunc()
	if err != nil {
		colors.Error(err.Error())
		return
	}
	defer a.Close()

	if len(args) == 0 {
		fmt.Fprintln(localeOutputWriter, a.locales.Current())
		return
	}

	if err := a.locales.Set(args[0]); err != nil {
		colors.Error(err.Error())
		return
	}
	colors.Success("Display language set to " + args[0])
}
