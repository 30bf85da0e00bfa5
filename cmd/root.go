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

	"github.com/cristianoliveira/pokedex-cli/internal/config"
	"github.com/cristianoliveira/pokedex-cli/internal/logging"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "A Pokédex for your terminal.",
	Long:  `A Pokédex for your terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if err := logging.InitGlobal(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = GetVersion()

	// Hide the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printHelpText(cmd)
	})
}

func printHelpText(cmd *cobra.Command) {
	// Order of commands in help output
	commandOrder := []string{
		"browse",
		"list",
		"show",
		"search",
		"favorite",
		"favorites",
		"compare",
		"locale",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Root().Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`pokedex v%s

A Pokédex for your terminal.

USAGE:
    pokedex [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
`, GetVersion(), strings.Join(cmdLines, "\n"))
	fmt.Fprint(helpOutputWriter, helpText)
}

// helpOutputWriter is the writer used by printHelpText. Can be changed for testing.
var helpOutputWriter io.Writer = os.Stdout
