/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pokedex-cli/internal/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show version information.

USAGE:
    pokedex version`,
	Run: func(cmd *cobra.Command, args []string) {
		PrintVersion()
	},
}

// versionOutputWriter is the writer used by PrintVersion. Can be changed for testing.
var versionOutputWriter io.Writer = os.Stdout

// GetVersion returns the current version string.
func GetVersion() string {
	return version.String()
}

// PrintVersion prints the version to the configured writer.
func PrintVersion() {
	fmt.Fprintf(versionOutputWriter, "pokedex v%s\n", GetVersion())
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
