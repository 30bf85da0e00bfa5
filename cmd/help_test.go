package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintHelpText(t *testing.T) {
	origWriter := helpOutputWriter
	defer func() { helpOutputWriter = origWriter }()

	var buf bytes.Buffer
	helpOutputWriter = &buf
	printHelpText(rootCmd)

	out := buf.String()
	for _, want := range []string{
		"pokedex v",
		"USAGE:",
		"COMMANDS:",
		"browse",
		"list",
		"show",
		"search",
		"favorite",
		"favorites",
		"compare",
		"locale",
		"version",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}
}

func TestHelpListsCommandsInOrder(t *testing.T) {
	origWriter := helpOutputWriter
	defer func() { helpOutputWriter = origWriter }()

	var buf bytes.Buffer
	helpOutputWriter = &buf
	printHelpText(rootCmd)

	out := buf.String()
	browseIdx := strings.Index(out, "browse")
	versionIdx := strings.LastIndex(out, "version")
	if browseIdx == -1 || versionIdx == -1 || browseIdx > versionIdx {
		t.Errorf("expected browse before version in help output:\n%s", out)
	}
}
