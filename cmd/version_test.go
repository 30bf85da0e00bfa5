package cmd

import (
	"bytes"
	"testing"

	"github.com/cristianoliveira/pokedex-cli/internal/version"
)

func TestGetVersion(t *testing.T) {
	// Save original version and restore after test
	origVersion := version.Version
	defer func() { version.Version = origVersion }()

	version.Version = "0.1.0"
	if got := GetVersion(); got != "0.1.0" {
		t.Errorf("GetVersion() = %q, want %q", got, "0.1.0")
	}

	version.Version = "1.2.3"
	if got := GetVersion(); got != "1.2.3" {
		t.Errorf("GetVersion() = %q, want %q", got, "1.2.3")
	}
}

func TestPrintVersion(t *testing.T) {
	// Save original writer and version
	origWriter := versionOutputWriter
	origVersion := version.Version
	defer func() {
		versionOutputWriter = origWriter
		version.Version = origVersion
	}()

	var buf bytes.Buffer
	versionOutputWriter = &buf
	version.Version = "0.1.0"
	PrintVersion()
	expected := "pokedex v0.1.0\n"
	if buf.String() != expected {
		t.Errorf("PrintVersion() printed %q, want %q", buf.String(), expected)
	}
}
