package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabledReturnsNoop(t *testing.T) {
	l, err := Init(Config{Enabled: false})
	require.NoError(t, err)

	// No panic, no file side effects.
	l.Info("ignored")
	assert.NoError(t, l.Shutdown())
}

func TestInitWritesJSONLines(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Level = "debug"
	cfg.Command = "test"

	l, err := Init(cfg)
	require.NoError(t, err)
	l.Info("hello", "key", "value")
	require.NoError(t, l.Shutdown())

	impl, ok := l.(*loggerImpl)
	require.True(t, ok)
	data, err := os.ReadFile(impl.path)
	require.NoError(t, err)

	line := strings.TrimSpace(strings.Split(string(data), "\n")[0])
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestWithAddsBaseFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Command = "test"

	l, err := Init(cfg)
	require.NoError(t, err)
	defer l.Shutdown()

	child := l.With("view", "others")
	impl, ok := child.(*loggerImpl)
	require.True(t, ok)
	assert.Equal(t, "others", impl.fields["view"])
}

func TestRotateKeepsNewestFiles(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"pokedex-cli_a.log",
		"pokedex-cli_b.log",
		"pokedex-cli_c.log",
		"unrelated.txt",
	}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0600))
	}

	require.NoError(t, rotate(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs, others int
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".log") {
			logs++
		} else {
			others++
		}
	}
	assert.Equal(t, 2, logs)
	assert.Equal(t, 1, others, "non-log files untouched")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel("DEBUG").String())
	assert.Equal(t, "warn", parseLevel("warning").String())
	assert.Equal(t, "info", parseLevel("bogus").String())
}
