// Package colors provides color output utilities for the CLI boundary.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging. Console output is
// mirrored to it when set.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	mu           sync.RWMutex
	debugEnabled bool
	quietEnabled bool
	logger       Logger
	stdout       io.Writer = os.Stdout
	stderr       io.Writer = os.Stderr
)

func init() {
	if val := os.Getenv("POKEDEX_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// SetQuiet suppresses info and success output.
func SetQuiet(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	quietEnabled = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output, for tests.
func SetOutput(out, err io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	stdout, stderr = out, err
}

func current() (Logger, io.Writer, io.Writer, bool, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return logger, stdout, stderr, debugEnabled, quietEnabled
}

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	l, _, errW, _, _ := current()
	if l != nil {
		l.Error(msg)
	}
	fmt.Fprintf(errW, "%sError:%s %s%s\n", Red, Reset, msg, Reset)
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	l, _, errW, _, _ := current()
	if l != nil {
		l.Warn(msg)
	}
	fmt.Fprintf(errW, "%sWarning:%s %s%s\n", Yellow, Reset, msg, Reset)
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	l, outW, _, _, quiet := current()
	if l != nil {
		l.Info(msg)
	}
	if quiet {
		return
	}
	fmt.Fprintf(outW, "%s%s%s\n", Blue, msg, Reset)
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	l, outW, _, _, quiet := current()
	if l != nil {
		l.Info(msg, "type", "success")
	}
	if quiet {
		return
	}
	fmt.Fprintf(outW, "%s%s%s %s%s\n", Green, checkmark, Reset, msg, Reset)
}

// Debug outputs a debug message to stderr when debug is enabled.
func Debug(msgs ...string) {
	msg := strings.Join(msgs, " ")
	l, _, errW, debug, _ := current()
	if l != nil {
		l.Debug(msg)
	}
	if !debug {
		return
	}
	fmt.Fprintf(errW, "%sDebug:%s %s%s\n", Cyan, Reset, msg, Reset)
}
