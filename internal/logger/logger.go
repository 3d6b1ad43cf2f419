// Package logger builds the slog loggers used by the CLI and the provider and
// offers attribute helpers with stable keys.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Levels accepted by ParseLevel, in increasing severity.
var levelNames = []string{"debug", "info", "warn", "error"}

// ParseLevel converts a level name to a slog.Level. Matching ignores case and
// surrounding space; "warning" is accepted as an alias for "warn".
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q (want one of %s)", name, strings.Join(levelNames, ", "))
}

// LevelNames returns the accepted level names.
func LevelNames() []string {
	return append([]string(nil), levelNames...)
}

// New returns a text logger writing records at or above level to w.
// A nil writer logs to stderr.
func New(level slog.Level, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OrDefault returns l, or slog.Default() when l is nil.
func OrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
