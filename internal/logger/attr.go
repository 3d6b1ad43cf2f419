package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers return an empty Attr for zero inputs, which slog drops,
// so callers can pass them without nil checks.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component names the package or stage emitting the record.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Path creates an attribute for a file system path.
func Path(path string) slog.Attr {
	if path == "" {
		return slog.Attr{}
	}
	return slog.String("path", path)
}

// Color records a color under key in #RRGGBB form.
func Color(key string, c interface{ Hex() string }) slog.Attr {
	if key == "" || c == nil {
		return slog.Attr{}
	}
	return slog.String(key, c.Hex())
}

// Style creates an attribute for a module style name.
func Style(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("style", name)
}

// Format creates an attribute for an image container format.
func Format(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("format", name)
}

// Version creates an attribute for a symbol version.
func Version(v int) slog.Attr {
	if v <= 0 {
		return slog.Attr{}
	}
	return slog.Int("version", v)
}

// Size records the byte size of a payload.
func Size(n int) slog.Attr {
	return slog.Int("size", n)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
