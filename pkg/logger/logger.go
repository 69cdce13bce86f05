// Package logger builds the application's slog loggers. Logs are written to
// stderr or to a file, never to stdout.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Common attribute keys.
const (
	KeyComponent     = "component"
	KeyCorrelationID = "correlation_id"
	KeyError         = "error"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ParseLevel parses a level name. Unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Options configures the logger.
type Options struct {
	Output    io.Writer
	Level     slog.Level
	Format    string
	AddSource bool
}

// DefaultOptions returns sensible defaults for the logger.
func DefaultOptions() Options {
	return Options{
		Output: os.Stderr,
		Level:  slog.LevelInfo,
		Format: FormatText,
	}
}

// New creates a logger with the given options.
func New(opts Options) *slog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: opts.Level, AddSource: opts.AddSource}

	var handler slog.Handler
	if opts.Format == FormatJSON {
		handler = slog.NewJSONHandler(opts.Output, hopts)
	} else {
		handler = slog.NewTextHandler(opts.Output, hopts)
	}
	return slog.New(handler)
}

// OpenFile opens path for appending, creating it and its directory when
// missing. The returned function closes the file.
func OpenFile(path string) (io.Writer, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// Component returns l tagged with the component name.
func Component(l *slog.Logger, name string) *slog.Logger {
	return l.With(KeyComponent, name)
}
