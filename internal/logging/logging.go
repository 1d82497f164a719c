// Package logging configures the process-wide slog logger.
//
// Logs are JSON on stderr and carry the module name and build version. The
// level comes from the LOG_LEVEL value handed to New or SetDefault; unknown
// values fall back to info.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel converts a level name to a slog.Level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a JSON logger writing to w with module and version attributes.
func New(w io.Writer, module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	return slog.New(handler).With("module", module, "version", version)
}

// SetDefault installs a stderr logger as the slog default and routes the
// standard library log package through it.
func SetDefault(module, version, level string) *slog.Logger {
	logger := New(os.Stderr, module, version, level)
	slog.SetDefault(logger)
	log.SetFlags(0)
	return logger
}
