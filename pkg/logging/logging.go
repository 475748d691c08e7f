package logging

import (
	"log"
	"log/slog"
	"os"
	"strings"
)

// parseLevel converts a case-insensitive level name to a slog.Level. Unknown
// or empty values default to INFO.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
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

// levelFromEnv reads LOG_LEVEL, defaulting to INFO when unset.
func levelFromEnv() slog.Level {
	return parseLevel(os.Getenv("LOG_LEVEL"))
}

// NewStructuredLogger returns a JSON logger writing to stderr with module and
// version attached to every record. addSource is enabled automatically so
// that debug-level records carry a source location.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	lvl := parseLevel(level)
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})
	return slog.New(handler).With("module", module, "version", version)
}

// SetDefaultStructuredLogger installs a structured logger as the slog
// default, with its level taken from LOG_LEVEL (INFO if unset).
func SetDefaultStructuredLogger(module, version string) {
	slog.SetDefault(NewStructuredLogger(module, version, os.Getenv("LOG_LEVEL")))
}

// SetDefaultStructuredLoggerWithLevel installs a structured logger as the
// slog default at an explicit level, ignoring LOG_LEVEL.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// NewLogLogger adapts a slog.Logger to the standard library's log.Logger,
// for components that still take a *log.Logger (e.g. http.Server.ErrorLog).
func NewLogLogger(level slog.Level, addSource bool) *log.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
	return slog.NewLogLogger(handler, level)
}

// DefaultLevel returns the slog.Level implied by LOG_LEVEL, for components
// that need to branch on the configured verbosity directly.
func DefaultLevel() slog.Level {
	return levelFromEnv()
}
