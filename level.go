package fnlog

import (
	"strings"

	"github.com/pkg/errors"
)

// Level represents the severity of a log line. Levels are ordered by
// increasing urgency; ordering is cosmetic unless an explicit threshold is
// configured via Options.MinLevel.
type Level int

const (
	// LevelTrace marks detailed, low-level execution tracing.
	LevelTrace Level = iota
	// LevelDebug marks diagnostic detail intended for development.
	LevelDebug
	// LevelInfo marks general informational messages.
	LevelInfo
	// LevelWarn marks potential issues that are not yet errors.
	LevelWarn
	// LevelError marks failures.
	LevelError
)

// String returns the lowercase name of the level as it appears on the wire
// ("trace", "debug", "info", "warn", "error").
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel converts a level name (case-insensitive, surrounding whitespace
// ignored) into a Level. It is the inverse of String.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelTrace, errors.Errorf("fnlog: unknown level %q", s)
	}
}
