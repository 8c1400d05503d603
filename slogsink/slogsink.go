// Package slogsink adapts a log/slog logger as an fnlog Sink for
// applications standardized on Go's structured logging. slog has no trace
// level; trace lines use LevelTrace (slog.LevelDebug-4), the conventional
// slot below debug.
package slogsink

import (
	"context"
	"log/slog"

	"github.com/hupe1980/fnlog"
)

// LevelTrace is the slog level used for fnlog trace lines.
const LevelTrace = slog.LevelDebug - 4

// New creates a Sink that forwards rendered lines to logger. The line,
// including its [fn ...] tag, becomes the slog record message. Note that the
// handler's own level filter still applies; enable LevelTrace on the handler
// to preserve fnlog's emit-everything default.
func New(logger *slog.Logger) fnlog.Sink {
	return &sink{logger: logger}
}

type sink struct {
	logger *slog.Logger
}

// Emit forwards the rendered line at the slog level matching the fnlog level.
func (s *sink) Emit(level fnlog.Level, line string) error {
	s.logger.Log(context.Background(), slogLevel(level), line)
	return nil
}

func slogLevel(level fnlog.Level) slog.Level {
	switch level {
	case fnlog.LevelTrace:
		return LevelTrace
	case fnlog.LevelDebug:
		return slog.LevelDebug
	case fnlog.LevelInfo:
		return slog.LevelInfo
	case fnlog.LevelWarn:
		return slog.LevelWarn
	case fnlog.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
