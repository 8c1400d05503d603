// Package zapsink adapts a zap logger as an fnlog Sink, so function-name
// tagged lines flow into an existing zap pipeline (encoders, sampling, output
// routing). zap has no trace level; trace lines are emitted at zap's debug
// level.
package zapsink

import (
	"github.com/hupe1980/fnlog"
	"go.uber.org/zap"
)

// New creates a Sink that forwards rendered lines to logger. The line,
// including its [fn ...] tag, becomes the zap entry message. zap's own
// caller annotation would point at this adapter; use the tag instead, or
// configure the logger with zap.AddCallerSkip.
func New(logger *zap.Logger) fnlog.Sink {
	return &sink{logger: logger}
}

type sink struct {
	logger *zap.Logger
}

// Emit forwards the rendered line at the zap level matching the fnlog level.
// zap handles write failures through its own error output, so Emit always
// returns nil.
func (s *sink) Emit(level fnlog.Level, line string) error {
	switch level {
	case fnlog.LevelTrace, fnlog.LevelDebug:
		s.logger.Debug(line)
	case fnlog.LevelInfo:
		s.logger.Info(line)
	case fnlog.LevelWarn:
		s.logger.Warn(line)
	case fnlog.LevelError:
		s.logger.Error(line)
	default:
		s.logger.Info(line)
	}

	return nil
}
