package fnlog

import (
	"fmt"
	"os"

	"github.com/hupe1980/fnlog/internal/caller"
)

// Options configures a Logger instance.
type Options struct {
	// Sink receives rendered lines (defaults to a WriterSink over stderr).
	Sink Sink

	// MinLevel suppresses lines below the given severity. The zero value is
	// LevelTrace, so by default every call emits regardless of level.
	MinLevel Level
}

// Logger renders leveled, function-name-tagged log lines and hands them to a
// Sink. Loggers are immutable; derive variants with the With* helpers. A
// Logger is safe for concurrent use as long as its Sink is.
type Logger struct {
	sink     Sink
	minLevel Level
}

// New creates a Logger with optional overrides. The default configuration
// writes to standard error and emits at every level.
func New(optFns ...func(o *Options)) *Logger {
	opts := Options{
		Sink:     NewWriterSink(os.Stderr),
		MinLevel: LevelTrace,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Logger{sink: opts.Sink, minLevel: opts.MinLevel}
}

// WithSink returns a copy of the Logger writing to s.
func (l *Logger) WithSink(s Sink) *Logger {
	nl := *l
	nl.sink = s
	return &nl
}

// WithMinLevel returns a copy of the Logger that suppresses lines below
// level. Pass LevelTrace to restore the default emit-everything behavior.
func (l *Logger) WithMinLevel(level Level) *Logger {
	nl := *l
	nl.minLevel = level
	return &nl
}

// Sink returns the Logger's sink.
func (l *Logger) Sink() Sink { return l.sink }

// Emit formats a message, resolves the emitting function's name from the call
// stack and writes the rendered line through the sink, returning the sink's
// error. calldepth selects the frame whose name is reported: 1 is the direct
// caller of Emit, 2 its caller, and so on. The leveled helpers pass 2 so the
// line names their caller.
//
// Use Emit directly when the sink's write error matters; the leveled helpers
// discard it, mirroring log.Print versus log.Output in the standard library.
func (l *Logger) Emit(level Level, calldepth int, format string, args ...any) error {
	if level < l.minLevel {
		return nil
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	return l.sink.Emit(level, fmt.Sprintf("%s: %s [fn %s]", level, msg, caller.Resolve(calldepth)))
}

// Trace logs detailed execution tracing, tagged with the calling function.
func (l *Logger) Trace(format string, args ...any) {
	_ = l.Emit(LevelTrace, 2, format, args...)
}

// Debug logs diagnostic detail, tagged with the calling function.
func (l *Logger) Debug(format string, args ...any) {
	_ = l.Emit(LevelDebug, 2, format, args...)
}

// Info logs an informational message, tagged with the calling function.
func (l *Logger) Info(format string, args ...any) {
	_ = l.Emit(LevelInfo, 2, format, args...)
}

// Warn logs a potential issue, tagged with the calling function.
func (l *Logger) Warn(format string, args ...any) {
	_ = l.Emit(LevelWarn, 2, format, args...)
}

// Error logs a failure, tagged with the calling function.
func (l *Logger) Error(format string, args ...any) {
	_ = l.Emit(LevelError, 2, format, args...)
}
