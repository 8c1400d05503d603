package fnlog

import (
	"io"
	"sync/atomic"

	"github.com/hupe1980/fnlog/internal/caller"
)

// defaultLogger backs the package-level helpers. Stored atomically so it can
// be swapped wholesale while other goroutines are logging.
var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// Default returns the process-wide Logger used by the package-level helpers.
func Default() *Logger {
	return defaultLogger.Load()
}

// ReplaceDefault swaps the process-wide Logger and returns the previous one,
// which makes restoring it in tests a one-liner:
//
//	prev := fnlog.ReplaceDefault(testLogger)
//	defer fnlog.ReplaceDefault(prev)
func ReplaceDefault(l *Logger) *Logger {
	return defaultLogger.Swap(l)
}

// SetOutput redirects the process-wide Logger to w, preserving its other
// settings. It is shorthand for ReplaceDefault with a WriterSink over w.
func SetOutput(w io.Writer) {
	ReplaceDefault(Default().WithSink(NewWriterSink(w)))
}

// FuncName returns the bare name of the function that calls it, resolved the
// same way the leveled helpers resolve the [fn ...] tag.
func FuncName() string {
	return caller.Resolve(1)
}

// Emit renders a line through the process-wide Logger and returns the sink's
// write error. calldepth follows the Logger.Emit contract: 1 names the direct
// caller of Emit.
func Emit(level Level, calldepth int, format string, args ...any) error {
	return Default().Emit(level, calldepth+1, format, args...)
}

// Trace logs detailed execution tracing through the process-wide Logger,
// tagged with the calling function.
func Trace(format string, args ...any) {
	_ = Default().Emit(LevelTrace, 2, format, args...)
}

// Debug logs diagnostic detail through the process-wide Logger, tagged with
// the calling function.
func Debug(format string, args ...any) {
	_ = Default().Emit(LevelDebug, 2, format, args...)
}

// Info logs an informational message through the process-wide Logger, tagged
// with the calling function.
func Info(format string, args ...any) {
	_ = Default().Emit(LevelInfo, 2, format, args...)
}

// Warn logs a potential issue through the process-wide Logger, tagged with
// the calling function.
func Warn(format string, args ...any) {
	_ = Default().Emit(LevelWarn, 2, format, args...)
}

// Error logs a failure through the process-wide Logger, tagged with the
// calling function.
func Error(format string, args ...any) {
	_ = Default().Emit(LevelError, 2, format, args...)
}
