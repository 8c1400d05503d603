// Package fnlog provides leveled logging helpers (Trace, Debug, Info, Warn,
// Error) that tag every message with the name of the function that emitted it.
// Each call renders a single line of the form
//
//	<level>: <message> [fn <function_name>]
//
// and writes it through a pluggable Sink. The function name is resolved at the
// call site via cheap runtime introspection, so callers never pass it
// explicitly:
//
//	func saveFile() {
//		fnlog.Warn("disk at %d%% capacity", 91)
//		// Emits: "warn: disk at 91% capacity [fn saveFile]"
//	}
//
// Messages are formatted with fmt.Sprintf rules. Every call emits
// unconditionally by default; a minimal opt-in threshold is available through
// Options.MinLevel for applications that want one.
//
// The package-level helpers write through a process-wide default Logger backed
// by standard error. Replace it wholesale with ReplaceDefault, or redirect it
// with SetOutput (handy in tests). Independent Logger instances are created
// with New:
//
//	logger := fnlog.New(func(o *fnlog.Options) {
//		o.Sink = fnlog.NewWriterSink(os.Stdout)
//	})
//	logger.Info("listening on %s", addr)
//
// Subpackages zapsink and slogsink adapt zap and slog loggers as sinks, so
// fnlog lines can flow into an application's existing structured logging
// pipeline.
package fnlog
