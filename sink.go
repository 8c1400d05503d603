package fnlog

import (
	"io"
	"sync"
)

// Sink receives rendered log lines. Implementations own delivery: where the
// line goes, whether the write can fail, and how concurrent emits are
// serialized. The line is passed without a trailing newline.
//
// A Sink must be safe for concurrent use, and a single Emit call must land as
// one unbroken line in the destination.
type Sink interface {
	Emit(level Level, line string) error
}

// WriterSink is a Sink that appends newline-terminated lines to an io.Writer.
// An internal mutex serializes emits and each line is written in a single
// Write call, so concurrent loggers never interleave within a line even when
// the underlying writer is not itself synchronized.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a WriterSink over w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes line plus a trailing newline to the underlying writer and
// returns the writer's error, if any.
func (s *WriterSink) Emit(_ Level, line string) error {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.w.Write(buf)
	return err
}
