package fnlog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Interface compliance (compile-time assertion)
var _ Sink = (*WriterSink)(nil)

func TestWriterSink_AppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)

	assert.NoError(t, s.Emit(LevelInfo, "info: hi [fn foo]"))
	assert.Equal(t, "info: hi [fn foo]\n", buf.String())
}

type errorWriter struct {
	err error
}

func (w errorWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestWriterSink_PropagatesWriteError(t *testing.T) {
	writeErr := errors.New("stream closed")
	s := NewWriterSink(errorWriter{err: writeErr})

	assert.ErrorIs(t, s.Emit(LevelError, "error: boom [fn bar]"), writeErr)
}

// singleWriteRecorder fails the test if a line ever arrives split across
// multiple Write calls.
type singleWriteRecorder struct {
	t     *testing.T
	lines [][]byte
}

func (r *singleWriteRecorder) Write(p []byte) (int, error) {
	if len(p) == 0 || p[len(p)-1] != '\n' {
		r.t.Fatalf("partial write: %q", p)
	}
	if bytes.IndexByte(p[:len(p)-1], '\n') >= 0 {
		r.t.Fatalf("multiple lines in one write: %q", p)
	}
	r.lines = append(r.lines, append([]byte(nil), p...))
	return len(p), nil
}

func TestWriterSink_OneWritePerLine(t *testing.T) {
	rec := &singleWriteRecorder{t: t}
	s := NewWriterSink(rec)

	assert.NoError(t, s.Emit(LevelDebug, "debug: a [fn f]"))
	assert.NoError(t, s.Emit(LevelDebug, "debug: b [fn f]"))
	assert.Len(t, rec.lines, 2)
}
