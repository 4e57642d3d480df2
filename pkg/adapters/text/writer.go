// Package text adapts io.Writer destinations (terminals, buffers, files)
// into trace sinks.
package text

import (
	"fmt"
	"io"
)

// Writer implements ports.TraceSink by writing each line to w, terminated
// with a newline. Write errors are swallowed: the sink contract is
// fire-and-forget and the engine's outcome must not depend on the trace
// destination.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w as a trace sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Trace writes one line.
func (t *Writer) Trace(line string) {
	fmt.Fprintln(t.w, line)
}
