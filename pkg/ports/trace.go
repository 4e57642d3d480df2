package ports

// TraceSink receives the human-readable progress lines emitted during a run.
// Lines arrive synchronously, in strict step order, on the goroutine that
// executes the run, and never carry a trailing newline.
type TraceSink interface {
	Trace(line string)
}

// TraceFunc adapts a plain function to the TraceSink interface.
type TraceFunc func(line string)

// Trace implements TraceSink.
func (f TraceFunc) Trace(line string) { f(line) }
