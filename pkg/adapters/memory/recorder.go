// Package memory provides an in-memory trace sink, useful for tests,
// embedded scenarios, and programmatic inspection of a finished run.
package memory

import "sync"

// Recorder implements ports.TraceSink by capturing every line in order.
//
// The engine itself is single-threaded, but a Recorder may be shared between
// a run and an observing goroutine, so access is guarded.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Trace appends one line to the recording.
func (r *Recorder) Trace(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

// Lines returns a copy of everything recorded so far.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Len returns the number of recorded lines.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lines)
}

// Reset discards the recording so the Recorder can serve another run.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}
