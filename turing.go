package turing

import (
	"log/slog"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/ports"
)

// DefaultMaxSteps is the step ceiling applied when WithMaxSteps is not used.
const DefaultMaxSteps = runtime.DefaultMaxSteps

// Engine is the high-level entry point for the library. It wraps the
// internal runtime and provides a simplified API for consumers.
//
// An Engine holds configuration only; the per-run state (tape, head, step
// counter) lives in the runtime engine created for each Run call, so a
// finished run leaves nothing behind. A single Engine must still not be
// driven concurrently when callers share a stateful trace sink.
type Engine struct {
	maxSteps int
	logger   *slog.Logger
	hooks    machine.LifecycleHooks
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithMaxSteps overrides the safety step ceiling (default DefaultMaxSteps).
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		e.maxSteps = n
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks, invoked synchronously in
// step order during every run.
func WithLifecycleHooks(hooks machine.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{
		maxSteps: DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	return eng
}

// Run executes def on input, streaming trace lines to sink (nil disables
// tracing), and returns the terminal verdict. Callers must handle all four
// outcomes: accepted, rejected, halted (step ceiling) and unknown.
//
// The run is synchronous and non-suspending: Run returns only once the
// machine halts or hits the step ceiling. The error return is reserved for
// contract violations and never reflects machine logic.
func (e *Engine) Run(def *machine.Definition, input string, sink ports.TraceSink) (machine.Verdict, error) {
	rt := runtime.NewEngine(def,
		runtime.WithMaxSteps(e.maxSteps),
		runtime.WithLogger(e.logger.With("machine", def.Description())),
		runtime.WithLifecycleHooks(e.hooks),
	)
	return rt.Run(input, sink)
}
