package runtime

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/ports"
)

// DefaultMaxSteps is the safety ceiling applied when no explicit limit is
// configured. A run that executes this many transitions without halting is
// stopped with a max-steps verdict.
const DefaultMaxSteps = 1000

// Engine is the core machine runner. It owns the mutable run state (tape,
// head, current state, step counter), which is reset at the start of every
// Run call. An Engine instance must not execute overlapping runs from two
// goroutines; the Definition it runs is immutable and freely shareable.
type Engine struct {
	def      *machine.Definition
	maxSteps int
	logger   *slog.Logger
	hooks    machine.LifecycleHooks

	tape  *Tape
	head  int
	state machine.State
	steps int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMaxSteps overrides the step ceiling. Values < 1 are ignored.
func WithMaxSteps(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxSteps = n
		}
	}
}

// WithLogger sets the structured logger used for debug logging.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks machine.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates an engine bound to a definition.
func NewEngine(def *machine.Definition, opts ...EngineOption) *Engine {
	e := &Engine{
		def:      def,
		maxSteps: DefaultMaxSteps,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the machine on input until it halts (accept/reject) or the
// step ceiling is reached, streaming progress lines to sink. A nil sink
// disables tracing. The returned error is reserved for contract violations
// (a malformed move escaping definition validation); machine-logic outcomes,
// including the step ceiling and missing transitions, are reported through
// the Verdict alone.
func (e *Engine) Run(input string, sink ports.TraceSink) (machine.Verdict, error) {
	e.reset(input)
	e.trace(sink, "--- Starting Simulation on Input: '%s' (%s) ---", input, e.def.Description())

	for !e.def.Halting(e.state) {
		if e.steps >= e.maxSteps {
			// Returns without the usual closing lines: the run is cut off,
			// not finished.
			e.trace(sink, "--- Simulation Halted (Max Steps: %d reached) ---", e.maxSteps)
			return e.finish(machine.HaltedMaxSteps(e.state)), nil
		}

		symbol := e.tape.Read(e.head)
		action, ok := e.def.Rule(e.state, symbol)
		if !ok {
			// Not an error: machines are total via implicit-reject
			// completion. No step is counted, no cell is written.
			e.trace(sink, "Step %d: No transition found for (%s, %s). Rejecting.", e.steps, e.state, symbol)
			e.logger.Debug("missing transition", "state", e.state, "symbol", symbol, "step", e.steps)
			e.state = e.def.Reject()
			break
		}

		window, offset := renderWindow(e.tape, e.head)
		e.trace(sink, "Step %d: State: %-6s | Tape: %s", e.steps, e.state, window)
		e.trace(sink, "%21s | Head: %s", "", headMarker(offset))
		e.logger.Debug("step",
			"step", e.steps,
			"state", e.state,
			"symbol", symbol,
			"next", action.Next,
			"head", e.head,
		)
		if e.hooks.OnStep != nil {
			e.hooks.OnStep(&machine.StepEvent{
				Type:   machine.EventStep,
				Step:   e.steps,
				State:  e.state,
				Symbol: symbol,
				Action: action,
				Head:   e.head,
			})
		}

		e.tape.Write(e.head, action.Write)
		if err := e.move(action.Move); err != nil {
			return machine.Unknown(e.state), err
		}
		e.state = action.Next
		e.steps++
	}

	window, _ := renderWindow(e.tape, e.head)
	e.trace(sink, "--- Simulation Finished in %d steps ---", e.steps)
	e.trace(sink, "Final State: %s", e.state)
	e.trace(sink, "Final Tape: %s", window)

	switch {
	case e.state == e.def.Accept():
		return e.finish(machine.Accepted(e.state)), nil
	case e.state == e.def.Reject():
		return e.finish(machine.Rejected(e.state)), nil
	default:
		// Unreachable under the loop invariant, handled defensively.
		return e.finish(machine.Unknown(e.state)), nil
	}
}

// Steps returns the number of transitions executed by the last run.
func (e *Engine) Steps() int { return e.steps }

func (e *Engine) reset(input string) {
	e.tape = NewTape(e.def.Blank())
	e.tape.Load(input)
	e.head = 0
	e.state = e.def.Start()
	e.steps = 0
}

func (e *Engine) move(m machine.Move) error {
	switch m {
	case machine.MoveLeft:
		e.head--
	case machine.MoveRight:
		e.head++
	case machine.MoveStay:
	default:
		return fmt.Errorf("%w: %q", machine.ErrInvalidMove, m)
	}
	return nil
}

// finish fires the halt hook and hands the verdict back unchanged.
func (e *Engine) finish(v machine.Verdict) machine.Verdict {
	window, _ := renderWindow(e.tape, e.head)
	e.logger.Debug("run finished", "verdict", v.Outcome, "steps", e.steps, "tape", window)
	if e.hooks.OnHalt != nil {
		e.hooks.OnHalt(&machine.HaltEvent{
			Type:    machine.EventHalt,
			Verdict: v,
			Steps:   e.steps,
			Tape:    window,
		})
	}
	return v
}

func (e *Engine) trace(sink ports.TraceSink, format string, args ...any) {
	if sink == nil {
		return
	}
	sink.Trace(fmt.Sprintf(format, args...))
}
