package machine

// EventType defines the category of the event.
type EventType string

const (
	EventStep EventType = "step"
	EventHalt EventType = "halt"
)

// StepEvent describes one executed transition. It is emitted before the
// transition's effects (write, move, state change) are applied, so State,
// Symbol and Head reflect the configuration the rule fired in.
type StepEvent struct {
	Type   EventType `json:"type"`
	Step   int       `json:"step"`
	State  State     `json:"state"`
	Symbol Symbol    `json:"symbol"`
	Action Action    `json:"action"`
	Head   int       `json:"head"`
}

// HaltEvent describes the end of a run, whatever the outcome.
type HaltEvent struct {
	Type    EventType `json:"type"`
	Verdict Verdict   `json:"verdict"`
	Steps   int       `json:"steps"`
	// Tape is the final rendered tape window.
	Tape string `json:"tape"`
}

// LifecycleHooks defines callbacks for engine observability. Hooks are
// invoked synchronously on the run's goroutine, in strict step order; a nil
// field is simply skipped.
type LifecycleHooks struct {
	OnStep func(*StepEvent)
	OnHalt func(*HaltEvent)
}
