package machine

import "sort"

// State identifies a machine state. States are opaque, comparable labels
// (typically short strings such as "q0" or "q_accept").
type State string

// Symbol is a single tape symbol. Symbols are modeled as strings so that
// multi-character symbols remain representable; input strings are split into
// one symbol per rune.
type Symbol string

// Move is the head movement directive of a transition rule.
type Move string

const (
	// MoveLeft shifts the head one cell to the left.
	MoveLeft Move = "L"
	// MoveRight shifts the head one cell to the right.
	MoveRight Move = "R"
	// MoveStay leaves the head where it is.
	MoveStay Move = "N"
)

// DefaultBlank is the blank symbol used when a Config does not name one.
const DefaultBlank Symbol = "B"

// RuleKey is the composite lookup key of the transition mapping.
type RuleKey struct {
	State  State
	Symbol Symbol
}

// Action is the right-hand side of a transition rule.
type Action struct {
	Next  State  `json:"next"`
	Write Symbol `json:"write"`
	Move  Move   `json:"move"`
}

// Config is the raw material for a Definition. It is consumed by New and is
// not retained; Definitions copy everything they need.
type Config struct {
	States   []State
	Alphabet []Symbol

	// Blank is the symbol implicitly held by every never-written tape cell.
	// Defaults to DefaultBlank.
	Blank Symbol

	Start  State
	Accept State
	Reject State

	// Rules is the (partial) transition mapping. Pairs absent from the map
	// mean "no transition defined"; the engine treats that as an implicit
	// transition to the reject state.
	Rules map[RuleKey]Action

	// Description is an optional human-readable label used by callers for
	// selection and trace headers.
	Description string
}

// Definition is an immutable, validated machine description. It is safe to
// share across any number of engine instances and goroutines.
type Definition struct {
	states      map[State]struct{}
	alphabet    map[Symbol]struct{}
	blank       Symbol
	start       State
	accept      State
	reject      State
	rules       map[RuleKey]Action
	description string
}

// Start returns the initial state of every run.
func (d *Definition) Start() State { return d.start }

// Accept returns the accepting halt state.
func (d *Definition) Accept() State { return d.accept }

// Reject returns the rejecting halt state.
func (d *Definition) Reject() State { return d.reject }

// Blank returns the blank symbol.
func (d *Definition) Blank() Symbol { return d.blank }

// Description returns the human-readable label, possibly empty.
func (d *Definition) Description() string { return d.description }

// HasState reports whether s belongs to the declared state set.
func (d *Definition) HasState(s State) bool {
	_, ok := d.states[s]
	return ok
}

// Halting reports whether s is one of the two halting states.
func (d *Definition) Halting(s State) bool {
	return s == d.accept || s == d.reject
}

// Rule looks up the transition for (state, symbol). The second return value
// distinguishes a defined rule from an absent one.
func (d *Definition) Rule(state State, symbol Symbol) (Action, bool) {
	a, ok := d.rules[RuleKey{State: state, Symbol: symbol}]
	return a, ok
}

// States returns the declared state set in deterministic (sorted) order.
func (d *Definition) States() []State {
	out := make([]State, 0, len(d.states))
	for s := range d.states {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Alphabet returns the declared alphabet in deterministic (sorted) order.
func (d *Definition) Alphabet() []Symbol {
	out := make([]Symbol, 0, len(d.alphabet))
	for s := range d.alphabet {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
