package runtime

import "github.com/aretw0/turing/pkg/machine"

// Tape is the sparse, unbounded band of a single run. Cells are keyed by a
// signed index; an absent key implicitly holds the blank symbol. Reads never
// materialize entries, and writing the blank symbol erases the cell so the
// written region stays tight.
type Tape struct {
	cells map[int]machine.Symbol
	blank machine.Symbol
}

// NewTape creates an empty tape with the given blank symbol.
func NewTape(blank machine.Symbol) *Tape {
	return &Tape{
		cells: make(map[int]machine.Symbol),
		blank: blank,
	}
}

// Load resets the tape and writes the input, one symbol per rune, into cells
// 0..n-1. An empty input leaves the tape entirely blank.
func (t *Tape) Load(input string) {
	t.cells = make(map[int]machine.Symbol, len(input))
	for i, r := range []rune(input) {
		t.cells[i] = machine.Symbol(string(r))
	}
}

// Read returns the symbol at pos, falling back to the blank symbol for cells
// never written.
func (t *Tape) Read(pos int) machine.Symbol {
	if s, ok := t.cells[pos]; ok {
		return s
	}
	return t.blank
}

// Write stores s at pos. Writing the blank symbol clears the cell instead,
// which keeps the sparse map equivalent to an infinite band of blanks.
func (t *Tape) Write(pos int, s machine.Symbol) {
	if s == t.blank {
		delete(t.cells, pos)
		return
	}
	t.cells[pos] = s
}

// Written returns the number of non-blank cells.
func (t *Tape) Written() int { return len(t.cells) }

// Bounds returns the inclusive window [lo, hi] spanning every written cell
// plus the head position, so the head is always visible even when it has
// moved past all written cells. An empty tape yields the single-cell window
// at the head.
func (t *Tape) Bounds(head int) (lo, hi int) {
	lo, hi = head, head
	for i := range t.cells {
		if i < lo {
			lo = i
		}
		if i > hi {
			hi = i
		}
	}
	return lo, hi
}
