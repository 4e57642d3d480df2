package machine

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is wrapped by errors reporting a move directive outside
// {MoveLeft, MoveRight, MoveStay}. It is caught at construction time; the
// engine also fails fast with it should a malformed action ever escape
// validation.
var ErrInvalidMove = errors.New("invalid move direction")

// DefinitionError reports an invalid machine description. It is returned by
// New before any Definition exists; no partially-valid Definition is ever
// observable.
type DefinitionError struct {
	Reason string
	// Err is the underlying cause, if any (e.g. ErrInvalidMove).
	Err error
}

func (e *DefinitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid machine definition: %s: %v", e.Reason, e.Err)
	}
	return "invalid machine definition: " + e.Reason
}

func (e *DefinitionError) Unwrap() error { return e.Err }

func definitionErrorf(format string, args ...any) error {
	return &DefinitionError{Reason: fmt.Sprintf(format, args...)}
}
