package cubesim

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubesim package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubesim: invalid move notation")

	// Engine errors
	ErrMoveInFlight = errors.New("cubesim: move already in flight")
)

// InvariantError reports a corrupted lattice: a cubie landing outside
// {-1,0,1}^3 or two cubies collapsing onto one cell. It can only arise from
// a defective rotation, never from well-formed input, so callers should
// treat it as fatal rather than recoverable.
type InvariantError struct {
	Cubie  int     // index of the offending cubie
	Cell   GridVec // the cell it computed
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("cubesim: lattice invariant violated: cubie %d at %s: %s",
		e.Cubie, e.Cell, e.Reason)
}
