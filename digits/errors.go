package digits

import "errors"

// Sentinel errors for digit-path arithmetic.
var (
	// ErrInvalidDirection indicates a symbol outside the defined direction set.
	ErrInvalidDirection = errors.New("digits: invalid direction")

	// ErrInvalidResolution indicates a resolution or path length out of range.
	ErrInvalidResolution = errors.New("digits: invalid resolution")

	// ErrNotADescendant indicates the candidate path is not prefixed by the ancestor.
	ErrNotADescendant = errors.New("digits: path is not a descendant")

	// ErrEmptyPath indicates an operation that needs at least one digit.
	ErrEmptyPath = errors.New("digits: empty path")

	// ErrNoVertexChild indicates a vertex child was requested from a cell that owns none.
	ErrNoVertexChild = errors.New("digits: cell has no vertex children")

	// ErrOverflow indicates a lattice point that could not be decomposed.
	ErrOverflow = errors.New("digits: unresolvable carry")
)
