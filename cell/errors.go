package cell

import "errors"

// Sentinel errors for cell indices.
var (
	// ErrNullIndex indicates an operation on the unset index.
	ErrNullIndex = errors.New("cell: null index")

	// ErrInvalidAnchor indicates an anchor outside pentagons 1..12 and faces A..T.
	ErrInvalidAnchor = errors.New("cell: invalid anchor")

	// ErrMalformed indicates text that is not "<anchor>" or "<anchor>-<digits>".
	ErrMalformed = errors.New("cell: malformed index")

	// ErrInvalidPath indicates a path that breaks the child ownership rules.
	ErrInvalidPath = errors.New("cell: invalid path")

	// ErrAnchorParent indicates a bare anchor whose parent depends on the
	// tessellation (faces) or does not exist (pentagons).
	ErrAnchorParent = errors.New("cell: anchor has no parent inside its frame")
)
