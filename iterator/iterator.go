package iterator

import (
	"errors"

	"github.com/katalvlaran/dggs/cell"
)

// Sentinel errors for iterator construction.
var (
	// ErrNotContained indicates a root/resolution pair whose edge cannot be
	// walked sector by sector.
	ErrNotContained = errors.New("iterator: data resolution is not contained by the root")

	// ErrNotOnEdge indicates a seek to a cell the edge walk never visits.
	ErrNotOnEdge = errors.New("iterator: cell is not on the edge")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("iterator: invalid option supplied")
)

// Iterator is the pull interface shared by every enumeration.
type Iterator interface {
	// Current returns the cell under the cursor, the null index at the end.
	Current() cell.Index
	// Advance moves to the next cell; it is a no-op at the end.
	Advance()
	// AtEnd reports whether the enumeration is exhausted.
	AtEnd() bool
	// Reset rewinds to the first cell.
	Reset()
	// Err returns the failure that ended the enumeration early, if any.
	Err() error
}

// Collect drains it from the start and returns every cell it emits.
func Collect(it Iterator) ([]cell.Index, error) {
	var out []cell.Index
	for it.Reset(); !it.AtEnd(); it.Advance() {
		out = append(out, it.Current())
	}

	return out, it.Err()
}

// Count drains it from the start and returns how many cells it emits.
func Count(it Iterator) (int, error) {
	n := 0
	for it.Reset(); !it.AtEnd(); it.Advance() {
		n++
	}

	return n, it.Err()
}
