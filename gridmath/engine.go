package gridmath

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
	"github.com/katalvlaran/dggs/tessellation"
)

// Sentinel errors for grid math.
var (
	// ErrNotAChild indicates a zoom toward a face the pentagon does not own.
	ErrNotAChild = errors.New("gridmath: target is not a child of the cell")

	// ErrOffsetOutOfRange indicates an ordinal outside [0, CellCount).
	ErrOffsetOutOfRange = errors.New("gridmath: offset out of range")

	// ErrOverflow indicates a carry that no resolution band could absorb.
	ErrOverflow = errors.New("gridmath: unresolved overflow")
)

// maxHops bounds overflow and gap corrections in one move. A move crosses
// at most one anchor boundary and one gap, so any deeper loop is a defect.
const maxHops = 6

// Engine runs grid operations against one read-only Tables. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	t *tessellation.Tables
}

// New binds an engine to initialized tables.
func New(t *tessellation.Tables) (*Engine, error) {
	if !t.Ready() {
		return nil, tessellation.ErrNotReady
	}

	return &Engine{t: t}, nil
}

// Tables returns the connectivity context the engine reads.
func (e *Engine) Tables() *tessellation.Tables { return e.t }

// check rejects null indices, indices past the tables and torn-down tables.
func (e *Engine) check(idx cell.Index) error {
	if !e.t.Ready() {
		return tessellation.ErrNotReady
	}
	if idx.IsNull() {
		return cell.ErrNullIndex
	}
	if idx.Resolution() > e.t.MaxResolution() {
		return fmt.Errorf("%w: %s beyond %d", digits.ErrInvalidResolution, idx, e.t.MaxResolution())
	}

	return nil
}

// IsValidDirection reports whether d leads somewhere from idx: every vertex
// direction except a pentagon's gap.
func (e *Engine) IsValidDirection(idx cell.Index, d digits.Direction) bool {
	if idx.IsNull() || !d.Valid() {
		return false
	}
	if idx.IsPentagon() {
		return d != idx.Anchor().Gap()
	}

	return true
}

// kind returns the subtree recurrence of a non-bare-pentagon cell.
func kind(idx cell.Index) tessellation.Kind {
	switch {
	case idx.IsPentagon():
		return tessellation.KindPentagon
	case idx.IsVertexChild():
		return tessellation.KindVertex
	default:
		return tessellation.KindCentroid
	}
}

// sideToward picks the gap-correction turn for a move starting in sector
// s of a pentagon with gap g: clockwise (-1) when s lies just
// counter-clockwise of the gap, counter-clockwise (+1) when it lies just
// clockwise of it, and none when s faces the gap head on or is the apex.
func sideToward(g, s digits.Direction) int {
	if !s.Valid() {
		return 0
	}
	switch digits.NormalizeRotation(int(s) - int(g)) {
	case 1, 2:
		return -1
	case 4, 5:
		return 1
	default:
		return 0
	}
}
