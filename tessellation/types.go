package tessellation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
)

// Sentinel errors for connectivity lookups.
var (
	// ErrNotReady is returned by a Tables that is nil or was torn down.
	ErrNotReady = errors.New("tessellation: tables not initialized")

	// ErrNoNeighbour is returned for a step into a pentagon gap.
	ErrNoNeighbour = errors.New("tessellation: no neighbour in that direction")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tessellation: invalid option supplied")
)

// Link is one adjacency entry: the anchor reached and the rotation, in
// counter-clockwise sixths of a turn, applied to every direction carried
// across.
type Link struct {
	Anchor   cell.Anchor
	Rotation int8
}

// Valid reports whether the entry exists (gap entries are zero).
func (l Link) Valid() bool { return l.Anchor.Valid() }

// Kind selects which subtree recurrence applies to a cell.
type Kind uint8

const (
	// KindVertex is a vertex-type cell: a bare face or a path ending in 1..6.
	KindVertex Kind = iota
	// KindCentroid is a hexagonal cell ending in a centroid digit.
	KindCentroid
	// KindPentagon is a pentagon-shaped cell below resolution 0.
	KindPentagon
)

// OwnedFace pairs a face with the resolution-1 direction it lies in as
// seen from its owning pentagon.
type OwnedFace struct {
	Direction digits.Direction
	Face      cell.Anchor
}

// Option configures Initialize.
type Option func(*Options)

// Options holds the table build parameters.
type Options struct {
	// MaxResolution bounds the derived count and radius tables.
	MaxResolution int

	// CellRadius is the angular radius, in radians on the unit sphere, of a
	// resolution-0 cell: the arc from a pentagon centre to a face centre.
	CellRadius float64

	err error
}

// DefaultOptions returns MaxResolution = digits.MaxResolution and the
// icosahedral resolution-0 radius.
func DefaultOptions() Options {
	return Options{
		MaxResolution: digits.MaxResolution,
		CellRadius:    0.6523581397843682,
	}
}

// WithMaxResolution limits the derived tables to resolutions 0..r.
func WithMaxResolution(r int) Option {
	return func(o *Options) {
		if r < 1 || r > digits.MaxResolution {
			o.err = fmt.Errorf("%w: MaxResolution must be in [1,%d] (%d)", ErrOptionViolation, digits.MaxResolution, r)

			return
		}
		o.MaxResolution = r
	}
}

// WithCellRadius overrides the resolution-0 angular radius.
func WithCellRadius(rad float64) Option {
	return func(o *Options) {
		if rad <= 0 {
			o.err = fmt.Errorf("%w: CellRadius must be positive (%g)", ErrOptionViolation, rad)

			return
		}
		o.CellRadius = rad
	}
}
