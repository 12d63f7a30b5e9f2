package gridmath

import (
	"fmt"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
)

// FullSlices marks all 12 slices of a cell as occupied.
const FullSlices uint16 = 1<<12 - 1

// Covering is one coarser cell touched by a finer one. Slices has bit i
// set when the i-th 30-degree slice around the coarser cell's centre,
// counted counter-clockwise from its frame axis, holds part of the finer
// cell's footprint.
type Covering struct {
	Cell   cell.Index
	Slices uint16
}

// CoveringCells returns the cells one resolution up that idx overlaps: its
// parent alone for a centroid-type cell, or its parent followed by the two
// other cells sharing the vertex it sits on.
func (e *Engine) CoveringCells(idx cell.Index) ([]cell.Index, error) {
	cov, err := e.immediateCovering(idx)
	if err != nil {
		return nil, err
	}
	out := make([]cell.Index, len(cov))
	for i, c := range cov {
		out[i] = c.Cell
	}

	return out, nil
}

// CoveredCells returns the cells one resolution down that idx owns, the
// same list Children gives: the centroid child plus, for a centroid-type
// cell, its vertex children. Expanding CoveredCells recursively from any
// root visits every descendant exactly once.
func (e *Engine) CoveredCells(idx cell.Index) ([]cell.Index, error) {
	return e.Children(idx)
}

// OverlappedCells returns every cell one resolution down whose footprint
// overlaps idx: its centroid child and that child's neighbours (7 for
// hexagons, 6 for pentagons). For a vertex-type cell all but the first
// belong to neighbouring parents.
func (e *Engine) OverlappedCells(idx cell.Index) ([]cell.Index, error) {
	c, err := e.ZoomIntoNeighbourhood(idx, digits.Centroid)
	if err != nil {
		return nil, err
	}
	ring, err := e.Neighbours(c)
	if err != nil {
		return nil, err
	}

	return append([]cell.Index{c}, ring...), nil
}

// AllCoveringCells returns the immediate covering cells of idx with their
// slice masks, followed by every further ancestor up to resolution 0, each
// with the slices the descent toward idx passes through.
func (e *Engine) AllCoveringCells(idx cell.Index) ([]Covering, error) {
	out, err := e.immediateCovering(idx)
	if err != nil {
		return nil, err
	}
	mask := out[0].Slices
	cur := out[0].Cell
	for cur.Resolution() > 0 {
		parent, err := e.ZoomOut(cur)
		if err != nil {
			return nil, err
		}
		if cur.IsVertexChild() {
			mask = vertexSlices(e.ChildDirection(parent, cur), cur.Resolution())
		}
		out = append(out, Covering{Cell: parent, Slices: mask})
		cur = parent
	}

	return out, nil
}

func (e *Engine) immediateCovering(idx cell.Index) ([]Covering, error) {
	if err := e.check(idx); err != nil {
		return nil, err
	}
	parent, err := e.ZoomOut(idx)
	if err != nil {
		return nil, err
	}
	if !idx.IsVertexChild() {
		return []Covering{{Cell: parent, Slices: FullSlices}}, nil
	}

	out := make([]Covering, 0, 3)
	var parentSlices uint16
	for _, d := range digits.Directions() {
		if !e.IsValidDirection(idx, d) {
			continue
		}
		n, rot, err := e.MoveWithRotation(idx, d)
		if err != nil {
			return nil, err
		}
		if n.IsVertexChild() {
			continue
		}
		owner, err := e.ZoomOut(n)
		if err != nil {
			return nil, err
		}
		slices := vertexSlices(d.Opposite().Rotate(rot), idx.Resolution())
		if owner.Equal(parent) {
			parentSlices = slices
			continue
		}
		out = append(out, Covering{Cell: owner, Slices: slices})
	}
	if parentSlices == 0 {
		return nil, fmt.Errorf("%w: %s is not adjacent to its parent's centre", ErrOverflow, idx)
	}

	return append([]Covering{{Cell: parent, Slices: parentSlices}}, out...), nil
}

// vertexSlices marks the two slices either side of direction d at
// resolution res, where directions sit at 60(d-1) degrees on class I
// resolutions and 30 degrees further on class II ones.
func vertexSlices(d digits.Direction, res int) uint16 {
	if !d.Valid() {
		return 0
	}
	i := 2 * (int(d) - 1)
	if digits.ClassOf(res) == digits.ClassII {
		i++
	}

	return 1<<uint(i%12) | 1<<uint((i+11)%12)
}
