package iterator

import (
	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
	"github.com/katalvlaran/dggs/gridmath"
)

// Vertex enumerates the cells one resolution down that sit on the vertices
// of a cell: the neighbours of its centroid child, by direction, five for a
// pentagon and six otherwise.
type Vertex struct {
	e      *gridmath.Engine
	centre cell.Index

	i    int
	cur  cell.Index
	done bool
	err  error
}

// NewVertex positions the iterator on the first vertex cell of idx.
func NewVertex(e *gridmath.Engine, idx cell.Index) (*Vertex, error) {
	centre, err := e.ZoomIntoNeighbourhood(idx, digits.Centroid)
	if err != nil {
		return nil, err
	}
	it := &Vertex{e: e, centre: centre}
	it.Reset()

	return it, it.err
}

// Reset rewinds to the first direction.
func (it *Vertex) Reset() {
	it.i, it.done, it.err = 0, false, nil
	it.seek()
}

// Current returns the cell under the cursor.
func (it *Vertex) Current() cell.Index { return it.cur }

// Direction returns the direction of the current cell from the centre.
func (it *Vertex) Direction() digits.Direction {
	if it.done {
		return digits.Centroid
	}

	return digits.Direction(it.i)
}

// AtEnd reports whether every direction has been tried.
func (it *Vertex) AtEnd() bool { return it.done }

// Err returns the failure that ended the walk early.
func (it *Vertex) Err() error { return it.err }

// Advance moves to the next valid direction.
func (it *Vertex) Advance() {
	if it.done {
		return
	}
	it.seek()
}

// seek steps i to the next direction the centre can move in and loads it.
func (it *Vertex) seek() {
	for it.i++; it.i <= digits.NumDirections; it.i++ {
		d := digits.Direction(it.i)
		if !it.e.IsValidDirection(it.centre, d) {
			continue
		}
		c, err := it.e.Move(it.centre, d)
		if err != nil {
			it.err, it.done, it.cur = err, true, cell.Index{}

			return
		}
		it.cur = c

		return
	}
	it.cur, it.done = cell.Index{}, true
}
