package iterator

import (
	"fmt"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
	"github.com/katalvlaran/dggs/gridmath"
)

// Edge walks the whole boundary of a root's subtree at a contained data
// resolution: the directional edges of sectors 1..6 in turn, skipping the
// gap sector of a pentagon root. Within a sector the order is canonical, as
// for DirectionalEdge.
type Edge struct {
	e    *gridmath.Engine
	root cell.Index
	res  int
	dirs []digits.Direction

	part int
	sub  *DirectionalEdge
	pos  int
	done bool
	err  error
}

// NewEdge validates the arguments and positions the iterator on the first
// boundary cell.
func NewEdge(e *gridmath.Engine, root cell.Index, res int) (*Edge, error) {
	if err := checkContained(e, root, res); err != nil {
		return nil, err
	}
	it := &Edge{e: e, root: root, res: res}
	for _, d := range digits.Directions() {
		if e.IsValidDirection(root, d) {
			it.dirs = append(it.dirs, d)
		}
	}
	it.Reset()

	return it, it.err
}

// Current returns the cell under the cursor.
func (it *Edge) Current() cell.Index {
	if it.done {
		return cell.Index{}
	}

	return it.sub.Current()
}

// Direction returns the sector of the current cell.
func (it *Edge) Direction() digits.Direction {
	if it.done {
		return digits.Centroid
	}

	return it.sub.Direction()
}

// AtEnd reports whether the boundary is exhausted.
func (it *Edge) AtEnd() bool { return it.done }

// Err returns the failure that ended the walk early.
func (it *Edge) Err() error { return it.err }

// Position returns how many boundary cells precede Current.
func (it *Edge) Position() int { return it.pos }

// Reset rewinds to the first boundary cell.
func (it *Edge) Reset() {
	it.part, it.pos, it.done, it.err = -1, 0, false, nil
	it.sub = nil
	it.nextPart()
}

// Advance moves to the next boundary cell.
func (it *Edge) Advance() {
	if it.done {
		return
	}
	it.pos++
	it.sub.Advance()
	if it.sub.AtEnd() {
		if err := it.sub.Err(); err != nil {
			it.fail(err)

			return
		}
		it.nextPart()
	}
}

// nextPart opens the following non-empty sector.
func (it *Edge) nextPart() {
	for {
		it.part++
		if it.part >= len(it.dirs) {
			it.done = true

			return
		}
		sub, err := NewDirectionalEdge(it.e, it.root, it.dirs[it.part], it.res)
		if err != nil {
			it.fail(err)

			return
		}
		if !sub.AtEnd() {
			it.sub = sub

			return
		}
	}
}

// SetIteratorIndex rewinds and seeks to idx. When idx is not a boundary cell
// the iterator is left rewound and ErrNotOnEdge is returned.
func (it *Edge) SetIteratorIndex(idx cell.Index) error {
	if idx.Resolution() != it.res || !it.e.IsDescendant(it.root, idx) {
		it.Reset()

		return fmt.Errorf("%w: %s under %s at %d", ErrNotOnEdge, idx, it.root, it.res)
	}
	for it.Reset(); !it.AtEnd(); it.Advance() {
		if it.Current().Equal(idx) {
			return nil
		}
	}
	if it.err != nil {
		return it.err
	}
	it.Reset()

	return fmt.Errorf("%w: %s under %s at %d", ErrNotOnEdge, idx, it.root, it.res)
}

// CalcCurrentOffset returns the canonical ordinal of the current cell among
// all cells at the data resolution under root, the index a dense per-cell
// array would store it at.
func (it *Edge) CalcCurrentOffset() (int64, error) {
	if it.done {
		return 0, fmt.Errorf("%w: iterator at end", cell.ErrNullIndex)
	}

	return it.e.CellPosition(it.root, it.Current())
}

func (it *Edge) fail(err error) {
	it.err, it.done, it.sub = err, true, nil
}
