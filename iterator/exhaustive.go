package iterator

import (
	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/gridmath"
)

// frame is one level of a depth-first walk: the children of a cell and the
// next one to visit.
type frame struct {
	kids []cell.Index
	next int
}

// Exhaustive enumerates every cell at one resolution under a root, in the
// canonical order: centroid child first, then vertex children by direction,
// depth first. The k-th cell emitted is gridmath.IndexFromOffset(root, res, k).
type Exhaustive struct {
	e    *gridmath.Engine
	root cell.Index
	res  int

	stack []frame
	cur   cell.Index
	pos   int64
	done  bool
	err   error
}

// NewExhaustive validates root and res (root's resolution up to the engine's
// maximum) and positions the iterator on the first cell.
func NewExhaustive(e *gridmath.Engine, root cell.Index, res int) (*Exhaustive, error) {
	if _, err := e.CellCount(root, res); err != nil {
		return nil, err
	}
	it := &Exhaustive{
		e:     e,
		root:  root,
		res:   res,
		stack: make([]frame, 0, res-root.Resolution()),
	}
	it.Reset()

	return it, it.err
}

// Reset rewinds to the first cell.
func (it *Exhaustive) Reset() {
	it.stack = it.stack[:0]
	it.cur, it.pos, it.done, it.err = cell.Index{}, 0, false, nil
	if it.root.Resolution() == it.res {
		it.cur = it.root

		return
	}
	it.push(it.root)
	it.descend()
}

// Current returns the cell under the cursor.
func (it *Exhaustive) Current() cell.Index { return it.cur }

// AtEnd reports whether every cell has been emitted.
func (it *Exhaustive) AtEnd() bool { return it.done }

// Err returns the failure that ended the walk early.
func (it *Exhaustive) Err() error { return it.err }

// Ordinal returns the 0-based position of Current in the enumeration.
func (it *Exhaustive) Ordinal() int64 { return it.pos }

// Advance moves to the next cell.
func (it *Exhaustive) Advance() {
	if it.done {
		return
	}
	it.pos++
	it.descend()
}

func (it *Exhaustive) push(c cell.Index) {
	kids, err := it.e.Children(c)
	if err != nil {
		it.fail(err)

		return
	}
	it.stack = append(it.stack, frame{kids: kids})
}

// descend pops exhausted frames and walks down the next branch until it
// reaches the target resolution.
func (it *Exhaustive) descend() {
	for !it.done {
		if len(it.stack) == 0 {
			it.cur, it.done = cell.Index{}, true

			return
		}
		top := &it.stack[len(it.stack)-1]
		if top.next >= len(top.kids) {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		c := top.kids[top.next]
		top.next++
		if c.Resolution() == it.res {
			it.cur = c

			return
		}
		it.push(c)
	}
}

func (it *Exhaustive) fail(err error) {
	it.err, it.done, it.cur = err, true, cell.Index{}
	it.stack = it.stack[:0]
}
