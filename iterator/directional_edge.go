package iterator

import (
	"fmt"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
	"github.com/katalvlaran/dggs/gridmath"
)

// edgeNode is one level of the edge walk: the grandchildren of a cell that
// may still lead to an edge cell of the sector, and the next one to try.
// Two resolutions separate consecutive nodes, so the stack never grows past
// half the depth.
type edgeNode struct {
	cands []cell.Index
	next  int
}

// DirectionalEdge enumerates the cells at a data resolution that lie under
// root, inside root's sector dir, and touch a cell outside root. The walk
// descends two resolutions at a time and prunes every branch that has left
// the sector or the boundary.
//
// Cells come out in canonical order, ascending CellPosition under root, the
// order Exhaustive would list them in. Consecutive cells are not
// necessarily adjacent: where the boundary folds back into a deeper
// subtree, the walk finishes that subtree before moving along.
type DirectionalEdge struct {
	e    *gridmath.Engine
	root cell.Index
	res  int
	dir  digits.Direction

	stack []edgeNode
	cur   cell.Index
	pos   int
	done  bool
	err   error
}

// checkContained rejects root/res pairs whose depth is not a positive even
// number: only then does every sector of the root close up on whole cells.
func checkContained(e *gridmath.Engine, root cell.Index, res int) error {
	if _, err := e.CellCount(root, res); err != nil {
		return err
	}
	depth := res - root.Resolution()
	if depth < 2 || depth%2 != 0 {
		return fmt.Errorf("%w: %s at resolution %d (depth %d)", ErrNotContained, root, res, depth)
	}

	return nil
}

// NewDirectionalEdge validates the arguments and positions the iterator on
// the first edge cell of sector dir. The gap sector of a pentagon root is
// valid and empty.
func NewDirectionalEdge(e *gridmath.Engine, root cell.Index, dir digits.Direction, res int) (*DirectionalEdge, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %d", digits.ErrInvalidDirection, dir)
	}
	if err := checkContained(e, root, res); err != nil {
		return nil, err
	}
	it := &DirectionalEdge{
		e:     e,
		root:  root,
		res:   res,
		dir:   dir,
		stack: make([]edgeNode, 0, (res-root.Resolution())/2),
	}
	it.Reset()

	return it, it.err
}

// Direction returns the sector being walked.
func (it *DirectionalEdge) Direction() digits.Direction { return it.dir }

// Current returns the cell under the cursor.
func (it *DirectionalEdge) Current() cell.Index { return it.cur }

// AtEnd reports whether the sector edge is exhausted.
func (it *DirectionalEdge) AtEnd() bool { return it.done }

// Err returns the failure that ended the walk early.
func (it *DirectionalEdge) Err() error { return it.err }

// Position returns how many cells were emitted before Current.
func (it *DirectionalEdge) Position() int { return it.pos }

// Reset rewinds to the first edge cell.
func (it *DirectionalEdge) Reset() {
	it.stack = it.stack[:0]
	it.cur, it.pos, it.done, it.err = cell.Index{}, 0, false, nil
	if !it.e.IsValidDirection(it.root, it.dir) {
		it.done = true

		return
	}
	it.push(it.root)
	it.walk()
}

// Advance moves to the next edge cell.
func (it *DirectionalEdge) Advance() {
	if it.done {
		return
	}
	it.pos++
	it.walk()
}

func (it *DirectionalEdge) walk() {
	for !it.done {
		if len(it.stack) == 0 {
			it.cur, it.done = cell.Index{}, true

			return
		}
		top := &it.stack[len(it.stack)-1]
		if top.next >= len(top.cands) {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		c := top.cands[top.next]
		top.next++
		if c.Resolution() < it.res {
			it.push(c)
			continue
		}
		// the centroid chain never reaches the edge at full depth
		if it.e.SectorFrom(it.root, c) == it.dir {
			it.cur = c

			return
		}
	}
}

// push stacks the grandchildren of c that stay in the sector (or on the
// root's centroid chain) and touch the outside of root.
func (it *DirectionalEdge) push(c cell.Index) {
	kids, err := it.e.Children(c)
	if err != nil {
		it.fail(err)

		return
	}
	var cands []cell.Index
	for _, k := range kids {
		grand, err := it.e.Children(k)
		if err != nil {
			it.fail(err)

			return
		}
		for _, g := range grand {
			if s := it.e.SectorFrom(it.root, g); s != digits.Centroid && s != it.dir {
				continue
			}
			onEdge, err := onBoundary(it.e, it.root, g)
			if err != nil {
				it.fail(err)

				return
			}
			if onEdge {
				cands = append(cands, g)
			}
		}
	}
	it.stack = append(it.stack, edgeNode{cands: cands})
}

func (it *DirectionalEdge) fail(err error) {
	it.err, it.done, it.cur = err, true, cell.Index{}
	it.stack = it.stack[:0]
}

// onBoundary reports whether c has a neighbour outside root's subtree.
func onBoundary(e *gridmath.Engine, root, c cell.Index) (bool, error) {
	ns, err := e.Neighbours(c)
	if err != nil {
		return false, err
	}
	for _, n := range ns {
		if !e.IsDescendant(root, n) {
			return true, nil
		}
	}

	return false, nil
}
