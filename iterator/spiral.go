package iterator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
	"github.com/katalvlaran/dggs/gridmath"
)

// unitFactors expresses each direction as steps along directions 2 and 6.
var unitFactors = [digits.NumDirections + 1][2]int{
	{0, 0},
	{1, 1},   // 1 = 2 + 6
	{1, 0},   // 2
	{0, -1},  // 3 = -6
	{-1, -1}, // 4
	{-1, 0},  // 5 = -2
	{0, 1},   // 6
}

// RingsToCover returns how many rings around the centroid descendant of a
// vertex-type cell, depth resolutions down, are needed to reach every cell
// of its subtree at that depth. Centroid-type and pentagon subtrees spread
// further than this; NewSpiralCover measures those.
func RingsToCover(depth int) int {
	if depth < 0 {
		return 0
	}
	if depth < 4 {
		return depth
	}

	return 3 * RingsToCover(depth-2)
}

// ringCell is a cell of the spiral with the turn of its frame against the
// centre's frame and its offset from the centre.
type ringCell struct {
	idx    cell.Index
	rot    int
	f2, f6 int
}

// Spiral enumerates a centre cell and then its neighbours ring by ring:
// ring k holds the cells exactly k steps away. Each ring is grown from the
// previous one in order, trying directions 1..6 of the centre's frame, so
// rings stay closed across anchor boundaries and around pentagons.
type Spiral struct {
	e      *gridmath.Engine
	centre cell.Index
	rings  int

	ring []ringCell
	next int
	k    int
	seen map[string]struct{}
	cur  ringCell
	done bool
	err  error
}

// NewSpiral enumerates rings 0..rings around centre.
func NewSpiral(e *gridmath.Engine, centre cell.Index, rings int) (*Spiral, error) {
	if rings < 0 {
		return nil, fmt.Errorf("%w: negative ring count %d", ErrOptionViolation, rings)
	}
	if _, err := e.CellCount(centre, centre.Resolution()); err != nil {
		return nil, err
	}
	it := &Spiral{e: e, centre: centre, rings: rings}
	it.Reset()

	return it, it.err
}

// NewSpiralCover centres a spiral on root's centroid descendant at res with
// enough rings to reach every cell of root's subtree there: RingsToCover for
// the depth, or the ring the last descendant turns up in when a walk outward
// finds it further out.
func NewSpiralCover(e *gridmath.Engine, root cell.Index, res int) (*Spiral, error) {
	n, err := e.CellCount(root, res)
	if err != nil {
		return nil, err
	}
	c, err := root.SetResolution(res)
	if err != nil {
		return nil, err
	}
	it, err := NewSpiral(e, c, math.MaxInt)
	if err != nil {
		return nil, err
	}

	var found int64
	rings := -1
	for ; !it.AtEnd(); it.Advance() {
		if !e.IsDescendant(root, it.Current()) {
			continue
		}
		if found++; found == n {
			rings = it.Ring()
			break
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	if rings < 0 {
		return nil, fmt.Errorf("%w: spiral around %s met %d of %d cells", gridmath.ErrOverflow, c, found, n)
	}
	it.rings = max(rings, RingsToCover(res-root.Resolution()))
	it.Reset()

	return it, nil
}

// Rings returns the outermost ring the spiral emits.
func (it *Spiral) Rings() int { return it.rings }

// Reset rewinds to the centre.
func (it *Spiral) Reset() {
	it.cur = ringCell{idx: it.centre}
	it.ring = []ringCell{it.cur}
	it.next, it.k = 1, 0
	it.seen = map[string]struct{}{it.centre.String(): {}}
	it.done, it.err = false, nil
}

// Current returns the cell under the cursor.
func (it *Spiral) Current() cell.Index { return it.cur.idx }

// Ring returns the ring of the current cell, 0 for the centre.
func (it *Spiral) Ring() int { return it.k }

// Factors returns the current cell's offset from the centre as steps along
// directions 2 and 6 of the centre's frame, accumulated along the path the
// spiral reached it by.
func (it *Spiral) Factors() (f2, f6 int) { return it.cur.f2, it.cur.f6 }

// AtEnd reports whether every ring has been emitted.
func (it *Spiral) AtEnd() bool { return it.done }

// Err returns the failure that ended the walk early.
func (it *Spiral) Err() error { return it.err }

// Advance moves to the next cell, opening the next ring when the current one
// is used up.
func (it *Spiral) Advance() {
	if it.done {
		return
	}
	for it.next >= len(it.ring) {
		if it.k >= it.rings {
			it.cur, it.done = ringCell{}, true

			return
		}
		if err := it.grow(); err != nil {
			it.err, it.done, it.cur = err, true, ringCell{}

			return
		}
		if len(it.ring) == 0 {
			it.done = true

			return
		}
	}
	it.cur = it.ring[it.next]
	it.next++
}

// grow replaces the current ring with the unseen neighbours of its cells.
func (it *Spiral) grow() error {
	var out []ringCell
	for _, rc := range it.ring {
		for _, d := range digits.Directions() {
			local := d.Rotate(rc.rot)
			if !it.e.IsValidDirection(rc.idx, local) {
				continue
			}
			n, rot, err := it.e.MoveWithRotation(rc.idx, local)
			if err != nil {
				return err
			}
			key := n.String()
			if _, dup := it.seen[key]; dup {
				continue
			}
			it.seen[key] = struct{}{}
			out = append(out, ringCell{
				idx: n,
				rot: digits.NormalizeRotation(rc.rot + rot),
				f2:  rc.f2 + unitFactors[d][0],
				f6:  rc.f6 + unitFactors[d][1],
			})
		}
	}
	it.ring, it.next = out, 0
	it.k++

	return nil
}
