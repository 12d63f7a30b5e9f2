package gridmath

import (
	"fmt"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
)

// WorldCount returns the number of cells on the sphere at res.
func (e *Engine) WorldCount(res int) (int64, error) { return e.t.WorldCount(res) }

// CellCount returns how many cells at resolution res lie under root,
// without enumerating them.
func (e *Engine) CellCount(root cell.Index, res int) (int64, error) {
	if err := e.check(root); err != nil {
		return 0, err
	}
	depth := res - root.Resolution()
	if depth < 0 || res > e.t.MaxResolution() {
		return 0, fmt.Errorf("%w: %d for %s", digits.ErrInvalidResolution, res, root)
	}
	if root.IsBare() && root.Anchor().IsPentagon() {
		return e.t.AnchorCount(root.Anchor(), depth)
	}

	return e.t.SubtreeCount(kind(root), depth)
}

// CellPosition returns the 0-based ordinal of idx among the cells of its
// resolution under root, in the order an exhaustive walk emits them.
//
// Complexity: O(d·7) for a depth d below root.
func (e *Engine) CellPosition(root, idx cell.Index) (int64, error) {
	if err := e.check(root); err != nil {
		return 0, err
	}
	if err := e.check(idx); err != nil {
		return 0, err
	}
	if !e.IsDescendant(root, idx) {
		return 0, fmt.Errorf("%w: %s under %s", digits.ErrNotADescendant, idx, root)
	}
	res := idx.Resolution()
	var pos int64
	cur := root
	for r := root.Resolution() + 1; r <= res; r++ {
		next, err := e.AncestorAt(idx, r)
		if err != nil {
			return 0, err
		}
		children, err := e.Children(cur)
		if err != nil {
			return 0, err
		}
		for _, ch := range children {
			if ch.Equal(next) {
				break
			}
			n, err := e.CellCount(ch, res)
			if err != nil {
				return 0, err
			}
			pos += n
		}
		cur = next
	}

	return pos, nil
}

// IndexFromOffset inverts CellPosition: it returns the k-th cell at res
// under root by subtracting child subtree sizes while descending.
func (e *Engine) IndexFromOffset(root cell.Index, res int, k int64) (cell.Index, error) {
	total, err := e.CellCount(root, res)
	if err != nil {
		return cell.Index{}, err
	}
	if k < 0 || k >= total {
		return cell.Index{}, fmt.Errorf("%w: %d not in [0,%d)", ErrOffsetOutOfRange, k, total)
	}
	cur := root
	for cur.Resolution() < res {
		children, err := e.Children(cur)
		if err != nil {
			return cell.Index{}, err
		}
		descended := false
		for _, ch := range children {
			n, err := e.CellCount(ch, res)
			if err != nil {
				return cell.Index{}, err
			}
			if k < n {
				cur, descended = ch, true
				break
			}
			k -= n
		}
		if !descended {
			return cell.Index{}, fmt.Errorf("%w: children of %s exhausted", ErrOffsetOutOfRange, cur)
		}
	}

	return cur, nil
}

// WorldPosition returns the ordinal of idx among all cells of its
// resolution: pentagon subtrees in order 1..12, each in canonical order.
func (e *Engine) WorldPosition(idx cell.Index) (int64, error) {
	root, err := e.AncestorAt(idx, 0)
	if err != nil {
		return 0, err
	}
	off, err := e.t.AnchorOffset(root.Anchor(), idx.Resolution())
	if err != nil {
		return 0, err
	}
	pos, err := e.CellPosition(root, idx)
	if err != nil {
		return 0, err
	}

	return off + pos, nil
}

// IndexFromWorldOffset inverts WorldPosition.
func (e *Engine) IndexFromWorldOffset(res int, k int64) (cell.Index, error) {
	total, err := e.t.WorldCount(res)
	if err != nil {
		return cell.Index{}, err
	}
	if k < 0 || k >= total {
		return cell.Index{}, fmt.Errorf("%w: %d not in [0,%d)", ErrOffsetOutOfRange, k, total)
	}
	for _, p := range cell.Pentagons() {
		n, err := e.t.AnchorCount(p, res)
		if err != nil {
			return cell.Index{}, err
		}
		if k < n {
			return e.IndexFromOffset(cell.Bare(p), res, k)
		}
		k -= n
	}

	return cell.Index{}, fmt.Errorf("%w: %d past the last pentagon", ErrOffsetOutOfRange, k)
}
