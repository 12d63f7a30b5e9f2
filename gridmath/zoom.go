package gridmath

import (
	"fmt"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
)

// ZoomIntoNeighbourhood returns the cell one resolution finer in the
// neighbourhood of idx: its centroid child for Centroid, otherwise the
// centroid child's neighbour in direction d. The three irregular cases
// (bare pentagon, bare face, deeper cell) all start from the centroid child.
func (e *Engine) ZoomIntoNeighbourhood(idx cell.Index, d digits.Direction) (cell.Index, error) {
	if err := e.check(idx); err != nil {
		return cell.Index{}, err
	}
	if !d.IsDigit() {
		return cell.Index{}, fmt.Errorf("%w: %d", digits.ErrInvalidDirection, d)
	}
	c, err := idx.ZoomIn(digits.Centroid)
	if err != nil {
		return cell.Index{}, err
	}
	if d == digits.Centroid {
		return c, nil
	}

	return e.Move(c, d)
}

// ZoomIntoChildren returns the child of idx in direction d. A bare
// pentagon's vertex children are the faces it owns; asking for a face
// owned by another pentagon fails with ErrNotAChild.
func (e *Engine) ZoomIntoChildren(idx cell.Index, d digits.Direction) (cell.Index, error) {
	if err := e.check(idx); err != nil {
		return cell.Index{}, err
	}
	if !d.IsDigit() {
		return cell.Index{}, fmt.Errorf("%w: %d", digits.ErrInvalidDirection, d)
	}
	if d == digits.Centroid {
		return idx.ZoomIn(d)
	}
	if idx.IsPentagon() && d == e.t.Gap(idx.Anchor()) {
		return cell.Index{}, fmt.Errorf("%w: %s has a gap toward %d", digits.ErrInvalidDirection, idx, d)
	}
	if idx.IsBare() && idx.Anchor().IsPentagon() {
		for _, of := range e.t.OwnedFaces(idx.Anchor()) {
			if of.Direction == d {
				return cell.Bare(of.Face), nil
			}
		}

		return cell.Index{}, fmt.Errorf("%w: face toward %d of %s has another owner", ErrNotAChild, d, idx)
	}

	return idx.ZoomIn(d)
}

// Children returns the cells idx owns one resolution down, in canonical
// order: the centroid child first, then the vertex children by direction.
func (e *Engine) Children(idx cell.Index) ([]cell.Index, error) {
	if err := e.check(idx); err != nil {
		return nil, err
	}
	if idx.Resolution() >= e.t.MaxResolution() {
		return nil, fmt.Errorf("%w: %s is at the deepest resolution", digits.ErrInvalidResolution, idx)
	}
	c, err := idx.ZoomIn(digits.Centroid)
	if err != nil {
		return nil, err
	}
	out := make([]cell.Index, 1, 1+digits.NumDirections)
	out[0] = c
	if !idx.HasVertexChildren() {
		return out, nil
	}
	if idx.IsBare() {
		for _, of := range e.t.OwnedFaces(idx.Anchor()) {
			out = append(out, cell.Bare(of.Face))
		}

		return out, nil
	}
	for _, d := range digits.Directions() {
		if !e.IsValidDirection(idx, d) {
			continue
		}
		v, err := idx.ZoomIn(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// ZoomOut returns the parent of idx. A bare face collapses onto its owning
// pentagon; a bare pentagon has no parent.
func (e *Engine) ZoomOut(idx cell.Index) (cell.Index, error) {
	if err := e.check(idx); err != nil {
		return cell.Index{}, err
	}
	if idx.IsBare() {
		if idx.Anchor().IsFace() {
			return cell.Bare(e.t.Owner(idx.Anchor())), nil
		}

		return cell.Index{}, fmt.Errorf("%w: %s is at resolution 0", digits.ErrInvalidResolution, idx)
	}

	return idx.Parent()
}

// Parent is an alias of ZoomOut.
func (e *Engine) Parent(idx cell.Index) (cell.Index, error) { return e.ZoomOut(idx) }

// AncestorAt returns the ancestor of idx at resolution res.
func (e *Engine) AncestorAt(idx cell.Index, res int) (cell.Index, error) {
	if err := e.check(idx); err != nil {
		return cell.Index{}, err
	}
	if res < 0 || res > idx.Resolution() {
		return cell.Index{}, fmt.Errorf("%w: %d for %s", digits.ErrInvalidResolution, res, idx)
	}
	if idx.Anchor().IsFace() && res >= 1 {
		return idx.SetResolution(res)
	}
	if idx.Anchor().IsFace() {
		return cell.Bare(e.t.Owner(idx.Anchor())), nil
	}

	return idx.SetResolution(res)
}

// IsDescendant reports whether idx lies in the subtree of root (a cell is
// its own descendant).
func (e *Engine) IsDescendant(root, idx cell.Index) bool {
	if root.IsNull() || idx.IsNull() || idx.Resolution() < root.Resolution() {
		return false
	}
	anc, err := e.AncestorAt(idx, root.Resolution())

	return err == nil && anc.Equal(root)
}

// ChildDirection returns the direction of child within parent: the trailing
// digit, or for a face under its pentagon the resolution-1 face direction.
func (e *Engine) ChildDirection(parent, child cell.Index) digits.Direction {
	if parent.IsBare() && parent.Anchor().IsPentagon() && child.IsBare() && child.Anchor().IsFace() {
		d, _ := e.t.FaceDirection(parent.Anchor(), child.Anchor())

		return d
	}

	return child.Path().Trailing()
}

// SectorFrom returns the first vertex direction taken on the way from root
// down to idx, Centroid when idx lies on root's centroid chain. idx must be
// a descendant of root.
func (e *Engine) SectorFrom(root, idx cell.Index) digits.Direction {
	if root.IsBare() && root.Anchor().IsPentagon() && idx.Anchor().IsFace() {
		d, _ := e.t.FaceDirection(root.Anchor(), idx.Anchor())

		return d
	}
	p := idx.Path()
	for i := root.Path().Len(); i < p.Len(); i++ {
		if d := p.At(i); d != digits.Centroid {
			return d
		}
	}

	return digits.Centroid
}
