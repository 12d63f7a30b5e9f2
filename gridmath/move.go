package gridmath

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
	"github.com/katalvlaran/dggs/tessellation"
)

// Move returns the neighbour of idx in direction d.
func (e *Engine) Move(idx cell.Index, d digits.Direction) (cell.Index, error) {
	out, _, err := e.MoveWithRotation(idx, d)

	return out, err
}

// TryMove is MoveWithRotation that reports failure as false instead of an
// error, for callers probing directions.
func (e *Engine) TryMove(idx cell.Index, d digits.Direction) (cell.Index, int, bool) {
	out, rot, err := e.MoveWithRotation(idx, d)
	if err != nil {
		return cell.Index{}, 0, false
	}

	return out, rot, true
}

// MoveWithRotation returns the neighbour of idx in direction d and the
// rotation of its frame relative to idx's frame, in [0, 6).
//
// Dispatch by resolution band:
//
//   - bare pentagon: resolution-0 pentagon table; the gap direction fails;
//   - bare face: resolution-1 face table; a pentagon target becomes its
//     resolution-1 centroid "P-0";
//   - everything else: lattice step, then overflow and gap correction.
func (e *Engine) MoveWithRotation(idx cell.Index, d digits.Direction) (cell.Index, int, error) {
	if err := e.check(idx); err != nil {
		return cell.Index{}, 0, err
	}
	if !d.Valid() {
		return cell.Index{}, 0, fmt.Errorf("%w: %d", digits.ErrInvalidDirection, d)
	}
	a := idx.Anchor()

	if idx.IsBare() {
		band := digits.BandFine
		if a.IsPentagon() {
			band = digits.BandCoarse
		}
		l, err := e.t.Step(a, band, d)
		if err != nil {
			if errors.Is(err, tessellation.ErrNoNeighbour) {
				return cell.Index{}, 0, fmt.Errorf("%w: %s has a gap toward %d", digits.ErrInvalidDirection, idx, d)
			}

			return cell.Index{}, 0, err
		}
		out := cell.Bare(l.Anchor)
		if a.IsFace() && l.Anchor.IsPentagon() {
			if out, err = out.ZoomIn(digits.Centroid); err != nil {
				return cell.Index{}, 0, err
			}
		}

		return out, digits.NormalizeRotation(int(l.Rotation)), nil
	}

	side := 0
	if a.IsPentagon() {
		g := e.t.Gap(a)
		s := idx.Sector()
		if s == digits.Centroid && d == g {
			return cell.Index{}, 0, fmt.Errorf("%w: %s has a gap toward %d", digits.ErrInvalidDirection, idx, d)
		}
		side = sideToward(g, s)
	}
	z := idx.Path().Offset(idx.Frame().Base).Add(digits.Unit(d))

	return e.resolve(a, z, idx.Resolution(), side)
}

// resolve turns an anchor-relative lattice point into a canonical index,
// applying overflow and gap corrections until the point settles inside an
// anchor. side is the gap-correction turn for the current anchor (0: none
// known). The accumulated rotation is returned in [0, 6).
func (e *Engine) resolve(a cell.Anchor, z digits.Vector, res, side int) (cell.Index, int, error) {
	rot := 0
	for hop := 0; hop < maxHops; hop++ {
		var (
			path  digits.Path
			carry digits.Carry
			err   error
		)
		if a.IsPentagon() {
			if res == 0 {
				return e.resolveCoarse(a, z, rot)
			}
			path, carry, err = digits.PentagonFrame.Resolve(z, res)
			if err != nil {
				return cell.Index{}, 0, fmt.Errorf("%w: %v", ErrOverflow, err)
			}
			sector := path.Leading()
			if !carry.IsZero() {
				_, sector, err = carry.Band()
				if err != nil {
					return cell.Index{}, 0, fmt.Errorf("%w: %v", ErrOverflow, err)
				}
			}
			if sector == e.t.Gap(a) {
				if side == 0 {
					return cell.Index{}, 0, fmt.Errorf("%w: landed in the gap of %s with no side", ErrOverflow, a)
				}
				z = z.Rotate(side)
				rot += side
				continue
			}
		} else {
			path, carry, err = digits.FaceFrame.Resolve(z, res)
			if err != nil {
				return cell.Index{}, 0, fmt.Errorf("%w: %v", ErrOverflow, err)
			}
		}
		if carry.IsZero() {
			out, err := cell.New(a, path)
			if err != nil {
				return cell.Index{}, 0, fmt.Errorf("%w: %v", ErrOverflow, err)
			}

			return out, digits.NormalizeRotation(rot), nil
		}

		band, dir, err := carry.Band()
		if err != nil {
			return cell.Index{}, 0, fmt.Errorf("%w: %v", ErrOverflow, err)
		}
		l, err := e.t.Step(a, band, dir)
		if err != nil {
			return cell.Index{}, 0, fmt.Errorf("%w: %v", ErrOverflow, err)
		}
		z = z.Sub(digits.Scale(carry.Offset, 1, res)).Rotate(int(l.Rotation))
		rot += int(l.Rotation)
		side = 0
		if l.Anchor.IsPentagon() {
			if back, ok := e.t.Back(a, l.Anchor, band); ok && back != e.t.Gap(l.Anchor) {
				side = sideToward(e.t.Gap(l.Anchor), back)
			}
		}
		a = l.Anchor
	}

	return cell.Index{}, 0, fmt.Errorf("%w: more than %d corrections", ErrOverflow, maxHops)
}

// resolveCoarse settles a resolution-0 lattice point: the pentagon itself
// or one of its five neighbours.
func (e *Engine) resolveCoarse(a cell.Anchor, z digits.Vector, rot int) (cell.Index, int, error) {
	if z.IsZero() {
		return cell.Bare(a), digits.NormalizeRotation(rot), nil
	}
	d, ok := z.UnitDirection()
	if !ok {
		return cell.Index{}, 0, fmt.Errorf("%w: %v is beyond the neighbours of %s", ErrOverflow, z, a)
	}
	l, err := e.t.Step(a, digits.BandCoarse, d)
	if err != nil {
		return cell.Index{}, 0, fmt.Errorf("%w: %v", ErrOverflow, err)
	}

	return cell.Bare(l.Anchor), digits.NormalizeRotation(rot + int(l.Rotation)), nil
}

// Neighbours returns the cells one step away in direction order, skipping
// a pentagon's gap.
func (e *Engine) Neighbours(idx cell.Index) ([]cell.Index, error) {
	if err := e.check(idx); err != nil {
		return nil, err
	}
	out := make([]cell.Index, 0, digits.NumDirections)
	for _, d := range digits.Directions() {
		if !e.IsValidDirection(idx, d) {
			continue
		}
		n, err := e.Move(idx, d)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}
