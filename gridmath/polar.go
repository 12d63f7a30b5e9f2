package gridmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
	"github.com/katalvlaran/dggs/tessellation"
)

// Polar is a position in an anchor's tangent plane: the angle runs
// counter-clockwise from the anchor frame's direction-1 axis and the
// radius is measured in resolution-0 units (the distance between two
// neighbouring pentagon centres).
type Polar struct {
	Anchor cell.Anchor
	Angle  s1.Angle
	Radius float64
}

var sqrt3 = math.Sqrt(3)

// maxPolarRadius bounds PolarToIndex input, in resolution-0 units. The
// overflow tables reach one anchor past the origin, so anything further
// cannot resolve and is refused before lattice rounding.
const maxPolarRadius = 2.0

// latticeScale returns the length of a native unit at resolution res.
func latticeScale(res int) float64 { return math.Pow(sqrt3, -float64(res)) }

// latticeTurn returns the angle of direction 1 at resolution res.
func latticeTurn(res int) s1.Angle {
	if digits.ClassOf(res) == digits.ClassII {
		return 30 * s1.Degree
	}

	return 0
}

// toPlane maps a native lattice vector of resolution res to the plane.
func toPlane(v digits.Vector, res int) r2.Point {
	x := float64(v.A) + float64(v.B)/2
	y := float64(v.B) * sqrt3 / 2
	s := latticeScale(res)
	sin, cos := math.Sincos(latticeTurn(res).Radians())

	return r2.Point{X: s * (x*cos - y*sin), Y: s * (x*sin + y*cos)}
}

// fromPlane rounds a plane point to the nearest native lattice vector of
// resolution res (hexagonal rounding in cube coordinates).
func fromPlane(p r2.Point, res int) digits.Vector {
	s := latticeScale(res)
	sin, cos := math.Sincos(-latticeTurn(res).Radians())
	x := (p.X*cos - p.Y*sin) / s
	y := (p.X*sin + p.Y*cos) / s

	b := y * 2 / sqrt3
	a := x - b/2
	c := -a - b
	ra, rb, rc := math.Round(a), math.Round(b), math.Round(c)
	da, db, dc := math.Abs(ra-a), math.Abs(rb-b), math.Abs(rc-c)
	switch {
	case da > db && da > dc:
		ra = -rb - rc
	case db > dc:
		rb = -ra - rc
	}

	return digits.Vector{A: int64(ra), B: int64(rb)}
}

// IndexToPolar returns the centre of idx in its anchor's tangent plane,
// with the angle in [0, 360) degrees.
func (e *Engine) IndexToPolar(idx cell.Index) (Polar, error) {
	if err := e.check(idx); err != nil {
		return Polar{}, err
	}
	p := toPlane(idx.Path().Offset(idx.Frame().Base), idx.Resolution())
	ang := s1.Angle(math.Atan2(p.Y, p.X))
	if ang < 0 {
		ang += 360 * s1.Degree
	}

	return Polar{Anchor: idx.Anchor(), Angle: ang, Radius: p.Norm()}, nil
}

// PolarToIndex returns the cell at resolution res whose centre is nearest
// to the polar position. Positions past a neighbouring anchor are resolved
// through the same overflow tables as Move; a position in a pentagon's
// missing sector is turned toward the nearer edge of the gap.
func (e *Engine) PolarToIndex(pos Polar, res int) (cell.Index, error) {
	if !e.t.Ready() {
		return cell.Index{}, tessellation.ErrNotReady
	}
	if !pos.Anchor.Valid() {
		return cell.Index{}, fmt.Errorf("%w: %d", cell.ErrInvalidAnchor, pos.Anchor)
	}
	if res < pos.Anchor.Resolution() || res > e.t.MaxResolution() {
		return cell.Index{}, fmt.Errorf("%w: %d for anchor %s", digits.ErrInvalidResolution, res, pos.Anchor)
	}
	if pos.Radius < 0 || pos.Radius > maxPolarRadius || math.IsNaN(pos.Radius) {
		return cell.Index{}, fmt.Errorf("%w: radius %g", ErrOverflow, pos.Radius)
	}
	sin, cos := math.Sincos(pos.Angle.Radians())
	z := fromPlane(r2.Point{X: pos.Radius * cos, Y: pos.Radius * sin}, res)

	side := 0
	if pos.Anchor.IsPentagon() {
		// the missing sector is centred on the resolution-1 gap direction
		gap := e.t.Gap(pos.Anchor)
		centre := s1.Angle(60*float64(gap-1)+30) * s1.Degree
		if (pos.Angle - centre).Normalized() < 0 {
			side = -1
		} else {
			side = 1
		}
	}
	out, _, err := e.resolve(pos.Anchor, z, res, side)
	if err != nil {
		return cell.Index{}, fmt.Errorf("polar %v in %s: %w", pos.Angle, pos.Anchor, err)
	}

	return out, nil
}
