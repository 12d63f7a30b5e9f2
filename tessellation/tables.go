package tessellation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
)

// Tables is the read-only connectivity context. Build it with Initialize;
// the zero value and a torn-down Tables report ErrNotReady.
type Tables struct {
	maxRes int
	ready  bool

	vertex   []int64 // subtree size of a vertex-type cell, by depth
	centroid []int64 // subtree size of a centroid-type hexagon, by depth
	pentagon []int64 // subtree size of a pentagon chain cell, by depth

	world  []int64   // cells on the sphere, by resolution
	offset [][]int64 // offset[res][p-1]: cells of pentagons 1..p-1 at res
	radius []float64 // unit-sphere angular radius, by resolution

	owned [cell.NumPentagons + 1][]OwnedFace
}

// Initialize derives every count, offset and radius table.
//
// Time: O(R·P) with R = MaxResolution, P = 12. Memory: O(R·P).
func Initialize(opts ...Option) (*Tables, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := o.MaxResolution + 1
	t := &Tables{
		maxRes:   o.MaxResolution,
		vertex:   make([]int64, n),
		centroid: make([]int64, n),
		pentagon: make([]int64, n),
		world:    make([]int64, n),
		offset:   make([][]int64, n),
		radius:   make([]float64, n),
	}

	// owner tables first, the anchor counts depend on them
	for p := 1; p <= cell.NumPentagons; p++ {
		a := cell.PentagonAnchor(p)
		for i, l := range pentagonFine[p-1] {
			if l.Valid() && faceVertices[l.Anchor.Face()][0] == a {
				t.owned[p] = append(t.owned[p], OwnedFace{Direction: digits.Direction(i + 1), Face: l.Anchor})
			}
		}
	}

	t.vertex[0], t.centroid[0], t.pentagon[0] = 1, 1, 1
	for k := 1; k < n; k++ {
		t.vertex[k] = t.centroid[k-1]
		t.centroid[k] = t.centroid[k-1] + 6*t.vertex[k-1]
		t.pentagon[k] = t.pentagon[k-1] + 5*t.vertex[k-1]
	}

	for r := 0; r < n; r++ {
		t.offset[r] = make([]int64, cell.NumPentagons)
		var sum int64
		for p := 1; p <= cell.NumPentagons; p++ {
			t.offset[r][p-1] = sum
			sum += t.anchorCount(p, r)
		}
		t.world[r] = sum
		t.radius[r] = o.CellRadius / math.Pow(math.Sqrt(3), float64(r))
	}
	t.ready = true

	return t, nil
}

// Teardown retires the tables. Every later lookup reports ErrNotReady, or
// the zero value for the accessors without an error result.
func (t *Tables) Teardown() {
	if t == nil {
		return
	}
	t.ready = false
	t.vertex, t.centroid, t.pentagon = nil, nil, nil
	t.world, t.offset, t.radius = nil, nil, nil
	t.owned = [cell.NumPentagons + 1][]OwnedFace{}
}

// Ready reports whether t may be used.
func (t *Tables) Ready() bool { return t != nil && t.ready }

// MaxResolution returns the deepest resolution the derived tables cover.
func (t *Tables) MaxResolution() int {
	if !t.Ready() {
		return -1
	}

	return t.maxRes
}

func (t *Tables) checkRes(res int) error {
	if !t.Ready() {
		return ErrNotReady
	}
	if res < 0 || res > t.maxRes {
		return fmt.Errorf("%w: %d outside [0,%d]", digits.ErrInvalidResolution, res, t.maxRes)
	}

	return nil
}

// anchorCount is the subtree size of bare pentagon p after depth levels.
func (t *Tables) anchorCount(p, depth int) int64 {
	if depth == 0 {
		return 1
	}

	return t.pentagon[depth-1] + int64(len(t.owned[p]))*t.vertex[depth-1]
}

// SubtreeCount returns how many cells of kind k's subtree lie depth levels down.
func (t *Tables) SubtreeCount(k Kind, depth int) (int64, error) {
	if err := t.checkRes(depth); err != nil {
		return 0, err
	}
	switch k {
	case KindVertex:
		return t.vertex[depth], nil
	case KindCentroid:
		return t.centroid[depth], nil
	case KindPentagon:
		return t.pentagon[depth], nil
	default:
		return 0, fmt.Errorf("tessellation: unknown subtree kind %d", k)
	}
}

// AnchorCount returns the cells under bare pentagon p at depth levels down,
// the owned faces included.
func (t *Tables) AnchorCount(p cell.Anchor, depth int) (int64, error) {
	if err := t.checkRes(depth); err != nil {
		return 0, err
	}
	if !p.IsPentagon() {
		return 0, fmt.Errorf("%w: %s is not a pentagon", cell.ErrInvalidAnchor, p)
	}

	return t.anchorCount(p.Pentagon(), depth), nil
}

// WorldCount returns the number of cells covering the sphere at res.
func (t *Tables) WorldCount(res int) (int64, error) {
	if err := t.checkRes(res); err != nil {
		return 0, err
	}

	return t.world[res], nil
}

// AnchorOffset returns the number of cells at res that precede pentagon p's
// subtree in the canonical world order.
func (t *Tables) AnchorOffset(p cell.Anchor, res int) (int64, error) {
	if err := t.checkRes(res); err != nil {
		return 0, err
	}
	if !p.IsPentagon() {
		return 0, fmt.Errorf("%w: %s is not a pentagon", cell.ErrInvalidAnchor, p)
	}

	return t.offset[res][p.Pentagon()-1], nil
}

// CellRadius returns the approximate angular radius of a cell at res on
// the unit sphere, in radians.
func (t *Tables) CellRadius(res int) (float64, error) {
	if err := t.checkRes(res); err != nil {
		return 0, err
	}

	return t.radius[res], nil
}

// Gap returns the missing direction of pentagon p, Centroid for faces.
func (t *Tables) Gap(p cell.Anchor) digits.Direction {
	if !t.Ready() {
		return digits.Centroid
	}

	return p.Gap()
}

// Step returns the anchor one step of band b in direction d away from a.
func (t *Tables) Step(a cell.Anchor, b digits.Band, d digits.Direction) (Link, error) {
	if !t.Ready() {
		return Link{}, ErrNotReady
	}
	if !d.Valid() {
		return Link{}, fmt.Errorf("%w: %d", digits.ErrInvalidDirection, d)
	}
	var l Link
	switch {
	case a.IsPentagon() && b == digits.BandCoarse:
		l = pentagonCoarse[a.Pentagon()-1][d-1]
	case a.IsPentagon() && b == digits.BandFine:
		l = pentagonFine[a.Pentagon()-1][d-1]
	case a.IsFace() && b == digits.BandCoarse:
		l = faceCoarse[a.Face()][d-1]
	case a.IsFace() && b == digits.BandFine:
		l = faceFine[a.Face()][d-1]
	default:
		return Link{}, fmt.Errorf("%w: anchor %s band %d", cell.ErrInvalidAnchor, a, b)
	}
	if !l.Valid() {
		return Link{}, fmt.Errorf("%w: %s toward %d", ErrNoNeighbour, a, d)
	}

	return l, nil
}

// Back returns the direction, in to's frame and of band b, that points
// back at from.
func (t *Tables) Back(from, to cell.Anchor, b digits.Band) (digits.Direction, bool) {
	for _, d := range digits.Directions() {
		l, err := t.Step(to, b, d)
		if err == nil && l.Anchor == from {
			return d, true
		}
	}

	return digits.Centroid, false
}

// Owner returns the pentagon that owns face f for iteration.
func (t *Tables) Owner(f cell.Anchor) cell.Anchor {
	if !t.Ready() || !f.IsFace() {
		return cell.NoAnchor
	}

	return faceVertices[f.Face()][0]
}

// Vertices returns the three pentagons of face f, owner first.
func (t *Tables) Vertices(f cell.Anchor) [3]cell.Anchor {
	if !t.Ready() || !f.IsFace() {
		return [3]cell.Anchor{}
	}

	return faceVertices[f.Face()]
}

// FaceDirection returns the resolution-1 direction from pentagon p to face f.
func (t *Tables) FaceDirection(p, f cell.Anchor) (digits.Direction, bool) {
	if !t.Ready() || !p.IsPentagon() || !f.IsFace() {
		return digits.Centroid, false
	}
	for i, l := range pentagonFine[p.Pentagon()-1] {
		if l.Anchor == f {
			return digits.Direction(i + 1), true
		}
	}

	return digits.Centroid, false
}

// OwnedFaces lists the faces owned by pentagon p in direction order.
func (t *Tables) OwnedFaces(p cell.Anchor) []OwnedFace {
	if !t.Ready() || !p.IsPentagon() {
		return nil
	}
	out := make([]OwnedFace, len(t.owned[p.Pentagon()]))
	copy(out, t.owned[p.Pentagon()])

	return out
}
