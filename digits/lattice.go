package digits

import "fmt"

// MaxResolution is the deepest resolution the int64 lattice and the
// cell-count tables can represent exactly.
const MaxResolution = 36

// Class is the structural role a resolution plays. Class I lattices
// (even resolutions) point direction 1 along the anchor axis; class II
// lattices (odd resolutions) are turned a further 30 degrees.
type Class uint8

const (
	ClassI Class = iota + 1
	ClassII
)

// String returns "I" or "II".
func (c Class) String() string {
	if c == ClassII {
		return "II"
	}

	return "I"
}

// ClassOf returns the class of resolution res.
func ClassOf(res int) Class {
	if res%2 == 0 {
		return ClassI
	}

	return ClassII
}

var (
	sigmaEven = Vector{2, -1}
	sigmaOdd  = Vector{1, 1}
)

// Sigma maps a native vector at resolution res onto the lattice of
// resolution res+1: a centroid child of z sits at Sigma(res)·z.
func Sigma(res int) Vector {
	if res%2 == 0 {
		return sigmaEven
	}

	return sigmaOdd
}

// Scale carries v from the lattice of resolution from to the lattice of
// resolution to (to >= from) by multiplying Sigma(from)..Sigma(to-1).
func Scale(v Vector, from, to int) Vector {
	for r := from; r < to; r++ {
		v = v.Mul(Sigma(r))
	}

	return v
}

// Coarse returns the resolution-0 step in direction d expressed in the
// resolution-1 lattice (norm 3).
func Coarse(d Direction) Vector {
	if !d.Valid() {
		return Vector{}
	}

	return sigmaEven.Rotate(int(d) - 1)
}

// Band tells which resolution a carry belongs to.
type Band uint8

const (
	// BandNone marks an absorbed move: the target is inside the anchor.
	BandNone Band = iota
	// BandCoarse marks a carry in a resolution-0 direction (pentagon to pentagon).
	BandCoarse
	// BandFine marks a carry in a resolution-1 direction.
	BandFine
)

// Carry is the resolution-1 remainder of a move relative to its anchor.
type Carry struct {
	Offset Vector
}

// IsZero reports whether the move stayed inside the anchor.
func (c Carry) IsZero() bool { return c.Offset.IsZero() }

// Band classifies the carry and returns its direction. Offsets that are
// neither a unit nor a coarse step are reported with ErrOverflow.
func (c Carry) Band() (Band, Direction, error) {
	if c.Offset.IsZero() {
		return BandNone, Centroid, nil
	}
	if d, ok := c.Offset.UnitDirection(); ok {
		return BandFine, d, nil
	}
	for _, d := range Directions() {
		if Coarse(d) == c.Offset {
			return BandCoarse, d, nil
		}
	}

	return BandNone, Centroid, fmt.Errorf("%w: carry %v spans more than one anchor", ErrOverflow, c.Offset)
}

// CarryFor builds the carry of band b in direction d.
func CarryFor(b Band, d Direction) Carry {
	switch b {
	case BandCoarse:
		return Carry{Offset: Coarse(d)}
	case BandFine:
		return Carry{Offset: Unit(d)}
	default:
		return Carry{}
	}
}

// Locate decomposes the lattice point v of resolution res into its
// resolution-1 ancestor offset and the digits of resolutions 2..res.
//
// Walking up one level: if v is divisible by Sigma(r-1) the cell is a
// centroid child; otherwise exactly one unit u makes v-u divisible by
// Sigma(r-1)·Sigma(r-2), and u names the vertex child.
//
// Complexity: O(res).
func Locate(v Vector, res int) (Carry, []Direction, error) {
	if res < 0 || res > MaxResolution {
		return Carry{}, nil, fmt.Errorf("%w: %d", ErrInvalidResolution, res)
	}
	if res <= 1 {
		return Carry{Offset: v}, nil, nil
	}
	out := make([]Direction, res-1)
	for r := res; r > 1; r-- {
		s := Sigma(r - 1)
		if q, ok := v.DivExact(s); ok {
			out[r-2] = Centroid
			v = q
			continue
		}
		grand := s.Mul(Sigma(r - 2))
		found := false
		for _, d := range Directions() {
			if w, ok := v.Sub(Unit(d)).DivExact(grand); ok {
				out[r-2] = d
				v = w.Mul(Sigma(r - 2))
				found = true
				break
			}
		}
		if !found {
			return Carry{}, nil, fmt.Errorf("%w: no parent for %v at resolution %d", ErrOverflow, v, r)
		}
	}

	return Carry{Offset: v}, out, nil
}

// Frame fixes how an anchor's paths sit in the lattice: Base is the
// anchor's own resolution and Origin the anchor centre relative to the
// point the canonical decomposition is taken from, in resolution-1 units.
type Frame struct {
	Base   int
	Origin Vector
}

var (
	// PentagonFrame is the frame of a resolution-0 pentagon anchor.
	PentagonFrame = Frame{Base: 0}
	// FaceFrame is the frame of a resolution-1 face anchor; its paths are
	// decomposed from the face's first vertex.
	FaceFrame = Frame{Base: 1, Origin: Vector{-1, 0}}
)

// Resolve locates the anchor-relative lattice point v at resolution res
// inside frame f. The returned path is only meaningful when the carry is zero.
func (f Frame) Resolve(v Vector, res int) (Path, Carry, error) {
	if res < f.Base {
		return Path{}, Carry{}, fmt.Errorf("%w: %d below frame base %d", ErrInvalidResolution, res, f.Base)
	}
	if res == f.Base {
		return Path{}, Carry{Offset: v}, nil
	}
	c, ds, err := Locate(v.Add(Scale(f.Origin, 1, res)), res)
	if err != nil {
		return Path{}, Carry{}, err
	}
	c.Offset = c.Offset.Sub(f.Origin)
	// paths of a frame below resolution 1 carry the resolution-1 centroid digit
	lead := 1 - f.Base
	out := make([]Direction, lead, lead+len(ds))
	out = append(out, ds...)

	return Path{digits: out}, c, nil
}
