package digits

import (
	"fmt"
	"strings"
)

// Path is an ordered digit sequence from the least to the most resolved
// level. The zero value is the empty path (the anchor itself).
//
// Paths are values: every operation returns a new Path and never writes
// through to the receiver's backing array.
type Path struct {
	digits []Direction
}

// NewPath validates ds and returns them as a Path.
func NewPath(ds ...Direction) (Path, error) {
	if len(ds) > MaxResolution {
		return Path{}, fmt.Errorf("%w: path length %d", ErrInvalidResolution, len(ds))
	}
	for i, d := range ds {
		if !d.IsDigit() {
			return Path{}, fmt.Errorf("%w: digit %d at position %d", ErrInvalidDirection, d, i)
		}
	}
	out := make([]Direction, len(ds))
	copy(out, ds)

	return Path{digits: out}, nil
}

// MustPath is NewPath for literals known to be valid; it panics otherwise.
func MustPath(ds ...Direction) Path {
	p, err := NewPath(ds...)
	if err != nil {
		panic(err)
	}

	return p
}

// Len returns the number of digits.
func (p Path) Len() int { return len(p.digits) }

// IsEmpty reports whether p has no digits.
func (p Path) IsEmpty() bool { return len(p.digits) == 0 }

// At returns the i-th digit (0 is the least resolved).
func (p Path) At(i int) Direction { return p.digits[i] }

// Digits returns a copy of the digits.
func (p Path) Digits() []Direction {
	out := make([]Direction, len(p.digits))
	copy(out, p.digits)

	return out
}

// Equal reports whether both paths hold the same digits.
func (p Path) Equal(q Path) bool {
	if len(p.digits) != len(q.digits) {
		return false
	}
	for i := range p.digits {
		if p.digits[i] != q.digits[i] {
			return false
		}
	}

	return true
}

// String renders the digits as decimal characters, e.g. "00201".
func (p Path) String() string {
	var b strings.Builder
	b.Grow(len(p.digits))
	for _, d := range p.digits {
		b.WriteByte('0' + byte(d))
	}

	return b.String()
}

// append returns a copy of p extended by ds.
func (p Path) append(ds ...Direction) Path {
	out := make([]Direction, len(p.digits), len(p.digits)+len(ds))
	copy(out, p.digits)

	return Path{digits: append(out, ds...)}
}

// Trailing returns the last digit, or Centroid for the empty path.
func (p Path) Trailing() Direction {
	if len(p.digits) == 0 {
		return Centroid
	}

	return p.digits[len(p.digits)-1]
}

// Leading returns the first non-zero digit, or Centroid when every digit is 0.
func (p Path) Leading() Direction {
	for _, d := range p.digits {
		if d != Centroid {
			return d
		}
	}

	return Centroid
}

// IsCentroidChain reports whether every digit is 0.
func (p Path) IsCentroidChain() bool { return p.Leading() == Centroid }

// HasVertexChildren reports whether a non-empty path ends in a centroid
// child, the only cells that own vertex children.
func (p Path) HasVertexChildren() bool {
	return len(p.digits) > 0 && p.Trailing() == Centroid
}

// ZoomIn appends d. A vertex direction is only accepted when the path
// ends in a centroid child; anchors must start their path with 0.
func (p Path) ZoomIn(d Direction) (Path, error) {
	if !d.IsDigit() {
		return Path{}, fmt.Errorf("%w: %d", ErrInvalidDirection, d)
	}
	if len(p.digits) >= MaxResolution {
		return Path{}, fmt.Errorf("%w: path length %d", ErrInvalidResolution, len(p.digits)+1)
	}
	if d != Centroid && !p.HasVertexChildren() {
		return Path{}, fmt.Errorf("%w: %q toward %d", ErrNoVertexChild, p.String(), d)
	}

	return p.append(d), nil
}

// ZoomOut drops the trailing digit and returns it as the cell's direction
// within its parent.
func (p Path) ZoomOut() (Path, Direction, error) {
	n := len(p.digits)
	if n == 0 {
		return Path{}, Centroid, ErrEmptyPath
	}

	if n == 1 {
		return Path{}, p.digits[0], nil
	}

	return Path{digits: p.digits[:n-1:n-1]}, p.digits[n-1], nil
}

// SetLength pads with centroid digits or truncates to n digits.
func (p Path) SetLength(n int) (Path, error) {
	if n < 0 || n > MaxResolution {
		return Path{}, fmt.Errorf("%w: length %d", ErrInvalidResolution, n)
	}
	if n <= len(p.digits) {
		return Path{digits: p.digits[:n:n]}, nil
	}

	return p.append(make([]Direction, n-len(p.digits))...), nil
}

// Rotate turns every vertex digit by steps sixths of a turn.
func (p Path) Rotate(steps int) Path {
	out := make([]Direction, len(p.digits))
	for i, d := range p.digits {
		out[i] = d.Rotate(steps)
	}

	return Path{digits: out}
}

// IsAncestorOf reports whether p is a (non-strict) prefix of q.
func (p Path) IsAncestorOf(q Path) bool {
	if len(p.digits) > len(q.digits) {
		return false
	}
	for i, d := range p.digits {
		if q.digits[i] != d {
			return false
		}
	}

	return true
}

// DescendantIndex returns the suffix leading from p down to q.
func (p Path) DescendantIndex(q Path) (Path, error) {
	if !p.IsAncestorOf(q) {
		return Path{}, fmt.Errorf("%w: %q under %q", ErrNotADescendant, q.String(), p.String())
	}

	return Path{}.append(q.digits[len(p.digits):]...), nil
}

// Classification summarises a path at a given anchor resolution.
type Classification struct {
	Class    Class
	Leading  Direction
	Trailing Direction
}

// Classify returns the class of the path's resolution (base + length) and
// its leading and trailing digits.
func (p Path) Classify(base int) Classification {
	return Classification{
		Class:    ClassOf(base + len(p.digits)),
		Leading:  p.Leading(),
		Trailing: p.Trailing(),
	}
}

// Offset returns the lattice point of p at resolution base+Len(), taking
// the anchor centre as the origin.
//
// Complexity: O(n).
func (p Path) Offset(base int) Vector {
	var z Vector
	r := base
	for _, d := range p.digits {
		z = z.Mul(Sigma(r)).Add(Unit(d))
		r++
	}

	return z
}

// Move steps one cell in direction d at the path's own resolution. When
// the target stays inside the anchor the carry is zero and the returned
// path addresses it; otherwise the carry names the neighbouring anchor
// direction and the caller must correct the overflow.
func (p Path) Move(f Frame, d Direction) (Path, Carry, error) {
	if !d.Valid() {
		return Path{}, Carry{}, fmt.Errorf("%w: %d", ErrInvalidDirection, d)
	}
	if len(p.digits) == 0 {
		return Path{}, Carry{}, ErrEmptyPath
	}
	res := f.Base + len(p.digits)

	return f.Resolve(p.Offset(f.Base).Add(Unit(d)), res)
}
