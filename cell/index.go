package cell

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dggs/digits"
)

// Index is a cell: an anchor plus the digit path below it.
// The zero value is the null index.
type Index struct {
	anchor Anchor
	path   digits.Path
}

// New validates the pair and returns the index.
//
// Rules checked: the anchor is valid, the first digit is the centroid
// (both anchor kinds start their path with 0), a vertex digit only follows
// a centroid digit, a pentagon path never enters its gap sector, and the
// resolution stays within digits.MaxResolution.
func New(a Anchor, p digits.Path) (Index, error) {
	if !a.Valid() {
		return Index{}, fmt.Errorf("%w: %d", ErrInvalidAnchor, a)
	}
	if res := a.Resolution() + p.Len(); res > digits.MaxResolution {
		return Index{}, fmt.Errorf("%w: %d", digits.ErrInvalidResolution, res)
	}
	for i := 0; i < p.Len(); i++ {
		d := p.At(i)
		if d == digits.Centroid {
			continue
		}
		if i == 0 {
			return Index{}, fmt.Errorf("%w: %s-%s starts with a vertex digit", ErrInvalidPath, a, p)
		}
		if p.At(i-1) != digits.Centroid {
			return Index{}, fmt.Errorf("%w: %s-%s has a vertex digit under a vertex child", ErrInvalidPath, a, p)
		}
	}
	if g := a.Gap(); g != digits.Centroid && p.Leading() == g {
		return Index{}, fmt.Errorf("%w: %s-%s lies in gap sector %d: %w", ErrInvalidPath, a, p, g, digits.ErrInvalidDirection)
	}

	return Index{anchor: a, path: p}, nil
}

// Bare returns the index of the anchor itself.
func Bare(a Anchor) Index {
	if !a.Valid() {
		return Index{}
	}

	return Index{anchor: a}
}

// Parse reads the textual form "<anchor>" or "<anchor>-<digits>".
func Parse(s string) (Index, error) {
	head, tail, dashed := strings.Cut(s, "-")
	a, err := ParseAnchor(head)
	if err != nil {
		return Index{}, err
	}
	if dashed && tail == "" {
		return Index{}, fmt.Errorf("%w: %q has an empty path", ErrMalformed, s)
	}
	ds := make([]digits.Direction, len(tail))
	for i := 0; i < len(tail); i++ {
		c := tail[i]
		if c < '0' || c > '6' {
			return Index{}, fmt.Errorf("%w: %q has digit %q", ErrMalformed, s, c)
		}
		ds[i] = digits.Direction(c - '0')
	}
	p, err := digits.NewPath(ds...)
	if err != nil {
		return Index{}, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
	}

	return New(a, p)
}

// MustParse is Parse for literals; it panics on error.
func MustParse(s string) Index {
	idx, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return idx
}

// IsNull reports whether idx is the unset index.
func (idx Index) IsNull() bool { return idx.anchor == NoAnchor }

// Validate returns ErrNullIndex for the null index.
func (idx Index) Validate() error {
	if idx.IsNull() {
		return ErrNullIndex
	}

	return nil
}

// Equal reports whether both indices name the same cell (null equals null).
func (idx Index) Equal(o Index) bool {
	return idx.anchor == o.anchor && idx.path.Equal(o.path)
}

// Anchor returns the anchor (NoAnchor for null).
func (idx Index) Anchor() Anchor { return idx.anchor }

// Path returns the digit path below the anchor.
func (idx Index) Path() digits.Path { return idx.path }

// Resolution returns the anchor resolution plus the path length,
// or -1 for the null index.
func (idx Index) Resolution() int {
	if idx.IsNull() {
		return -1
	}

	return idx.anchor.Resolution() + idx.path.Len()
}

// IsBare reports whether idx is an anchor without a path.
func (idx Index) IsBare() bool { return !idx.IsNull() && idx.path.IsEmpty() }

// IsPentagon reports whether the cell is pentagon-shaped: a pentagon
// anchor followed only by centroid digits.
func (idx Index) IsPentagon() bool {
	return idx.anchor.IsPentagon() && idx.path.IsCentroidChain()
}

// IsFace reports whether idx is anchored on a face.
func (idx Index) IsFace() bool { return idx.anchor.IsFace() }

// IsVertexChild reports whether the cell sits on a vertex of its parent:
// a bare face or a path ending in a vertex digit.
func (idx Index) IsVertexChild() bool {
	if idx.IsNull() {
		return false
	}
	if idx.IsBare() {
		return idx.anchor.IsFace()
	}

	return idx.path.Trailing() != digits.Centroid
}

// HasVertexChildren reports whether the cell owns vertex children
// (bare pentagons and centroid-type cells).
func (idx Index) HasVertexChildren() bool {
	return !idx.IsNull() && !idx.IsVertexChild()
}

// Class returns the structural class of the cell's resolution.
func (idx Index) Class() digits.Class { return digits.ClassOf(idx.Resolution()) }

// Frame returns the lattice frame of the anchor.
func (idx Index) Frame() digits.Frame {
	if idx.anchor.IsFace() {
		return digits.FaceFrame
	}

	return digits.PentagonFrame
}

// Sector returns the first vertex digit of the path (Centroid when none).
// For pentagon anchors it names the cone of the pentagon the cell lies in.
func (idx Index) Sector() digits.Direction { return idx.path.Leading() }

// ZoomIn returns the child in direction d. Bare anchors only zoom into
// their centroid here; the faces around a pentagon are resolved by the
// tessellation.
func (idx Index) ZoomIn(d digits.Direction) (Index, error) {
	if idx.IsNull() {
		return Index{}, ErrNullIndex
	}
	if idx.Resolution() >= digits.MaxResolution {
		return Index{}, fmt.Errorf("%w: %d", digits.ErrInvalidResolution, idx.Resolution()+1)
	}
	if g := idx.anchor.Gap(); d != digits.Centroid && d == g && idx.path.IsCentroidChain() {
		return Index{}, fmt.Errorf("zoom %s toward its gap %d: %w", idx, d, digits.ErrInvalidDirection)
	}
	p, err := idx.path.ZoomIn(d)
	if err != nil {
		return Index{}, fmt.Errorf("zoom %s toward %d: %w", idx, d, err)
	}

	return Index{anchor: idx.anchor, path: p}, nil
}

// ZoomOut returns the parent inside the same anchor together with the
// cell's direction within it. Bare anchors report ErrAnchorParent.
func (idx Index) ZoomOut() (Index, digits.Direction, error) {
	if idx.IsNull() {
		return Index{}, digits.Centroid, ErrNullIndex
	}
	if idx.IsBare() {
		return Index{}, digits.Centroid, fmt.Errorf("%w: %s", ErrAnchorParent, idx)
	}
	p, d, err := idx.path.ZoomOut()
	if err != nil {
		return Index{}, digits.Centroid, err
	}

	return Index{anchor: idx.anchor, path: p}, d, nil
}

// Parent is ZoomOut without the direction.
func (idx Index) Parent() (Index, error) {
	p, _, err := idx.ZoomOut()

	return p, err
}

// SetResolution pads the path with centroid digits or truncates it so the
// cell lands on resolution res, which may not go below the anchor.
func (idx Index) SetResolution(res int) (Index, error) {
	if idx.IsNull() {
		return Index{}, ErrNullIndex
	}
	base := idx.anchor.Resolution()
	if res < base || res > digits.MaxResolution {
		return Index{}, fmt.Errorf("%w: %d for anchor %s", digits.ErrInvalidResolution, res, idx.anchor)
	}
	p, err := idx.path.SetLength(res - base)
	if err != nil {
		return Index{}, err
	}

	return Index{anchor: idx.anchor, path: p}, nil
}

// WithPath swaps the path, keeping the anchor, and validates the result.
func (idx Index) WithPath(p digits.Path) (Index, error) {
	if idx.IsNull() {
		return Index{}, ErrNullIndex
	}

	return New(idx.anchor, p)
}

// Compare orders indices by anchor, then digit by digit, with ancestors
// before their descendants.
func (idx Index) Compare(o Index) int {
	switch {
	case idx.anchor < o.anchor:
		return -1
	case idx.anchor > o.anchor:
		return 1
	}
	n := min(idx.path.Len(), o.path.Len())
	for i := 0; i < n; i++ {
		a, b := idx.path.At(i), o.path.At(i)
		if a != b {
			if a < b {
				return -1
			}

			return 1
		}
	}

	switch {
	case idx.path.Len() < o.path.Len():
		return -1
	case idx.path.Len() > o.path.Len():
		return 1
	}

	return 0
}

// String renders the textual form, or "null".
func (idx Index) String() string {
	if idx.IsNull() {
		return "null"
	}
	if idx.path.IsEmpty() {
		return idx.anchor.String()
	}

	return idx.anchor.String() + "-" + idx.path.String()
}
