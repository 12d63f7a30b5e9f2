package cell

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/dggs/digits"
)

// Anchor identifies a resolution-0 pentagon or a resolution-1 face.
// The zero value is NoAnchor.
type Anchor uint8

const (
	NoAnchor Anchor = iota
	Pentagon1
	Pentagon2
	Pentagon3
	Pentagon4
	Pentagon5
	Pentagon6
	Pentagon7
	Pentagon8
	Pentagon9
	Pentagon10
	Pentagon11
	Pentagon12
	FaceA
	FaceB
	FaceC
	FaceD
	FaceE
	FaceF
	FaceG
	FaceH
	FaceI
	FaceJ
	FaceK
	FaceL
	FaceM
	FaceN
	FaceO
	FaceP
	FaceQ
	FaceR
	FaceS
	FaceT
)

const (
	// NumPentagons is the number of icosahedron vertices.
	NumPentagons = 12
	// NumFaces is the number of icosahedron faces.
	NumFaces = 20
)

// PentagonAnchor returns the anchor of pentagon n (1-based).
func PentagonAnchor(n int) Anchor {
	if n < 1 || n > NumPentagons {
		return NoAnchor
	}

	return Anchor(n)
}

// FaceAnchor returns the anchor of face i (0-based, A == 0).
func FaceAnchor(i int) Anchor {
	if i < 0 || i >= NumFaces {
		return NoAnchor
	}

	return FaceA + Anchor(i)
}

// Valid reports whether a names a pentagon or a face.
func (a Anchor) Valid() bool { return a >= Pentagon1 && a <= FaceT }

// IsPentagon reports whether a is a resolution-0 vertex anchor.
func (a Anchor) IsPentagon() bool { return a >= Pentagon1 && a <= Pentagon12 }

// IsFace reports whether a is a resolution-1 face anchor.
func (a Anchor) IsFace() bool { return a >= FaceA && a <= FaceT }

// Pentagon returns the 1-based pentagon number, or 0 for faces.
func (a Anchor) Pentagon() int {
	if !a.IsPentagon() {
		return 0
	}

	return int(a)
}

// Face returns the 0-based face number, or -1 for pentagons.
func (a Anchor) Face() int {
	if !a.IsFace() {
		return -1
	}

	return int(a - FaceA)
}

// gapDirection[p] is the missing direction of pentagon p (index 0 unused).
var gapDirection = [NumPentagons + 1]digits.Direction{0, 1, 1, 1, 1, 1, 1, 4, 4, 4, 4, 4, 4}

// Gap returns the direction missing around pentagon a: 1 for the northern
// pentagons 1..6, 4 for the southern 7..12, and Centroid for faces.
func (a Anchor) Gap() digits.Direction {
	if !a.IsPentagon() {
		return digits.Centroid
	}

	return gapDirection[a.Pentagon()]
}

// Resolution returns 0 for pentagons and 1 for faces.
func (a Anchor) Resolution() int {
	if a.IsFace() {
		return 1
	}

	return 0
}

// String renders pentagons as decimals and faces as letters.
func (a Anchor) String() string {
	switch {
	case a.IsPentagon():
		return strconv.Itoa(int(a))
	case a.IsFace():
		return string(rune('A' + a.Face()))
	default:
		return "null"
	}
}

// ParseAnchor reads "1".."12" (a leading zero is tolerated) or "A".."T".
func ParseAnchor(s string) (Anchor, error) {
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'T' {
		return FaceAnchor(int(s[0] - 'A')), nil
	}
	if len(s) == 0 || len(s) > 2 || !isDecimal(s) {
		return NoAnchor, fmt.Errorf("%w: %q", ErrInvalidAnchor, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > NumPentagons {
		return NoAnchor, fmt.Errorf("%w: %q", ErrInvalidAnchor, s)
	}

	return PentagonAnchor(n), nil
}

// Pentagons lists the 12 pentagon anchors in order.
func Pentagons() []Anchor {
	out := make([]Anchor, 0, NumPentagons)
	for n := 1; n <= NumPentagons; n++ {
		out = append(out, PentagonAnchor(n))
	}

	return out
}

// Faces lists the 20 face anchors in order.
func Faces() []Anchor {
	out := make([]Anchor, 0, NumFaces)
	for i := 0; i < NumFaces; i++ {
		out = append(out, FaceAnchor(i))
	}

	return out
}

func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
