package digits

import "fmt"

// Vector is the Eisenstein integer A + B·ω with ω = e^{iπ/3}.
// Inside one anchor and one resolution it addresses a cell centre in the
// resolution's native lattice, where Unit(d) is the step to the neighbour
// in direction d.
type Vector struct {
	A, B int64
}

// units[d-1] is ω^(d-1).
var units = [NumDirections]Vector{
	{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}, {1, -1},
}

// Unit returns the lattice step for d; Centroid maps to the zero vector.
func Unit(d Direction) Vector {
	if !d.Valid() {
		return Vector{}
	}

	return units[d-1]
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector { return Vector{v.A + w.A, v.B + w.B} }

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector { return Vector{v.A - w.A, v.B - w.B} }

// Neg returns -v.
func (v Vector) Neg() Vector { return Vector{-v.A, -v.B} }

// Mul returns the Eisenstein product v·w, using ω² = ω - 1.
func (v Vector) Mul(w Vector) Vector {
	return Vector{
		A: v.A*w.A - v.B*w.B,
		B: v.A*w.B + v.B*w.A + v.B*w.B,
	}
}

// Conj returns the complex conjugate: conj(ω) = 1 - ω.
func (v Vector) Conj() Vector { return Vector{v.A + v.B, -v.B} }

// Norm returns |v|² = A² + A·B + B².
func (v Vector) Norm() int64 { return v.A*v.A + v.A*v.B + v.B*v.B }

// IsZero reports whether v is the origin.
func (v Vector) IsZero() bool { return v.A == 0 && v.B == 0 }

// Rotate multiplies v by ω^steps (counter-clockwise sixths of a turn).
func (v Vector) Rotate(steps int) Vector {
	for k := NormalizeRotation(steps); k > 0; k-- {
		v = Vector{-v.B, v.A + v.B}
	}

	return v
}

// DivExact returns v / w when the quotient is an Eisenstein integer.
// The second result is false when w is zero or does not divide v.
func (v Vector) DivExact(w Vector) (Vector, bool) {
	n := w.Norm()
	if n == 0 {
		return Vector{}, false
	}
	p := v.Mul(w.Conj())
	if p.A%n != 0 || p.B%n != 0 {
		return Vector{}, false
	}

	return Vector{p.A / n, p.B / n}, true
}

// UnitDirection returns the direction d with Unit(d) == v, if v is a unit.
func (v Vector) UnitDirection() (Direction, bool) {
	for i, u := range units {
		if u == v {
			return Direction(i + 1), true
		}
	}

	return Centroid, false
}

// String renders v as "(A,B)".
func (v Vector) String() string { return fmt.Sprintf("(%d,%d)", v.A, v.B) }
