package digits

import "strconv"

// Direction is one digit of a path: Centroid (0) or one of the six
// vertex directions Dir1..Dir6, numbered counter-clockwise.
type Direction uint8

const (
	// Centroid is the straight-down child sharing its parent's centre.
	Centroid Direction = iota
	Dir1
	Dir2
	Dir3
	Dir4
	Dir5
	Dir6
)

// NumDirections is the number of vertex directions around a hexagon.
const NumDirections = 6

// Valid reports whether d is one of the six vertex directions.
func (d Direction) Valid() bool { return d >= Dir1 && d <= Dir6 }

// IsDigit reports whether d may appear in a path (0..6).
func (d Direction) IsDigit() bool { return d <= Dir6 }

// Rotate turns d by steps sixths of a turn, counter-clockwise for positive
// steps. Centroid is rotation invariant.
func (d Direction) Rotate(steps int) Direction {
	if d == Centroid {
		return d
	}
	k := (int(d) - 1 + steps) % NumDirections
	if k < 0 {
		k += NumDirections
	}

	return Direction(k + 1)
}

// Opposite returns d rotated by half a turn.
func (d Direction) Opposite() Direction { return d.Rotate(3) }

// String renders the digit as a single decimal character.
func (d Direction) String() string { return strconv.Itoa(int(d)) }

// Directions lists the six vertex directions in counter-clockwise order.
func Directions() [NumDirections]Direction {
	return [NumDirections]Direction{Dir1, Dir2, Dir3, Dir4, Dir5, Dir6}
}

// NormalizeRotation folds any rotation count into [0, 6).
func NormalizeRotation(steps int) int {
	steps %= NumDirections
	if steps < 0 {
		steps += NumDirections
	}

	return steps
}
