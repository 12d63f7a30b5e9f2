package gridmath_test

import (
	"testing"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
	"github.com/katalvlaran/dggs/gridmath"
	"github.com/katalvlaran/dggs/tessellation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type step struct {
	to  string
	rot int
}

func TestMove_KnownNeighbours(t *testing.T) {
	e := newEngine(t)
	cases := map[string][6]step{
		"1":      {{}, {"2", 3}, {"3", 2}, {"4", 1}, {"5", 0}, {"6", 5}},
		"A":      {{"1-0", 4}, {"E", 1}, {"2-0", 0}, {"F", 5}, {"3-0", 0}, {"B", 5}},
		"1-0":    {{}, {"A", 2}, {"B", 1}, {"C", 0}, {"D", 5}, {"E", 4}},
		"A-0":    {{"1-03", 4}, {"1-02", 4}, {"2-02", 1}, {"2-06", 0}, {"3-03", 0}, {"3-02", 0}},
		"1-02":   {{"E-0", 3}, {"2-02", 3}, {"A-0", 2}, {"1-03", 0}, {"1-00", 0}, {"1-06", 5}},
		"1-00":   {{}, {"1-02", 0}, {"1-03", 0}, {"1-04", 0}, {"1-05", 0}, {"1-06", 0}},
		"A-01":   {{"1-002", 4}, {"1-020", 4}, {"A-02", 0}, {"A-00", 0}, {"A-06", 0}, {"1-030", 4}},
		"12-00":  {{"12-01", 0}, {"12-02", 0}, {"12-03", 0}, {}, {"12-05", 0}, {"12-06", 0}},
		"7-0103": {{"7-0102", 0}, {"P-010", 3}, {"7-0206", 0}, {"7-0010", 0}, {"7-0104", 0}, {"7-0100", 0}},
		"B-0000": {{"B-0001", 0}, {"B-0002", 0}, {"B-0003", 0}, {"B-0004", 0}, {"B-0005", 0}, {"B-0006", 0}},
	}
	for from, want := range cases {
		t.Run(from, func(t *testing.T) {
			idx := cell.MustParse(from)
			for i, d := range digits.Directions() {
				got, rot, err := e.MoveWithRotation(idx, d)
				if want[i].to == "" {
					require.ErrorIs(t, err, digits.ErrInvalidDirection, "dir %d", d)
					assert.False(t, e.IsValidDirection(idx, d))

					continue
				}
				require.NoError(t, err, "dir %d", d)
				assert.Equal(t, want[i].to, got.String(), "dir %d", d)
				assert.Equal(t, want[i].rot, rot, "dir %d", d)
			}
		})
	}
}

// The scenario from the reference data: "1-02" toward 6, then back toward 2.
func TestMove_ReferenceRoundTrip(t *testing.T) {
	e := newEngine(t)
	start := cell.MustParse("1-02")
	mid, rot, err := e.MoveWithRotation(start, digits.Dir6)
	require.NoError(t, err)
	back := digits.Dir6.Opposite().Rotate(rot)
	assert.Equal(t, digits.Dir2, back)
	got, err := e.Move(mid, back)
	require.NoError(t, err)
	assert.Equal(t, "1-02", got.String())
}

// Every step of every cell up to resolution 5 must lead to a real cell,
// return along the rotated opposite with the negated rotation, and give
// hexagons six and pentagons five distinct neighbours.
func TestMove_WorldConsistency(t *testing.T) {
	e := newEngine(t)
	for res := 0; res <= 5; res++ {
		cells := worldCells(t, e, res)
		known := make(map[string]bool, len(cells))
		for _, c := range cells {
			known[c.String()] = true
		}
		for _, c := range cells {
			seen := map[string]bool{}
			for _, d := range digits.Directions() {
				n, rot, ok := e.TryMove(c, d)
				if !ok {
					require.True(t, c.IsPentagon(), "%s toward %d", c, d)
					continue
				}
				require.True(t, known[n.String()], "%s toward %d gave %s", c, d, n)
				seen[n.String()] = true

				b, brot, err := e.MoveWithRotation(n, d.Opposite().Rotate(rot))
				require.NoError(t, err)
				require.Equal(t, c.String(), b.String(), "%s toward %d and back", c, d)
				require.Equal(t, 0, digits.NormalizeRotation(rot+brot))
			}
			want := 6
			if c.IsPentagon() {
				want = 5
			}
			require.Len(t, seen, want, "neighbours of %s", c)
		}
	}
}

func TestMove_Errors(t *testing.T) {
	e := newEngine(t)
	_, err := e.Move(cell.Index{}, digits.Dir1)
	require.ErrorIs(t, err, cell.ErrNullIndex)
	_, err = e.Move(cell.MustParse("A-0"), digits.Centroid)
	require.ErrorIs(t, err, digits.ErrInvalidDirection)
	_, err = e.Move(cell.MustParse("A-0"), digits.Direction(8))
	require.ErrorIs(t, err, digits.ErrInvalidDirection)
	_, err = e.Move(cell.MustParse("7"), digits.Dir4)
	require.ErrorIs(t, err, digits.ErrInvalidDirection)

	_, _, ok := e.TryMove(cell.MustParse("1-0"), digits.Dir1)
	assert.False(t, ok)

	tb, err := tessellation.Initialize(tessellation.WithMaxResolution(3))
	require.NoError(t, err)
	small, err := gridmath.New(tb)
	require.NoError(t, err)
	_, err = small.Move(cell.MustParse("A-0000"), digits.Dir1)
	require.ErrorIs(t, err, digits.ErrInvalidResolution)
	tb.Teardown()
	_, err = small.Move(cell.MustParse("A-0"), digits.Dir1)
	require.ErrorIs(t, err, tessellation.ErrNotReady)
	_, err = gridmath.New(tb)
	require.ErrorIs(t, err, tessellation.ErrNotReady)
}

func TestNeighbours(t *testing.T) {
	e := newEngine(t)
	ns, err := e.Neighbours(cell.MustParse("1-0"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, names(ns))

	ns, err = e.Neighbours(cell.MustParse("A-0"))
	require.NoError(t, err)
	assert.Len(t, ns, 6)
}
