package gridmath_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
	"github.com/katalvlaran/dggs/gridmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const polarTol = 1e-9

func TestIndexToPolar(t *testing.T) {
	e := newEngine(t)
	cases := []struct {
		idx    string
		angle  float64 // degrees
		radius float64
	}{
		{"1", 0, 0},
		{"1-0", 0, 0},
		{"A", 0, 0},
		{"1-02", 60, 1.0 / 3},
		{"1-05", 240, 1.0 / 3},
		{"A-01", 30, 1 / (3 * math.Sqrt(3))},
	}
	for _, tc := range cases {
		p, err := e.IndexToPolar(cell.MustParse(tc.idx))
		require.NoError(t, err, tc.idx)
		assert.Equal(t, cell.MustParse(tc.idx).Anchor(), p.Anchor)
		assert.InDelta(t, tc.radius, p.Radius, polarTol, tc.idx)
		if tc.radius > 0 {
			assert.InDelta(t, tc.angle, p.Angle.Degrees(), polarTol, tc.idx)
		}
	}
}

func TestPolarToIndex(t *testing.T) {
	e := newEngine(t)
	got, err := e.PolarToIndex(gridmath.Polar{Anchor: cell.FaceA, Angle: 30 * s1.Degree, Radius: 1 / math.Sqrt(3)}, 1)
	require.NoError(t, err)
	assert.Equal(t, "1-0", got.String())

	got, err = e.PolarToIndex(gridmath.Polar{Anchor: cell.Pentagon1, Angle: 61 * s1.Degree, Radius: 0.34}, 2)
	require.NoError(t, err)
	assert.Equal(t, "1-02", got.String())

	_, err = e.PolarToIndex(gridmath.Polar{Anchor: cell.FaceA}, 0)
	require.ErrorIs(t, err, digits.ErrInvalidResolution)
	_, err = e.PolarToIndex(gridmath.Polar{}, 3)
	require.ErrorIs(t, err, cell.ErrInvalidAnchor)
	for _, r := range []float64{-1, 2.5, 1e30, math.Inf(1), math.NaN()} {
		_, err = e.PolarToIndex(gridmath.Polar{Anchor: cell.FaceA, Radius: r}, 3)
		require.ErrorIs(t, err, gridmath.ErrOverflow, "radius %g", r)
	}
}

// Every cell centre maps back onto its own cell.
func TestPolar_RoundTrip(t *testing.T) {
	e := newEngine(t)
	for res := 0; res <= 4; res++ {
		for _, c := range worldCells(t, e, res) {
			p, err := e.IndexToPolar(c)
			require.NoError(t, err)
			back, err := e.PolarToIndex(p, res)
			require.NoError(t, err, "%s", c)
			require.Equal(t, c.String(), back.String())
		}
	}
}
