package gridmath_test

import (
	"testing"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/gridmath"
	"github.com/katalvlaran/dggs/tessellation"
	"github.com/stretchr/testify/require"
)

// newEngine builds tables and an engine torn down with the test.
func newEngine(tb testing.TB) *gridmath.Engine {
	tb.Helper()
	t, err := tessellation.Initialize()
	require.NoError(tb, err)
	tb.Cleanup(t.Teardown)
	e, err := gridmath.New(t)
	require.NoError(tb, err)

	return e
}

// worldCells lists every cell at res by expanding children from the 12
// pentagons.
func worldCells(tb testing.TB, e *gridmath.Engine, res int) []cell.Index {
	tb.Helper()
	level := cell.Pentagons()
	cells := make([]cell.Index, len(level))
	for i, p := range level {
		cells[i] = cell.Bare(p)
	}
	for r := 0; r < res; r++ {
		next := make([]cell.Index, 0, len(cells)*3)
		for _, c := range cells {
			ch, err := e.Children(c)
			require.NoError(tb, err)
			next = append(next, ch...)
		}
		cells = next
	}

	return cells
}

func names(cells []cell.Index) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.String()
	}

	return out
}
