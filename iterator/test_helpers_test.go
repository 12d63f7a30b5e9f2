package iterator_test

import (
	"testing"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/gridmath"
	"github.com/katalvlaran/dggs/iterator"
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

func collect(tb testing.TB, it iterator.Iterator) []cell.Index {
	tb.Helper()
	out, err := iterator.Collect(it)
	require.NoError(tb, err)

	return out
}

func names(cells []cell.Index) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.String()
	}

	return out
}

// boundary lists the cells at res under root that touch a cell outside it.
func boundary(tb testing.TB, e *gridmath.Engine, root cell.Index, res int) []string {
	tb.Helper()
	ex, err := iterator.NewExhaustive(e, root, res)
	require.NoError(tb, err)
	var out []string
	for _, c := range collect(tb, ex) {
		ns, err := e.Neighbours(c)
		require.NoError(tb, err)
		for _, n := range ns {
			if !e.IsDescendant(root, n) {
				out = append(out, c.String())
				break
			}
		}
	}

	return out
}
