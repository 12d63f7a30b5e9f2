package region_test

import (
	"testing"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
	"github.com/katalvlaran/dggs/gridmath"
	"github.com/katalvlaran/dggs/region"
	"github.com/katalvlaran/dggs/tessellation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(tb testing.TB) *gridmath.Engine {
	tb.Helper()
	t, err := tessellation.Initialize(tessellation.WithMaxResolution(8))
	require.NoError(tb, err)
	tb.Cleanup(t.Teardown)
	e, err := gridmath.New(t)
	require.NoError(tb, err)

	return e
}

func parse(ss ...string) []cell.Index {
	out := make([]cell.Index, len(ss))
	for i, s := range ss {
		out[i] = cell.MustParse(s)
	}

	return out
}

func names(cells []cell.Index) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.String()
	}

	return out
}

func TestNew(t *testing.T) {
	e := newEngine(t)
	r, err := region.New(e, parse("1-05", "1-02", "1-05", "1-03"))
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 2, r.Resolution())
	assert.Equal(t, []string{"1-02", "1-03", "1-05"}, names(r.Cells()))
	assert.True(t, r.Contains(cell.MustParse("1-03")))
	assert.False(t, r.Contains(cell.MustParse("1-04")))

	_, err = region.New(e, nil)
	require.ErrorIs(t, err, region.ErrEmptyRegion)
	_, err = region.New(e, parse("1-02", "A"))
	require.ErrorIs(t, err, region.ErrMixedResolution)
	_, err = region.New(e, []cell.Index{{}})
	require.Error(t, err)
}

// The ring around 1-00 is five cells; taking 1-02, 1-03 and 1-05 leaves
// 1-05 cut off by the missing 1-04 and 1-06.
func TestConnectedComponents(t *testing.T) {
	e := newEngine(t)
	r, err := region.New(e, parse("1-02", "1-03", "1-05"))
	require.NoError(t, err)
	comps := r.ConnectedComponents()
	require.Len(t, comps, 2)
	assert.Equal(t, []string{"1-02", "1-03"}, names(comps[0]))
	assert.Equal(t, []string{"1-05"}, names(comps[1]))
}

// Every cell of a resolution forms a single component with no boundary.
func TestConnectedComponents_World(t *testing.T) {
	e := newEngine(t)
	var all []cell.Index
	for _, p := range cell.Pentagons() {
		c, err := cell.Bare(p).ZoomIn(digits.Centroid)
		require.NoError(t, err)
		all = append(all, c)
		for _, f := range e.Tables().OwnedFaces(p) {
			all = append(all, cell.Bare(f.Face))
		}
	}
	r, err := region.New(e, all)
	require.NoError(t, err)
	require.Equal(t, 32, r.Len())
	assert.Len(t, r.ConnectedComponents(), 1)
	assert.Empty(t, r.Boundary())
}

func TestBoundary(t *testing.T) {
	e := newEngine(t)
	kids, err := e.Children(cell.MustParse("1-0"))
	require.NoError(t, err)
	r, err := region.New(e, kids)
	require.NoError(t, err)
	assert.Equal(t, []string{"1-02", "1-03", "1-04", "1-05", "1-06"}, names(r.Boundary()))
}
