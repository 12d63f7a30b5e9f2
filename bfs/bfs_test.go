package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/dggs/bfs"
	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/gridmath"
	"github.com/katalvlaran/dggs/tessellation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(tb testing.TB) *gridmath.Engine {
	tb.Helper()
	t, err := tessellation.Initialize()
	require.NoError(tb, err)
	tb.Cleanup(t.Teardown)
	e, err := gridmath.New(t)
	require.NoError(tb, err)

	return e
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	e := newEngine(t)
	_, err := bfs.BFS(nil, cell.MustParse("1"))
	require.ErrorIs(t, err, bfs.ErrEngineNil)
	_, err = bfs.BFS(e, cell.Index{})
	require.ErrorIs(t, err, cell.ErrNullIndex)
	_, err = bfs.BFS(e, cell.MustParse("1"), bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// The whole resolution-0 world is twelve pentagons, three steps across.
func TestBFS_Pentagons(t *testing.T) {
	e := newEngine(t)
	res, err := bfs.BFS(e, cell.MustParse("1"))
	require.NoError(t, err)
	require.Len(t, res.Order, 12)
	assert.Equal(t, "1", res.Order[0].String())
	assert.Equal(t, 0, res.Depth["1"])
	assert.Equal(t, 1, res.Depth["2"])
	assert.Equal(t, 2, res.Depth["7"])
	assert.Equal(t, 3, res.Depth["12"])

	path, err := res.PathTo(cell.MustParse("12"))
	require.NoError(t, err)
	require.Len(t, path, 4)
	for i := 1; i < len(path); i++ {
		ns, err := e.Neighbours(path[i-1])
		require.NoError(t, err)
		var adjacent bool
		for _, n := range ns {
			adjacent = adjacent || n.Equal(path[i])
		}
		assert.True(t, adjacent, "%s then %s", path[i-1], path[i])
	}
}

// Depth layers around a hexagon grow by six cells per ring.
func TestBFS_Layers(t *testing.T) {
	e := newEngine(t)
	res, err := bfs.BFS(e, cell.MustParse("A-0000"), bfs.WithMaxDepth(3))
	require.NoError(t, err)
	layers := map[int]int{}
	for _, c := range res.Order {
		layers[res.Depth[c.String()]]++
	}
	assert.Equal(t, map[int]int{0: 1, 1: 6, 2: 12, 3: 18}, layers)

	_, err = res.PathTo(cell.MustParse("T-0000"))
	require.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestBFS_FilterAndHooks(t *testing.T) {
	e := newEngine(t)
	root := cell.MustParse("A-0")
	var enq int
	res, err := bfs.BFS(e, cell.MustParse("A-000"),
		bfs.WithFilterNeighbor(func(_, n cell.Index) bool { return e.IsDescendant(root, n) }),
		bfs.WithOnEnqueue(func(cell.Index, int) { enq++ }),
	)
	require.NoError(t, err)
	// the resolution-4 cells of A-0
	assert.Len(t, res.Order, 13)
	assert.Equal(t, 13, enq)

	stop := errors.New("stop")
	_, err = bfs.BFS(e, cell.MustParse("A-000"), bfs.WithOnVisit(func(c cell.Index, d int) error {
		if d == 1 {
			return stop
		}

		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(e, cell.MustParse("A-000"), bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestDistance(t *testing.T) {
	e := newEngine(t)
	d, err := bfs.Distance(e, cell.MustParse("1-02"), cell.MustParse("1-05"), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	d, err = bfs.Distance(e, cell.MustParse("1"), cell.MustParse("1"), 0)
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = bfs.Distance(e, cell.MustParse("1"), cell.MustParse("12"), 2)
	require.ErrorIs(t, err, bfs.ErrNotReached)
	_, err = bfs.Distance(e, cell.MustParse("1"), cell.MustParse("A"), 0)
	require.Error(t, err)
}
