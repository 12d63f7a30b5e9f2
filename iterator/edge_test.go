package iterator_test

import (
	"testing"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
	"github.com/katalvlaran/dggs/iterator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionalEdge_Counts(t *testing.T) {
	e := newEngine(t)
	cases := []struct {
		root string
		res  int
		want [6]int
	}{
		{"1-0", 3, [6]int{0, 2, 2, 2, 2, 2}},
		{"12-00", 6, [6]int{10, 10, 10, 0, 10, 10}},
	}
	for _, tc := range cases {
		for i, d := range digits.Directions() {
			it, err := iterator.NewDirectionalEdge(e, cell.MustParse(tc.root), d, tc.res)
			require.NoError(t, err)
			n, err := iterator.Count(it)
			require.NoError(t, err)
			assert.Equal(t, tc.want[i], n, "%s at %d toward %d", tc.root, tc.res, d)
		}
	}
}

// Each sector's edge lists its cells in the order Exhaustive gives them,
// with canonical positions strictly rising.
func TestDirectionalEdge_CanonicalOrder(t *testing.T) {
	e := newEngine(t)
	for _, tc := range []struct {
		root string
		res  int
	}{
		{"A-0", 4}, {"A-0", 6}, {"A", 5}, {"1", 2}, {"1-0", 5}, {"7-001", 5}, {"1-02", 4},
	} {
		root := cell.MustParse(tc.root)
		onEdge := map[string]bool{}
		for _, c := range boundary(t, e, root, tc.res) {
			onEdge[c] = true
		}
		ex, err := iterator.NewExhaustive(e, root, tc.res)
		require.NoError(t, err)
		all := collect(t, ex)

		for _, d := range digits.Directions() {
			var want []string
			for _, c := range all {
				if onEdge[c.String()] && e.SectorFrom(root, c) == d {
					want = append(want, c.String())
				}
			}
			it, err := iterator.NewDirectionalEdge(e, root, d, tc.res)
			require.NoError(t, err)
			got := collect(t, it)
			assert.Equal(t, want, nilIfEmpty(names(got)), "%s at %d toward %d", tc.root, tc.res, d)

			last := int64(-1)
			for _, c := range got {
				pos, err := e.CellPosition(root, c)
				require.NoError(t, err)
				require.Greater(t, pos, last, "%s at %d toward %d", tc.root, tc.res, d)
				last = pos
			}
		}
	}
}

func nilIfEmpty(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}

	return ss
}

func TestEdge_Totals(t *testing.T) {
	e := newEngine(t)
	cases := []struct {
		root string
		res  int
		want int
	}{
		{"A-0", 4, 12},
		{"A-0", 6, 60},
		{"A", 3, 6},
		{"A", 5, 30},
		{"1-0", 3, 10},
		{"1-0", 5, 50},
		{"1", 2, 10},
	}
	for _, tc := range cases {
		it, err := iterator.NewEdge(e, cell.MustParse(tc.root), tc.res)
		require.NoError(t, err)
		n, err := iterator.Count(it)
		require.NoError(t, err)
		assert.Equal(t, tc.want, n, "%s at %d", tc.root, tc.res)
	}
}

// The edge walk visits every boundary cell exactly once, sector by sector.
func TestEdge_MatchesBoundary(t *testing.T) {
	e := newEngine(t)
	for _, tc := range []struct {
		root string
		res  int
	}{
		{"A-0", 4}, {"A", 5}, {"1", 2}, {"1-0", 5}, {"7-001", 5}, {"1-02", 4},
	} {
		root := cell.MustParse(tc.root)
		it, err := iterator.NewEdge(e, root, tc.res)
		require.NoError(t, err)

		var got []string
		last := digits.Centroid
		for ; !it.AtEnd(); it.Advance() {
			require.Equal(t, len(got), it.Position())
			require.GreaterOrEqual(t, it.Direction(), last, "sectors run in order")
			last = it.Direction()
			require.Equal(t, it.Direction(), e.SectorFrom(root, it.Current()))
			got = append(got, it.Current().String())
		}
		require.NoError(t, it.Err())
		assert.ElementsMatch(t, boundary(t, e, root, tc.res), got, "%s at %d", tc.root, tc.res)
	}
}

func TestEdge_Seek(t *testing.T) {
	e := newEngine(t)
	root := cell.MustParse("A-0")
	it, err := iterator.NewEdge(e, root, 4)
	require.NoError(t, err)
	all := collect(t, it)
	require.Len(t, all, 12)

	target := all[7]
	require.NoError(t, it.SetIteratorIndex(target))
	assert.Equal(t, 7, it.Position())
	assert.Equal(t, target.String(), it.Current().String())

	off, err := it.CalcCurrentOffset()
	require.NoError(t, err)
	pos, err := e.CellPosition(root, target)
	require.NoError(t, err)
	assert.Equal(t, pos, off)

	// the centre is inside, not on the edge
	err = it.SetIteratorIndex(cell.MustParse("A-000"))
	require.ErrorIs(t, err, iterator.ErrNotOnEdge)
	assert.Equal(t, 0, it.Position())
	err = it.SetIteratorIndex(cell.MustParse("B-0001"))
	require.ErrorIs(t, err, iterator.ErrNotOnEdge)

	for !it.AtEnd() {
		it.Advance()
	}
	_, err = it.CalcCurrentOffset()
	require.Error(t, err)
}

func TestEdge_NotContained(t *testing.T) {
	e := newEngine(t)
	root := cell.MustParse("A-0")
	for _, res := range []int{2, 3, 5} {
		_, err := iterator.NewEdge(e, root, res)
		require.ErrorIs(t, err, iterator.ErrNotContained, "res %d", res)
		_, err = iterator.NewDirectionalEdge(e, root, digits.Dir1, res)
		require.ErrorIs(t, err, iterator.ErrNotContained, "res %d", res)
	}
	_, err := iterator.NewDirectionalEdge(e, root, digits.Centroid, 4)
	require.ErrorIs(t, err, digits.ErrInvalidDirection)
	_, err = iterator.NewEdge(e, root, 1)
	require.ErrorIs(t, err, digits.ErrInvalidResolution)
}

// The A-0 edge closes up only at an even depth: 12 cells two resolutions
// down, 60 four down, two and ten per sector. Resolution 5 sits between and
// is refused rather than counted.
func TestEdge_A0EvenDepthsOnly(t *testing.T) {
	e := newEngine(t)
	root := cell.MustParse("A-0")
	for res, want := range map[int]int{4: 12, 6: 60} {
		it, err := iterator.NewEdge(e, root, res)
		require.NoError(t, err)
		n, err := iterator.Count(it)
		require.NoError(t, err)
		assert.Equal(t, want, n, "res %d", res)

		dir, err := iterator.NewDirectionalEdge(e, root, digits.Dir1, res)
		require.NoError(t, err)
		n, err = iterator.Count(dir)
		require.NoError(t, err)
		assert.Equal(t, want/6, n, "res %d toward 1", res)
	}

	_, err := iterator.NewDirectionalEdge(e, root, digits.Dir1, 5)
	require.ErrorIs(t, err, iterator.ErrNotContained)
	_, err = iterator.NewEdge(e, root, 5)
	require.ErrorIs(t, err, iterator.ErrNotContained)
}
