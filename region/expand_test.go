package region_test

import (
	"testing"

	"github.com/katalvlaran/dggs/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridge_Ring(t *testing.T) {
	e := newEngine(t)
	r, err := region.New(e, parse("1-02", "1-03", "1-05"))
	require.NoError(t, err)

	path, cost, err := r.Bridge(0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	require.Len(t, path, 3)
	assert.Contains(t, []string{"1-02", "1-03"}, path[0].String())
	assert.Equal(t, "1-05", path[2].String())
	assert.False(t, r.Contains(path[1]))
}

// Pentagons 1 and 12 sit three steps apart, so bridging them converts two.
func TestBridge_Pentagons(t *testing.T) {
	e := newEngine(t)
	r, err := region.New(e, parse("1", "12"))
	require.NoError(t, err)

	path, cost, err := r.Bridge(0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	require.Len(t, path, 4)
	assert.Equal(t, "1", path[0].String())
	assert.Equal(t, "12", path[3].String())

	_, _, err = r.Bridge(0, 1, 1)
	require.ErrorIs(t, err, region.ErrNoPath)
}

func TestBridge_Errors(t *testing.T) {
	e := newEngine(t)
	r, err := region.New(e, parse("A-0"))
	require.NoError(t, err)
	_, _, err = r.Bridge(0, 1, 0)
	require.ErrorIs(t, err, region.ErrComponentIndex)
	_, _, err = r.Bridge(-1, 0, 0)
	require.ErrorIs(t, err, region.ErrComponentIndex)

	path, cost, err := r.Bridge(0, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Equal(t, []string{"A-0"}, names(path))
}
