package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dggs/gridmath"
	"github.com/katalvlaran/dggs/region"
	"github.com/katalvlaran/dggs/tessellation"
)

// run executes the command line with YAML output and small tables and
// decodes the rows.
func run(t *testing.T, args ...string) ([]map[string]string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--output", "yaml", "--max-resolution", "8"}, args...))
	if err := root.Execute(); err != nil {
		return nil, err
	}
	var rows []map[string]string
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &rows), out.String())

	return rows, nil
}

func column(rows []map[string]string, key string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r[key]
	}

	return out
}

func TestInspect(t *testing.T) {
	rows, err := run(t, "inspect", "1", "A-0", "1-02")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "A-0", "1-02"}, column(rows, "CELL"))
	assert.Equal(t, []string{"0", "2", "2"}, column(rows, "RES"))
	assert.Equal(t, []string{"-", "A", "1-0"}, column(rows, "PARENT"))
	assert.Equal(t, []string{"pentagon", "hexagon", "hexagon"}, column(rows, "SHAPE"))
	assert.Equal(t, "0", rows[0]["POSITION"])

	_, err = run(t, "inspect", "Z-9")
	require.Error(t, err)
}

func TestMove(t *testing.T) {
	rows, err := run(t, "move", "1-02", "6", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"1-02", "1-06", "1-02"}, column(rows, "CELL"))
	assert.Equal(t, "5", rows[1]["ROTATION"])

	_, err = run(t, "move", "1-02", "7")
	require.Error(t, err)
	_, err = run(t, "move", "1-0", "1")
	require.Error(t, err)
}

func TestNeighbours(t *testing.T) {
	rows, err := run(t, "neighbours", "1-0")
	require.NoError(t, err)
	assert.Equal(t, []string{"gap", "A", "B", "C", "D", "E"}, column(rows, "CELL"))
}

func TestChildrenAndCovering(t *testing.T) {
	rows, err := run(t, "children", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"2-0", "J", "O", "F"}, column(rows, "CELL"))

	rows, err = run(t, "covering", "A-01")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A-0", "1-02", "1-03"}, column(rows, "CELL"))

	rows, err = run(t, "covering", "--all", "A-01")
	require.NoError(t, err)
	assert.Len(t, rows, 5)
	assert.Equal(t, "1", rows[4]["CELL"])
}

func TestIterate(t *testing.T) {
	rows, err := run(t, "iterate", "exhaustive", "2", "--res", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"2-00", "2-02", "2-03", "2-04", "2-05", "2-06", "J-0", "O-0", "F-0"}, column(rows, "CELL"))

	rows, err = run(t, "iterate", "exhaustive", "2", "--res", "2", "--limit", "3")
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	rows, err = run(t, "iterate", "edge", "A-0", "--res", "4")
	require.NoError(t, err)
	assert.Len(t, rows, 12)

	rows, err = run(t, "iterate", "spiral", "A-0", "--rings", "2")
	require.NoError(t, err)
	assert.Len(t, rows, 19)
	assert.Equal(t, "0", rows[0]["RING"])

	rows, err = run(t, "iterate", "progressive", "A", "--res", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A-01", "A-02", "A-03", "A-04", "A-05", "A-06"}, column(rows, "CELL"))

	rows, err = run(t, "iterate", "vertex", "12")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "5", "6"}, column(rows, "DIRECTION"))

	_, err = run(t, "iterate", "zigzag", "A")
	require.Error(t, err)
	_, err = run(t, "iterate", "edge", "A-0", "--res", "3")
	require.Error(t, err)
}

func TestCensus(t *testing.T) {
	rows, err := run(t, "census", "--res", "3", "--workers", "3")
	require.NoError(t, err)
	require.Len(t, rows, 13)
	last := rows[12]
	assert.Equal(t, "total", last["PENTAGON"])
	assert.Equal(t, "272", last["CELLS"])
	assert.Equal(t, "272", last["EXPECTED"])
	for _, r := range rows[:12] {
		assert.Equal(t, r["EXPECTED"], r["CELLS"], r["PENTAGON"])
	}
}

func TestCensus_Cancelled(t *testing.T) {
	tb, err := tessellation.Initialize(tessellation.WithMaxResolution(8))
	require.NoError(t, err)
	defer tb.Teardown()
	e, err := gridmath.New(tb)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = census(ctx, e, 8, 2)
	require.ErrorIs(t, err, context.Canceled)

	_, err = census(context.Background(), e, 3, 0)
	require.Error(t, err)
}

func TestPolarAndDistance(t *testing.T) {
	rows, err := run(t, "polar", "1-02")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "60.000000", rows[0]["ANGLE"])
	assert.Equal(t, "0.333333", rows[0]["RADIUS"])

	rows, err = run(t, "polar", "--anchor", "1", "--angle", "61", "--radius", "0.34", "--res", "2")
	require.NoError(t, err)
	assert.Equal(t, "1-02", rows[0]["CELL"])

	_, err = run(t, "polar")
	require.Error(t, err)

	rows, err = run(t, "distance", "1-02", "1-05")
	require.NoError(t, err)
	assert.Equal(t, "2", rows[0]["STEPS"])
}

func TestRegion(t *testing.T) {
	rows, err := run(t, "region", "1-05", "1-02", "1-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "0", "1"}, column(rows, "COMPONENT"))
	assert.Equal(t, []string{"1-02", "1-03", "1-05"}, column(rows, "CELL"))

	rows, err = run(t, "region", "1", "12", "--bridge")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "2", rows[4]["CELL"])

	_, err = run(t, "region", "1", "12", "--bridge", "--max-cost", "1")
	require.ErrorIs(t, err, region.ErrNoPath)
}

func TestOutputFormat(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCmd(&out)
	root.SetArgs([]string{"--max-resolution", "4", "--output", "table", "children", "1"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "DIRECTION")
	assert.Contains(t, out.String(), "1-0")

	root = NewRootCmd(&bytes.Buffer{})
	root.SetArgs([]string{"--max-resolution", "4", "--output", "json", "children", "1"})
	require.Error(t, root.Execute())
}
