package region

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
	"github.com/katalvlaran/dggs/gridmath"
)

// Region is an immutable set of cells of one resolution.
type Region struct {
	e     *gridmath.Engine
	res   int
	cells []cell.Index
	pos   map[string]int
}

// New builds a Region from cells, dropping duplicates. Every cell must be
// valid for e and share one resolution.
// Complexity: O(N log N).
func New(e *gridmath.Engine, cells []cell.Index) (*Region, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyRegion
	}
	res := cells[0].Resolution()
	r := &Region{e: e, res: res, pos: make(map[string]int, len(cells))}
	for _, c := range cells {
		if c.Resolution() != res {
			return nil, fmt.Errorf("%w: %s is not at resolution %d", ErrMixedResolution, c, res)
		}
		if _, err := e.WorldPosition(c); err != nil {
			return nil, err
		}
		if _, dup := r.pos[c.String()]; dup {
			continue
		}
		r.pos[c.String()] = 0
		r.cells = append(r.cells, c)
	}
	sort.Slice(r.cells, func(i, j int) bool { return r.cells[i].Compare(r.cells[j]) < 0 })
	for i, c := range r.cells {
		r.pos[c.String()] = i
	}

	return r, nil
}

// Resolution returns the shared resolution of the members.
func (r *Region) Resolution() int { return r.res }

// Len returns the number of distinct members.
func (r *Region) Len() int { return len(r.cells) }

// Cells returns the members in canonical order.
func (r *Region) Cells() []cell.Index {
	out := make([]cell.Index, len(r.cells))
	copy(out, r.cells)

	return out
}

// Contains reports whether c is a member.
func (r *Region) Contains(c cell.Index) bool {
	_, ok := r.pos[c.String()]

	return ok
}

// neighbours returns the cells adjacent to c; pentagon gaps are skipped.
func (r *Region) neighbours(c cell.Index) []cell.Index {
	out := make([]cell.Index, 0, digits.NumDirections)
	for _, d := range digits.Directions() {
		if n, _, ok := r.e.TryMove(c, d); ok {
			out = append(out, n)
		}
	}

	return out
}

// Boundary returns the members with at least one neighbour outside the
// region, in canonical order.
// Complexity: O(N×6).
func (r *Region) Boundary() []cell.Index {
	var out []cell.Index
	for _, c := range r.cells {
		for _, n := range r.neighbours(c) {
			if !r.Contains(n) {
				out = append(out, c)
				break
			}
		}
	}

	return out
}
