package region

import "github.com/katalvlaran/dggs/cell"

// ConnectedComponents finds all contiguous groups of member cells.
// Components are ordered by their first member in canonical order; each
// lists its cells in breadth-first order from that member.
//
// Time:   O(N·6).
// Memory: O(N) for visited flags and output.
func (r *Region) ConnectedComponents() [][]cell.Index {
	seen := make([]bool, len(r.cells))
	var comps [][]cell.Index

	for i0, c0 := range r.cells {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []cell.Index{c0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			for _, n := range r.neighbours(queue[qi]) {
				ni, ok := r.pos[n.String()]
				if !ok || seen[ni] {
					continue
				}
				seen[ni] = true
				queue = append(queue, n)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
