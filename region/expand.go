package region

import (
	"container/list"

	"github.com/katalvlaran/dggs/cell"
)

// Bridge finds a minimum-conversion path of non-member cells joining any
// cell of component srcComp to any cell of component dstComp, as numbered
// by ConnectedComponents. Each non-member cell on the path costs 1; the
// search gives up beyond maxCost (maxCost <= 0 searches the whole world).
// Returns the path, including its member end cells, and its cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • stepping onto a member cell     → cost 0
//     • stepping onto a non-member cell → cost 1
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct the path via predecessors.
//
// Memory: O(V) for distances and predecessors of the cells visited.
func (r *Region) Bridge(srcComp, dstComp, maxCost int) (path []cell.Index, cost int, err error) {
	comps := r.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[string]struct{}, len(comps[dstComp]))
	for _, c := range comps[dstComp] {
		dstSet[c.String()] = struct{}{}
	}

	dist := make(map[string]int)
	prev := make(map[string]cell.Index)

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, c := range comps[srcComp] {
		dist[c.String()] = 0
		dq.PushFront(c)
	}

	var target cell.Index
	found := false
	for dq.Len() > 0 {
		el := dq.Front()
		dq.Remove(el)
		u := el.Value.(cell.Index)
		uk := u.String()
		if _, ok := dstSet[uk]; ok {
			target, found = u, true
			break
		}
		for _, v := range r.neighbours(u) {
			step := 0
			if !r.Contains(v) {
				step = 1
			}
			nd := dist[uk] + step
			if maxCost > 0 && nd > maxCost {
				continue
			}
			vk := v.String()
			if old, seen := dist[vk]; seen && old <= nd {
				continue
			}
			dist[vk] = nd
			prev[vk] = u
			if step == 0 {
				dq.PushFront(v)
			} else {
				dq.PushBack(v)
			}
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}
	for at, ok := target, true; ok; at, ok = prev[at.String()] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target.String()], nil
}
