// Package bfs provides breadth-first search over the cell adjacency of the
// grid, returning step distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing step count from a start cell, staying
//     at the start's resolution.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: textual cell → steps from start
//   - Parent: textual cell → its predecessor in the BFS tree
//   - Supports functional hooks:
//   - OnEnqueue (before a cell is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual steps via WithFilterNeighbor, e.g. to
//     stay inside one root's subtree.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Distance: the step count between two cells of one resolution.
//
// Determinism
//
//	Neighbours are enqueued in direction order 1..6 of each cell's own frame,
//	so the visit sequence is fully reproducible.
//
// Complexity (V = cells reached)
//
//   - Time:   O(V·r) for cells at resolution r (one move per neighbour)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(e, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr cell.Index) bool { return e.IsDescendant(root, nbr) }),
//	)
//
// Errors
//
//   - ErrEngineNil         if the engine pointer is nil.
//   - cell.ErrNullIndex    if the start is the null index.
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - ErrNotReached        from PathTo and Distance for unvisited cells.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
