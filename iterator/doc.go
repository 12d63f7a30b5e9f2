// Package iterator enumerates cells in deterministic orders on top of the
// grid math engine.
//
// What:
//
//   - Exhaustive: every descendant of a root at one resolution, in the
//     canonical order that gridmath.CellPosition numbers.
//   - DirectionalEdge / Edge: the boundary cells of a root's subtree at a
//     contained data resolution, one sector at a time or all of them.
//   - Spiral: concentric rings of neighbours around a centre cell.
//   - Progressive: resolution by resolution from the root down, each cell
//     emitted once.
//   - Vertex: the cells around a cell one resolution down.
//
// Every iterator is pull based and single pass:
//
//	for it.Reset(); !it.AtEnd(); it.Advance() {
//		use(it.Current())
//	}
//	if err := it.Err(); err != nil { ... }
//
// Running out of cells is not an error. Err reports a failure of the
// underlying grid math, after which AtEnd is true.
//
// Concurrency: iterators hold private state and must not be shared between
// goroutines; any number of iterators may read one gridmath.Engine at once.
package iterator
