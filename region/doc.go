// Package region treats a set of same-resolution cells as a graph over the
// grid's neighbour relation, enabling component analysis and minimal-cost
// bridging between components.
//
// What:
//
//   - Region wraps a deduplicated set of cells kept in canonical order.
//   - Identifies connected components of member cells.
//   - Lists boundary cells: members with a neighbour outside the set.
//   - Computes minimal bridges (0-1 BFS) joining two components through
//     non-member cells, each of which costs 1.
//
// Complexity:
//
//   - ConnectedComponents: O(N×6), Memory: O(N).
//   - Bridge:              O(V×6), Memory: O(V), V = cells within the cost limit.
//
// Errors:
//
//   - ErrEmptyRegion: no cells given.
//   - ErrMixedResolution: cells of differing resolutions.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no bridge within the cost limit.
package region
