// Package tessellation holds the connectivity of the icosahedral skeleton
// and the derived per-resolution counts every grid operation reads.
//
// What:
//
//   - The hand-authored constants: a gap direction per pentagon, the
//     resolution-0 pentagon adjacency, the resolution-1 pentagon→face and
//     face→anchor adjacency, the resolution-0 face→face adjacency and each
//     face's vertices (the first one owns the face for iteration).
//   - Tables: a context value built once by Initialize. It derives, from
//     closed-form recurrences, the subtree cell counts per depth, the world
//     cell count and per-anchor positional offsets per resolution, and the
//     unit-sphere cell radius per resolution. Teardown retires it.
//
// Counts:
//
//	vertex(0) = 1,   vertex(k)   = centroid(k-1)
//	centroid(0) = 1, centroid(k) = centroid(k-1) + 6·vertex(k-1)
//	pentagon(0) = 1, pentagon(k) = pentagon(k-1) + 5·vertex(k-1)
//	anchor(p, k) = pentagon(k-1) + owned(p)·vertex(k-1)
//
// The world holds 10·3^r + 2 cells at resolution r.
//
// Concurrency:
//
//   - Tables is written once by Initialize and is read-only afterwards, so
//     any number of goroutines may share it without locking. Teardown must
//     only run after every reader has finished.
//
// Errors:
//
//   - ErrNotReady: lookups on a nil or torn-down Tables.
//   - ErrNoNeighbour: a step into a pentagon gap or off the table.
//   - ErrOptionViolation: an invalid Option passed to Initialize.
package tessellation
