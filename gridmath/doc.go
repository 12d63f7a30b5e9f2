// Package gridmath is the movement, zoom and correction engine of the grid.
//
// What:
//
//   - Move / MoveWithRotation / TryMove: one step in one of six directions.
//     Bare pentagons and bare faces step through the adjacency tables; deeper
//     cells step in their anchor's lattice and, when the step leaves the
//     anchor, the carry is resolved through the tables (overflow correction)
//     with the whole position rotated into the destination frame. Landing in
//     a pentagon's missing sector rotates the position one sixth of a turn
//     toward the side the move came from (gap correction).
//   - ZoomIntoNeighbourhood / ZoomIntoChildren / ZoomOut: resolution changes,
//     including the resolution-0 → 1 step into owned faces.
//   - CellCount / CellPosition / IndexFromOffset: closed-form subtree sizes
//     and the canonical ordinal of a cell under a root.
//   - CoveringCells / CoveredCells / OverlappedCells / AllCoveringCells: the
//     coarser cells a cell touches (1 or 3), the finer cells it owns, the
//     finer cells it touches (6 or 7), plus 12-slice occupancy masks up the
//     ancestor chain.
//   - IndexToPolar / PolarToIndex: anchor-relative polar coordinates in
//     resolution-0 units.
//
// Rotation convention: every move reports how many counter-clockwise sixths
// of a turn the destination frame is turned against the source frame. The
// direction leading back is d.Opposite().Rotate(rotation), and the reverse
// move reports the negated rotation.
//
// Complexity:
//
//   - Move: O(r) for a cell at resolution r (one exact division per level),
//     plus at most a handful of table hops.
//   - CellPosition / IndexFromOffset: O(r·7).
//
// Errors:
//
//   - cell.ErrNullIndex, digits.ErrInvalidDirection, digits.ErrInvalidResolution
//     are surfaced for malformed input.
//   - ErrNotAChild: ZoomIntoChildren toward a face owned by another pentagon.
//   - ErrOffsetOutOfRange: IndexFromOffset beyond the subtree.
//   - ErrOverflow: a carry no table entry resolves (a logic defect).
package gridmath
