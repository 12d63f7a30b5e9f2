// Package digits implements the digit-path arithmetic underneath the grid:
// a flat, ordered sequence of base-7 symbols describing a descent from an
// anchor cell through successive children.
//
// What:
//
//   - Direction: the seven symbols 0..6. Symbol 0 is the centroid child
//     (straight descent), symbols 1..6 are the six vertex children arranged
//     counter-clockwise around the parent.
//   - Path: an immutable-by-convention digit sequence with rotate, zoom,
//     move, classify and ancestor/descendant helpers.
//   - Vector: an Eisenstein integer a + b·ω (ω = e^{iπ/3}) addressing a cell
//     inside one anchor at one resolution. Digit d is always the unit ω^(d-1)
//     of the resolution's own lattice; consecutive resolutions are related by
//     the fixed multipliers returned by Sigma.
//   - Carry: what is left over when a move leaves the anchor. The carry is a
//     resolution-1 offset and is resolved one level up by the grid math.
//
// Why:
//
//   - Keeping the path free of pentagon and tessellation knowledge lets the
//     upper layers decide how to correct overflow and gaps, while this layer
//     stays a small set of exact integer operations.
//
// Complexity:
//
//   - Rotate, ZoomIn, ZoomOut, Classify: O(n) in path length (copy-on-write).
//   - Move, Locate: O(n); every level costs one exact Eisenstein division.
//
// Errors:
//
//   - ErrInvalidDirection: a symbol outside 0..6, or outside 1..6 where a
//     vertex direction is required.
//   - ErrInvalidResolution: a resolution or length outside [0, MaxResolution].
//   - ErrNotADescendant: descendant computation on unrelated paths.
//   - ErrEmptyPath: ZoomOut or Move on an empty path.
//   - ErrNoVertexChild: a vertex child requested from a vertex-type cell.
//   - ErrOverflow: a lattice point with no canonical parent (a logic defect).
package digits
