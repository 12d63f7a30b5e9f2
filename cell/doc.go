// Package cell couples a tessellation anchor with a digit path to form a
// cell index, the value every other package passes around.
//
// An anchor is either one of the 12 icosahedron vertices (pentagons 1..12,
// resolution 0) or one of the 20 faces (A..T, resolution 1). The index
// resolution is the anchor resolution plus the path length. The zero Index
// is the null index: a distinct unset state that every query except IsNull
// and Equal rejects with ErrNullIndex.
//
// Textual form:
//
//	"1"        pentagon 1, resolution 0
//	"1-0"      pentagon 1 centroid child, resolution 1
//	"A"        face A, resolution 1
//	"A-0"      face A centroid child, resolution 2
//	"3-00201"  pentagon 3, resolution 5
//
// Parse accepts a leading zero on pentagon numbers ("01-0").
//
// Errors:
//
//   - ErrNullIndex: query on a null index.
//   - ErrInvalidAnchor: anchor text outside 1..12 and A..T.
//   - ErrMalformed: text that does not follow the grammar above.
//   - ErrFacePath: a face path whose first digit is not the centroid.
//   - digits.ErrInvalidResolution: resolution outside [0, MaxResolution].
package cell
