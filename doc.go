// Package dggs is an index engine for an aperture-3 hexagonal grid laid
// over an icosahedron: every place on the sphere gets a short textual cell
// index, and cells can be stepped, zoomed, counted and enumerated without
// touching floating-point geometry.
//
// 🚀 What is dggs?
//
//	A pure-Go, table-driven library that brings together:
//		• Cell indices: twelve pentagon and twenty face anchors plus digit paths
//		• Movement: neighbours in six directions, with frame rotation across anchors
//		• Zooming: parents, children, ancestors and covering relations
//		• Counting: closed-form subtree and world counts, offsets and ordinals
//		• Polar positions: cell centres on an anchor's tangent plane and back
//		• Iterators: exhaustive, edge, spiral, progressive and vertex walks
//		• Graph views: BFS over neighbours and connected regions of cells
//
// ✨ Why choose dggs?
//
//   - Exact – lattice arithmetic on Eisenstein integers, no rounding drift
//   - Immutable – indices are values; tables are built once and shared
//   - Bounded – every operation validates resolution and anchor up front
//
// Under the hood, everything is organized under these subpackages:
//
//	digits/       — directions, digit paths and the Eisenstein lattice
//	cell/         — anchors and the cell index value type
//	tessellation/ — anchor adjacency, ownership and count tables
//	gridmath/     — the Engine: move, zoom, count, cover, polar
//	iterator/     — cursor-style walks over subtrees and neighbourhoods
//	bfs/          — breadth-first search over the neighbour graph
//	region/       — connected components and bridges of cell sets
//	cmd/dggs/     — the command line front end
//
// Quick start:
//
//	go get github.com/katalvlaran/dggs/gridmath
package dggs
