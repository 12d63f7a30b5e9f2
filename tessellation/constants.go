package tessellation

import "github.com/katalvlaran/dggs/cell"

// Hand-authored connectivity of the icosahedron. Pentagon 1 is the north
// pole, pentagons 2..6 the upper ring, 7..11 the lower ring and 12 the
// south pole; faces A..E form the northern cap, F..O the equatorial band
// and P..T the southern cap. Each face lists its vertices counter-clockwise
// starting from its owner, the smallest vertex.
//
// Every entry carries the rotation (in sixths of a turn) that maps a
// direction of the source frame onto the destination frame.

// pentagonCoarse[p-1][d-1] is the pentagon one resolution-0 step away.
var pentagonCoarse = [cell.NumPentagons][6]Link{
	{{}, {cell.Pentagon2, 3}, {cell.Pentagon3, 2}, {cell.Pentagon4, 1}, {cell.Pentagon5, 0}, {cell.Pentagon6, 5}}, // 1
	{{}, {cell.Pentagon1, 3}, {cell.Pentagon6, 0}, {cell.Pentagon11, 4}, {cell.Pentagon7, 3}, {cell.Pentagon3, 0}}, // 2
	{{}, {cell.Pentagon1, 4}, {cell.Pentagon2, 0}, {cell.Pentagon7, 2}, {cell.Pentagon8, 3}, {cell.Pentagon4, 0}}, // 3
	{{}, {cell.Pentagon1, 5}, {cell.Pentagon3, 0}, {cell.Pentagon8, 2}, {cell.Pentagon9, 3}, {cell.Pentagon5, 0}}, // 4
	{{}, {cell.Pentagon1, 0}, {cell.Pentagon4, 0}, {cell.Pentagon9, 2}, {cell.Pentagon10, 3}, {cell.Pentagon6, 0}}, // 5
	{{}, {cell.Pentagon1, 1}, {cell.Pentagon5, 0}, {cell.Pentagon10, 2}, {cell.Pentagon11, 4}, {cell.Pentagon2, 0}}, // 6
	{{cell.Pentagon12, 1}, {cell.Pentagon8, 1}, {cell.Pentagon3, 4}, {}, {cell.Pentagon2, 3}, {cell.Pentagon11, 0}}, // 7
	{{cell.Pentagon12, 5}, {cell.Pentagon9, 1}, {cell.Pentagon4, 4}, {}, {cell.Pentagon3, 3}, {cell.Pentagon7, 5}}, // 8
	{{cell.Pentagon12, 4}, {cell.Pentagon10, 1}, {cell.Pentagon5, 4}, {}, {cell.Pentagon4, 3}, {cell.Pentagon8, 5}}, // 9
	{{cell.Pentagon12, 3}, {cell.Pentagon11, 2}, {cell.Pentagon6, 4}, {}, {cell.Pentagon5, 3}, {cell.Pentagon9, 5}}, // 10
	{{cell.Pentagon10, 4}, {cell.Pentagon12, 1}, {cell.Pentagon7, 0}, {}, {cell.Pentagon2, 2}, {cell.Pentagon6, 2}}, // 11
	{{cell.Pentagon10, 3}, {cell.Pentagon9, 2}, {cell.Pentagon8, 1}, {}, {cell.Pentagon7, 5}, {cell.Pentagon11, 5}}, // 12
}

// pentagonFine[p-1][d-1] is the face one resolution-1 step away from pentagon p.
var pentagonFine = [cell.NumPentagons][6]Link{
	{{}, {cell.FaceA, 2}, {cell.FaceB, 1}, {cell.FaceC, 0}, {cell.FaceD, 5}, {cell.FaceE, 4}}, // 1
	{{}, {cell.FaceE, 0}, {cell.FaceJ, 1}, {cell.FaceO, 0}, {cell.FaceF, 5}, {cell.FaceA, 0}}, // 2
	{{}, {cell.FaceA, 0}, {cell.FaceF, 5}, {cell.FaceK, 0}, {cell.FaceG, 5}, {cell.FaceB, 0}}, // 3
	{{}, {cell.FaceB, 0}, {cell.FaceG, 5}, {cell.FaceL, 0}, {cell.FaceH, 5}, {cell.FaceC, 0}}, // 4
	{{}, {cell.FaceC, 0}, {cell.FaceH, 5}, {cell.FaceM, 0}, {cell.FaceI, 5}, {cell.FaceD, 0}}, // 5
	{{}, {cell.FaceD, 0}, {cell.FaceI, 5}, {cell.FaceN, 0}, {cell.FaceJ, 1}, {cell.FaceE, 0}}, // 6
	{{cell.FaceP, 3}, {cell.FaceK, 4}, {cell.FaceF, 3}, {}, {cell.FaceO, 3}, {cell.FaceT, 4}}, // 7
	{{cell.FaceQ, 3}, {cell.FaceL, 4}, {cell.FaceG, 3}, {}, {cell.FaceK, 3}, {cell.FaceP, 2}}, // 8
	{{cell.FaceR, 3}, {cell.FaceM, 4}, {cell.FaceH, 3}, {}, {cell.FaceL, 3}, {cell.FaceQ, 2}}, // 9
	{{cell.FaceS, 3}, {cell.FaceN, 4}, {cell.FaceI, 3}, {}, {cell.FaceM, 3}, {cell.FaceR, 2}}, // 10
	{{cell.FaceS, 1}, {cell.FaceT, 4}, {cell.FaceO, 3}, {}, {cell.FaceJ, 3}, {cell.FaceN, 2}}, // 11
	{{cell.FaceR, 5}, {cell.FaceQ, 4}, {cell.FaceP, 3}, {}, {cell.FaceT, 3}, {cell.FaceS, 0}}, // 12
}

// faceFine[f][d-1] is the anchor one resolution-1 step away from face f:
// odd directions reach its vertices, even directions its edge neighbours.
var faceFine = [cell.NumFaces][6]Link{
	{{cell.Pentagon1, 4}, {cell.FaceE, 1}, {cell.Pentagon2, 0}, {cell.FaceF, 5}, {cell.Pentagon3, 0}, {cell.FaceB, 5}}, // A
	{{cell.Pentagon1, 5}, {cell.FaceA, 1}, {cell.Pentagon3, 0}, {cell.FaceG, 5}, {cell.Pentagon4, 0}, {cell.FaceC, 5}}, // B
	{{cell.Pentagon1, 0}, {cell.FaceB, 1}, {cell.Pentagon4, 0}, {cell.FaceH, 5}, {cell.Pentagon5, 0}, {cell.FaceD, 5}}, // C
	{{cell.Pentagon1, 1}, {cell.FaceC, 1}, {cell.Pentagon5, 0}, {cell.FaceI, 5}, {cell.Pentagon6, 0}, {cell.FaceE, 5}}, // D
	{{cell.Pentagon1, 2}, {cell.FaceD, 1}, {cell.Pentagon6, 0}, {cell.FaceJ, 1}, {cell.Pentagon2, 0}, {cell.FaceA, 5}}, // E
	{{cell.Pentagon2, 1}, {cell.FaceO, 1}, {cell.Pentagon7, 3}, {cell.FaceK, 1}, {cell.Pentagon3, 1}, {cell.FaceA, 1}}, // F
	{{cell.Pentagon3, 1}, {cell.FaceK, 1}, {cell.Pentagon8, 3}, {cell.FaceL, 1}, {cell.Pentagon4, 1}, {cell.FaceB, 1}}, // G
	{{cell.Pentagon4, 1}, {cell.FaceL, 1}, {cell.Pentagon9, 3}, {cell.FaceM, 1}, {cell.Pentagon5, 1}, {cell.FaceC, 1}}, // H
	{{cell.Pentagon5, 1}, {cell.FaceM, 1}, {cell.Pentagon10, 3}, {cell.FaceN, 1}, {cell.Pentagon6, 1}, {cell.FaceD, 1}}, // I
	{{cell.Pentagon2, 5}, {cell.FaceE, 5}, {cell.Pentagon6, 5}, {cell.FaceN, 5}, {cell.Pentagon11, 3}, {cell.FaceO, 5}}, // J
	{{cell.Pentagon3, 0}, {cell.FaceF, 5}, {cell.Pentagon7, 2}, {cell.FaceP, 5}, {cell.Pentagon8, 3}, {cell.FaceG, 5}}, // K
	{{cell.Pentagon4, 0}, {cell.FaceG, 5}, {cell.Pentagon8, 2}, {cell.FaceQ, 5}, {cell.Pentagon9, 3}, {cell.FaceH, 5}}, // L
	{{cell.Pentagon5, 0}, {cell.FaceH, 5}, {cell.Pentagon9, 2}, {cell.FaceR, 5}, {cell.Pentagon10, 3}, {cell.FaceI, 5}}, // M
	{{cell.Pentagon6, 0}, {cell.FaceI, 5}, {cell.Pentagon10, 2}, {cell.FaceS, 5}, {cell.Pentagon11, 4}, {cell.FaceJ, 1}}, // N
	{{cell.Pentagon2, 0}, {cell.FaceJ, 1}, {cell.Pentagon11, 3}, {cell.FaceT, 1}, {cell.Pentagon7, 3}, {cell.FaceF, 5}}, // O
	{{cell.Pentagon7, 3}, {cell.FaceT, 1}, {cell.Pentagon12, 3}, {cell.FaceQ, 1}, {cell.Pentagon8, 4}, {cell.FaceK, 1}}, // P
	{{cell.Pentagon8, 3}, {cell.FaceP, 5}, {cell.Pentagon12, 2}, {cell.FaceR, 1}, {cell.Pentagon9, 4}, {cell.FaceL, 1}}, // Q
	{{cell.Pentagon9, 3}, {cell.FaceQ, 5}, {cell.Pentagon12, 1}, {cell.FaceS, 1}, {cell.Pentagon10, 4}, {cell.FaceM, 1}}, // R
	{{cell.Pentagon10, 3}, {cell.FaceR, 5}, {cell.Pentagon12, 0}, {cell.FaceT, 3}, {cell.Pentagon11, 5}, {cell.FaceN, 1}}, // S
	{{cell.Pentagon7, 2}, {cell.FaceO, 5}, {cell.Pentagon11, 2}, {cell.FaceS, 3}, {cell.Pentagon12, 3}, {cell.FaceP, 5}}, // T
}

// faceCoarse[f][d-1] is the face reached by one resolution-0 step from face f.
var faceCoarse = [cell.NumFaces][6]Link{
	{{cell.FaceC, 4}, {cell.FaceD, 2}, {cell.FaceJ, 2}, {cell.FaceO, 0}, {cell.FaceK, 0}, {cell.FaceG, 4}}, // A
	{{cell.FaceD, 4}, {cell.FaceE, 2}, {cell.FaceF, 0}, {cell.FaceK, 0}, {cell.FaceL, 0}, {cell.FaceH, 4}}, // B
	{{cell.FaceE, 4}, {cell.FaceA, 2}, {cell.FaceG, 0}, {cell.FaceL, 0}, {cell.FaceM, 0}, {cell.FaceI, 4}}, // C
	{{cell.FaceA, 4}, {cell.FaceB, 2}, {cell.FaceH, 0}, {cell.FaceM, 0}, {cell.FaceN, 0}, {cell.FaceJ, 0}}, // D
	{{cell.FaceB, 4}, {cell.FaceC, 2}, {cell.FaceI, 0}, {cell.FaceN, 0}, {cell.FaceO, 0}, {cell.FaceF, 4}}, // E
	{{cell.FaceE, 2}, {cell.FaceJ, 2}, {cell.FaceT, 2}, {cell.FaceP, 0}, {cell.FaceG, 0}, {cell.FaceB, 0}}, // F
	{{cell.FaceA, 2}, {cell.FaceF, 0}, {cell.FaceP, 0}, {cell.FaceQ, 0}, {cell.FaceH, 0}, {cell.FaceC, 0}}, // G
	{{cell.FaceB, 2}, {cell.FaceG, 0}, {cell.FaceQ, 0}, {cell.FaceR, 0}, {cell.FaceI, 0}, {cell.FaceD, 0}}, // H
	{{cell.FaceC, 2}, {cell.FaceH, 0}, {cell.FaceR, 0}, {cell.FaceS, 0}, {cell.FaceJ, 2}, {cell.FaceE, 0}}, // I
	{{cell.FaceF, 4}, {cell.FaceA, 4}, {cell.FaceD, 0}, {cell.FaceI, 4}, {cell.FaceS, 4}, {cell.FaceT, 0}}, // J
	{{cell.FaceB, 0}, {cell.FaceA, 0}, {cell.FaceO, 0}, {cell.FaceT, 0}, {cell.FaceQ, 0}, {cell.FaceL, 0}}, // K
	{{cell.FaceC, 0}, {cell.FaceB, 0}, {cell.FaceK, 0}, {cell.FaceP, 4}, {cell.FaceR, 0}, {cell.FaceM, 0}}, // L
	{{cell.FaceD, 0}, {cell.FaceC, 0}, {cell.FaceL, 0}, {cell.FaceQ, 4}, {cell.FaceS, 0}, {cell.FaceN, 0}}, // M
	{{cell.FaceE, 0}, {cell.FaceD, 0}, {cell.FaceM, 0}, {cell.FaceR, 4}, {cell.FaceT, 2}, {cell.FaceO, 0}}, // N
	{{cell.FaceA, 0}, {cell.FaceE, 0}, {cell.FaceN, 0}, {cell.FaceS, 4}, {cell.FaceP, 0}, {cell.FaceK, 0}}, // O
	{{cell.FaceF, 0}, {cell.FaceO, 0}, {cell.FaceS, 4}, {cell.FaceR, 2}, {cell.FaceL, 2}, {cell.FaceG, 0}}, // P
	{{cell.FaceG, 0}, {cell.FaceK, 0}, {cell.FaceT, 0}, {cell.FaceS, 2}, {cell.FaceM, 2}, {cell.FaceH, 0}}, // Q
	{{cell.FaceH, 0}, {cell.FaceL, 0}, {cell.FaceP, 4}, {cell.FaceT, 4}, {cell.FaceN, 2}, {cell.FaceI, 0}}, // R
	{{cell.FaceI, 0}, {cell.FaceM, 0}, {cell.FaceQ, 4}, {cell.FaceP, 2}, {cell.FaceO, 2}, {cell.FaceJ, 2}}, // S
	{{cell.FaceK, 0}, {cell.FaceF, 4}, {cell.FaceJ, 0}, {cell.FaceN, 4}, {cell.FaceR, 2}, {cell.FaceQ, 0}}, // T
}

// faceVertices[f] lists the vertices of face f counter-clockwise, owner first.
var faceVertices = [cell.NumFaces][3]cell.Anchor{
	{cell.Pentagon1, cell.Pentagon2, cell.Pentagon3}, // A
	{cell.Pentagon1, cell.Pentagon3, cell.Pentagon4}, // B
	{cell.Pentagon1, cell.Pentagon4, cell.Pentagon5}, // C
	{cell.Pentagon1, cell.Pentagon5, cell.Pentagon6}, // D
	{cell.Pentagon1, cell.Pentagon6, cell.Pentagon2}, // E
	{cell.Pentagon2, cell.Pentagon7, cell.Pentagon3}, // F
	{cell.Pentagon3, cell.Pentagon8, cell.Pentagon4}, // G
	{cell.Pentagon4, cell.Pentagon9, cell.Pentagon5}, // H
	{cell.Pentagon5, cell.Pentagon10, cell.Pentagon6}, // I
	{cell.Pentagon2, cell.Pentagon6, cell.Pentagon11}, // J
	{cell.Pentagon3, cell.Pentagon7, cell.Pentagon8}, // K
	{cell.Pentagon4, cell.Pentagon8, cell.Pentagon9}, // L
	{cell.Pentagon5, cell.Pentagon9, cell.Pentagon10}, // M
	{cell.Pentagon6, cell.Pentagon10, cell.Pentagon11}, // N
	{cell.Pentagon2, cell.Pentagon11, cell.Pentagon7}, // O
	{cell.Pentagon7, cell.Pentagon12, cell.Pentagon8}, // P
	{cell.Pentagon8, cell.Pentagon12, cell.Pentagon9}, // Q
	{cell.Pentagon9, cell.Pentagon12, cell.Pentagon10}, // R
	{cell.Pentagon10, cell.Pentagon12, cell.Pentagon11}, // S
	{cell.Pentagon7, cell.Pentagon11, cell.Pentagon12}, // T
}
