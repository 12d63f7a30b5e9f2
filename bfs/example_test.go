package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/dggs/bfs"
	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/gridmath"
	"github.com/katalvlaran/dggs/tessellation"
)

// ExampleBFS_pentagons floods the twelve resolution-0 cells from the north
// pole and reconstructs a shortest route to the south pole.
func ExampleBFS_pentagons() {
	t, _ := tessellation.Initialize()
	defer t.Teardown()
	e, _ := gridmath.New(t)

	res, err := bfs.BFS(e, cell.MustParse("1"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	path, _ := res.PathTo(cell.MustParse("12"))
	fmt.Println(path)
	// Output:
	// [1 2 3 4 5 6 11 7 8 9 10 12]
	// [1 2 11 12]
}

// ExampleBFS_depthLimit stops one step away from a pentagon centre: the
// pentagon and its five neighbours.
func ExampleBFS_depthLimit() {
	t, _ := tessellation.Initialize()
	defer t.Teardown()
	e, _ := gridmath.New(t)

	res, err := bfs.BFS(e, cell.MustParse("1-0"), bfs.WithMaxDepth(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [1-0 A B C D E]
}
