package region_test

import (
	"fmt"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/gridmath"
	"github.com/katalvlaran/dggs/region"
	"github.com/katalvlaran/dggs/tessellation"
)

// ExampleRegion_ConnectedComponents splits three cells of the ring around
// pentagon 1's centroid child into the groups that touch.
func ExampleRegion_ConnectedComponents() {
	t, _ := tessellation.Initialize(tessellation.WithMaxResolution(4))
	defer t.Teardown()
	e, _ := gridmath.New(t)

	r, _ := region.New(e, []cell.Index{
		cell.MustParse("1-05"),
		cell.MustParse("1-02"),
		cell.MustParse("1-03"),
	})
	comps := r.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d: %v\n", i, comp)
	}

	// Output:
	// components: 2
	// component 0: [1-02 1-03]
	// component 1: [1-05]
}
