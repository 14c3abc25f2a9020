package disjointset_test

import (
	"fmt"

	"github.com/katalvlaran/spanforest/disjointset"
)

func ExampleDisjointSet_Union() {
	d := disjointset.New(5)
	_ = d.Union(0, 1)
	_ = d.Union(3, 4)
	_ = d.Union(1, 4)

	fmt.Println(d.Count(), d.Sets())
	// Output: 2 [[0 1 3 4] [2]]
}
