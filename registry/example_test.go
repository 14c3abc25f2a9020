package registry_test

import (
	"fmt"

	"github.com/katalvlaran/spanforest/registry"
)

func ExampleRegistry_Register() {
	r := registry.New()
	for _, city := range []string{"Lyon", "Paris", "Lyon", "Nice"} {
		fmt.Print(r.Register(city), " ")
	}
	fmt.Println(r.Len())
	// Output: 0 1 0 2 3
}
