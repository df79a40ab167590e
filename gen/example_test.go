package gen_test

import (
	"fmt"

	"github.com/arkadion/bmssp/gen"
)

// ExampleGrid shows the fixed draw order on the smallest interesting lattice:
// vertex 0 draws its "down" weight before its "right" weight.
func ExampleGrid() {
	g, _ := gen.Grid(2, 2, 100, 42)

	fmt.Println("n:", g.VertexCount(), "m:", g.EdgeCount())
	for _, e := range g.EdgesOf(0) {
		fmt.Printf("0 -> %d (w=%d)\n", e.To, e.Weight)
	}

	// Output:
	// n: 4 m: 8
	// 0 -> 2 (w=14)
	// 0 -> 1 (w=92)
}

// ExampleSpec_Generate dispatches through the tagged variant, the way flag
// parsing hands over a parsed configuration.
func ExampleSpec_Generate() {
	spec := gen.Spec{Kind: gen.KindER, N: 3, P: 0.5, MaxWeight: 100, Seed: 42}
	g, _ := spec.Generate()

	fmt.Println("kind:", spec.Kind)
	fmt.Println("n:", g.VertexCount(), "m:", g.EdgeCount())

	// Output:
	// kind: er
	// n: 3 m: 4
}
