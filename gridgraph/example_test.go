// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/heightmap"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Build
////////////////////////////////////////////////////////////////////////////////

// ExampleBuild demonstrates the one-way nature of climb edges.
// Scenario:
//
//   - Row "Sbz": start at 0, 'b' at 1, 'z' at 25
//   - Row "aaE": two cells at 0, the end E at 25
//   - S→b is a one-unit climb (allowed), b→S a descent (allowed)
//   - b→z would climb 24 units (refused), z→b a descent (allowed)
//   - a→E is refused the same way; z↔E is level and open both ways
//   - every one of the six cells keeps exactly two out-edges: 12 in total
func ExampleBuild() {
	hm, _ := heightmap.Parse("Sbz\naaE\n")
	g, _ := gridgraph.Build(hm)

	fmt.Println("S→b:", g.HasEdge(0, 1), "b→S:", g.HasEdge(1, 0))
	fmt.Println("b→z:", g.HasEdge(1, 2), "z→b:", g.HasEdge(2, 1))
	fmt.Println("edges:", g.Size())

	// Output:
	// S→b: true b→S: true
	// b→z: false z→b: true
	// edges: 12
}
