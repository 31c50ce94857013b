package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvldsa/core"
)

func ExampleGraph_AddEdge() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("Kyiv", "Lviv", 540)
	_, _ = g.AddEdge("Kyiv", "Odesa", 475)
	nbrs, _ := g.NeighborIDs("Kyiv")
	fmt.Println(g.Vertices(), nbrs, g.EdgeCount())
	// Output: [Kyiv Lviv Odesa] [Lviv Odesa] 2
}
