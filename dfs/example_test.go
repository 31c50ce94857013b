package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvldsa/core"
	"github.com/katalvlaran/lvldsa/dfs"
)

func ExampleTopologicalSort() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("L1", "L2", 0)
	_, _ = g.AddEdge("L2", "L7", 0)
	_, _ = g.AddEdge("L1", "L5", 0)
	_, _ = g.AddEdge("L5", "L7", 0)
	order, _ := dfs.TopologicalSort(g)
	fmt.Println(order)
	// Output: [L1 L5 L2 L7]
}
