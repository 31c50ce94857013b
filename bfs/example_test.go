package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvldsa/bfs"
	"github.com/katalvlaran/lvldsa/core"
)

func ExampleBFS() {
	g := core.NewGraph()
	_, _ = g.AddEdge("home", "park", 0)
	_, _ = g.AddEdge("park", "shop", 0)
	_, _ = g.AddEdge("home", "school", 0)
	res, _ := bfs.BFS(g, "home")
	path, _ := res.PathTo("shop")
	fmt.Println(res.Order)
	fmt.Println(path, res.Depth["shop"])
	// Output:
	// [home park school shop]
	// [home park shop] 2
}
