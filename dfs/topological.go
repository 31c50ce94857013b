package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvldsa/core"
)

// TopologicalSort orders the vertices of a DAG so every edge points forward.
//
// Roots are tried in sorted ID order and neighbors in edge order, so the result
// is deterministic. A Gray vertex reached along an edge closes a cycle, which is
// reported as ErrCycleDetected together with the cycle itself.
func TopologicalSort(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	ts := &topoSorter{
		graph:  g,
		state:  make(map[string]int, g.VertexCount()),
		parent: make(map[string]string),
	}
	for _, id := range g.Vertices() {
		if ts.state[id] == White {
			if err := ts.visit(id); err != nil {
				return nil, err
			}
		}
	}
	slices.Reverse(ts.order)

	return ts.order, nil
}

type topoSorter struct {
	graph  *core.Graph
	state  map[string]int
	parent map[string]string
	order  []string
}

func (ts *topoSorter) visit(id string) error {
	ts.state[id] = Gray
	edges, err := ts.graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, e := range edges {
		switch ts.state[e.To] {
		case Gray:
			return fmt.Errorf("%w: %v", ErrCycleDetected, ts.cycle(id, e.To))
		case White:
			ts.parent[e.To] = id
			if err := ts.visit(e.To); err != nil {
				return err
			}
		}
	}
	ts.state[id] = Black
	ts.order = append(ts.order, id)

	return nil
}

// cycle walks parent links from the vertex that closed the cycle back to the
// Gray ancestor it hit.
func (ts *topoSorter) cycle(from, to string) []string {
	path := []string{from}
	for cur := from; cur != to; {
		cur = ts.parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return append(path, to)
}
