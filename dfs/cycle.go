package dfs

import "github.com/katalvlaran/lvldsa/core"

// HasCycle reports whether g contains a cycle.
//
// For directed graphs a cycle is any edge into a Gray vertex. For undirected
// graphs it is any edge to an already visited vertex other than the edge we
// arrived by; comparing edge IDs rather than vertices keeps parallel edges
// counted as a cycle. Self-loops are cycles in both modes.
func HasCycle(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	state := make(map[string]int, g.VertexCount())

	var visit func(id, via string) (bool, error)
	visit = func(id, via string) (bool, error) {
		state[id] = Gray
		edges, err := g.Neighbors(id)
		if err != nil {
			return false, err
		}
		for _, e := range edges {
			if !g.Directed() && e.ID == via {
				continue
			}
			next := e.Other(id)
			switch state[next] {
			case Gray:
				return true, nil
			case Black:
				if !g.Directed() {
					return true, nil
				}
			case White:
				found, err := visit(next, e.ID)
				if err != nil || found {
					return found, err
				}
			}
		}
		state[id] = Black

		return false, nil
	}

	for _, id := range g.Vertices() {
		if state[id] != White {
			continue
		}
		found, err := visit(id, "")
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}
