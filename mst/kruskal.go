package mst

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvldsa/core"
)

// Kruskal computes a minimum spanning tree of g.
//
// Steps:
//  1. Validate the graph.
//  2. Stable-sort non-loop edges by weight.
//  3. Take each edge whose endpoints lie in different sets until V-1 edges are chosen.
func Kruskal(g *core.Graph) (Result, error) {
	// 1. Validate.
	if err := validate(g); err != nil {
		return Result{}, err
	}
	vertices := g.Vertices()

	// 2. Order candidates.
	edges := slices.DeleteFunc(g.Edges(), func(e *core.Edge) bool { return e.From == e.To })
	slices.SortStableFunc(edges, func(a, b *core.Edge) int { return cmp.Compare(a.Weight, b.Weight) })

	// 3. Grow the forest.
	ds := NewDisjointSet(vertices)
	res := Result{Edges: make([]core.Edge, 0, len(vertices)-1)}
	for _, e := range edges {
		if len(res.Edges) == len(vertices)-1 {
			break
		}
		if ds.Union(e.From, e.To) {
			res.Edges = append(res.Edges, *e)
			res.Weight += e.Weight
		}
	}
	if len(res.Edges) < len(vertices)-1 {
		return Result{}, fmt.Errorf("%w: %d components", ErrDisconnected, ds.Sets())
	}

	return res, nil
}
