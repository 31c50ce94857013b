package mst

import (
	"fmt"

	"github.com/katalvlaran/lvldsa/core"
	"github.com/katalvlaran/lvldsa/heap"
)

// edgeLess orders candidates by weight, then by edge creation order.
func edgeLess(order map[string]int) func(a, b *core.Edge) bool {
	return func(a, b *core.Edge) bool {
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		return order[a.ID] < order[b.ID]
	}
}

// Prim computes a minimum spanning tree of g grown from root. An empty root
// picks the smallest vertex ID.
func Prim(g *core.Graph, root string) (Result, error) {
	if err := validate(g); err != nil {
		return Result{}, err
	}
	vertices := g.Vertices()
	if root == "" {
		root = vertices[0]
	}
	if !g.HasVertex(root) {
		return Result{}, fmt.Errorf("%w: %q", ErrVertexNotFound, root)
	}

	order := make(map[string]int, g.EdgeCount())
	for i, e := range g.Edges() {
		order[e.ID] = i
	}
	candidates := heap.New(edgeLess(order))
	inTree := make(map[string]bool, len(vertices))
	res := Result{Edges: make([]core.Edge, 0, len(vertices)-1)}

	add := func(id string) error {
		inTree[id] = true
		edges, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if !inTree[e.Other(id)] {
				candidates.Push(e)
			}
		}
		return nil
	}
	if err := add(root); err != nil {
		return Result{}, err
	}

	for candidates.Len() > 0 && len(res.Edges) < len(vertices)-1 {
		e, _ := candidates.Pop()
		var next string
		switch {
		case !inTree[e.To]:
			next = e.To
		case !inTree[e.From]:
			next = e.From
		default:
			continue // both ends already joined
		}
		res.Edges = append(res.Edges, *e)
		res.Weight += e.Weight
		if err := add(next); err != nil {
			return Result{}, err
		}
	}
	if len(res.Edges) < len(vertices)-1 {
		return Result{}, fmt.Errorf("%w: reached %d of %d vertices from %q",
			ErrDisconnected, len(inTree), len(vertices), root)
	}

	return res, nil
}
