package mst

import (
	"errors"

	"github.com/katalvlaran/lvldsa/core"
)

var (
	// ErrInvalidGraph is returned unless the graph is undirected and weighted.
	ErrInvalidGraph = errors.New("mst: MST requires undirected, weighted graph")

	// ErrDisconnected is returned when the graph has no spanning tree.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrVertexNotFound is returned when Prim's root is absent.
	ErrVertexNotFound = errors.New("mst: root vertex not found")
)

// Result is a spanning tree and its total weight.
type Result struct {
	Edges  []core.Edge
	Weight int64
}

func validate(g *core.Graph) error {
	if g == nil || g.Directed() || !g.Weighted() {
		return ErrInvalidGraph
	}
	if g.VertexCount() == 0 {
		return ErrDisconnected
	}

	return nil
}

// DisjointSet is a union-find forest over string IDs.
type DisjointSet struct {
	parent map[string]string
	rank   map[string]int
	sets   int
}

// NewDisjointSet returns a forest where each id is its own set.
func NewDisjointSet(ids []string) *DisjointSet {
	ds := &DisjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
		sets:   len(ids),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

// Find returns the representative of id's set, halving the path as it goes.
func (ds *DisjointSet) Find(id string) string {
	for ds.parent[id] != id {
		ds.parent[id] = ds.parent[ds.parent[id]]
		id = ds.parent[id]
	}

	return id
}

// Union merges the sets of a and b and reports whether they were distinct.
func (ds *DisjointSet) Union(a, b string) bool {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
	ds.sets--

	return true
}

// Sets returns the number of disjoint sets.
func (ds *DisjointSet) Sets() int { return ds.sets }
