package core

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
)

const edgeIDPrefix = "e"

// AddEdge creates an edge from → to and returns its ID. Missing endpoints are
// added first.
//
// Steps:
//  1. Validate IDs, weight and loop constraints.
//  2. Ensure both endpoints exist.
//  3. Assign the next edge ID and link adjacency (mirrored when undirected).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", fmt.Errorf("%w: %d on %s-%s", ErrBadWeight, weight, from, to)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Endpoints
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Store and link
	g.nextSeq++
	e := &Edge{
		ID:     edgeIDPrefix + strconv.FormatUint(g.nextSeq, 10),
		From:   from,
		To:     to,
		Weight: weight,
		seq:    g.nextSeq,
	}
	g.edges[e.ID] = e
	g.adjacency[from] = append(g.adjacency[from], e)
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], e)
	}

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID.
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, eid)
	}
	g.unlinkLocked(e)
	delete(g.edges, eid)

	return nil
}

func (g *Graph) unlinkLocked(e *Edge) {
	drop := func(id string) {
		g.adjacency[id] = slices.DeleteFunc(g.adjacency[id], func(x *Edge) bool { return x == e })
	}
	drop(e.From)
	if e.To != e.From {
		drop(e.To)
	}
}

// HasEdge reports whether an edge leads from → to (in either direction when
// undirected).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.adjacency[from] {
		if e.Other(from) == to {
			return true
		}
	}

	return false
}

// Edges returns every edge in creation order.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *Edge) int { return cmp.Compare(a.seq, b.seq) })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
