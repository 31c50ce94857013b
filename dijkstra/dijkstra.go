package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvldsa/core"
	"github.com/katalvlaran/lvldsa/heap"
)

type frontierItem struct {
	id   string
	dist int64
}

// runner holds the state of one run.
type runner struct {
	g        *core.Graph
	opts     Options
	res      *Result
	done     map[string]bool
	frontier *heap.Heap[frontierItem]
}

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Steps:
//  1. Validate graph, options, source and weights.
//  2. Seed Dist with Inf and push the source at 0.
//  3. Pop the nearest unfinished vertex, finalize it and relax its edges.
func Dijkstra(g *core.Graph, source string, opts ...Option) (*Result, error) {
	// 1) Validation
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: %s %s->%s = %d", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
	}

	// 2) Initialization
	r := &runner{
		g:    g,
		opts: o,
		res: &Result{
			Source: source,
			Dist:   make(map[string]int64, g.VertexCount()),
			Prev:   make(map[string]string, g.VertexCount()),
		},
		done:     make(map[string]bool, g.VertexCount()),
		frontier: heap.New(func(a, b frontierItem) bool { return a.dist < b.dist }),
	}
	for _, id := range g.Vertices() {
		r.res.Dist[id] = Inf
	}
	r.res.Dist[source] = 0
	r.frontier.Push(frontierItem{id: source})

	// 3) Main loop
	for r.frontier.Len() > 0 {
		cur, _ := r.frontier.Pop()
		if r.done[cur.id] {
			continue // stale entry
		}
		r.done[cur.id] = true
		if err := r.relax(cur); err != nil {
			return nil, err
		}
	}

	return r.res, nil
}

func (r *runner) relax(cur frontierItem) error {
	edges, err := r.g.Neighbors(cur.id)
	if err != nil {
		return err
	}
	for _, e := range edges {
		next := e.Other(cur.id)
		if r.done[next] {
			continue
		}
		// cur.dist <= MaxDistance, so the subtraction cannot overflow
		if e.Weight > r.opts.MaxDistance-cur.dist {
			continue
		}
		nd := cur.dist + e.Weight
		if nd >= r.res.Dist[next] {
			continue
		}
		r.res.Dist[next] = nd
		r.res.Prev[next] = cur.id
		r.frontier.Push(frontierItem{id: next, dist: nd})
	}

	return nil
}
