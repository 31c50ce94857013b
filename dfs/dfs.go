package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvldsa/core"
)

type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	state map[string]int
	res   *Result
}

func newWalker(g *core.Graph, o Options) *walker {
	n := g.VertexCount()

	return &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		state: make(map[string]int, n),
		res: &Result{
			Order:    make([]string, 0, n),
			PreOrder: make([]string, 0, n),
			Depth:    make(map[string]int, n),
			Parent:   make(map[string]string, n),
			Visited:  make(map[string]bool, n),
		},
	}
}

// DFS explores g depth-first from start. With WithFullTraversal it then
// continues from every unvisited vertex.
func DFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	w := newWalker(g, o)
	if err := w.visit(start, 0); err != nil {
		return nil, err
	}
	if o.FullTraversal {
		for _, id := range g.Vertices() {
			if w.state[id] != White {
				continue
			}
			if err := w.visit(id, 0); err != nil {
				return nil, err
			}
		}
	}

	return w.res, nil
}

func (w *walker) visit(id string, depth int) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	w.state[id] = Gray
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.PreOrder = append(w.res.PreOrder, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: visit %q: %w", id, err)
		}
	}

	edges, err := w.graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, e := range edges {
		next := e.Other(id)
		if w.state[next] != White {
			continue
		}
		w.res.Parent[next] = id
		if err := w.visit(next, depth+1); err != nil {
			return err
		}
	}

	w.state[id] = Black
	w.res.Order = append(w.res.Order, id)

	return nil
}
