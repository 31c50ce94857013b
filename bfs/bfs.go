package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvldsa/core"
	"github.com/katalvlaran/lvldsa/queue"
)

type item struct {
	id    string
	depth int
}

// walker holds the mutable state of one search.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue *queue.Queue[item]
	res   *Result
}

// BFS runs breadth-first search on g from start.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: queue.New[item](n),
		res: &Result{
			Start:  start,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.discover(start, 0, "")

	return w.res, w.loop()
}

// discover marks id as seen at depth d. A vertex is discovered at most once,
// which is what makes Depth the minimal hop count.
func (w *walker) discover(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue.Enqueue(item{id: id, depth: d})
}

func (w *walker) loop() error {
	for w.queue.Len() > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur, _ := w.queue.Dequeue()
		w.res.Order = append(w.res.Order, cur.id)
		if err := w.opts.OnVisit(cur.id, cur.depth); err != nil {
			return fmt.Errorf("bfs: visit %q: %w", cur.id, err)
		}
		if w.opts.MaxDepth > 0 && cur.depth >= w.opts.MaxDepth {
			continue
		}
		if err := w.expand(cur); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) expand(cur item) error {
	edges, err := w.graph.Neighbors(cur.id)
	if err != nil {
		return err
	}
	for _, e := range edges {
		next := e.Other(cur.id)
		if _, seen := w.res.Depth[next]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(cur.id, next) {
			continue
		}
		w.discover(next, cur.depth+1, cur.id)
	}

	return nil
}
