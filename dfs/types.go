package dfs

import (
	"context"
	"errors"
)

// Vertex states during traversal.
const (
	White = iota // not visited
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected is returned by TopologicalSort when the graph has a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirectedGraph is returned by TopologicalSort for an undirected graph.
	ErrUndirectedGraph = errors.New("dfs: topological sort requires a directed graph")
)

// Option configures DFS.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// Ctx allows cancellation; checked on every vertex entry.
	Ctx context.Context

	// OnVisit runs when a vertex turns Gray (pre-order). An error aborts.
	OnVisit func(id string, depth int) error

	// FullTraversal restarts from every still-White vertex in sorted ID order,
	// covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns background context, no hook and single-source mode.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithFullTraversal makes DFS cover every vertex of the graph.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures a traversal.
type Result struct {
	// Order lists vertices in post-order.
	Order []string

	// PreOrder lists vertices in discovery order.
	PreOrder []string

	// Depth is the depth of each vertex in its DFS tree (roots are 0).
	Depth map[string]int

	// Parent is the DFS tree predecessor; roots have no entry.
	Parent map[string]string

	// Visited holds every discovered vertex.
	Visited map[string]bool
}
