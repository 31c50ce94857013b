// Package dijkstra computes single-source shortest paths on a weighted
// core.Graph with non-negative edge weights.
//
// The frontier is a binary heap with lazy decrease-key: a shorter distance
// pushes a fresh entry and stale entries are skipped when popped. The first
// time a vertex is popped its distance is final.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph is returned when the graph was not built WithWeighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound is returned when the source is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight is returned when any edge has a negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance is returned for a negative WithMaxDistance bound.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath is returned by PathTo for an unreachable vertex.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Inf marks an unreachable vertex in Result.Dist.
const Inf = math.MaxInt64

// Options configures a run.
type Options struct {
	// MaxDistance stops relaxing paths longer than this bound.
	MaxDistance int64

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions explores without a distance bound.
func DefaultOptions() Options {
	return Options{MaxDistance: Inf}
}

// WithMaxDistance ignores every path longer than d.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, d)
			return
		}
		o.MaxDistance = d
	}
}

// Result holds distances and predecessors from Source. Dist contains every
// vertex of the graph; unreachable ones are Inf.
type Result struct {
	Source string
	Dist   map[string]int64
	Prev   map[string]string
}

// PathTo returns the shortest path from Source to dest and its length.
func (r *Result) PathTo(dest string) ([]string, int64, error) {
	d, ok := r.Dist[dest]
	if !ok || d == Inf {
		return nil, 0, fmt.Errorf("%w: %q from %q", ErrNoPath, dest, r.Source)
	}
	path := []string{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, d, nil
}
