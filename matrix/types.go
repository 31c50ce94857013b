// Package matrix is the adjacency-matrix half of lesson 7: a dense n×n view of
// a core.Graph and the Floyd-Warshall all-pairs shortest paths built on it.
//
// What:
//
//   - FromGraph indexes the vertices in sorted ID order and fills cell (i, j)
//     with the lightest i→j edge weight; unweighted edges count as 1. Absent
//     edges hold Inf. The diagonal is 0 unless a negative self-loop lowers it.
//   - FloydWarshall relaxes every pair through every intermediate vertex and
//     keeps a next-hop table so paths can be rebuilt.
//
// Complexity:
//
//   - FromGraph: O(V² + E) time and O(V²) memory.
//   - FloydWarshall: O(V³) time, O(V²) memory.
//
// Errors:
//
//   - ErrNilGraph for a nil graph or matrix.
//   - ErrVertexNotFound for an ID outside the matrix.
//   - ErrNegativeCycle when some vertex reaches itself with negative cost.
//   - ErrNoPath when the destination is unreachable.
package matrix

import (
	"errors"
	"math"
)

// Inf marks an absent edge or an unreachable pair.
const Inf int64 = math.MaxInt64

var (
	// ErrNilGraph is returned when FromGraph or FloydWarshall receives nil.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrVertexNotFound indicates an ID that is not indexed by the matrix.
	ErrVertexNotFound = errors.New("matrix: vertex not found")

	// ErrNegativeCycle indicates a cycle of negative total weight.
	ErrNegativeCycle = errors.New("matrix: negative cycle")

	// ErrNoPath indicates that the destination cannot be reached.
	ErrNoPath = errors.New("matrix: no path")
)

// Adjacency is a dense adjacency matrix over the vertices of a graph.
type Adjacency struct {
	ids      []string
	index    map[string]int
	cells    [][]int64
	directed bool
}

// Paths holds all-pairs shortest distances and the next-hop table.
type Paths struct {
	ids   []string
	index map[string]int
	dist  [][]int64
	next  [][]int // -1 when no path
}
