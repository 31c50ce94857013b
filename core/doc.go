// Package core defines the Graph used by the lesson 7 traversals and shortest
// path algorithms.
//
// A Graph is an adjacency list keyed by vertex ID. Behavior is fixed at
// construction through GraphOption values:
//
//   - WithDirected(true): edges are one-way; otherwise each edge is mirrored.
//   - WithWeighted(): non-zero weights are accepted; otherwise weight must be 0.
//   - WithLoops(): self-loops are accepted.
//
// Edges get stable, monotonically increasing IDs ("e1", "e2", ...). Every query
// returns results in a deterministic order: vertices by ID, edges and
// neighbors by edge creation order. Traversal output is therefore reproducible.
//
// Concurrency: a single RWMutex guards the graph, so reads may run in parallel
// with each other but not with mutations.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrBadWeight      - non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core
