// Package dfs is the depth-first half of lesson 7: traversal, topological
// ordering and cycle detection over a core.Graph.
//
// DFS colors vertices White (unseen), Gray (on the recursion stack) and Black
// (finished). Result.Order is the post-order, the order in which vertices turn
// Black. Reversing the post-order of a DAG gives a topological order, and
// meeting a Gray vertex along a directed edge proves a cycle.
//
// Complexity: O(V + E) time, O(V) memory (plus recursion depth up to V).
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound: invalid input.
//   - ErrCycleDetected: TopologicalSort on a graph with a directed cycle.
//   - ErrUndirectedGraph: TopologicalSort on an undirected graph.
package dfs
