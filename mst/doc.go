// Package mst builds minimum spanning trees of undirected weighted graphs.
//
// What:
//
//   - Kruskal sorts edges by weight and adds each one that joins two different
//     components, tracked by a disjoint-set with path compression and union by rank.
//   - Prim grows one tree from a root, always taking the lightest edge that
//     leaves it, using a binary heap of candidate edges.
//
// Both return the same total weight; with distinct weights they return the same
// edge set. Ties are broken by edge creation order, so output is deterministic.
//
// Complexity: O(E log E) time for both, O(V + E) memory.
//
// Errors:
//
//   - ErrInvalidGraph: nil, directed or unweighted graph.
//   - ErrDisconnected: no spanning tree exists (including the empty graph).
//   - ErrVertexNotFound: Prim root is absent.
package mst
