// Package bfs is the breadth-first half of lesson 7.
//
// What:
//
//   - BFS visits every vertex reachable from a start vertex exactly once, level
//     by level, and records the visit Order, the hop Depth of each vertex and
//     its Parent in the BFS tree.
//   - Result.PathTo rebuilds a fewest-edges path from the start.
//   - Options add cancellation, a depth limit, an edge filter and a visit hook.
//
// Neighbors are expanded in core.Graph edge order, so the visit order is
// reproducible. Edge weights are ignored.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors:
//
//   - ErrGraphNil: nil graph.
//   - ErrStartVertexNotFound: start vertex is absent.
//   - ErrOptionViolation: negative MaxDepth.
//   - ErrNoPath: PathTo target was not reached.
//   - ctx.Err() on cancellation, or the error returned by the visit hook.
package bfs
