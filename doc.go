// Package lvldsa is a data structures and algorithms course log: each lesson's
// textbook structures and algorithms, plus the interview problems solved with
// them.
//
// 🚀 What is inside?
//
//	• Lesson 1: linear and binary search (search)
//	• Lesson 2: binary search trees, tuple trees, a user database (bst), AVL (avl)
//	• Lesson 3: linked lists, stacks, queues, binary heaps (linkedlist, stack, queue, heap)
//	• Lesson 4: hash tables with chaining and open addressing (hashtable)
//	• Lesson 5: sorting, from bubble sort to counting sort (sorting)
//	• Lesson 6: dynamic programming (dp)
//	• Lesson 7: graphs (core, matrix, bfs, dfs, dijkstra, mst)
//	• Interview problems built on the lessons (problems)
//
// ✨ Conventions
//
//   - Generic where the lesson allows it (cmp.Ordered keys, less functions).
//   - Sentinel errors per package, prefixed with the package name.
//   - No package logs; only the lvldsa command does.
//
// The lvldsa command (cmd/lvldsa) runs every lesson as a demonstration:
//
//	lvldsa list
//	lvldsa run bst graphs
//	lvldsa bench --sizes 100,1000
//	lvldsa tree "((1,3,None),2,((None,3,4),5,(6,7,8)))" --svg tree.svg
package lvldsa
