// Package bst is lesson 2 of the course log: binary search trees, their
// traversals, and balancing.
//
// What
//
//   - Tree[K, V]: an ordered map backed by an unbalanced binary search tree.
//     Insert / Upsert / Search / Delete / Min / Max, the four traversals,
//     Height, IsBST, IsBalanced, and Balance (rebuild from the in-order sequence).
//   - Node: a bare integer-keyed binary tree used by the tuple exercises.
//     FromTuple / ToTuple convert between a tree and its nested
//     (left, key, right) representation; ParseTuple reads the textual form
//     "((1,3,None),2,((None,3,4),5,(6,7,8)))".
//   - Info: height, node, leaf and internal-node counts.
//   - DisplayKeys, DisplayHorizontal, DisplayCompact, DisplayPretty: four text renderings.
//   - LinearUserDB and TreeUserDB: the lesson's user database, first with a
//     sequential scan and then with a BST index, to compare O(n) and O(log n).
//
// Complexity (h = tree height; h = O(log n) when balanced, O(n) worst case)
//
//	Operation | Linear (list) | BST (balanced) | BST (worst)
//	----------|---------------|----------------|------------
//	Search    | O(n)          | O(log n)       | O(n)
//	Insert    | O(n)          | O(log n)       | O(n)
//	Delete    | O(n)          | O(log n)       | O(n)
//
// Inserting keys in sorted order degenerates a BST into a linked list;
// Balance restores O(log n) height in O(n) time. The avl package keeps the
// height bound on every insert instead.
//
// Errors
//
//   - ErrDuplicateKey, ErrKeyNotFound, ErrEmptyTree for Tree.
//   - ErrBadTuple for malformed tuple input.
//   - ErrInvalidUser, ErrDuplicateUser, ErrUserNotFound for the user databases.
package bst
