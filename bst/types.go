package bst

import (
	"cmp"
	"errors"
)

// Sentinel errors for tree operations.
var (
	// ErrDuplicateKey is returned by Insert when the key is already present.
	ErrDuplicateKey = errors.New("bst: duplicate key")

	// ErrKeyNotFound is returned by Delete when the key is absent.
	ErrKeyNotFound = errors.New("bst: key not found")

	// ErrEmptyTree is returned by Min and Max on an empty tree.
	ErrEmptyTree = errors.New("bst: tree is empty")

	// ErrBadTuple is returned when a tuple value or string is malformed.
	ErrBadTuple = errors.New("bst: malformed tree tuple")
)

// Sentinel errors for the user databases.
var (
	// ErrInvalidUser is returned for a nil user or an empty username.
	ErrInvalidUser = errors.New("bst: invalid user")

	// ErrDuplicateUser is returned when the username is already taken.
	ErrDuplicateUser = errors.New("bst: username already exists")

	// ErrUserNotFound is returned by Find and Update for unknown usernames.
	ErrUserNotFound = errors.New("bst: user not found")
)

// node is one entry of Tree.
type node[K cmp.Ordered, V any] struct {
	key   K
	val   V
	left  *node[K, V]
	right *node[K, V]
}

// Tree is an unbalanced binary search tree mapping keys to values.
// The zero value is an empty tree ready to use.
//
// Invariant: for every node, keys in the left subtree are smaller and keys
// in the right subtree are greater. Keys are unique.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty Tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Node is a plain integer-keyed binary tree node used by the tuple and
// display exercises. It carries no ordering invariant of its own; use
// IsBSTNode to check one.
type Node struct {
	Key   int
	Left  *Node
	Right *Node
}

// Tuple is the nested (left, key, right) form of a Node with children.
// Left and Right are each nil, an int (a leaf), or another Tuple.
type Tuple [3]any

// Stats reports the shape of a tree.
type Stats struct {
	Height   int // number of levels; 0 for an empty tree
	Nodes    int // total nodes
	Leaves   int // nodes without children
	Internal int // Nodes - Leaves
}
