package bst

import (
	"cmp"
	"fmt"
)

// Len returns the number of keys stored.
func (t *Tree[K, V]) Len() int { return t.size }

// Insert adds key with value v. It returns ErrDuplicateKey, leaving the tree
// unchanged, if key is already present.
// Time Complexity: O(h).
func (t *Tree[K, V]) Insert(key K, v V) error {
	if _, ok := t.Search(key); ok {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	t.root = insert(t.root, key, v)
	t.size++

	return nil
}

// Upsert inserts key or replaces the value of an existing key.
// Reports whether a new key was added.
func (t *Tree[K, V]) Upsert(key K, v V) bool {
	if n := t.find(key); n != nil {
		n.val = v
		return false
	}
	t.root = insert(t.root, key, v)
	t.size++

	return true
}

// insert walks down from n and hangs a new leaf in the first empty slot.
// The caller guarantees key is absent.
func insert[K cmp.Ordered, V any](n *node[K, V], key K, v V) *node[K, V] {
	if n == nil {
		return &node[K, V]{key: key, val: v}
	}
	if key < n.key {
		n.left = insert(n.left, key, v)
	} else {
		n.right = insert(n.right, key, v)
	}

	return n
}

// Search returns the value stored under key.
// Time Complexity: O(h).
func (t *Tree[K, V]) Search(key K) (V, bool) {
	if n := t.find(key); n != nil {
		return n.val, true
	}
	var zero V

	return zero, false
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool { return t.find(key) != nil }

// find returns the node holding key, or nil.
func (t *Tree[K, V]) find(key K) *node[K, V] {
	n := t.root
	for n != nil {
		switch {
		case key == n.key:
			return n
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}

	return nil
}

// Delete removes key. Returns ErrKeyNotFound if it is absent.
//
// Three textbook cases:
//  1. leaf: unlink it;
//  2. one child: splice the child into the parent's slot;
//  3. two children: copy the in-order successor (minimum of the right
//     subtree) into the node, then delete the successor from the right subtree.
func (t *Tree[K, V]) Delete(key K) error {
	var removed bool
	t.root, removed = remove(t.root, key)
	if !removed {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	t.size--

	return nil
}

func remove[K cmp.Ordered, V any](n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch {
	case key < n.key:
		n.left, removed = remove(n.left, key)
		return n, removed
	case key > n.key:
		n.right, removed = remove(n.right, key)
		return n, removed
	}

	// key == n.key
	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}
	succ := n.right
	for succ.left != nil {
		succ = succ.left
	}
	n.key, n.val = succ.key, succ.val
	n.right, _ = remove(n.right, succ.key)

	return n, true
}

// Min returns the smallest key, or ErrEmptyTree.
func (t *Tree[K, V]) Min() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.key, nil
}

// Max returns the largest key, or ErrEmptyTree.
func (t *Tree[K, V]) Max() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, nil
}

// Height returns the number of levels in the tree; 0 when empty.
func (t *Tree[K, V]) Height() int { return height(t.root) }

func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}
