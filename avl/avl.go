// Package avl is the balancing half of lesson 2: an AVL tree that keeps the
// height of every pair of sibling subtrees within one of each other, so search,
// insert and delete stay O(log n) even on sorted input.
//
// Each node caches its height; after an insert or delete the path back to the
// root is re-balanced with at most two rotations per node:
//
//	LL: rotate right        RR: rotate left
//	LR: left(child), right  RL: right(child), left
//
// Complexity: O(log n) time per operation, O(n) memory.
package avl

import "cmp"

// node is one AVL entry with its cached height (a leaf has height 1).
type node[K cmp.Ordered] struct {
	key    K
	height int
	left   *node[K]
	right  *node[K]
}

// Tree is an AVL set of ordered keys. The zero value is an empty tree.
type Tree[K cmp.Ordered] struct {
	root *node[K]
	size int
}

// New returns an empty Tree.
func New[K cmp.Ordered]() *Tree[K] { return &Tree[K]{} }

// Len returns the number of keys.
func (t *Tree[K]) Len() int { return t.size }

// Height returns the number of levels; 0 when empty.
func (t *Tree[K]) Height() int { return h(t.root) }

// Contains reports whether key is present.
func (t *Tree[K]) Contains(key K) bool {
	n := t.root
	for n != nil {
		switch {
		case key == n.key:
			return true
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}

	return false
}

// Insert adds key. Reports false if it was already present.
func (t *Tree[K]) Insert(key K) bool {
	var added bool
	t.root, added = insert(t.root, key)
	if added {
		t.size++
	}

	return added
}

// Delete removes key. Reports false if it was absent.
func (t *Tree[K]) Delete(key K) bool {
	var removed bool
	t.root, removed = remove(t.root, key)
	if removed {
		t.size--
	}

	return removed
}

// InOrder returns the keys in ascending order.
func (t *Tree[K]) InOrder() []K {
	out := make([]K, 0, t.size)
	var walk func(*node[K])
	walk = func(n *node[K]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.key)
		walk(n.right)
	}
	walk(t.root)

	return out
}

// Balanced verifies the AVL invariant and the cached heights over the whole tree.
func (t *Tree[K]) Balanced() bool {
	_, ok := check(t.root)
	return ok
}

func check[K cmp.Ordered](n *node[K]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, lok := check(n.left)
	rh, rok := check(n.right)
	if !lok || !rok || lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	height := 1 + max(lh, rh)

	return height, height == n.height
}

func h[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}

	return n.height
}

func update[K cmp.Ordered](n *node[K]) {
	n.height = 1 + max(h(n.left), h(n.right))
}

func balanceFactor[K cmp.Ordered](n *node[K]) int {
	return h(n.left) - h(n.right)
}

// rotateRight lifts the left child of y:
//
//	    y            x
//	   / \          / \
//	  x   C   →    A   y
//	 / \              / \
//	A   B            B   C
func rotateRight[K cmp.Ordered](y *node[K]) *node[K] {
	x := y.left
	y.left = x.right
	x.right = y
	update(y)
	update(x)

	return x
}

func rotateLeft[K cmp.Ordered](x *node[K]) *node[K] {
	y := x.right
	x.right = y.left
	y.left = x
	update(x)
	update(y)

	return y
}

// rebalance restores the AVL invariant at n, assuming both subtrees are valid.
func rebalance[K cmp.Ordered](n *node[K]) *node[K] {
	update(n)
	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.left) < 0 { // LR
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 { // RL
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}

	return n
}

func insert[K cmp.Ordered](n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return &node[K]{key: key, height: 1}, true
	}
	var added bool
	switch {
	case key < n.key:
		n.left, added = insert(n.left, key)
	case key > n.key:
		n.right, added = insert(n.right, key)
	default:
		return n, false
	}

	return rebalance(n), added
}

func remove[K cmp.Ordered](n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch {
	case key < n.key:
		n.left, removed = remove(n.left, key)
	case key > n.key:
		n.right, removed = remove(n.right, key)
	default:
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
		n.key = succ.key
		n.right, _ = remove(n.right, succ.key)
		removed = true
	}

	return rebalance(n), removed
}
