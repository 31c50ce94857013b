package bst

import "cmp"

// InOrder returns keys in left-root-right order, which for a BST is ascending.
func (t *Tree[K, V]) InOrder() []K {
	out := make([]K, 0, t.size)
	t.Walk(func(k K, _ V) { out = append(out, k) })

	return out
}

// Keys is an alias for InOrder.
func (t *Tree[K, V]) Keys() []K { return t.InOrder() }

// Walk calls fn for every entry in ascending key order.
func (t *Tree[K, V]) Walk(fn func(K, V)) {
	var walk func(*node[K, V])
	walk = func(n *node[K, V]) {
		if n == nil {
			return
		}
		walk(n.left)
		fn(n.key, n.val)
		walk(n.right)
	}
	walk(t.root)
}

// PreOrder returns keys in root-left-right order. Re-inserting them in this
// order into an empty tree reproduces the same shape.
func (t *Tree[K, V]) PreOrder() []K {
	out := make([]K, 0, t.size)
	var walk func(*node[K, V])
	walk = func(n *node[K, V]) {
		if n == nil {
			return
		}
		out = append(out, n.key)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)

	return out
}

// PostOrder returns keys in left-right-root order.
func (t *Tree[K, V]) PostOrder() []K {
	out := make([]K, 0, t.size)
	var walk func(*node[K, V])
	walk = func(n *node[K, V]) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		out = append(out, n.key)
	}
	walk(t.root)

	return out
}

// LevelOrder returns keys level by level, left to right (breadth-first).
func (t *Tree[K, V]) LevelOrder() []K {
	out := make([]K, 0, t.size)
	if t.root == nil {
		return out
	}
	queue := []*node[K, V]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n.key)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}

	return out
}

// IsBST verifies the ordering invariant over the whole tree.
func (t *Tree[K, V]) IsBST() bool {
	return isBST(t.root, nil, nil)
}

// isBST checks that every key lies strictly inside (lo, hi); nil bounds are open.
func isBST[K cmp.Ordered, V any](n *node[K, V], lo, hi *K) bool {
	if n == nil {
		return true
	}
	if lo != nil && n.key <= *lo {
		return false
	}
	if hi != nil && n.key >= *hi {
		return false
	}

	return isBST(n.left, lo, &n.key) && isBST(n.right, &n.key, hi)
}

// IsBalanced reports whether, at every node, the heights of the two subtrees
// differ by at most one.
func (t *Tree[K, V]) IsBalanced() bool {
	_, ok := balancedHeight(t.root)
	return ok
}

func balancedHeight[K cmp.Ordered, V any](n *node[K, V]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, lok := balancedHeight(n.left)
	rh, rok := balancedHeight(n.right)
	if !lok || !rok || lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}

	return 1 + max(lh, rh), true
}

// Balance rebuilds the tree into minimal height: the in-order sequence is
// collected, and each subtree is rooted at the middle of its range.
// Time Complexity: O(n). Memory: O(n).
func (t *Tree[K, V]) Balance() {
	nodes := make([]*node[K, V], 0, t.size)
	var collect func(*node[K, V])
	collect = func(n *node[K, V]) {
		if n == nil {
			return
		}
		collect(n.left)
		nodes = append(nodes, n)
		collect(n.right)
	}
	collect(t.root)
	t.root = buildBalanced(nodes)
}

func buildBalanced[K cmp.Ordered, V any](nodes []*node[K, V]) *node[K, V] {
	if len(nodes) == 0 {
		return nil
	}
	mid := len(nodes) / 2
	n := nodes[mid]
	n.left = buildBalanced(nodes[:mid])
	n.right = buildBalanced(nodes[mid+1:])

	return n
}
