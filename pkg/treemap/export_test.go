package treemap

// Fixture accessors for white-box tests. They are compiled into test
// binaries only.

// MakeNode returns a detached node.
func MakeNode[K any, V comparable](key K, value V) *node[K, V] {
	return newNode(key, value)
}

// SetChildren replaces both children of n and returns n.
func (n *node[K, V]) SetChildren(left, right *node[K, V]) *node[K, V] {
	n.left, n.right = left, right
	return n
}

// SetTree forces root and size without checking either.
func (t *Tree[K, V]) SetTree(root *node[K, V], size int) {
	t.root = root
	t.size = size
}

func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

// CheckOrder walks the tree and reports the first node whose subtree breaks
// the search tree ordering, if any.
func (t *Tree[K, V]) CheckOrder() (bad K, ok bool) {
	var check func(n *node[K, V], lo, hi *K) bool
	check = func(n *node[K, V], lo, hi *K) bool {
		if n == nil {
			return true
		}

		if (lo != nil && t.compare(n.key, *lo) <= 0) || (hi != nil && t.compare(n.key, *hi) >= 0) {
			bad = n.key
			return false
		}

		return check(n.left, lo, &n.key) && check(n.right, &n.key, hi)
	}

	ok = check(t.root, nil, nil)

	return bad, ok
}
