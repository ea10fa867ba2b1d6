package treemap

// KeySet returns all keys in ascending order.
func (t *Tree[K, V]) KeySet() []K {
	keys := make([]K, 0, t.size)
	inOrder(t.root, func(n *node[K, V]) bool {
		keys = append(keys, n.key)
		return true
	})

	return keys
}

// Values returns every distinct value once. The order is unspecified.
//
// V has to be comparable at run time too: an interface value holding a
// slice, map or func panics.
func (t *Tree[K, V]) Values() []V {
	seen := make(map[V]struct{}, t.size)
	values := make([]V, 0, t.size)

	stack := []*node[K, V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n == nil {
			continue
		}

		if _, ok := seen[n.value]; !ok {
			seen[n.value] = struct{}{}
			values = append(values, n.value)
		}

		stack = append(stack, n.left, n.right)
	}

	return values
}

// ContainsValue reports whether any key maps to value. A nil value is
// matched by ==, it is not an error.
func (t *Tree[K, V]) ContainsValue(value V) bool {
	var found bool
	inOrder(t.root, func(n *node[K, V]) bool {
		found = n.value == value
		return !found
	})

	return found
}

// inOrder visits the subtree rooted at n left, node, right until visit
// returns false. It reports whether the walk ran to the end.
func inOrder[K any, V comparable](n *node[K, V], visit func(*node[K, V]) bool) bool {
	if n == nil {
		return true
	}

	return inOrder(n.left, visit) && visit(n) && inOrder(n.right, visit)
}

func height[K any, V comparable](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return max(height(n.left), height(n.right)) + 1
}
