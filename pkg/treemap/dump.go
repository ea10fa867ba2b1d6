package treemap

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the shape of the tree, one node per line with its left
// subtree listed before its right one. Children are tagged L or R so a lone
// child's side is visible.
func (t *Tree[K, V]) Dump() string {
	if t.root == nil {
		return treeprint.NewWithRoot("(empty)").String()
	}

	tree := treeprint.NewWithRoot(label(t.root))
	dumpChildren(tree, t.root)

	return tree.String()
}

func dumpChildren[K any, V comparable](branch treeprint.Tree, n *node[K, V]) {
	for _, c := range []struct {
		side  string
		child *node[K, V]
	}{
		{"L", n.left},
		{"R", n.right},
	} {
		if c.child == nil {
			continue
		}

		sub := branch.AddMetaBranch(c.side, label(c.child))
		dumpChildren(sub, c.child)
	}
}

func label[K any, V comparable](n *node[K, V]) string {
	return fmt.Sprintf("%v: %v", n.key, n.value)
}
