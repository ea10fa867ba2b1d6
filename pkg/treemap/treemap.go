// Package treemap implements an ordered map on top of an unbalanced binary
// search tree.
//
// The shape of the tree depends only on the order of insertion. There is no
// rebalancing, so inserting keys in sorted order degrades every operation to
// linear time. Keys cannot be removed.
//
// A Tree is not safe for concurrent use. Callers that share one between
// goroutines have to serialize access themselves.
package treemap

import (
	"cmp"
	"iter"

	"github.com/DerGut/bstmap/pkg/dict"
)

// Tree maps keys of type K to values of type V, ordered by a three-way
// comparison of the keys. Use New or NewFunc to create one.
type Tree[K any, V comparable] struct {
	compare func(a, b K) int

	size int
	root *node[K, V]
}

type node[K any, V comparable] struct {
	key   K
	value V

	left, right *node[K, V]
}

var _ dict.Map[string, int] = &Tree[string, int]{}

// New returns an empty Tree ordered by cmp.Compare.
func New[K cmp.Ordered, V comparable]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty Tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b.
//
// Two keys are the same key whenever compare reports zero, even when they
// differ by ==. Put with such a key overwrites the value stored under the
// key that was inserted first and keeps that key.
func NewFunc[K any, V comparable](compare func(a, b K) int) *Tree[K, V] {
	if compare == nil {
		panic("treemap: nil compare func")
	}

	return &Tree[K, V]{compare: compare}
}

func newNode[K any, V comparable](key K, value V) *node[K, V] {
	return &node[K, V]{
		key:   key,
		value: value,
	}
}

// Clear discards all entries at once.
func (t *Tree[K, V]) Clear() {
	t.size = 0
	t.root = nil
}

func (t *Tree[K, V]) Size() int {
	return t.size
}

func (t *Tree[K, V]) IsEmpty() bool {
	return t.size == 0
}

// ContainsKey reports whether key is stored in the tree. It returns
// dict.ErrInvalidKey for a nil key.
func (t *Tree[K, V]) ContainsKey(key K) (bool, error) {
	n, err := t.findNode(key)
	if err != nil {
		return false, err
	}

	return n != nil, nil
}

// Get returns the value stored under key. A missing or nil key is reported
// with found == false.
func (t *Tree[K, V]) Get(key K) (value V, found bool) {
	n, err := t.findNode(key)
	if err != nil || n == nil {
		return value, false
	}

	return n.value, true
}

// findNode returns the node holding key, or nil if there is none.
func (t *Tree[K, V]) findNode(key K) (*node[K, V], error) {
	if isNil(key) {
		return nil, dict.ErrInvalidKey
	}

	current := t.root
	for current != nil {
		switch c := t.compare(key, current.key); {
		case c == 0:
			return current, nil
		case c < 0:
			current = current.left
		default:
			current = current.right
		}
	}

	return nil, nil
}

// Put stores value under key. If the key was already present its value is
// overwritten and the previous one is returned with replaced == true.
func (t *Tree[K, V]) Put(key K, value V) (old V, replaced bool, err error) {
	if isNil(key) {
		return old, false, dict.ErrInvalidKey
	}

	if t.root == nil {
		t.root = newNode(key, value)
		t.size++
		return old, false, nil
	}

	old, replaced = t.put(t.root, key, value)

	return old, replaced, nil
}

// put descends from n once, either updating the node that holds key or
// attaching a new leaf where the search falls off the tree.
func (t *Tree[K, V]) put(n *node[K, V], key K, value V) (old V, replaced bool) {
	switch c := t.compare(key, n.key); {
	case c == 0:
		old, n.value = n.value, value
		return old, true
	case c < 0:
		if n.left == nil {
			n.left = newNode(key, value)
			t.size++
			return old, false
		}

		return t.put(n.left, key, value)
	default:
		if n.right == nil {
			n.right = newNode(key, value)
			t.size++
			return old, false
		}

		return t.put(n.right, key, value)
	}
}

// PutAll puts every entry in the order entries yields them. It stops at the
// first failing entry; the entries before it stay applied.
func (t *Tree[K, V]) PutAll(entries iter.Seq2[K, V]) error {
	var err error
	for k, v := range entries {
		if _, _, err = t.Put(k, v); err != nil {
			break
		}
	}

	return err
}

// Remove always fails with dict.ErrUnsupported.
func (t *Tree[K, V]) Remove(K) (V, error) {
	var zero V
	return zero, dict.ErrUnsupported
}

// EntrySet always fails with dict.ErrUnsupported.
func (t *Tree[K, V]) EntrySet() ([]dict.Entry[K, V], error) {
	return nil, dict.ErrUnsupported
}
