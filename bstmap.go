// Package bstmap provides an ordered map backed by an unbalanced binary
// search tree.
//
// The implementation lives in pkg/treemap; the operations every map offers
// are described by dict.Map in pkg/dict.
package bstmap

import (
	"cmp"

	"github.com/DerGut/bstmap/pkg/dict"
	"github.com/DerGut/bstmap/pkg/treemap"
)

// New returns an empty map ordered by the natural ordering of K.
func New[K cmp.Ordered, V comparable]() dict.Map[K, V] {
	return treemap.New[K, V]()
}

// NewFunc returns an empty map ordered by compare.
func NewFunc[K any, V comparable](compare func(a, b K) int) dict.Map[K, V] {
	return treemap.NewFunc[K, V](compare)
}
