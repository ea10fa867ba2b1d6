// Package dict describes the capability set of a dictionary: the operations a
// map from keys to values has to offer, independent of how it stores them.
package dict

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrInvalidKey is returned when an absent (nil) key is passed to an
	// operation that needs a real key.
	ErrInvalidKey = errors.New("invalid key: key is nil")

	// ErrUnsupported is returned by operations a Map refuses to perform.
	// It matches errors.ErrUnsupported as well.
	ErrUnsupported = fmt.Errorf("dict: %w", errors.ErrUnsupported)
)

// Map is a dictionary from keys of type K to values of type V.
//
// Lookups for missing keys are not errors. Operations that need a real key
// return ErrInvalidKey for a nil one, and implementations may answer
// Remove and EntrySet with ErrUnsupported.
type Map[K any, V comparable] interface {
	Clear()
	ContainsKey(key K) (bool, error)
	ContainsValue(value V) bool
	Get(key K) (value V, found bool)
	IsEmpty() bool
	KeySet() []K
	Put(key K, value V) (old V, replaced bool, err error)
	PutAll(entries iter.Seq2[K, V]) error
	Remove(key K) (V, error)
	EntrySet() ([]Entry[K, V], error)
	Size() int
	Values() []V
}

type Entry[K, V any] struct {
	Key   K
	Value V
}

// Pairs yields the entries in slice order. It is a source for PutAll.
func Pairs[K, V any](entries []Entry[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}
