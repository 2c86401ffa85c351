// Package splay provides an ordered, mutable key-to-value map backed by a
// splay tree. Every access moves the touched key toward the root of the
// tree, so operations are amortized logarithmic over any access sequence
// and recently used keys are cheap to reach again.
package splay

import "github.com/ajwerner/splay/internal/abstract"

// pair carries one map entry through the generic tree. The tree orders
// pairs by key alone, so a pair with a matching key and a different value
// lands on the same node and overwrites it.
type pair[K, V any] struct {
	key   K
	value V
}

// Map is an ordered map from K to V. Construct one with MakeMap.
//
// Not safe for concurrent use: lookups splay and therefore mutate the
// tree's shape, so even concurrent reads need external serialization.
type Map[K, V any] struct {
	t abstract.Tree[pair[K, V]]
}

// MakeMap constructs an empty Map whose keys are ordered by cmp.
func MakeMap[K, V any](cmp func(K, K) int) Map[K, V] {
	return Map[K, V]{
		t: abstract.MakeTree(func(a, b pair[K, V]) int {
			return cmp(a.key, b.key)
		}),
	}
}

// Upsert sets the value for key, creating the entry if the key is absent
// and overwriting it otherwise. The previous value is returned when one
// was overwritten.
func (m *Map[K, V]) Upsert(key K, value V) (replaced V, overwrote bool) {
	prev, overwrote := m.t.Upsert(pair[K, V]{key: key, value: value})
	return prev.value, overwrote
}

// Get returns the value stored for key. The second result distinguishes an
// absent key from a stored zero value.
func (m *Map[K, V]) Get(key K) (V, bool) {
	p, ok := m.t.Get(pair[K, V]{key: key})
	return p.value, ok
}

// Delete removes key and returns its value. Deleting an absent key is a
// no-op and leaves every other entry retrievable.
func (m *Map[K, V]) Delete(key K) (removed V, ok bool) {
	p, ok := m.t.Delete(pair[K, V]{key: key})
	return p.value, ok
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Root returns the key on the tree's root node, if any. The most recently
// touched key is always at the root; the accessor exists so callers and
// tests can observe the splay behavior without access to the tree's
// internals.
func (m *Map[K, V]) Root() (K, bool) {
	p, ok := m.t.Root()
	return p.key, ok
}

// Reset removes all entries and releases the node storage.
func (m *Map[K, V]) Reset() { m.t.Reset() }
