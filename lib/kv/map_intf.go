package kv

import (
	"github.com/benz9527/xcoll/lib/infra"
)

// MapEntry is a key-value pair snapshot taken from an ordered map.
type MapEntry[K infra.OrderedKey, V any] struct {
	Key K
	Val V
}

// OrderedMap is a key-sorted dictionary with unique keys. It is a thin
// projection over the ordered index engine, so Clone is O(1) and the
// copies share storage until either side mutates.
type OrderedMap[K infra.OrderedKey, V any] interface {
	Len() int64
	// Put binds key to val, replacing the previous binding if present.
	Put(key K, val V)
	Get(key K) (V, bool)
	// Delete unbinds key and returns the removed value if it was present.
	Delete(key K) (V, bool)
	ContainsKey(key K) bool
	First() (K, V, bool)
	Last() (K, V, bool)
	Keys() []K
	Values() []V
	Entries() []MapEntry[K, V]
	// Foreach visits the entries in ascending key order until fn returns
	// false.
	Foreach(fn func(idx int64, key K, val V) bool)
	Clone() OrderedMap[K, V]
}

// OrderedSet is a sorted set of unique keys over the same engine.
type OrderedSet[K infra.OrderedKey] interface {
	Len() int64
	// Add inserts key and reports whether it was absent before.
	Add(key K) bool
	Contains(key K) bool
	// Remove drops key and reports whether it was present.
	Remove(key K) bool
	Min() (K, bool)
	Max() (K, bool)
	ToSlice() []K
	// Foreach visits the keys in ascending order until fn returns false.
	Foreach(fn func(idx int64, key K) bool)
	Clone() OrderedSet[K]
}
