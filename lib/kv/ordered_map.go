package kv

import (
	"github.com/samber/lo"

	"github.com/benz9527/xcoll/lib/infra"
	"github.com/benz9527/xcoll/lib/tree"
)

var _ OrderedMap[int, string] = (*treeMap[int, string])(nil) // Type check assertion

// treeMap projects the ordered index engine as a dictionary. Key
// uniqueness lives here, not in the engine: Put resolves the key first
// and rewrites the payload in place when the key is already bound.
type treeMap[K infra.OrderedKey, V any] struct {
	idx tree.COWRBTree[K, V]
}

func NewOrderedMap[K infra.OrderedKey, V any]() OrderedMap[K, V] {
	return &treeMap[K, V]{
		idx: tree.NewCOWRBTree[K, V](),
	}
}

// NewOrderedMapFromEntries builds a map from the entries; later entries
// win on duplicate keys.
func NewOrderedMapFromEntries[K infra.OrderedKey, V any](entries []MapEntry[K, V]) OrderedMap[K, V] {
	m := NewOrderedMap[K, V]()
	for _, ent := range entries {
		m.Put(ent.Key, ent.Val)
	}
	return m
}

// NewOrderedMapFromNativeMap imports a built-in map.
func NewOrderedMapFromNativeMap[K infra.OrderedKey, V any](native map[K]V) OrderedMap[K, V] {
	m := NewOrderedMap[K, V]()
	for _, k := range lo.Keys(native) {
		m.Put(k, native[k])
	}
	return m
}

func (m *treeMap[K, V]) Len() int64 { return m.idx.Len() }

func (m *treeMap[K, V]) Put(key K, val V) {
	if pos, ok := m.idx.Find(key); ok {
		m.idx.UpdateAt(pos, val)
		return
	}
	m.idx.Insert(key, val)
}

func (m *treeMap[K, V]) Get(key K) (val V, ok bool) {
	pos, ok := m.idx.Find(key)
	if !ok {
		return
	}
	return m.idx.ValAt(pos), true
}

func (m *treeMap[K, V]) Delete(key K) (val V, ok bool) {
	pos, ok := m.idx.Find(key)
	if !ok {
		return
	}
	_, val = m.idx.Remove(pos)
	return val, true
}

func (m *treeMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.idx.Find(key)
	return ok
}

func (m *treeMap[K, V]) First() (key K, val V, ok bool) {
	if m.idx.Len() == 0 {
		return
	}
	pos := m.idx.Begin()
	return m.idx.KeyAt(pos), m.idx.ValAt(pos), true
}

func (m *treeMap[K, V]) Last() (key K, val V, ok bool) {
	if m.idx.Len() == 0 {
		return
	}
	pos := m.idx.End().Pred()
	return m.idx.KeyAt(pos), m.idx.ValAt(pos), true
}

func (m *treeMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.idx.Len())
	m.idx.Foreach(func(idx int64, color tree.RBColor, key K, val V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (m *treeMap[K, V]) Values() []V {
	values := make([]V, 0, m.idx.Len())
	m.idx.Foreach(func(idx int64, color tree.RBColor, key K, val V) bool {
		values = append(values, val)
		return true
	})
	return values
}

func (m *treeMap[K, V]) Entries() []MapEntry[K, V] {
	entries := make([]MapEntry[K, V], 0, m.idx.Len())
	m.idx.Foreach(func(idx int64, color tree.RBColor, key K, val V) bool {
		entries = append(entries, MapEntry[K, V]{Key: key, Val: val})
		return true
	})
	return entries
}

func (m *treeMap[K, V]) Foreach(fn func(idx int64, key K, val V) bool) {
	if fn == nil {
		return
	}
	m.idx.Foreach(func(idx int64, color tree.RBColor, key K, val V) bool {
		return fn(idx, key, val)
	})
}

func (m *treeMap[K, V]) Clone() OrderedMap[K, V] {
	return &treeMap[K, V]{idx: m.idx.Clone()}
}
