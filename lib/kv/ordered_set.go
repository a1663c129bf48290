package kv

import (
	"github.com/samber/lo"

	"github.com/benz9527/xcoll/lib/infra"
	"github.com/benz9527/xcoll/lib/tree"
)

var _ OrderedSet[int] = (*treeSet[int])(nil) // Type check assertion

type treeSet[K infra.OrderedKey] struct {
	idx tree.COWRBTree[K, struct{}]
}

func NewOrderedSet[K infra.OrderedKey]() OrderedSet[K] {
	return &treeSet[K]{
		idx: tree.NewCOWRBTree[K, struct{}](),
	}
}

// NewOrderedSetOf builds a set from the values, dropping duplicates.
func NewOrderedSetOf[K infra.OrderedKey](values ...K) OrderedSet[K] {
	s := NewOrderedSet[K]()
	for _, v := range lo.Uniq(values) {
		s.Add(v)
	}
	return s
}

// NewOrderedSetFromMapKeys builds a set from the keys of a built-in map.
func NewOrderedSetFromMapKeys[K infra.OrderedKey, V any](native map[K]V) OrderedSet[K] {
	s := NewOrderedSet[K]()
	for _, k := range lo.Keys(native) {
		s.Add(k)
	}
	return s
}

func (s *treeSet[K]) Len() int64 { return s.idx.Len() }

func (s *treeSet[K]) Add(key K) bool {
	if _, ok := s.idx.Find(key); ok {
		return false
	}
	s.idx.Insert(key, struct{}{})
	return true
}

func (s *treeSet[K]) Contains(key K) bool {
	_, ok := s.idx.Find(key)
	return ok
}

func (s *treeSet[K]) Remove(key K) bool {
	pos, ok := s.idx.Find(key)
	if !ok {
		return false
	}
	s.idx.Remove(pos)
	return true
}

func (s *treeSet[K]) Min() (K, bool) { return s.idx.First() }

func (s *treeSet[K]) Max() (K, bool) { return s.idx.Last() }

func (s *treeSet[K]) ToSlice() []K {
	keys := make([]K, 0, s.idx.Len())
	s.idx.Foreach(func(idx int64, color tree.RBColor, key K, val struct{}) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (s *treeSet[K]) Foreach(fn func(idx int64, key K) bool) {
	if fn == nil {
		return
	}
	s.idx.Foreach(func(idx int64, color tree.RBColor, key K, val struct{}) bool {
		return fn(idx, key)
	})
}

func (s *treeSet[K]) Clone() OrderedSet[K] {
	return &treeSet[K]{idx: s.idx.Clone()}
}
