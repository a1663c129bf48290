package tree

import "github.com/benz9527/xcoll/lib/infra"

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

type RBNode[K infra.OrderedKey, V any] interface {
	Key() K
	Val() V
	Color() RBColor
	Left() RBNode[K, V]
	Right() RBNode[K, V]
	Parent() RBNode[K, V]
}

// COWRBTree is an ordered index engine: a red-black tree with O(log n)
// insert/remove/search, generation-stamped positions for stable traversal,
// and copy-on-write sharing across Clone handles.
//
// The tree itself permits duplicate keys (equal keys descend to the right);
// uniqueness is a facade concern, see the kv package.
//
// None of the operations are safe for concurrent use across goroutines,
// not even the read-only ones: a clone mutating on another goroutine may
// swap the shared node graph mid-read. Guard all handles descended from a
// common Clone with one external mutex if they must cross goroutines.
type COWRBTree[K infra.OrderedKey, V any] interface {
	Len() int64
	Gen() uint64
	Root() RBNode[K, V]
	// Clone shares the node graph in O(1). The first structural mutation
	// on either side pays a single O(n) deep copy.
	Clone() COWRBTree[K, V]
	// Insert always attaches a new node and returns its position.
	Insert(key K, val V) RBPos[K, V]
	// Remove detaches the node a position denotes and returns its entry.
	// A stale, foreign or non-dereferenceable position panics.
	Remove(pos RBPos[K, V]) (K, V)
	Find(key K) (RBPos[K, V], bool)
	// LowerBound locates the first entry with key >= target, or End().
	LowerBound(key K) RBPos[K, V]
	// UpperBound locates the first entry with key > target, or End().
	UpperBound(key K) RBPos[K, V]
	Begin() RBPos[K, V]
	End() RBPos[K, V]
	KeyAt(pos RBPos[K, V]) K
	ValAt(pos RBPos[K, V]) V
	UpdateAt(pos RBPos[K, V], val V)
	First() (K, bool)
	Last() (K, bool)
	Foreach(action func(idx int64, color RBColor, key K, val V) bool)
	Release()
}
