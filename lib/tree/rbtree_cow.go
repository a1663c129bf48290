package tree

import (
	"sync/atomic"

	"github.com/benz9527/xcoll/lib/id"
	"github.com/benz9527/xcoll/lib/infra"
)

var _ COWRBTree[uint64, uint64] = (*cowRBTree[uint64, uint64])(nil) // Type check assertion

// genSource stamps tree generations. Process-wide and never repeating, so
// a position issued by one tree can never pass another tree's check, not
// even across unrelated instances.
var genSource = func() id.Generator {
	gen, err := id.MonotonicNonZeroID()
	if err != nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] generation source init failure")
	}
	return gen
}()

func nextGen() uint64 {
	return genSource.Number()
}

// rbTreeCore is the shared representation behind one or more tree handles.
// refs counts the live handles; the first mutation through a handle while
// refs > 1 triggers the copy-on-write protocol in ensureExclusive.
type rbTreeCore[K infra.OrderedKey, V any] struct {
	root  *rbNode[K, V]
	min   *rbNode[K, V] // non-owning, O(1) Begin()/First()
	max   *rbNode[K, V] // non-owning, O(1) End()/Last()
	count int64
	gen   uint64
	refs  int64
}

type cowRBTree[K infra.OrderedKey, V any] struct {
	core *rbTreeCore[K, V]
}

func NewCOWRBTree[K infra.OrderedKey, V any]() COWRBTree[K, V] {
	return &cowRBTree[K, V]{
		core: &rbTreeCore[K, V]{
			gen:  nextGen(),
			refs: 1,
		},
	}
}

func (tree *cowRBTree[K, V]) Len() int64 {
	return atomic.LoadInt64(&tree.core.count)
}

func (tree *cowRBTree[K, V]) Gen() uint64 {
	return tree.core.gen
}

func (tree *cowRBTree[K, V]) Root() RBNode[K, V] {
	if tree.core.root == nil {
		return nil
	}
	return tree.core.root
}

func (tree *cowRBTree[K, V]) Clone() COWRBTree[K, V] {
	atomic.AddInt64(&tree.core.refs, 1)
	return &cowRBTree[K, V]{core: tree.core}
}

// ensureExclusive runs before every structural mutation. While the core is
// shared it deep-copies the node graph, hands the fresh copy (with a fresh
// generation and re-derived extrema) to the remaining holders, and detaches
// this handle with the original nodes. Keeping the originals on the
// mutating side is what lets a position issued before the copy keep
// working here, while the donated side deterministically rejects it.
// O(1) unless a copy is triggered, then exactly one O(count) pass.
func (tree *cowRBTree[K, V]) ensureExclusive() {
	core := tree.core
	if atomic.LoadInt64(&core.refs) <= 1 {
		return
	}

	cloned := core.root.deepCopy(nil)
	fresh := &rbTreeCore[K, V]{
		root:  core.root,
		min:   core.min,
		max:   core.max,
		count: core.count,
		gen:   core.gen,
		refs:  1,
	}
	core.root = cloned
	core.min = cloned.minimum()
	core.max = cloned.maximum()
	core.gen = nextGen()
	atomic.AddInt64(&core.refs, -1)
	tree.core = fresh
}

// Insert attaches a new red leaf found by plain BST descent, rebalances,
// and returns the new node's position. Equal keys descend to the right,
// so the tree itself tolerates duplicates.
func (tree *cowRBTree[K, V]) Insert(key K, val V) RBPos[K, V] {
	tree.ensureExclusive()
	core := tree.core

	z := &rbNode[K, V]{
		key:   key,
		val:   val,
		color: Red,
	}

	if core.root == nil {
		z.color = Black
		core.root, core.min, core.max = z, z, z
		atomic.AddInt64(&core.count, 1)
		return tree.at(z)
	}

	var x, y *rbNode[K, V] = core.root, nil
	for x != nil {
		y = x
		if infra.CompareKey(key, x.key) < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	z.parent = y
	if infra.CompareKey(key, y.key) < 0 {
		y.left = z
	} else {
		y.right = z
	}

	if infra.CompareKey(key, core.min.key) < 0 {
		core.min = z
	}
	if infra.CompareKey(key, core.max.key) >= 0 {
		core.max = z
	}

	atomic.AddInt64(&core.count, 1)
	core.insertRebalance(z)
	core.root.color = Black
	return tree.at(z)
}

// Remove detaches the node the position denotes and returns its entry.
// Exclusivity is ensured before the position is resolved: if the graph
// was shared, the donation copy happens first and a position issued by
// the donated side fails its generation check here instead of touching
// foreign nodes.
func (tree *cowRBTree[K, V]) Remove(pos RBPos[K, V]) (K, V) {
	tree.ensureExclusive()
	tree.mustDeref(pos)

	z := pos.node
	key, val := z.key, z.val
	tree.core.removeNode(z)
	return key, val
}

func (tree *cowRBTree[K, V]) First() (key K, ok bool) {
	if tree.core.min == nil {
		return key, false
	}
	return tree.core.min.key, true
}

func (tree *cowRBTree[K, V]) Last() (key K, ok bool) {
	if tree.core.max == nil {
		return key, false
	}
	return tree.core.max.key, true
}

// Inorder traversal to implement the DFS.
func (tree *cowRBTree[K, V]) Foreach(action func(idx int64, color RBColor, key K, val V) bool) {
	size := atomic.LoadInt64(&tree.core.count)
	aux := tree.core.root
	if size <= 0 || aux == nil {
		return
	}

	stack := make([]*rbNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.color, aux.key, aux.val) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// Release drops the node graph held by this handle. Shared holders keep
// theirs; outstanding positions become unusable.
func (tree *cowRBTree[K, V]) Release() {
	core := tree.core
	if atomic.AddInt64(&core.refs, -1) > 0 {
		tree.core = &rbTreeCore[K, V]{gen: nextGen(), refs: 1}
		return
	}

	aux := core.root
	core.root, core.min, core.max = nil, nil, nil
	for aux != nil {
		if aux.left != nil {
			aux = aux.left
			continue
		}
		if aux.right != nil {
			aux = aux.right
			continue
		}
		p := aux.parent
		aux.parent = nil
		if p != nil {
			if p.left == aux {
				p.left = nil
			} else {
				p.right = nil
			}
		}
		atomic.AddInt64(&core.count, -1)
		aux = p
	}
	tree.core = &rbTreeCore[K, V]{gen: nextGen(), refs: 1}
}
