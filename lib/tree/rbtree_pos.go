package tree

import "github.com/benz9527/xcoll/lib/infra"

type rbPosState uint8

const (
	posEmpty rbPosState = iota
	posAt
	posEnd
)

// RBPos is an opaque position inside a COWRBTree: either a specific node,
// one past the last node, or the empty tree. A position is stamped with
// the generation of the tree that issued it, and every tree-level access
// through it re-checks that stamp. Navigation walks bare node links and is
// amortized O(1) over a full traversal.
type RBPos[K infra.OrderedKey, V any] struct {
	node  *rbNode[K, V] // set for posAt
	last  *rbNode[K, V] // set for posEnd, enables O(1) Pred()
	state rbPosState
	gen   uint64
}

// HasKV reports whether the position denotes a real node, i.e. whether it
// is safe to dereference through the issuing tree.
func (pos RBPos[K, V]) HasKV() bool {
	return pos.state == posAt
}

func (pos RBPos[K, V]) Gen() uint64 {
	return pos.gen
}

// Succ steps toward the end position. Stepping past the end is a contract
// violation.
func (pos RBPos[K, V]) Succ() RBPos[K, V] {
	switch pos.state {
	case posAt:
		if pos.node.detached() {
			panic( /* debug assertion */ "[rbtree] navigation from a removed entry")
		}
		next := pos.node.succ()
		if next == nil {
			return RBPos[K, V]{last: pos.node, state: posEnd, gen: pos.gen}
		}
		return RBPos[K, V]{node: next, state: posAt, gen: pos.gen}
	case posEnd:
		panic( /* debug assertion */ "[rbtree] no successor after the end position")
	default:
		panic( /* debug assertion */ "[rbtree] no successor inside an empty tree")
	}
}

// Pred steps toward the start position. Stepping before the start is a
// contract violation.
func (pos RBPos[K, V]) Pred() RBPos[K, V] {
	switch pos.state {
	case posEnd:
		return RBPos[K, V]{node: pos.last, state: posAt, gen: pos.gen}
	case posAt:
		if pos.node.detached() {
			panic( /* debug assertion */ "[rbtree] navigation from a removed entry")
		}
		prev := pos.node.pred()
		if prev == nil {
			panic( /* debug assertion */ "[rbtree] no predecessor before the start position")
		}
		return RBPos[K, V]{node: prev, state: posAt, gen: pos.gen}
	default:
		panic( /* debug assertion */ "[rbtree] no predecessor inside an empty tree")
	}
}

// Equal compares by node identity for node/end positions and by state for
// empty ones. Positions from different generations never compare equal.
func (pos RBPos[K, V]) Equal(other RBPos[K, V]) bool {
	if pos.state != other.state || pos.gen != other.gen {
		return false
	}
	switch pos.state {
	case posAt:
		return pos.node == other.node
	case posEnd:
		return pos.last == other.last
	default:
		return true
	}
}

func (tree *cowRBTree[K, V]) at(node *rbNode[K, V]) RBPos[K, V] {
	return RBPos[K, V]{node: node, state: posAt, gen: tree.core.gen}
}

func (tree *cowRBTree[K, V]) Begin() RBPos[K, V] {
	core := tree.core
	if core.root == nil {
		return RBPos[K, V]{state: posEmpty, gen: core.gen}
	}
	return tree.at(core.min)
}

func (tree *cowRBTree[K, V]) End() RBPos[K, V] {
	core := tree.core
	if core.root == nil {
		return RBPos[K, V]{state: posEmpty, gen: core.gen}
	}
	return RBPos[K, V]{last: core.max, state: posEnd, gen: core.gen}
}

// mustDeref rejects stale, foreign and non-node positions. Failing loudly
// here beats silently reading another tree's nodes.
func (tree *cowRBTree[K, V]) mustDeref(pos RBPos[K, V]) {
	if pos.gen != tree.core.gen {
		panic( /* debug assertion */ "[rbtree] stale or foreign position")
	}
	if pos.state != posAt {
		panic( /* debug assertion */ "[rbtree] dereference of an end or empty position")
	}
	if pos.node.detached() {
		panic( /* debug assertion */ "[rbtree] position to a removed entry")
	}
}

func (tree *cowRBTree[K, V]) KeyAt(pos RBPos[K, V]) K {
	tree.mustDeref(pos)
	return pos.node.key
}

func (tree *cowRBTree[K, V]) ValAt(pos RBPos[K, V]) V {
	tree.mustDeref(pos)
	return pos.node.val
}

// UpdateAt rewrites the payload in place. The key is immutable: changing
// it would break the ordering invariant underneath every other position.
func (tree *cowRBTree[K, V]) UpdateAt(pos RBPos[K, V], val V) {
	tree.ensureExclusive()
	tree.mustDeref(pos)
	pos.node.val = val
}
