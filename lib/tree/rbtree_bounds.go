package tree

import "github.com/benz9527/xcoll/lib/infra"

// Bound queries are read-only: they never trigger the exclusivity check
// and walk the node graph directly.

// LowerBound returns the position of the first entry whose key is not
// less than the target, or End() if no such entry exists.
func (tree *cowRBTree[K, V]) LowerBound(key K) RBPos[K, V] {
	core := tree.core
	if core.root == nil || infra.CompareKey(key, core.max.key) > 0 {
		// Fast reject through the cached maximum.
		return tree.End()
	}

	var candidate *rbNode[K, V]
	for aux := core.root; aux != nil; {
		if infra.CompareKey(aux.key, key) >= 0 {
			candidate = aux
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	// candidate cannot be nil here, the fast reject covered that case.
	return tree.at(candidate)
}

// UpperBound returns the position of the first entry whose key is strictly
// greater than the target, or End() if no such entry exists.
func (tree *cowRBTree[K, V]) UpperBound(key K) RBPos[K, V] {
	core := tree.core
	if core.root == nil || infra.CompareKey(key, core.max.key) >= 0 {
		return tree.End()
	}

	var candidate *rbNode[K, V]
	for aux := core.root; aux != nil; {
		if infra.CompareKey(aux.key, key) > 0 {
			candidate = aux
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return tree.at(candidate)
}

// Find is LowerBound filtered by exact equality. Absence is an optional
// result, never an error.
func (tree *cowRBTree[K, V]) Find(key K) (RBPos[K, V], bool) {
	pos := tree.LowerBound(key)
	if pos.HasKV() && infra.CompareKey(pos.node.key, key) == 0 {
		return pos, true
	}
	return RBPos[K, V]{}, false
}
