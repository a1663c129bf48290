package tree

import (
	"errors"

	"go.uber.org/multierr"

	"github.com/benz9527/xcoll/lib/infra"
)

// rbtree rule validation utilities, used by the randomized stress tests
// after every mutation.

func blackDepthTo[K infra.OrderedKey, V any](target, to RBNode[K, V]) int {
	depth := 0
	for aux := target; aux != to; aux = aux.Parent() {
		if aux.Color() == Black {
			depth++
		}
	}
	return depth
}

// Inorder traversal to validate the red rule (p3): no red node has a red
// child, and the root is black.
func RedViolationValidate[K infra.OrderedKey, V any](tree COWRBTree[K, V]) error {
	size := tree.Len()
	aux := tree.Root()
	if size <= 0 || aux == nil {
		return nil
	}
	if aux.Color() == Red {
		return errors.New("rbtree red violation: red root")
	}

	stack := make([]RBNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.Left() {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; aux.Color() == Red {
			if l, r := aux.Left(), aux.Right(); (l != nil && l.Color() == Red) ||
				(r != nil && r.Color() == Red) {
				return errors.New("rbtree red violation")
			}
		}

		stack = stack[:size-1]
		if aux.Right() != nil {
			for aux = aux.Right(); aux != nil; aux = aux.Left() {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// BFS traversal to load all nodes owning at least one nil child slot.
func bfsLeaves[K infra.OrderedKey, V any](tree COWRBTree[K, V]) []RBNode[K, V] {
	size := tree.Len()
	aux := tree.Root()
	if size <= 0 || aux == nil {
		return nil
	}

	leaves := make([]RBNode[K, V], 0, size>>1+1)
	stack := make([]RBNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, aux)

	for len(stack) > 0 {
		aux = stack[0]
		l, r := aux.Left(), aux.Right()
		if /* nil leaves, keep one */ l == nil || r == nil {
			leaves = append(leaves, aux)
		}
		if l != nil {
			stack = append(stack, l)
		}
		if r != nil {
			stack = append(stack, r)
		}
		stack = stack[1:]
	}
	return leaves
}

// BlackViolationValidate checks the black rule (p4): every nil-child point
// sits at the same black depth from the root.
func BlackViolationValidate[K infra.OrderedKey, V any](tree COWRBTree[K, V]) error {
	leaves := bfsLeaves[K, V](tree)
	if leaves == nil {
		return nil
	}

	blackDepth := blackDepthTo[K, V](leaves[0], tree.Root())
	for i := 1; i < len(leaves); i++ {
		if blackDepthTo[K, V](leaves[i], tree.Root()) != blackDepth {
			return errors.New("rbtree black violation")
		}
	}
	return nil
}

// Validate combines both rb rule checks.
func Validate[K infra.OrderedKey, V any](tree COWRBTree[K, V]) error {
	return multierr.Combine(
		RedViolationValidate[K, V](tree),
		BlackViolationValidate[K, V](tree),
	)
}
