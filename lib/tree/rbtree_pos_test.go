package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRbtreePos_EmptyTree(t *testing.T) {
	tree := NewCOWRBTree[uint64, uint64]()

	begin, end := tree.Begin(), tree.End()
	require.True(t, begin.Equal(end))
	require.False(t, begin.HasKV())

	require.Panics(t, func() { begin.Succ() })
	require.Panics(t, func() { end.Pred() })
	require.Panics(t, func() { _ = tree.KeyAt(begin) })
}

func TestRbtreePos_ForwardAndBackwardWalk(t *testing.T) {
	tree := NewCOWRBTree[uint64, uint64]()
	for i := uint64(0); i < 64; i++ {
		tree.Insert(i, i*10)
	}

	i := uint64(0)
	pos := tree.Begin()
	for ; !pos.Equal(tree.End()); pos = pos.Succ() {
		require.True(t, pos.HasKV())
		require.Equal(t, i, tree.KeyAt(pos))
		require.Equal(t, i*10, tree.ValAt(pos))
		i++
	}
	require.Equal(t, uint64(64), i)

	// pos is the end position now, walk back.
	for !pos.Equal(tree.Begin()) {
		pos = pos.Pred()
		i--
		require.Equal(t, i, tree.KeyAt(pos))
	}
	require.Equal(t, uint64(0), i)
}

func TestRbtreePos_BoundaryViolations(t *testing.T) {
	tree := NewCOWRBTree[uint64, uint64]()
	tree.Insert(1, 1)
	tree.Insert(2, 2)

	require.Panics(t, func() { tree.End().Succ() })
	require.Panics(t, func() { tree.Begin().Pred() })

	require.Panics(t, func() { _ = tree.KeyAt(tree.End()) })
	require.Panics(t, func() { _, _ = tree.Remove(tree.End()) })
}

func TestRbtreePos_Equality(t *testing.T) {
	tree := NewCOWRBTree[uint64, uint64]()
	tree.Insert(1, 1)
	tree.Insert(2, 2)

	p1, ok := tree.Find(1)
	require.True(t, ok)
	p2, ok := tree.Find(1)
	require.True(t, ok)
	require.True(t, p1.Equal(p2))

	p3, ok := tree.Find(2)
	require.True(t, ok)
	require.False(t, p1.Equal(p3))
	require.True(t, p3.Succ().Equal(tree.End()))

	other := NewCOWRBTree[uint64, uint64]()
	other.Insert(1, 1)
	q, ok := other.Find(1)
	require.True(t, ok)
	// Same key, different tree: never equal.
	require.False(t, p1.Equal(q))
}

func TestRbtreePos_StableAcrossUnrelatedMutations(t *testing.T) {
	tree := NewCOWRBTree[uint64, uint64]()
	for i := uint64(0); i < 16; i++ {
		tree.Insert(i*2, i)
	}
	pos, ok := tree.Find(10)
	require.True(t, ok)

	// Exclusive-tree mutations never change surviving node identities,
	// so the position keeps working.
	tree.Insert(7, 7)
	rm, ok := tree.Find(20)
	require.True(t, ok)
	tree.Remove(rm)

	require.Equal(t, uint64(10), tree.KeyAt(pos))
	require.Equal(t, uint64(12), tree.KeyAt(pos.Succ()))
	require.Equal(t, uint64(8), tree.KeyAt(pos.Pred()))
}

func TestRbtreePos_InsertReturnsUsablePosition(t *testing.T) {
	tree := NewCOWRBTree[uint64, uint64]()
	pos := tree.Insert(5, 55)
	require.True(t, pos.HasKV())
	require.Equal(t, uint64(5), tree.KeyAt(pos))
	require.Equal(t, uint64(55), tree.ValAt(pos))

	tree.UpdateAt(pos, 56)
	require.Equal(t, uint64(56), tree.ValAt(pos))

	key, val := tree.Remove(pos)
	require.Equal(t, uint64(5), key)
	require.Equal(t, uint64(56), val)
	require.Equal(t, int64(0), tree.Len())
}

func TestRbtreePos_RemovedEntryRejected(t *testing.T) {
	tree := NewCOWRBTree[uint64, uint64]()
	for i := uint64(1); i <= 8; i++ {
		tree.Insert(i, i*10)
	}
	pos, ok := tree.Find(4)
	require.True(t, ok)

	key, val := tree.Remove(pos)
	require.Equal(t, uint64(4), key)
	require.Equal(t, uint64(40), val)

	// Same generation, but the node is gone: every access through the
	// dangling position must fail instead of touching the graph.
	require.Panics(t, func() { tree.Remove(pos) })
	require.Panics(t, func() { _ = tree.KeyAt(pos) })
	require.Panics(t, func() { _ = tree.ValAt(pos) })
	require.Panics(t, func() { tree.UpdateAt(pos, 0) })
	require.Panics(t, func() { pos.Succ() })
	require.Panics(t, func() { pos.Pred() })

	// The tree itself stays intact.
	require.Equal(t, int64(7), tree.Len())
	require.NotNil(t, tree.Root())
	require.NoError(t, Validate(tree))
	require.Equal(t, []uint64{1, 2, 3, 5, 6, 7, 8}, inorderKeys(tree))
}

func TestRbtreePos_EndPredIsLast(t *testing.T) {
	tree := NewCOWRBTree[uint64, uint64]()
	for _, key := range []uint64{30, 10, 20} {
		tree.Insert(key, key)
	}
	last := tree.End().Pred()
	require.Equal(t, uint64(30), tree.KeyAt(last))
}
