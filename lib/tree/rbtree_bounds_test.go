package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRbtreeBounds_LowerBound(t *testing.T) {
	tree := NewCOWRBTree[int64, int64]()
	for i := int64(0); i <= 100; i++ {
		tree.Insert(i, i)
	}

	pos := tree.LowerBound(-5)
	require.True(t, pos.HasKV())
	require.Equal(t, int64(0), tree.KeyAt(pos))

	pos = tree.LowerBound(42)
	require.Equal(t, int64(42), tree.KeyAt(pos))

	pos = tree.LowerBound(100)
	require.Equal(t, int64(100), tree.KeyAt(pos))

	require.True(t, tree.LowerBound(101).Equal(tree.End()))
}

func TestRbtreeBounds_UpperBound(t *testing.T) {
	tree := NewCOWRBTree[int64, int64]()
	for i := int64(0); i <= 100; i += 2 {
		tree.Insert(i, i)
	}

	pos := tree.UpperBound(10)
	require.Equal(t, int64(12), tree.KeyAt(pos))

	// Between stored keys the strict and non-strict bounds coincide.
	pos = tree.UpperBound(11)
	require.Equal(t, int64(12), tree.KeyAt(pos))
	require.True(t, pos.Equal(tree.LowerBound(11)))

	require.True(t, tree.UpperBound(100).Equal(tree.End()))
	require.True(t, tree.UpperBound(500).Equal(tree.End()))
}

func TestRbtreeBounds_Find(t *testing.T) {
	tree := NewCOWRBTree[int64, int64]()
	for i := int64(0); i < 100; i += 3 {
		tree.Insert(i, i*2)
	}

	pos, ok := tree.Find(33)
	require.True(t, ok)
	require.Equal(t, int64(66), tree.ValAt(pos))

	_, ok = tree.Find(34)
	require.False(t, ok)
	_, ok = tree.Find(-1)
	require.False(t, ok)
	_, ok = tree.Find(1000)
	require.False(t, ok)
}

func TestRbtreeBounds_EmptyTree(t *testing.T) {
	tree := NewCOWRBTree[int64, int64]()
	require.True(t, tree.LowerBound(1).Equal(tree.End()))
	require.True(t, tree.UpperBound(1).Equal(tree.End()))
	_, ok := tree.Find(1)
	require.False(t, ok)
}

func TestRbtreeBounds_Duplicates(t *testing.T) {
	tree := NewCOWRBTree[int64, int64]()
	tree.Insert(5, 1)
	tree.Insert(5, 2)
	tree.Insert(5, 3)
	tree.Insert(9, 4)

	// LowerBound lands on the first stored 5, UpperBound skips all of
	// them at once.
	lb := tree.LowerBound(5)
	require.Equal(t, int64(5), tree.KeyAt(lb))
	require.True(t, lb.Equal(tree.Begin()))

	ub := tree.UpperBound(5)
	require.Equal(t, int64(9), tree.KeyAt(ub))

	n := 0
	for pos := lb; !pos.Equal(ub); pos = pos.Succ() {
		require.Equal(t, int64(5), tree.KeyAt(pos))
		n++
	}
	require.Equal(t, 3, n)
}
