package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listValues[T comparable](l LinkedList[T]) []T {
	values := make([]T, 0, l.Len())
	_ = l.Foreach(func(idx int64, e *NodeElement[T]) error {
		values = append(values, e.Value)
		return nil
	})
	return values
}

func TestLinkedList_AppendAndPush(t *testing.T) {
	dlist := NewLinkedList[int]()
	require.Equal(t, int64(0), dlist.Len())
	require.Nil(t, dlist.Front())
	require.Nil(t, dlist.Back())

	elements := dlist.AppendValue(1, 2, 3)
	require.Len(t, elements, 3)
	dlist.PushFront(0)
	dlist.PushBack(4)

	require.Equal(t, int64(5), dlist.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, listValues[int](dlist))
	assert.Equal(t, 0, dlist.Front().Value)
	assert.Equal(t, 4, dlist.Back().Value)
	assert.False(t, dlist.Front().HasPrev())
	assert.True(t, dlist.Front().HasNext())
	assert.False(t, dlist.Back().HasNext())
	assert.True(t, dlist.Back().HasPrev())
}

func TestLinkedList_InsertBeforeAndAfter(t *testing.T) {
	dlist := NewLinkedList[string]()
	mid := dlist.PushBack("mid")

	before := dlist.InsertBefore("head", mid)
	require.NotNil(t, before)
	after := dlist.InsertAfter("tail", mid)
	require.NotNil(t, after)
	assert.Equal(t, []string{"head", "mid", "tail"}, listValues[string](dlist))

	// Elements of a foreign list are rejected.
	other := NewLinkedList[string]()
	foreign := other.PushBack("foreign")
	assert.Nil(t, dlist.InsertBefore("x", foreign))
	assert.Nil(t, dlist.InsertAfter("x", foreign))
	assert.Equal(t, int64(3), dlist.Len())
}

func TestLinkedList_Remove(t *testing.T) {
	dlist := NewLinkedList[int]()
	elements := dlist.AppendValue(10, 20, 30, 40)

	removed := dlist.Remove(elements[1])
	require.NotNil(t, removed)
	assert.Equal(t, 20, removed.Value)
	assert.Equal(t, []int{10, 30, 40}, listValues[int](dlist))

	// A removed element cannot be removed twice.
	assert.Nil(t, dlist.Remove(elements[1]))

	// Head and tail removal keep the ring closed.
	dlist.Remove(elements[0])
	dlist.Remove(elements[3])
	assert.Equal(t, []int{30}, listValues[int](dlist))
	dlist.Remove(elements[2])
	assert.Equal(t, int64(0), dlist.Len())
	assert.Nil(t, dlist.Remove(NewNodeElement(99)))
}

func TestLinkedList_RemoveWhileIterating(t *testing.T) {
	dlist := NewLinkedList[int]()
	dlist.AppendValue(1, 2, 3, 4, 5, 6)

	err := dlist.Foreach(func(idx int64, e *NodeElement[int]) error {
		if e.Value%2 == 0 {
			dlist.Remove(e)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, listValues[int](dlist))
}

func TestLinkedList_ForeachEmptyAndError(t *testing.T) {
	dlist := NewLinkedList[int]()
	err := dlist.Foreach(func(idx int64, e *NodeElement[int]) error { return nil })
	require.Error(t, err)

	dlist.AppendValue(1, 2, 3)
	visited := 0
	err = dlist.Foreach(func(idx int64, e *NodeElement[int]) error {
		visited++
		if e.Value == 2 {
			return assert.AnError
		}
		return nil
	})
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 2, visited)
}

func TestLinkedList_ReverseForeach(t *testing.T) {
	dlist := NewLinkedList[int]()
	dlist.AppendValue(1, 2, 3)

	reversed := make([]int, 0, 3)
	dlist.ReverseForeach(func(idx int64, e *NodeElement[int]) {
		reversed = append(reversed, e.Value)
	})
	assert.Equal(t, []int{3, 2, 1}, reversed)
}

func TestLinkedList_FindFirst(t *testing.T) {
	dlist := NewLinkedList[int]()
	dlist.AppendValue(5, 6, 7, 6)

	e, ok := dlist.FindFirst(6)
	require.True(t, ok)
	assert.Equal(t, 6, e.Value)
	assert.Equal(t, 5, e.Prev().Value)

	_, ok = dlist.FindFirst(42)
	assert.False(t, ok)

	e, ok = dlist.FindFirst(0, func(e *NodeElement[int]) bool {
		return e.Value > 6
	})
	require.True(t, ok)
	assert.Equal(t, 7, e.Value)
}

func TestLinkedList_MoveOperations(t *testing.T) {
	dlist := NewLinkedList[string]()
	elements := dlist.AppendValue("a", "b", "c", "d")

	require.True(t, dlist.MoveToFront(elements[2]))
	assert.Equal(t, []string{"c", "a", "b", "d"}, listValues[string](dlist))

	require.True(t, dlist.MoveToBack(elements[0]))
	assert.Equal(t, []string{"c", "b", "d", "a"}, listValues[string](dlist))

	require.True(t, dlist.MoveBefore(elements[3], elements[1]))
	assert.Equal(t, []string{"c", "d", "b", "a"}, listValues[string](dlist))

	require.True(t, dlist.MoveAfter(elements[2], elements[0]))
	assert.Equal(t, []string{"d", "b", "a", "c"}, listValues[string](dlist))

	// Already in place or degenerate moves report false.
	assert.False(t, dlist.MoveToFront(dlist.Front()))
	assert.False(t, dlist.MoveToBack(dlist.Back()))
	assert.False(t, dlist.MoveAfter(elements[1], elements[1]))
}

func TestLinkedList_PushList(t *testing.T) {
	src := NewLinkedList[int]()
	src.AppendValue(4, 5, 6)

	dst := NewLinkedList[int]()
	dst.AppendValue(7, 8)
	dst.PushFrontList(src)
	assert.Equal(t, []int{4, 5, 6, 7, 8}, listValues[int](dst))

	tail := NewLinkedList[int]()
	tail.AppendValue(9, 10)
	dst.PushBackList(tail)
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9, 10}, listValues[int](dst))

	// Sources keep their own elements.
	assert.Equal(t, []int{4, 5, 6}, listValues[int](src))
	assert.Equal(t, []int{9, 10}, listValues[int](tail))

	// Self copy is a no-op.
	dst.PushBackList(dst)
	assert.Equal(t, int64(7), dst.Len())

	// Pushing into an empty list works.
	empty := NewLinkedList[int]()
	empty.PushBackList(src)
	assert.Equal(t, []int{4, 5, 6}, listValues[int](empty))
}

func TestLinkedList_Clone(t *testing.T) {
	dlist := NewLinkedList[int]()
	dlist.AppendValue(1, 2, 3)

	cloned := dlist.Clone()
	assert.Equal(t, listValues[int](dlist), listValues[int](cloned))

	// Fresh elements, fully independent.
	cloned.PushBack(4)
	dlist.Remove(dlist.Front())
	assert.Equal(t, []int{2, 3}, listValues[int](dlist))
	assert.Equal(t, []int{1, 2, 3, 4}, listValues[int](cloned))

	// Clone elements belong to the clone, not the origin.
	assert.Nil(t, dlist.Remove(cloned.Front()))

	emptyClone := NewLinkedList[int]().Clone()
	assert.Equal(t, int64(0), emptyClone.Len())
}
