package heap

import (
	randv2 "math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func intLess(a, b int) bool { return a < b }

func verifyHeapProperty(t *testing.T, h *SliceHeap[int]) {
	t.Helper()
	for i := 1; i < h.Len(); i++ {
		parent := (i - 1) >> 1
		require.False(t, h.Less(i, parent), "heap property broken at index %d", i)
	}
}

func TestSliceHeap_BuildAndDrain(t *testing.T) {
	elements := []int{5, 2, 9, -3, 7, 0, 7, 1}
	h := NewSliceHeap(elements, intLess)
	verifyHeapProperty(t, h)

	expected := make([]int, len(elements))
	copy(expected, h.Values())
	sort.Ints(expected)

	got := make([]int, 0, len(elements))
	for h.Len() > 0 {
		require.Equal(t, h.Peek(), h.Values()[0])
		got = append(got, h.Pop())
	}
	require.Equal(t, expected, got)

	// Popped elements are parked past the boundary; the backing storage
	// keeps its length and ends up in reverse pop order.
	require.Len(t, h.Values(), len(elements))
	for i, v := range h.Values() {
		require.Equal(t, expected[len(expected)-1-i], v)
	}
}

func TestSliceHeap_PushPopRandom(t *testing.T) {
	h := NewSliceHeap(nil, intLess)
	reference := make([]int, 0, 1024)
	for i := 0; i < 1024; i++ {
		v := int(randv2.Int32N(500))
		h.Push(v)
		reference = append(reference, v)
		verifyHeapProperty(t, h)
	}
	sort.Ints(reference)
	for _, want := range reference {
		require.Equal(t, want, h.Pop())
	}
	require.Zero(t, h.Len())
}

func TestSliceHeap_Update(t *testing.T) {
	h := NewSliceHeap([]int{1, 5, 9, 13}, intLess)
	require.Equal(t, 1, h.Peek())

	// Moving the top away from the front is allowed.
	h.Update(0, 20)
	verifyHeapProperty(t, h)
	require.Equal(t, 5, h.Peek())

	// Moving an entry toward the top is a contract violation.
	require.Panics(t, func() {
		h.Update(h.Len()-1, -1)
	})
	require.Panics(t, func() {
		h.Update(-1, 3)
	})
	require.Panics(t, func() {
		h.Update(h.Len(), 3)
	})
}

func TestHeap_Fix(t *testing.T) {
	h := NewSliceHeap([]int{2, 4, 6, 8, 10}, intLess)

	// Fix, unlike Update, accepts movement in both directions.
	h.Values()[3] = -5
	Fix(h, 3)
	verifyHeapProperty(t, h)
	require.Equal(t, -5, h.Peek())

	h.Values()[0] = 100
	Fix(h, 0)
	verifyHeapProperty(t, h)
	require.Equal(t, 2, h.Peek())

	require.Panics(t, func() { Fix(h, h.Len()) })
}

func TestHeap_BuildRange(t *testing.T) {
	arr := []int{99, 98, 5, 2, 9, -3, 7}
	h := &SliceHeap[int]{arr: arr, less: intLess, size: len(arr)}

	// Heapify only the tail, roots at index 2.
	BuildRange(h, 2, len(arr))
	require.Equal(t, 99, arr[0])
	require.Equal(t, 98, arr[1])
	require.Equal(t, -3, arr[2])
	for i := 3; i < len(arr); i++ {
		parent := 2 + ((i - 2 - 1) >> 1)
		require.False(t, h.Less(i, parent))
	}

	require.Panics(t, func() { BuildRange(h, 4, 2) })
}

func TestHeap_ExpandByOne(t *testing.T) {
	arr := []int{3, 5, 8, 1}
	h := &SliceHeap[int]{arr: arr, less: intLess, size: 3}
	Build(h)

	// Adopt the element the caller already placed at the boundary.
	h.size++
	ExpandByOne(h, h.size)
	verifyHeapProperty(t, h)
	require.Equal(t, 1, h.Peek())

	require.Panics(t, func() { ExpandByOne(h, h.Len()+1) })
}

func TestHeap_Sort(t *testing.T) {
	arr := make([]int, 256)
	for i := range arr {
		arr[i] = int(randv2.Int32N(1000))
	}
	h := &SliceHeap[int]{arr: arr, less: intLess, size: len(arr)}
	Sort(h)

	require.True(t, sort.SliceIsSorted(arr, func(i, j int) bool {
		return arr[i] > arr[j]
	}))
}

func TestHeap_PeekPopEmptyViolations(t *testing.T) {
	h := NewSliceHeap[int](nil, intLess)
	require.Panics(t, func() { h.Peek() })
	require.Panics(t, func() { h.Pop() })
}
