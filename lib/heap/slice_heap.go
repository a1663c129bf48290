package heap

var _ Interface = (*SliceHeap[int])(nil) // Type check assertion

// SliceHeap packages the engine for a plain slice with a comparator.
// less(a, b) == true places a closer to the top. The backing slice never
// shrinks on Pop: popped elements are parked past the logical size, so a
// full drain leaves the storage holding the reverse-priority order.
type SliceHeap[E any] struct {
	arr  []E
	less func(a, b E) bool
	size int
}

func NewSliceHeap[E any](elements []E, less func(a, b E) bool) *SliceHeap[E] {
	if less == nil {
		panic( /* debug assertion */ "[heap] slice heap without a comparator")
	}
	h := &SliceHeap[E]{
		arr:  elements,
		less: less,
		size: len(elements),
	}
	Build(h)
	return h
}

func (h *SliceHeap[E]) Len() int { return h.size }

func (h *SliceHeap[E]) Less(i, j int) bool { return h.less(h.arr[i], h.arr[j]) }

func (h *SliceHeap[E]) Swap(i, j int) { h.arr[i], h.arr[j] = h.arr[j], h.arr[i] }

// Peek returns the top element without removing it.
func (h *SliceHeap[E]) Peek() E {
	return h.arr[PeekTop(h)]
}

// Push appends a new element and adopts it into the heap.
func (h *SliceHeap[E]) Push(e E) {
	if h.size < len(h.arr) {
		h.arr[h.size] = e
	} else {
		h.arr = append(h.arr, e)
	}
	h.size++
	ExpandByOne(h, h.size)
}

// Pop removes and returns the top element. The element stays parked in
// the backing storage right past the new logical size.
func (h *SliceHeap[E]) Pop() E {
	boundary := PopTop(h, h.size)
	h.size--
	return h.arr[boundary]
}

// Update replaces the element at index i. The replacement must not sort
// better (closer to the top) than the current element; moving an entry
// toward the top through Update is a contract violation, use Fix after an
// arbitrary in-place change instead.
func (h *SliceHeap[E]) Update(i int, e E) {
	if i < 0 || i >= h.size {
		panic( /* debug assertion */ "[heap] update at an index out of range")
	}
	if h.less(e, h.arr[i]) {
		panic( /* debug assertion */ "[heap] update with a better-sorting value")
	}
	h.arr[i] = e
	siftDown(h, 0, i, h.size)
}

// Values exposes the backing storage, including parked popped elements.
func (h *SliceHeap[E]) Values() []E {
	return h.arr
}
