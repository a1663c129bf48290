package heap

// Binary heap engine over an arbitrary Interface. Unlike the usual
// push/pop surface, the engine never grows or shrinks the backing
// sequence: PopTop parks the removed element at the exposed boundary and
// ExpandByOne adopts an element the caller already appended there. The
// queue package builds its priority queue on top of these primitives.

// siftDown restores the heap property below index i inside the subrange
// [lo, hi), treating lo as the root. Reports whether anything moved.
func siftDown(h Interface, lo, i, hi int) bool {
	root := i
	for {
		child := lo + ((root-lo)<<1 + 1)
		if child >= hi {
			break
		}
		if right := child + 1; right < hi && h.Less(right, child) {
			child = right
		}
		if !h.Less(child, root) {
			break
		}
		h.Swap(root, child)
		root = child
	}
	return root > i
}

// siftUp floats the element at index i toward the root at lo.
func siftUp(h Interface, lo, i int) {
	for i > lo {
		parent := lo + ((i - lo - 1) >> 1)
		if !h.Less(i, parent) {
			break
		}
		h.Swap(i, parent)
		i = parent
	}
}

// BuildRange establishes the heap property over the subrange [lo, hi) in
// O(hi-lo), treating lo as the root.
func BuildRange(h Interface, lo, hi int) {
	if lo < 0 || hi > h.Len() || lo > hi {
		panic( /* debug assertion */ "[heap] build over an invalid range")
	}
	n := hi - lo
	for i := lo + n>>1 - 1; i >= lo; i-- {
		siftDown(h, lo, i, hi)
	}
}

// Build establishes the heap property over the whole sequence.
func Build(h Interface) {
	BuildRange(h, 0, h.Len())
}

// Fix restores the heap property after the element at index i changed
// arbitrarily. O(log n), cheaper than a remove-then-add round trip.
func Fix(h Interface, i int) {
	if i < 0 || i >= h.Len() {
		panic( /* debug assertion */ "[heap] fix at an index out of range")
	}
	if !siftDown(h, 0, i, h.Len()) {
		siftUp(h, 0, i)
	}
}

// PeekTop returns the index of the top of a non-empty heap, i.e. 0.
// Exists so callers state intent instead of hard-coding the layout.
func PeekTop(h Interface) int {
	if h.Len() == 0 {
		panic( /* debug assertion */ "[heap] peek into an empty heap")
	}
	return 0
}

// PopTop removes the top of the heap view [0, n), parks it at index n-1
// and re-heapifies the remaining [0, n-1). The sequence keeps its length;
// the caller reads the removed element at the returned boundary index.
func PopTop(h Interface, n int) int {
	if n <= 0 || n > h.Len() {
		panic( /* debug assertion */ "[heap] pop from an empty or oversized heap view")
	}
	h.Swap(0, n-1)
	siftDown(h, 0, 0, n-1)
	return n - 1
}

// ExpandByOne adopts the element the caller appended at index n-1 into
// the heap view [0, n).
func ExpandByOne(h Interface, n int) {
	if n <= 0 || n > h.Len() {
		panic( /* debug assertion */ "[heap] expand beyond the sequence boundary")
	}
	siftUp(h, 0, n-1)
}

// Sort orders the whole sequence by repeated PopTop: ascending in Less
// terms from the back toward the front, i.e. the top ends up at the last
// index. Pass the inverted comparator for the opposite order.
func Sort(h Interface) {
	Build(h)
	for n := h.Len(); n > 1; n-- {
		PopTop(h, n)
	}
}
