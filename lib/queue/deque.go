package queue

import (
	"sync/atomic"
)

const minDequeCapacity = 8

var _ Deque[int] = (*ArrayDeque[int])(nil) // Type check assertion

// dequeCore is the shared storage behind deque handles. The buffer length
// is always a power of two so the ring arithmetic is a mask.
type dequeCore[E any] struct {
	buf  []E
	head int
	size int
	refs int64
}

// ArrayDeque is a growable ring buffer. Clone shares the core between
// handles; the first handle to mutate pays one full copy and the handles
// part ways.
type ArrayDeque[E any] struct {
	core *dequeCore[E]
}

type ArrayDequeOption[E any] func(*ArrayDeque[E])

func WithArrayDequeCapacity[E any](capacity int) ArrayDequeOption[E] {
	return func(dq *ArrayDeque[E]) {
		c := minDequeCapacity
		for c < capacity {
			c <<= 1
		}
		dq.core.buf = make([]E, c)
	}
}

func NewArrayDeque[E any](opts ...ArrayDequeOption[E]) *ArrayDeque[E] {
	dq := &ArrayDeque[E]{
		core: &dequeCore[E]{refs: 1},
	}
	for _, o := range opts {
		if o != nil {
			o(dq)
		}
	}
	if dq.core.buf == nil {
		dq.core.buf = make([]E, minDequeCapacity)
	}
	return dq
}

func (dq *ArrayDeque[E]) Len() int64 { return int64(dq.core.size) }

// Clone returns a handle over the same storage. O(1).
func (dq *ArrayDeque[E]) Clone() Deque[E] {
	atomic.AddInt64(&dq.core.refs, 1)
	return &ArrayDeque[E]{core: dq.core}
}

// ensureExclusive detaches this handle onto a private copy of the ring
// when the core is shared. Runs before every mutation.
func (dq *ArrayDeque[E]) ensureExclusive() {
	core := dq.core
	if atomic.LoadInt64(&core.refs) <= 1 {
		return
	}
	fresh := &dequeCore[E]{
		buf:  make([]E, len(core.buf)),
		head: core.head,
		size: core.size,
		refs: 1,
	}
	copy(fresh.buf, core.buf)
	atomic.AddInt64(&core.refs, -1)
	dq.core = fresh
}

// grow doubles the ring and unwinds it so the front lands at index 0.
func (dq *ArrayDeque[E]) grow() {
	core := dq.core
	fresh := make([]E, len(core.buf)<<1)
	mask := len(core.buf) - 1
	for i := 0; i < core.size; i++ {
		fresh[i] = core.buf[(core.head+i)&mask]
	}
	core.buf = fresh
	core.head = 0
}

func (dq *ArrayDeque[E]) PushBack(e E) {
	dq.ensureExclusive()
	core := dq.core
	if core.size == len(core.buf) {
		dq.grow()
	}
	core.buf[(core.head+core.size)&(len(core.buf)-1)] = e
	core.size++
}

func (dq *ArrayDeque[E]) PushFront(e E) {
	dq.ensureExclusive()
	core := dq.core
	if core.size == len(core.buf) {
		dq.grow()
	}
	core.head = (core.head - 1) & (len(core.buf) - 1)
	core.buf[core.head] = e
	core.size++
}

func (dq *ArrayDeque[E]) PopFront() (e E, ok bool) {
	if dq.core.size == 0 {
		return
	}
	dq.ensureExclusive()
	core := dq.core
	e = core.buf[core.head]
	core.buf[core.head] = *new(E) // release the slot
	core.head = (core.head + 1) & (len(core.buf) - 1)
	core.size--
	return e, true
}

func (dq *ArrayDeque[E]) PopBack() (e E, ok bool) {
	if dq.core.size == 0 {
		return
	}
	dq.ensureExclusive()
	core := dq.core
	tail := (core.head + core.size - 1) & (len(core.buf) - 1)
	e = core.buf[tail]
	core.buf[tail] = *new(E)
	core.size--
	return e, true
}

func (dq *ArrayDeque[E]) Front() (e E, ok bool) {
	core := dq.core
	if core.size == 0 {
		return
	}
	return core.buf[core.head], true
}

func (dq *ArrayDeque[E]) Back() (e E, ok bool) {
	core := dq.core
	if core.size == 0 {
		return
	}
	return core.buf[(core.head+core.size-1)&(len(core.buf)-1)], true
}

// At reads the i-th element from the front. Out-of-range access is a
// contract violation.
func (dq *ArrayDeque[E]) At(i int64) E {
	core := dq.core
	if i < 0 || i >= int64(core.size) {
		panic( /* debug assertion */ "[deque] access an index out of range")
	}
	return core.buf[(core.head+int(i))&(len(core.buf)-1)]
}
