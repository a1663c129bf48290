package queue

import (
	"sync"
	"sync/atomic"

	"github.com/benz9527/xcoll/lib/heap"
)

type pqItem[E comparable] struct {
	priority int64
	index    int64
	value    E
}

func (item *pqItem[E]) Index() int64 {
	if item == nil {
		return -1
	}
	return atomic.LoadInt64(&item.index)
}

func (item *pqItem[E]) Value() (val E) {
	if item == nil {
		// return empty value by default
		return
	}
	return item.value
}

func (item *pqItem[E]) Priority() int64 {
	if item == nil {
		return -1
	}
	return atomic.LoadInt64(&item.priority)
}

func (item *pqItem[E]) SetIndex(idx int64) {
	if item == nil {
		return
	}
	atomic.SwapInt64(&item.index, idx)
}

func (item *pqItem[E]) SetPriority(pri int64) {
	if item == nil {
		return
	}
	atomic.SwapInt64(&item.priority, pri)
}

func NewPriorityQueueItem[E comparable](val E, pri int64) PQItem[E] {
	return &pqItem[E]{
		priority: pri,
		value:    val,
		index:    0,
	}
}

// arrayPQ adapts the item array to the heap engine. Swap keeps the index
// backrefs current so Update can locate an item in O(1).
type arrayPQ[E comparable] struct {
	capacity   int
	arr        []PQItem[E]
	comparator PQItemLessThenComparator[E]
}

func (pq *arrayPQ[E]) Len() int { return len(pq.arr) }

func (pq *arrayPQ[E]) Less(i, j int) bool {
	return pq.comparator(pq.arr[i], pq.arr[j]) == iLTj
}

func (pq *arrayPQ[E]) Swap(i, j int) {
	pq.arr[i], pq.arr[j] = pq.arr[j], pq.arr[i]
	pq.arr[i].SetIndex(int64(i))
	pq.arr[j].SetIndex(int64(j))
}

func (pq *arrayPQ[E]) pop() PQItem[E] {
	n := len(pq.arr)
	if n <= 0 {
		return nil
	}

	boundary := heap.PopTop(pq, n)
	item := pq.arr[boundary]
	item.SetIndex(-1)
	pq.arr[boundary] = *new(PQItem[E]) // nil object
	pq.arr = pq.arr[:boundary]
	return item
}

func (pq *arrayPQ[E]) push(item PQItem[E]) {
	if item == nil {
		return
	}

	item.SetIndex(int64(len(pq.arr)))
	pq.arr = append(pq.arr, item)
	heap.ExpandByOne(pq, len(pq.arr))
}

type ArrayPriorityQueue[E comparable] struct {
	queue *arrayPQ[E]
	lock  *sync.Mutex
}

func (pq *ArrayPriorityQueue[E]) Len() int64 {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return int64(len(pq.queue.arr))
}

func (pq *ArrayPriorityQueue[E]) Pop() (nilItem ReadOnlyPQItem[E]) {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	if len(pq.queue.arr) == 0 {
		return nil
	}
	return pq.queue.pop()
}

func (pq *ArrayPriorityQueue[E]) Push(item PQItem[E]) {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	pq.queue.push(item)
}

func (pq *ArrayPriorityQueue[E]) Peek() ReadOnlyPQItem[E] {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	if len(pq.queue.arr) == 0 {
		return nil
	}
	return pq.queue.arr[0]
}

// Update lowers the standing of an enqueued item in place. The heap only
// moves entries away from the top, so a priority that would sort the item
// better than it currently does is a contract violation.
func (pq *ArrayPriorityQueue[E]) Update(item PQItem[E], pri int64) {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	idx := item.Index()
	if idx < 0 || idx >= int64(len(pq.queue.arr)) || pq.queue.arr[idx] != item {
		panic( /* debug assertion */ "[pqueue] update an item not enqueued here")
	}
	probe := NewPriorityQueueItem[E](item.Value(), pri)
	if pq.queue.comparator(probe, item) == iLTj {
		panic( /* debug assertion */ "[pqueue] update with a better-sorting priority")
	}
	item.SetPriority(pri)
	heap.Fix(pq.queue, int(idx))
}

type ArrayPriorityQueueOption[E comparable] func(*ArrayPriorityQueue[E])

func NewArrayPriorityQueue[E comparable](opts ...ArrayPriorityQueueOption[E]) PriorityQueue[E] {
	pq := &ArrayPriorityQueue[E]{
		queue: new(arrayPQ[E]),
	}
	for _, o := range opts {
		if o != nil {
			o(pq)
		}
	}
	if pq.queue.capacity <= 0 {
		pq.queue.capacity = 64
	}
	if pq.queue.comparator == nil {
		pq.queue.comparator = defaultPQItemComparator[E]
	}
	pq.queue.arr = make([]PQItem[E], 0, pq.queue.capacity)
	return pq
}

func defaultPQItemComparator[E comparable](i, j ReadOnlyPQItem[E]) CmpEnum {
	res := i.Priority() - j.Priority()
	if res > 0 {
		return iGTj
	} else if res < 0 {
		return iLTj
	}
	return iEQj
}

func WithArrayPriorityQueueCapacity[E comparable](capacity int) ArrayPriorityQueueOption[E] {
	return func(pq *ArrayPriorityQueue[E]) {
		if capacity <= 0 {
			capacity = 64
		}
		pq.queue.capacity = capacity
	}
}

func WithArrayPriorityQueueComparator[E comparable](fn PQItemLessThenComparator[E]) ArrayPriorityQueueOption[E] {
	return func(pq *ArrayPriorityQueue[E]) {
		if fn == nil {
			fn = defaultPQItemComparator[E]
		}
		pq.queue.comparator = fn
	}
}

func WithArrayPriorityQueueEnableThreadSafe[E comparable]() ArrayPriorityQueueOption[E] {
	return func(pq *ArrayPriorityQueue[E]) {
		pq.lock = &sync.Mutex{}
	}
}
