// Reference:
// https://github.com/golang/go/blob/master/src/container/list/list.go

package list

import (
	"sync/atomic"

	"github.com/benz9527/xcoll/lib/infra"
)

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

type nodeElementInListStatus uint8

const (
	notInList nodeElementInListStatus = iota
	emptyList
	theOnlyOne
	theFirstButNotTheLast
	theLastButNotTheFirst
	inMiddle
)

// doublyLinkedList is a sentinel ring. The sentinel is both the element
// before the first one and the element after the last one, so splices
// never special-case an empty list.
type doublyLinkedList[T comparable] struct {
	root *NodeElement[T]
	len  atomic.Int64
}

func NewLinkedList[T comparable]() LinkedList[T] {
	return new(doublyLinkedList[T]).init()
}

func (l *doublyLinkedList[T]) init() *doublyLinkedList[T] {
	l.root = &NodeElement[T]{
		listRef: l,
	}
	l.root.prev = l.root
	l.root.next = l.root
	l.len.Store(0)
	return l
}

func (l *doublyLinkedList[T]) sentinel() *NodeElement[T] {
	return l.root
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len.Load()
}

// checkElement reports whether targetE is currently linked into l and
// where it sits. Neighbor backlinks are verified by memory address so a
// stale element from another list (or an already removed one) is rejected.
func (l *doublyLinkedList[T]) checkElement(targetE *NodeElement[T]) (*NodeElement[T], nodeElementInListStatus) {
	if l.len.Load() == 0 {
		return l.sentinel(), emptyList
	}
	if targetE == nil || targetE.listRef != l || targetE.prev == nil || targetE.next == nil {
		return nil, notInList
	}
	if targetE.prev.next != targetE || targetE.next.prev != targetE {
		return nil, notInList
	}

	atHead := targetE.prev == l.sentinel()
	atTail := targetE.next == l.sentinel()
	switch {
	case atHead && atTail:
		return targetE, theOnlyOne
	case atHead:
		return targetE, theFirstButNotTheLast
	case atTail:
		return targetE, theLastButNotTheFirst
	}
	return targetE, inMiddle
}

// spliceAfter links newE into the ring immediately after at.
func (l *doublyLinkedList[T]) spliceAfter(newE, at *NodeElement[T]) *NodeElement[T] {
	newE.listRef = l
	newE.prev, newE.next = at, at.next
	at.next.prev = newE
	at.next = newE
	l.len.Add(1)
	return newE
}

// unlink detaches targetE from the ring and clears its references.
func (l *doublyLinkedList[T]) unlink(targetE *NodeElement[T]) *NodeElement[T] {
	targetE.prev.next = targetE.next
	targetE.next.prev = targetE.prev
	// avoid memory leaks
	targetE.listRef = nil
	targetE.prev = nil
	targetE.next = nil
	l.len.Add(-1)
	return targetE
}

func (l *doublyLinkedList[T]) Append(elements ...*NodeElement[T]) []*NodeElement[T] {
	for i := 0; i < len(elements); i++ {
		e := elements[i]
		if e == nil || e.listRef != l {
			continue
		}
		elements[i] = l.spliceAfter(e, l.sentinel().prev)
	}
	return elements
}

func (l *doublyLinkedList[T]) AppendValue(values ...T) []*NodeElement[T] {
	if len(values) <= 0 {
		return nil
	}

	newElements := make([]*NodeElement[T], 0, len(values))
	for _, v := range values {
		newElements = append(newElements, newNodeElement(v, l))
	}
	return l.Append(newElements...)
}

func (l *doublyLinkedList[T]) InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T] {
	at, status := l.checkElement(dstE)
	if status == notInList {
		return nil
	}
	return l.spliceAfter(newNodeElement(v, l), at)
}

func (l *doublyLinkedList[T]) InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T] {
	at, status := l.checkElement(dstE)
	if status == notInList {
		return nil
	}
	if status == emptyList {
		// The sentinel stands in for "before everything".
		return l.spliceAfter(newNodeElement(v, l), at)
	}
	return l.spliceAfter(newNodeElement(v, l), at.prev)
}

func (l *doublyLinkedList[T]) Remove(targetE *NodeElement[T]) *NodeElement[T] {
	if l == nil || l.root == nil || l.len.Load() == 0 {
		return nil
	}

	at, status := l.checkElement(targetE)
	if status == notInList || status == emptyList {
		return nil
	}
	return l.unlink(at)
}

// Foreach allows removing list elements while iterating.
func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, e *NodeElement[T]) error) error {
	if l == nil || l.root == nil || fn == nil || l.len.Load() == 0 {
		return infra.NewErrorStack("[linked-list] empty list")
	}

	var (
		iterator       = l.sentinel().next
		idx      int64 = 0
	)
	for iterator != l.sentinel() {
		n := iterator.next
		if err := fn(idx, iterator); err != nil {
			return err
		}
		iterator = n
		idx++
	}
	return nil
}

// ReverseForeach allows removing list elements while iterating.
func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, e *NodeElement[T])) {
	if l == nil || l.root == nil || fn == nil || l.len.Load() == 0 {
		return
	}

	var (
		iterator       = l.sentinel().prev
		idx      int64 = 0
	)
	for iterator != l.sentinel() {
		p := iterator.prev
		fn(idx, iterator)
		iterator = p
		idx++
	}
}

func (l *doublyLinkedList[T]) FindFirst(targetV T, compareFn ...func(e *NodeElement[T]) bool) (*NodeElement[T], bool) {
	if l == nil || l.root == nil || l.len.Load() == 0 {
		return nil, false
	}

	if len(compareFn) <= 0 {
		compareFn = []func(e *NodeElement[T]) bool{
			func(e *NodeElement[T]) bool {
				return e.Value == targetV
			},
		}
	}

	for iterator := l.sentinel().next; iterator != l.sentinel(); iterator = iterator.next {
		if compareFn[0](iterator) {
			return iterator, true
		}
	}
	return nil, false
}

func (l *doublyLinkedList[T]) Front() *NodeElement[T] {
	if l == nil || l.root == nil || l.len.Load() == 0 {
		return nil
	}
	return l.root.next
}

func (l *doublyLinkedList[T]) Back() *NodeElement[T] {
	if l == nil || l.root == nil || l.len.Load() == 0 {
		return nil
	}
	return l.root.prev
}

func (l *doublyLinkedList[T]) PushFront(v T) *NodeElement[T] {
	if l == nil || l.root == nil {
		return nil
	}
	return l.spliceAfter(newNodeElement(v, l), l.sentinel())
}

func (l *doublyLinkedList[T]) PushBack(v T) *NodeElement[T] {
	if l == nil || l.root == nil {
		return nil
	}
	return l.spliceAfter(newNodeElement(v, l), l.sentinel().prev)
}

// move relocates src to sit immediately after dst inside the same ring.
func (l *doublyLinkedList[T]) move(src, dst *NodeElement[T]) bool {
	if src == dst {
		return false
	}
	src.prev.next = src.next
	src.next.prev = src.prev

	src.prev, src.next = dst, dst.next
	dst.next.prev = src
	dst.next = src
	return true
}

func (l *doublyLinkedList[T]) MoveToFront(targetE *NodeElement[T]) bool {
	if l == nil || l.root == nil || l.len.Load() == 0 {
		return false
	}

	src, status := l.checkElement(targetE)
	switch status {
	case notInList, emptyList, theOnlyOne, theFirstButNotTheLast:
		return false
	default:
	}
	return l.move(src, l.sentinel())
}

func (l *doublyLinkedList[T]) MoveToBack(targetE *NodeElement[T]) bool {
	if l == nil || l.root == nil || l.len.Load() == 0 {
		return false
	}

	src, status := l.checkElement(targetE)
	switch status {
	case notInList, emptyList, theOnlyOne, theLastButNotTheFirst:
		return false
	default:
	}
	return l.move(src, l.sentinel().prev)
}

func (l *doublyLinkedList[T]) MoveBefore(srcE, dstE *NodeElement[T]) bool {
	if l == nil || l.root == nil || l.len.Load() == 0 || srcE == dstE {
		return false
	}

	dst, dstStatus := l.checkElement(dstE)
	if dstStatus == notInList || dstStatus == emptyList || dstStatus == theOnlyOne {
		return false
	}
	src, srcStatus := l.checkElement(srcE)
	if srcStatus == notInList || srcStatus == emptyList || srcStatus == theOnlyOne {
		return false
	}
	return l.move(src, dst.prev)
}

func (l *doublyLinkedList[T]) MoveAfter(srcE, dstE *NodeElement[T]) bool {
	if l == nil || l.root == nil || l.len.Load() == 0 || srcE == dstE {
		return false
	}

	dst, dstStatus := l.checkElement(dstE)
	if dstStatus == notInList || dstStatus == emptyList || dstStatus == theOnlyOne {
		return false
	}
	src, srcStatus := l.checkElement(srcE)
	if srcStatus == notInList || srcStatus == emptyList || srcStatus == theOnlyOne {
		return false
	}
	return l.move(src, dst)
}

// PushFrontList inserts fresh copies of src's values at the front of l,
// keeping src's order. src stays untouched.
func (l *doublyLinkedList[T]) PushFrontList(src LinkedList[T]) {
	if l == nil || l.root == nil || src == nil {
		return
	}
	if dl, ok := src.(*doublyLinkedList[T]); ok && dl.sentinel() == l.sentinel() {
		// avoid self copy
		return
	}

	for i, e := src.Len(), src.Back(); i > 0 && e != nil; i-- {
		l.spliceAfter(newNodeElement(e.Value, l), l.sentinel())
		e = e.Prev()
	}
}

// PushBackList appends fresh copies of src's values to l. src stays
// untouched.
func (l *doublyLinkedList[T]) PushBackList(src LinkedList[T]) {
	if l == nil || l.root == nil || src == nil {
		return
	}
	if dl, ok := src.(*doublyLinkedList[T]); ok && dl.sentinel() == l.sentinel() {
		// avoid self copy
		return
	}

	for i, e := src.Len(), src.Front(); i > 0 && e != nil; i-- {
		l.spliceAfter(newNodeElement(e.Value, l), l.sentinel().prev)
		e = e.Next()
	}
}

// Clone returns a deep copy holding the same values in the same order.
func (l *doublyLinkedList[T]) Clone() LinkedList[T] {
	fresh := new(doublyLinkedList[T]).init()
	if l == nil || l.root == nil {
		return fresh
	}
	for e := l.sentinel().next; e != l.sentinel(); e = e.next {
		fresh.spliceAfter(newNodeElement(e.Value, fresh), fresh.sentinel().prev)
	}
	return fresh
}
