// Package list provides a singly linked list whose nodes are charged
// to an injected allocator.
package list

import (
	"fmt"
	"unsafe"

	"github.com/wilhasse/slist-go/mem"
)

// node holds one element and the ownership link to the next node. mem
// is the allocator charge obtained when the node was created; it is
// returned to the allocator when the node is released.
type node[T any] struct {
	value T
	next  *node[T]
	mem   []byte
}

// List is a singly linked list of T. The zero value is not usable;
// create lists with New. A list owns its nodes exclusively and borrows
// the allocator, it never frees the allocator itself.
//
// Pointers returned by Get, FrontMut and BackMut alias node storage
// and are valid only until the next structural mutation (push, pop,
// Insert, Remove, Free) on the same list.
//
// A List is not safe for concurrent use; callers serialize externally.
type List[T any] struct {
	head   *node[T]
	length int
	alloc  mem.Allocator
}

// NodeSize returns the per-node charge a List[T] places on its
// allocator.
func NodeSize[T any]() int {
	return int(unsafe.Sizeof(node[T]{}))
}

// New creates an empty list bound to alloc. A nil alloc uses
// mem.DefaultAllocator. Construction itself allocates nothing.
func New[T any](alloc mem.Allocator) *List[T] {
	if alloc == nil {
		alloc = mem.DefaultAllocator
	}
	return &List[T]{alloc: alloc}
}

// Free walks the chain and releases every node back to the allocator.
// Call it exactly once; the list must not be used afterwards.
func (l *List[T]) Free() {
	for n := l.head; n != nil; {
		next := n.next
		l.freeNode(n)
		n = next
	}
	l.head = nil
	l.length = 0
}

func (l *List[T]) newNode(v T) (*node[T], error) {
	buf, err := l.alloc.Alloc(NodeSize[T]())
	if err != nil {
		return nil, err
	}
	return &node[T]{value: v, mem: buf}, nil
}

func (l *List[T]) freeNode(n *node[T]) {
	l.alloc.Free(n.mem)
	n.next = nil
	n.mem = nil
}

// PushFront inserts v before the first element. O(1). On allocation
// failure the list is unchanged and the caller still holds v.
func (l *List[T]) PushFront(v T) error {
	n, err := l.newNode(v)
	if err != nil {
		return fmt.Errorf("list: push front: %w", err)
	}
	n.next = l.head
	l.head = n
	l.length++
	return nil
}

// PushBack appends v after the last element. O(n), the list keeps no
// tail pointer. On allocation failure the list is unchanged and the
// caller still holds v.
func (l *List[T]) PushBack(v T) error {
	n, err := l.newNode(v)
	if err != nil {
		return fmt.Errorf("list: push back: %w", err)
	}
	link := &l.head
	for *link != nil {
		link = &(*link).next
	}
	*link = n
	l.length++
	return nil
}

// PopFront detaches the first element and returns it. The second
// result is false when the list is empty. O(1).
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.head = n.next
	v := n.value
	l.freeNode(n)
	l.length--
	return v, true
}

// PopBack detaches the last element and returns it. The second result
// is false when the list is empty. O(n).
func (l *List[T]) PopBack() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	link := &l.head
	for (*link).next != nil {
		link = &(*link).next
	}
	n := *link
	*link = nil
	v := n.value
	l.freeNode(n)
	l.length--
	return v, true
}

// Get returns a pointer to the element at zero-based index i, or nil
// when i is outside [0, Len()). O(n).
func (l *List[T]) Get(i int) *T {
	if i < 0 || i >= l.length {
		return nil
	}
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	return &n.value
}

// Front returns a copy of the first element; false when empty. O(1).
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// FrontMut returns a pointer to the first element for in-place
// modification, or nil when empty. O(1).
func (l *List[T]) FrontMut() *T {
	if l.head == nil {
		return nil
	}
	return &l.head.value
}

// Back returns a copy of the last element; false when empty. O(n).
func (l *List[T]) Back() (T, bool) {
	n := l.lastNode()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

// BackMut returns a pointer to the last element for in-place
// modification, or nil when empty. O(n).
func (l *List[T]) BackMut() *T {
	n := l.lastNode()
	if n == nil {
		return nil
	}
	return &n.value
}

func (l *List[T]) lastNode() *node[T] {
	if l.head == nil {
		return nil
	}
	n := l.head
	for n.next != nil {
		n = n.next
	}
	return n
}

// IsEmpty reports whether the list holds no elements. O(1).
func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

// Len returns the number of elements. O(1).
func (l *List[T]) Len() int {
	return l.length
}

// Insert places v at zero-based index i, shifting elements at i and
// beyond one slot toward the tail. Valid indices are [0, Len()];
// Insert(0, v) is equivalent to PushFront(v) and Insert(Len(), v)
// appends. An index outside that range panics; bounds are checked
// before any link is touched. O(n). On allocation failure the list is
// unchanged and the caller still holds v.
func (l *List[T]) Insert(i int, v T) error {
	if i < 0 || i > l.length {
		panic(fmt.Sprintf("list: insert index %d out of range [0, %d]", i, l.length))
	}
	n, err := l.newNode(v)
	if err != nil {
		return fmt.Errorf("list: insert: %w", err)
	}
	link := &l.head
	for ; i > 0; i-- {
		link = &(*link).next
	}
	n.next = *link
	*link = n
	l.length++
	return nil
}

// Remove detaches and returns the element at zero-based index i,
// shifting later elements one slot toward the head. Valid indices are
// [0, Len()); an index outside that range panics, checked before any
// link is touched. O(n).
func (l *List[T]) Remove(i int) T {
	if i < 0 || i >= l.length {
		panic(fmt.Sprintf("list: remove index %d out of range [0, %d)", i, l.length))
	}
	link := &l.head
	for ; i > 0; i-- {
		link = &(*link).next
	}
	n := *link
	*link = n.next
	v := n.value
	l.freeNode(n)
	l.length--
	return v
}
