// Package linkedlist implements a generic singly linked list, the first
// structure of lesson 3.
//
// The list keeps head and tail pointers so both PushFront and PushBack are O(1).
// Index-based access (At, InsertAt) walks from the head and costs O(i).
// Reverse rewires the next pointers in place in O(n) time and O(1) memory.
package linkedlist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyList is returned when popping or peeking an empty list.
	ErrEmptyList = errors.New("linkedlist: list is empty")

	// ErrIndexOutOfRange is returned for an index outside [0, Len()] (InsertAt)
	// or [0, Len()) (At).
	ErrIndexOutOfRange = errors.New("linkedlist: index out of range")
)

// Node is one link of the chain. Next is nil on the last node.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

// List is a singly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

// New returns an empty list.
func New[T any]() *List[T] { return &List[T]{} }

// FromSlice builds a list holding the elements of s in order.
func FromSlice[T any](s []T) *List[T] {
	l := New[T]()
	for _, v := range s {
		l.PushBack(v)
	}

	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// Head returns the first node, or nil. Walking from Head is the way to
// implement exercises that need raw node access.
func (l *List[T]) Head() *Node[T] { return l.head }

// PushFront prepends v. O(1).
func (l *List[T]) PushFront(v T) {
	n := &Node[T]{Value: v, Next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// PushBack appends v. O(1).
func (l *List[T]) PushBack(v T) {
	n := &Node[T]{Value: v}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.Next = n
		l.tail = n
	}
	l.size++
}

// PopFront removes and returns the first element, or ErrEmptyList.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	n := l.head
	l.head = n.Next
	if l.head == nil {
		l.tail = nil
	}
	l.size--

	return n.Value, nil
}

// Front returns the first element without removing it, or ErrEmptyList.
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.head.Value, nil
}

// At returns the element at index i.
func (l *List[T]) At(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, l.size)
	}
	n := l.head
	for ; i > 0; i-- {
		n = n.Next
	}

	return n.Value, nil
}

// InsertAt inserts v so that it ends up at index i; i == Len() appends.
func (l *List[T]) InsertAt(i int, v T) error {
	switch {
	case i < 0 || i > l.size:
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, l.size)
	case i == 0:
		l.PushFront(v)
		return nil
	case i == l.size:
		l.PushBack(v)
		return nil
	}
	prev := l.head
	for j := 0; j < i-1; j++ {
		prev = prev.Next
	}
	prev.Next = &Node[T]{Value: v, Next: prev.Next}
	l.size++

	return nil
}

// Find returns the first element matching pred.
func (l *List[T]) Find(pred func(T) bool) (T, bool) {
	for n := l.head; n != nil; n = n.Next {
		if pred(n.Value) {
			return n.Value, true
		}
	}
	var zero T

	return zero, false
}

// Remove unlinks the first element matching pred and reports whether one was found.
func (l *List[T]) Remove(pred func(T) bool) bool {
	var prev *Node[T]
	for n := l.head; n != nil; prev, n = n, n.Next {
		if !pred(n.Value) {
			continue
		}
		if prev == nil {
			l.head = n.Next
		} else {
			prev.Next = n.Next
		}
		if n == l.tail {
			l.tail = prev
		}
		l.size--

		return true
	}

	return false
}

// Reverse reverses the list in place.
func (l *List[T]) Reverse() {
	var prev *Node[T]
	cur := l.head
	l.tail = l.head
	for cur != nil {
		next := cur.Next
		cur.Next = prev
		prev, cur = cur, next
	}
	l.head = prev
}

// Middle returns the middle element using the slow/fast pointer technique;
// for even lengths it is the second of the two middle elements.
func (l *List[T]) Middle() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	slow, fast := l.head, l.head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}

	return slow.Value, nil
}

// Values copies the elements into a new slice, head first.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.Next {
		out = append(out, n.Value)
	}

	return out
}

// String renders the chain as "1 -> 2 -> 3 -> nil".
func (l *List[T]) String() string {
	var b strings.Builder
	for n := l.head; n != nil; n = n.Next {
		fmt.Fprintf(&b, "%v -> ", n.Value)
	}
	b.WriteString("nil")

	return b.String()
}
