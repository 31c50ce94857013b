// Package heap implements a generic binary heap ordered by a caller-supplied
// less function. With less = a < b it is a min-heap; flip it for a max-heap.
//
// The heap lives in a slice: the children of index i are 2i+1 and 2i+2.
// Push and Pop are O(log n); FromSlice heapifies in O(n) by sifting down every
// internal node from the last one to the root.
package heap

import (
	"cmp"
	"errors"
)

// ErrEmptyHeap is returned by Pop and Peek on an empty heap.
var ErrEmptyHeap = errors.New("heap: heap is empty")

// Heap is a binary heap. Create one with New or FromSlice.
type Heap[T any] struct {
	data []T
	less func(a, b T) bool
}

// New returns an empty heap ordered by less.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// NewMin returns an empty min-heap over an ordered type.
func NewMin[T cmp.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a < b })
}

// FromSlice builds a heap that takes ownership of s.
func FromSlice[T any](s []T, less func(a, b T) bool) *Heap[T] {
	h := &Heap[T]{data: s, less: less}
	for i := len(s)/2 - 1; i >= 0; i-- {
		h.down(i)
	}

	return h
}

// Len returns the number of elements.
func (h *Heap[T]) Len() int { return len(h.data) }

// Push inserts v.
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.up(len(h.data) - 1)
}

// Peek returns the root without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.data[0], nil
}

// Pop removes and returns the root.
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	n := len(h.data)
	if n == 0 {
		return zero, ErrEmptyHeap
	}
	root := h.data[0]
	h.data[0] = h.data[n-1]
	h.data[n-1] = zero
	h.data = h.data[:n-1]
	if n > 1 {
		h.down(0)
	}

	return root, nil
}

// Valid reports whether no parent is ordered after one of its children.
func (h *Heap[T]) Valid() bool {
	for i := 1; i < len(h.data); i++ {
		if h.less(h.data[i], h.data[(i-1)/2]) {
			return false
		}
	}

	return true
}

func (h *Heap[T]) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(h.data[i], h.data[p]) {
			return
		}
		h.data[i], h.data[p] = h.data[p], h.data[i]
		i = p
	}
}

func (h *Heap[T]) down(i int) {
	n := len(h.data)
	for {
		smallest := i
		l, r := 2*i+1, 2*i+2
		if l < n && h.less(h.data[l], h.data[smallest]) {
			smallest = l
		}
		if r < n && h.less(h.data[r], h.data[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}
