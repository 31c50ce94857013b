// Package queue implements a FIFO queue on a growable ring buffer.
//
// head indexes the oldest element; elements occupy buf[head], buf[head+1], ...
// modulo len(buf). When the buffer is full Enqueue doubles it and unrolls the
// ring so head returns to 0. Enqueue is amortized O(1), Dequeue O(1).
package queue

import "errors"

// ErrEmptyQueue is returned by Dequeue and Peek on an empty queue.
var ErrEmptyQueue = errors.New("queue: queue is empty")

const minCapacity = 4

// Queue is a FIFO container. The zero value is an empty queue.
type Queue[T any] struct {
	buf  []T
	head int
	size int
}

// New returns an empty queue with an initial capacity of at least capacity.
func New[T any](capacity int) *Queue[T] {
	return &Queue[T]{buf: make([]T, max(capacity, minCapacity))}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.size }

// Cap returns the current ring capacity.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// Enqueue adds v at the back.
func (q *Queue[T]) Enqueue(v T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmptyQueue
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--

	return v, nil
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.buf[q.head], nil
}

func (q *Queue[T]) grow() {
	next := make([]T, max(2*len(q.buf), minCapacity))
	for i := 0; i < q.size; i++ {
		next[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = next
	q.head = 0
}
