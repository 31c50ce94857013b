package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldsa/queue"
)

func TestQueue_ZeroValue(t *testing.T) {
	var q queue.Queue[int]
	_, err := q.Dequeue()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
	_, err = q.Peek()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)

	q.Enqueue(7)
	v, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 4, q.Cap())
}

// TestQueue_WrapAndGrow interleaves operations so the ring wraps before it grows.
func TestQueue_WrapAndGrow(t *testing.T) {
	q := queue.New[int](4)
	next, want := 0, 0
	push := func(n int) {
		for i := 0; i < n; i++ {
			q.Enqueue(next)
			next++
		}
	}
	pop := func(n int) {
		for i := 0; i < n; i++ {
			v, err := q.Dequeue()
			require.NoError(t, err)
			require.Equal(t, want, v)
			want++
		}
	}

	push(3)
	pop(2)  // head is now 2
	push(3) // wraps: occupies 2,3,0,1
	assert.Equal(t, 4, q.Cap())
	push(5) // forces two doublings with a wrapped ring
	assert.Equal(t, 9, q.Len())
	assert.Equal(t, 16, q.Cap())
	pop(9)
	assert.Equal(t, 0, q.Len())
}
