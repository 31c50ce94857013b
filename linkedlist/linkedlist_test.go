package linkedlist_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldsa/linkedlist"
)

func TestList_Empty(t *testing.T) {
	var l linkedlist.List[int]
	assert.Equal(t, 0, l.Len())
	_, err := l.PopFront()
	assert.ErrorIs(t, err, linkedlist.ErrEmptyList)
	_, err = l.Front()
	assert.ErrorIs(t, err, linkedlist.ErrEmptyList)
	_, err = l.Middle()
	assert.ErrorIs(t, err, linkedlist.ErrEmptyList)
	_, err = l.At(0)
	assert.ErrorIs(t, err, linkedlist.ErrIndexOutOfRange)
	assert.Equal(t, "nil", l.String())

	l.Reverse()
	assert.Empty(t, l.Values())
}

func TestList_PushPop(t *testing.T) {
	l := linkedlist.New[int]()
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	assert.Equal(t, []int{1, 2, 3}, l.Values())
	assert.Equal(t, "1 -> 2 -> 3 -> nil", l.String())

	v, err := l.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, _ = l.PopFront()
	_, _ = l.PopFront()
	assert.Equal(t, 0, l.Len())

	// tail must be reset so PushBack works after draining
	l.PushBack(9)
	assert.Equal(t, []int{9}, l.Values())
}

func TestList_InsertAtAndAt(t *testing.T) {
	l := linkedlist.FromSlice([]string{"a", "c"})
	require.NoError(t, l.InsertAt(1, "b"))
	require.NoError(t, l.InsertAt(0, "start"))
	require.NoError(t, l.InsertAt(l.Len(), "end"))
	assert.Equal(t, []string{"start", "a", "b", "c", "end"}, l.Values())

	assert.ErrorIs(t, l.InsertAt(-1, "x"), linkedlist.ErrIndexOutOfRange)
	assert.ErrorIs(t, l.InsertAt(99, "x"), linkedlist.ErrIndexOutOfRange)

	v, err := l.At(2)
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	_, err = l.At(5)
	assert.ErrorIs(t, err, linkedlist.ErrIndexOutOfRange)
}

func TestList_FindRemove(t *testing.T) {
	l := linkedlist.FromSlice([]int{1, 2, 3, 4})
	v, ok := l.Find(func(x int) bool { return x%2 == 0 })
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	assert.True(t, l.Remove(func(x int) bool { return x == 4 })) // tail
	assert.True(t, l.Remove(func(x int) bool { return x == 1 })) // head
	assert.False(t, l.Remove(func(x int) bool { return x == 7 }))
	assert.Equal(t, []int{2, 3}, l.Values())

	l.PushBack(5)
	assert.Equal(t, []int{2, 3, 5}, l.Values(), "tail updated after removing the old tail")
}

func TestList_ReverseAndMiddle(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			in := make([]int, n)
			for i := range in {
				in[i] = i
			}
			l := linkedlist.FromSlice(in)

			mid, err := l.Middle()
			require.NoError(t, err)
			assert.Equal(t, n/2, mid)

			l.Reverse()
			want := make([]int, n)
			for i := range want {
				want[i] = n - 1 - i
			}
			assert.Equal(t, want, l.Values())

			l.PushBack(100)
			assert.Equal(t, 100, l.Values()[n], "tail follows the reversal")
		})
	}
}
