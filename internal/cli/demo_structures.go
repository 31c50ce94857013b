package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/lvldsa/hashtable"
	"github.com/katalvlaran/lvldsa/heap"
	"github.com/katalvlaran/lvldsa/linkedlist"
	"github.com/katalvlaran/lvldsa/problems"
	"github.com/katalvlaran/lvldsa/queue"
	"github.com/katalvlaran/lvldsa/stack"
)

func runLinkedList(_ context.Context, w io.Writer, _ *env) error {
	l := linkedlist.FromSlice([]int{2, 3, 5, 7})
	fmt.Fprintf(w, "start:       %s\n", l)
	l.PushFront(1)
	l.PushBack(11)
	fmt.Fprintf(w, "push ends:   %s\n", l)
	if err := l.InsertAt(3, 4); err != nil {
		return err
	}
	fmt.Fprintf(w, "insert at 3: %s\n", l)
	l.Remove(func(v int) bool { return v == 7 })
	fmt.Fprintf(w, "remove 7:    %s\n", l)
	mid, err := l.Middle()
	if err != nil {
		return err
	}
	printDetail(w, "length %d, middle %d", l.Len(), mid)
	l.Reverse()
	fmt.Fprintf(w, "reversed:    %s\n", l)

	return nil
}

func runStackQueue(_ context.Context, w io.Writer, _ *env) error {
	printSection(w, "STACK")
	s := stack.New[string](0)
	for _, v := range []string{"a", "b", "c"} {
		s.Push(v)
	}
	var popped []string
	for !s.IsEmpty() {
		v, _ := s.Pop()
		popped = append(popped, v)
	}
	fmt.Fprintf(w, "push a b c, pop order: %v\n", popped)
	for _, expr := range []string{"([]{})", "([)]", "((", ""} {
		printCheck(w, problems.ValidParentheses(expr), "balanced %q", expr)
	}

	printSection(w, "QUEUE")
	q := queue.New[int](0)
	for i := 1; i <= 9; i++ {
		q.Enqueue(i)
		if i == 3 {
			_, _ = q.Dequeue()
		}
	}
	fmt.Fprintf(w, "length %s, capacity %s\n", num(q.Len()), num(q.Cap()))
	var drained []int
	for q.Len() > 0 {
		v, _ := q.Dequeue()
		drained = append(drained, v)
	}
	fmt.Fprintf(w, "FIFO order: %v\n", drained)

	return nil
}

func runHeap(_ context.Context, w io.Writer, e *env) error {
	values := e.randomInts(12, 100)
	fmt.Fprintf(w, "input: %v\n", values)

	h := heap.FromSlice(slices.Clone(values), func(a, b int) bool { return a < b })
	printCheck(w, h.Valid(), "heap property after heapify")
	sorted := make([]int, 0, len(values))
	for h.Len() > 0 {
		v, _ := h.Pop()
		sorted = append(sorted, v)
	}
	fmt.Fprintf(w, "pop order: %v\n", sorted)

	const k = 3
	top := heap.NewMin[int]()
	for _, v := range values {
		top.Push(v)
		if top.Len() > k {
			_, _ = top.Pop()
		}
	}
	var largest []int
	for top.Len() > 0 {
		v, _ := top.Pop()
		largest = append(largest, v)
	}
	slices.Reverse(largest)
	printDetail(w, "top %d: %v", k, largest)

	return nil
}

// phonebook is the key set of the hash table demo.
var phonebook = map[string]string{
	"Aakash":   "9489484949",
	"Hemanth":  "9595949494",
	"Siddhant": "9595989398",
	"Vishal":   "8787878787",
	"Sonaksh":  "7676767676",
	"Biraj":    "9090909090",
}

func runHashTable(_ context.Context, w io.Writer, _ *env) error {
	chained, err := hashtable.NewChained[string](hashtable.WithCapacity(4))
	if err != nil {
		return err
	}
	open, err := hashtable.NewOpenAddressed[string](hashtable.WithCapacity(4))
	if err != nil {
		return err
	}
	for name, phone := range phonebook {
		chained.Put(name, phone)
		open.Put(name, phone)
	}
	phone, _ := chained.Get("Hemanth")
	fmt.Fprintf(w, "Hemanth: %s\n", phone)

	chained.Delete("Vishal")
	open.Delete("Vishal")
	_, found := open.Get("Vishal")
	printCheck(w, !found, "Vishal deleted")

	printSection(w, "SEPARATE CHAINING")
	fmt.Fprintf(w, "len %s, buckets %s, load %.2f, longest chain %s\n",
		num(chained.Len()), num(chained.Cap()), chained.LoadFactor(), num(chained.LongestChain()))
	printDetail(w, "keys: %v", chained.Keys())

	printSection(w, "OPEN ADDRESSING")
	fmt.Fprintf(w, "len %s, slots %s, tombstones %s\n", num(open.Len()), num(open.Cap()), num(open.Tombstones()))
	printDetail(w, "keys: %v", open.Keys())

	return nil
}
