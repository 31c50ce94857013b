package sorting

import (
	"cmp"
	"errors"
)

// ErrNegativeValue indicates a negative input to Counting.
var ErrNegativeValue = errors.New("sorting: counting sort requires non-negative values")

// Algorithm describes one sort implementation for demos and reports.
type Algorithm struct {
	Name   string
	Stable bool
	Sort   func(s []int)
}

// Algorithms lists every comparison sort applied to ints, in lesson order.
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: "bubble", Stable: true, Sort: BubbleOrdered[int]},
		{Name: "insertion", Stable: true, Sort: InsertionOrdered[int]},
		{Name: "selection", Stable: false, Sort: SelectionOrdered[int]},
		{Name: "merge", Stable: true, Sort: func(s []int) { MergeInPlace(s, less[int]) }},
		{Name: "quick", Stable: false, Sort: QuickOrdered[int]},
		{Name: "heap", Stable: false, Sort: HeapOrdered[int]},
	}
}

func less[T cmp.Ordered](a, b T) bool { return a < b }

// BubbleOrdered sorts s ascending with Bubble.
func BubbleOrdered[T cmp.Ordered](s []T) { Bubble(s, less[T]) }

// InsertionOrdered sorts s ascending with Insertion.
func InsertionOrdered[T cmp.Ordered](s []T) { Insertion(s, less[T]) }

// SelectionOrdered sorts s ascending with Selection.
func SelectionOrdered[T cmp.Ordered](s []T) { Selection(s, less[T]) }

// MergeOrdered returns a sorted copy of s.
func MergeOrdered[T cmp.Ordered](s []T) []T { return Merge(s, less[T]) }

// QuickOrdered sorts s ascending with Quick.
func QuickOrdered[T cmp.Ordered](s []T) { Quick(s, less[T]) }

// HeapOrdered sorts s ascending with Heap.
func HeapOrdered[T cmp.Ordered](s []T) { Heap(s, less[T]) }
