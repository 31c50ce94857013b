// Package sorting is lesson 5: the classic comparison sorts plus counting sort,
// each written out by hand so their behavior can be compared.
//
// Every comparison sort takes a slice and a strict less function and sorts in
// place; the *Ordered helpers wrap them for cmp.Ordered element types.
//
//	Algorithm   Time (avg)   Time (worst)  Memory    Stable
//	Bubble      O(n²)        O(n²)         O(1)      yes (early exit on a sorted pass)
//	Insertion   O(n²)        O(n²)         O(1)      yes
//	Selection   O(n²)        O(n²)         O(1)      no
//	Merge       O(n log n)   O(n log n)    O(n)      yes
//	Quick       O(n log n)   O(n²)         O(log n)  no  (Lomuto, median-of-three pivot)
//	Heap        O(n log n)   O(n log n)    O(1)      no
//	Counting    O(n + k)     O(n + k)      O(n + k)  yes (non-negative ints, k = max value)
//
// Errors:
//
//   - ErrNegativeValue: Counting was given a negative integer.
package sorting
