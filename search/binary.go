package search

import "cmp"

// Binary returns any index where target occurs in the ascending slice s,
// or NotFound. With duplicates the returned index is unspecified; use
// BinaryFirst or BinaryLast when a particular one is needed.
//
// Time Complexity: O(log n).
func Binary[T cmp.Ordered](s []T, target T) int {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2 // no overflow on huge slices
		switch {
		case s[mid] == target:
			return mid
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return NotFound
}

// BinaryFirst returns the leftmost index of target in the ascending slice s,
// or NotFound.
//
// On a hit the search keeps narrowing to the left half, remembering the best
// index seen so far.
func BinaryFirst[T cmp.Ordered](s []T, target T) int {
	lo, hi := 0, len(s)-1
	res := NotFound
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case s[mid] == target:
			res = mid
			hi = mid - 1
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return res
}

// BinaryLast returns the rightmost index of target in the ascending slice s,
// or NotFound.
func BinaryLast[T cmp.Ordered](s []T, target T) int {
	lo, hi := 0, len(s)-1
	res := NotFound
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case s[mid] == target:
			res = mid
			lo = mid + 1
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return res
}

// BinaryAll returns every index of target in the ascending slice s.
// It locates one occurrence with Binary and expands left and right over the
// contiguous block of equal elements. The result is empty (never nil) when
// target is absent.
//
// Time Complexity: O(log n + k) where k is the number of occurrences.
func BinaryAll[T cmp.Ordered](s []T, target T) []int {
	idx := Binary(s, target)
	if idx == NotFound {
		return []int{}
	}
	l, r := idx, idx
	for l-1 >= 0 && s[l-1] == target {
		l--
	}
	for r+1 < len(s) && s[r+1] == target {
		r++
	}
	out := make([]int, 0, r-l+1)
	for i := l; i <= r; i++ {
		out = append(out, i)
	}

	return out
}

// BinaryFunc runs a binary search over the index range [0, len(s)) driven by
// cond. For each probed index cond receives the element and reports whether
// the answer is Found there, lies to the Left, or to the Right.
// Returns NotFound when the range is exhausted, or ErrNilCondition.
//
// This is the shape every lesson-1 problem reduces to: only the condition changes.
func BinaryFunc[T any](s []T, cond func(mid int, v T) Position) (int, error) {
	if cond == nil {
		return NotFound, ErrNilCondition
	}
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch cond(mid, s[mid]) {
		case Found:
			return mid, nil
		case Left:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}

	return NotFound, nil
}
