package search

// Linear returns the first index of target in s, scanning left to right,
// or NotFound. s does not need to be sorted.
// Time Complexity: O(n).
func Linear[T comparable](s []T, target T) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}

	return NotFound
}

// LinearAll returns every index where target occurs, in ascending order.
// The result is empty (never nil) when target is absent.
// Time Complexity: O(n).
func LinearAll[T comparable](s []T, target T) []int {
	out := []int{}
	for i, v := range s {
		if v == target {
			out = append(out, i)
		}
	}

	return out
}
