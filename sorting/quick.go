package sorting

// Quick sorts s with Lomuto partitioning. The pivot is the median of the first,
// middle and last elements, and the loop recurses into the smaller side only so
// stack depth stays O(log n).
func Quick[T any](s []T, less func(a, b T) bool) {
	for len(s) > 1 {
		p := partition(s, less)
		if p < len(s)-p-1 {
			Quick(s[:p], less)
			s = s[p+1:]
		} else {
			Quick(s[p+1:], less)
			s = s[:p]
		}
	}
}

func partition[T any](s []T, less func(a, b T) bool) int {
	hi := len(s) - 1
	medianOfThree(s, less)
	pivot := s[hi]
	i := 0
	for j := 0; j < hi; j++ {
		if less(s[j], pivot) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]

	return i
}

// medianOfThree moves the median of s[0], s[mid], s[hi] into s[hi].
func medianOfThree[T any](s []T, less func(a, b T) bool) {
	lo, mid, hi := 0, len(s)/2, len(s)-1
	if less(s[mid], s[lo]) {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if less(s[hi], s[lo]) {
		s[hi], s[lo] = s[lo], s[hi]
	}
	// s[lo] is now the smallest; the median is the smaller of s[mid], s[hi]
	if less(s[mid], s[hi]) {
		s[mid], s[hi] = s[hi], s[mid]
	}
}
