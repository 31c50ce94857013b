package sorting

// Merge returns a sorted copy of s, leaving s untouched.
func Merge[T any](s []T, less func(a, b T) bool) []T {
	out := make([]T, len(s))
	copy(out, s)
	MergeInPlace(out, less)

	return out
}

// MergeInPlace sorts s top-down using one scratch buffer of len(s).
func MergeInPlace[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	buf := make([]T, len(s))
	mergeSort(s, buf, less)
}

func mergeSort[T any](s, buf []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid], less)
	mergeSort(s[mid:], buf[mid:], less)
	merge(s, mid, buf, less)
}

// merge combines the sorted halves s[:mid] and s[mid:]. Ties take the left
// element first, which keeps the sort stable.
func merge[T any](s []T, mid int, buf []T, less func(a, b T) bool) {
	copy(buf, s)
	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		if less(buf[j], buf[i]) {
			s[k] = buf[j]
			j++
		} else {
			s[k] = buf[i]
			i++
		}
		k++
	}
	k += copy(s[k:], buf[i:mid])
	copy(s[k:], buf[j:len(s)])
}
