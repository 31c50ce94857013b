package sorting

// Heap builds a max-heap in place and repeatedly moves the root behind the
// shrinking heap boundary.
func Heap[T any](s []T, less func(a, b T) bool) {
	n := len(s)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n, less)
	}
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end, less)
	}
}

func siftDown[T any](s []T, i, n int, less func(a, b T) bool) {
	for {
		largest := i
		l, r := 2*i+1, 2*i+2
		if l < n && less(s[largest], s[l]) {
			largest = l
		}
		if r < n && less(s[largest], s[r]) {
			largest = r
		}
		if largest == i {
			return
		}
		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}
