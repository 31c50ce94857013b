package sorting

// Bubble swaps adjacent out-of-order pairs until a full pass makes no swap.
func Bubble[T any](s []T, less func(a, b T) bool) {
	for n := len(s); n > 1; n-- {
		swapped := false
		for i := 1; i < n; i++ {
			if less(s[i], s[i-1]) {
				s[i], s[i-1] = s[i-1], s[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Insertion grows a sorted prefix by shifting each new element left into place.
func Insertion[T any](s []T, less func(a, b T) bool) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i
		for j > 0 && less(v, s[j-1]) {
			s[j] = s[j-1]
			j--
		}
		s[j] = v
	}
}

// Selection repeatedly swaps the minimum of the unsorted suffix to its front.
func Selection[T any](s []T, less func(a, b T) bool) {
	for i := 0; i < len(s)-1; i++ {
		m := i
		for j := i + 1; j < len(s); j++ {
			if less(s[j], s[m]) {
				m = j
			}
		}
		s[i], s[m] = s[m], s[i]
	}
}
