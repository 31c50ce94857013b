package sorting

import "fmt"

// Counting returns a sorted copy of non-negative ints in O(n + max) time.
func Counting(s []int) ([]int, error) {
	hi := 0
	for i, v := range s {
		if v < 0 {
			return nil, fmt.Errorf("%w: s[%d] = %d", ErrNegativeValue, i, v)
		}
		hi = max(hi, v)
	}
	if len(s) == 0 {
		return []int{}, nil
	}

	counts := make([]int, hi+1)
	for _, v := range s {
		counts[v]++
	}
	out := make([]int, 0, len(s))
	for v, c := range counts {
		for ; c > 0; c-- {
			out = append(out, v)
		}
	}

	return out, nil
}
