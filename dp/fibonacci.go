package dp

import "fmt"

// FibonacciMemo computes F(n) top-down, caching each subproblem.
func FibonacciMemo(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: n = %d", ErrNegativeInput, n)
	}
	memo := make(map[int]int, n+1)
	var fib func(int) int
	fib = func(k int) int {
		if k < 2 {
			return k
		}
		if v, ok := memo[k]; ok {
			return v
		}
		v := fib(k-1) + fib(k-2)
		memo[k] = v

		return v
	}

	return fib(n), nil
}

// Fibonacci computes F(n) bottom-up with two running values.
func Fibonacci(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: n = %d", ErrNegativeInput, n)
	}
	a, b := 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}

	return a, nil
}
