package dp

import "fmt"

// CoinChange returns the fewest coins summing to amount, each denomination
// usable any number of times.
func CoinChange(coins []int, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: amount = %d", ErrNegativeInput, amount)
	}
	for _, c := range coins {
		if c < 1 {
			return 0, fmt.Errorf("%w: %d", ErrBadCoin, c)
		}
	}

	const inf = int(^uint(0) >> 1)
	best := make([]int, amount+1)
	for a := 1; a <= amount; a++ {
		best[a] = inf
		for _, c := range coins {
			if c <= a && best[a-c] != inf {
				best[a] = min(best[a], best[a-c]+1)
			}
		}
	}
	if best[amount] == inf {
		return 0, fmt.Errorf("%w: %d from %v", ErrUnreachable, amount, coins)
	}

	return best[amount], nil
}
