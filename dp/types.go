// Package dp is lesson 6: dynamic programming, each problem solved first by
// the recursive definition and then by a table that removes the overlap.
//
// Knapsack follows the two memory modes of a DP table:
//
//   - Knapsack keeps the full (n+1)x(W+1) matrix and backtracks through it to
//     recover the chosen items. Memory O(n·W).
//   - KnapsackValue keeps a single rolling row. Memory O(W), value only.
//
// KnapsackBrute enumerates every subset; it exists as the oracle for tests and
// for the demo's side-by-side comparison.
package dp

import "errors"

var (
	// ErrNegativeInput is returned for a negative Fibonacci index, capacity or amount.
	ErrNegativeInput = errors.New("dp: input must be non-negative")

	// ErrMismatchedItems is returned when weights and values differ in length.
	ErrMismatchedItems = errors.New("dp: weights and values must have equal length")

	// ErrNegativeWeight is returned for an item with a negative weight or value.
	ErrNegativeWeight = errors.New("dp: item weight and value must be non-negative")

	// ErrUnreachable is returned by CoinChange when no combination sums to the amount.
	ErrUnreachable = errors.New("dp: amount cannot be formed from the given coins")

	// ErrBadCoin is returned for a coin denomination below 1.
	ErrBadCoin = errors.New("dp: coin denominations must be positive")
)

// Item is one knapsack candidate.
type Item struct {
	Weight int
	Value  int
}

// KnapsackResult is the optimum together with the chosen item indices (ascending).
type KnapsackResult struct {
	Value  int
	Weight int
	Items  []int
}
