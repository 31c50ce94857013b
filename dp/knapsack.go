package dp

import (
	"fmt"
	"slices"
)

func validateItems(items []Item, capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: capacity = %d", ErrNegativeInput, capacity)
	}
	for i, it := range items {
		if it.Weight < 0 || it.Value < 0 {
			return fmt.Errorf("%w: item %d = %+v", ErrNegativeWeight, i, it)
		}
	}

	return nil
}

// Items zips parallel weight and value slices.
func Items(weights, values []int) ([]Item, error) {
	if len(weights) != len(values) {
		return nil, fmt.Errorf("%w: %d weights, %d values", ErrMismatchedItems, len(weights), len(values))
	}
	items := make([]Item, len(weights))
	for i := range weights {
		items[i] = Item{Weight: weights[i], Value: values[i]}
	}

	return items, nil
}

// Knapsack solves 0/1 knapsack and returns the chosen items.
//
// table[i][w] is the best value using the first i items within weight w.
func Knapsack(items []Item, capacity int) (KnapsackResult, error) {
	// 1. Validate input.
	if err := validateItems(items, capacity); err != nil {
		return KnapsackResult{}, err
	}

	// 2. Fill the full matrix.
	n := len(items)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, capacity+1)
	}
	for i := 1; i <= n; i++ {
		it := items[i-1]
		for w := 0; w <= capacity; w++ {
			table[i][w] = table[i-1][w]
			if it.Weight <= w {
				table[i][w] = max(table[i][w], table[i-1][w-it.Weight]+it.Value)
			}
		}
	}

	// 3. Backtrack: an item was taken wherever the row changed the value.
	res := KnapsackResult{Value: table[n][capacity]}
	w := capacity
	for i := n; i > 0; i-- {
		if table[i][w] != table[i-1][w] {
			res.Items = append(res.Items, i-1)
			res.Weight += items[i-1].Weight
			w -= items[i-1].Weight
		}
	}
	slices.Reverse(res.Items)

	return res, nil
}

// KnapsackValue returns only the optimal value using one row of capacity+1 cells.
func KnapsackValue(items []Item, capacity int) (int, error) {
	if err := validateItems(items, capacity); err != nil {
		return 0, err
	}
	row := make([]int, capacity+1)
	for _, it := range items {
		// right to left so each item is used at most once
		for w := capacity; w >= it.Weight; w-- {
			row[w] = max(row[w], row[w-it.Weight]+it.Value)
		}
	}

	return row[capacity], nil
}

// KnapsackBrute tries all 2^n subsets recursively. Only for small n.
func KnapsackBrute(items []Item, capacity int) (int, error) {
	if err := validateItems(items, capacity); err != nil {
		return 0, err
	}
	var best func(i, room int) int
	best = func(i, room int) int {
		if i == len(items) {
			return 0
		}
		skip := best(i+1, room)
		if items[i].Weight > room {
			return skip
		}

		return max(skip, items[i].Value+best(i+1, room-items[i].Weight))
	}

	return best(0, capacity), nil
}
