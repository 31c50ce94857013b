package problems

import "github.com/katalvlaran/lvldsa/search"

// LocateCard returns the first position of query in cards, which are sorted in
// descending order, or -1. Duplicates are allowed.
func LocateCard(cards []int, query int) int {
	idx, _ := search.BinaryFunc(cards, func(mid, v int) search.Position {
		switch {
		case v == query:
			if mid > 0 && cards[mid-1] == query {
				return search.Left
			}
			return search.Found
		case v < query:
			return search.Left
		default:
			return search.Right
		}
	})

	return idx
}

// CountRotations returns how many times an ascending slice of distinct values
// was rotated right, which is the index of its minimum. O(log n).
func CountRotations(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	last := nums[len(nums)-1]
	idx, _ := search.BinaryFunc(nums, func(mid, v int) search.Position {
		switch {
		case mid > 0 && v < nums[mid-1]:
			return search.Found
		case v > last:
			return search.Right
		default:
			return search.Left
		}
	})
	if idx == search.NotFound {
		return 0
	}

	return idx
}

// SearchRotated returns the index of target in a rotated ascending slice of
// distinct values, or -1.
func SearchRotated(nums []int, target int) int {
	k := CountRotations(nums)
	if i := search.Binary(nums[:k], target); i != search.NotFound {
		return i
	}
	if i := search.Binary(nums[k:], target); i != search.NotFound {
		return k + i
	}

	return search.NotFound
}
