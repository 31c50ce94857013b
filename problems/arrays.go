package problems

import "fmt"

// TwoSum returns indices i < j with nums[i]+nums[j] == target.
func TwoSum(nums []int, target int) (int, int, bool) {
	seen := make(map[int]int, len(nums))
	for j, v := range nums {
		if i, ok := seen[target-v]; ok {
			return i, j, true
		}
		if _, ok := seen[v]; !ok {
			seen[v] = j
		}
	}

	return -1, -1, false
}

// MaxSubarray returns the largest sum of a non-empty contiguous run together
// with its inclusive bounds. Ties keep the earliest run.
func MaxSubarray(nums []int) (sum, lo, hi int, err error) {
	if len(nums) == 0 {
		return 0, 0, 0, fmt.Errorf("%w: MaxSubarray", ErrEmptyInput)
	}
	sum = nums[0]
	cur, start := nums[0], 0
	for i := 1; i < len(nums); i++ {
		if cur < 0 {
			cur, start = nums[i], i
		} else {
			cur += nums[i]
		}
		if cur > sum {
			sum, lo, hi = cur, start, i
		}
	}

	return sum, lo, hi, nil
}
