package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/lvldsa/linkedlist"
	"github.com/katalvlaran/lvldsa/problems"
)

func runProblems(_ context.Context, w io.Writer, _ *env) error {
	printSection(w, "TWO SUM")
	nums := []int{2, 7, 11, 15}
	if i, j, ok := problems.TwoSum(nums, 9); ok {
		fmt.Fprintf(w, "%v target 9: indices %d and %d\n", nums, i, j)
	}

	printSection(w, "MAXIMUM SUBARRAY")
	arr := []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}
	sum, lo, hi, err := problems.MaxSubarray(arr)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v: sum %s over %v\n", arr, num(sum), arr[lo:hi+1])

	printSection(w, "ROTATED LISTS")
	rotated := []int{19, 25, 29, 3, 5, 6, 7, 9, 11, 14}
	fmt.Fprintf(w, "%v rotated %s times\n", rotated, num(problems.CountRotations(rotated)))
	fmt.Fprintf(w, "index of 7: %s\n", num(problems.SearchRotated(rotated, 7)))

	printSection(w, "MERGE SORTED LISTS")
	merged := problems.MergeSortedLists(
		linkedlist.FromSlice([]int{1, 4, 9}),
		linkedlist.FromSlice([]int{2, 3, 10, 12}),
	)
	fmt.Fprintln(w, merged)

	printSection(w, "NUMBER OF ISLANDS")
	grid := [][]int{
		{1, 1, 0, 0, 0},
		{1, 1, 0, 0, 1},
		{0, 0, 0, 1, 1},
		{0, 0, 0, 0, 0},
		{1, 0, 1, 0, 1},
	}
	islands, err := problems.NumIslands(grid)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "islands: %s\n", num(islands))

	return nil
}
