// Package search is lesson 1 of the course log: linear and binary search over
// slices, with explicit handling of the classic edge cases.
//
// What
//
//   - Linear, LinearAll: scan left to right; works on unsorted input.
//   - Binary: any index of target in a sorted slice.
//   - BinaryFirst, BinaryLast: leftmost / rightmost index among duplicates.
//   - BinaryAll: every index of target, found by one hit plus expansion
//     (equal elements are contiguous in a sorted slice).
//   - BinaryFunc: condition-driven binary search; the caller decides whether the
//     answer lies Left, Right, or was Found at the probed index.
//
// Edge cases
//
//   - empty input           → -1 (or an empty slice)
//   - single element        → 0 if it matches, otherwise -1
//   - target first / second / middle / absent
//   - repeating elements    → use BinaryFirst / BinaryAll for a defined answer
//
// Complexity
//
//   - Linear*:  O(n) time, O(1) extra memory (LinearAll: O(k) for k hits).
//   - Binary*:  O(log n) time; BinaryAll is O(log n + k).
//
// Sentinel
//
//	NotFound (-1) is returned by every index-returning function when target is absent.
package search
