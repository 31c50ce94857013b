// Package problems collects the interview-style exercises worked through
// alongside the lessons. Each one reuses a lesson structure: the binary search
// template from package search, the stack, the linked list and BFS flood fill.
//
//	LocateCard        binary search, descending input, first occurrence
//	CountRotations    binary search for the rotation point
//	SearchRotated     rotation point + two binary searches
//	TwoSum            one pass with a hash map
//	ValidParentheses  stack of open brackets
//	MergeSortedLists  two-pointer merge of linked lists
//	NumIslands        BFS flood fill over a grid, 4-connectivity
//	MaxSubarray       Kadane's running maximum
package problems
