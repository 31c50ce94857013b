package dp

import (
	"cmp"
	"slices"
)

// LCS returns the length of the longest common subsequence of a and b and one
// such subsequence. Strings are compared rune by rune.
func LCS(a, b string) (int, string) {
	x, y := []rune(a), []rune(b)
	n, m := len(x), len(y)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if x[i-1] == y[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else {
				table[i][j] = max(table[i-1][j], table[i][j-1])
			}
		}
	}

	out := make([]rune, 0, table[n][m])
	for i, j := n, m; i > 0 && j > 0; {
		switch {
		case x[i-1] == y[j-1]:
			out = append(out, x[i-1])
			i--
			j--
		case table[i-1][j] >= table[i][j-1]:
			i--
		default:
			j--
		}
	}
	slices.Reverse(out)

	return table[n][m], string(out)
}

// EditDistance returns the Levenshtein distance: the fewest single-rune
// insertions, deletions or substitutions turning a into b.
func EditDistance(a, b string) int {
	x, y := []rune(a), []rune(b)
	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(x); i++ {
		cur[0] = i
		for j := 1; j <= len(y); j++ {
			if x[i-1] == y[j-1] {
				cur[j] = prev[j-1]
				continue
			}
			cur[j] = 1 + min(prev[j-1], prev[j], cur[j-1])
		}
		prev, cur = cur, prev
	}

	return prev[len(y)]
}

// LIS returns one longest strictly increasing subsequence of s in O(n log n).
//
// tails[k] is the index of the smallest tail of an increasing run of length k+1;
// parent links rebuild the run afterwards.
func LIS(s []int) []int {
	if len(s) == 0 {
		return []int{}
	}
	tails := make([]int, 0, len(s))
	parent := make([]int, len(s))
	for i, v := range s {
		// first run whose tail is >= v
		k, _ := slices.BinarySearchFunc(tails, v, func(t, target int) int {
			return cmp.Compare(s[t], target)
		})
		if k > 0 {
			parent[i] = tails[k-1]
		} else {
			parent[i] = -1
		}
		if k == len(tails) {
			tails = append(tails, i)
		} else {
			tails[k] = i
		}
	}

	out := make([]int, len(tails))
	for i, k := tails[len(tails)-1], len(tails)-1; k >= 0; i, k = parent[i], k-1 {
		out[k] = s[i]
	}

	return out
}
