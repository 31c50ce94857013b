package dp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldsa/dp"
)

func TestFibonacci(t *testing.T) {
	want := []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for n, w := range want {
		got, err := dp.Fibonacci(n)
		require.NoError(t, err)
		assert.Equal(t, w, got, "tabulated F(%d)", n)
		got, err = dp.FibonacciMemo(n)
		require.NoError(t, err)
		assert.Equal(t, w, got, "memoized F(%d)", n)
	}
	big, err := dp.FibonacciMemo(90)
	require.NoError(t, err)
	assert.Equal(t, 2880067194370816120, big)

	_, err = dp.Fibonacci(-1)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
	_, err = dp.FibonacciMemo(-1)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
}

func TestKnapsack_Classic(t *testing.T) {
	items, err := dp.Items([]int{23, 31, 29, 44, 53, 38, 63, 85, 89, 82}, []int{92, 57, 49, 68, 60, 43, 67, 84, 87, 72})
	require.NoError(t, err)
	res, err := dp.Knapsack(items, 165)
	require.NoError(t, err)
	assert.Equal(t, 309, res.Value)
	assert.Equal(t, []int{0, 1, 2, 3, 5}, res.Items)
	assert.Equal(t, 165, res.Weight)

	v, err := dp.KnapsackValue(items, 165)
	require.NoError(t, err)
	assert.Equal(t, 309, v)
}

func TestKnapsack_Errors(t *testing.T) {
	_, err := dp.Items([]int{1}, nil)
	assert.ErrorIs(t, err, dp.ErrMismatchedItems)
	_, err = dp.Knapsack(nil, -1)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
	_, err = dp.KnapsackValue([]dp.Item{{Weight: -1, Value: 2}}, 3)
	assert.ErrorIs(t, err, dp.ErrNegativeWeight)

	res, err := dp.Knapsack(nil, 10)
	require.NoError(t, err)
	assert.Zero(t, res.Value)
	assert.Empty(t, res.Items)
}

// TestKnapsack_MatchesBrute compares all three solvers on random small inputs.
func TestKnapsack_MatchesBrute(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for trial := 0; trial < 200; trial++ {
		items := make([]dp.Item, r.Intn(10))
		for i := range items {
			items[i] = dp.Item{Weight: r.Intn(12), Value: r.Intn(30)}
		}
		capacity := r.Intn(40)

		brute, err := dp.KnapsackBrute(items, capacity)
		require.NoError(t, err)
		res, err := dp.Knapsack(items, capacity)
		require.NoError(t, err)
		rolling, err := dp.KnapsackValue(items, capacity)
		require.NoError(t, err)

		require.Equal(t, brute, res.Value)
		require.Equal(t, brute, rolling)

		sumW, sumV := 0, 0
		for _, i := range res.Items {
			sumW += items[i].Weight
			sumV += items[i].Value
		}
		require.LessOrEqual(t, sumW, capacity)
		require.Equal(t, res.Value, sumV, "chosen items add up to the optimum")
		require.Equal(t, res.Weight, sumW)
	}
}

func TestLCS(t *testing.T) {
	cases := []struct {
		a, b string
		n    int
	}{
		{"serendipitous", "precipitation", 7},
		{"abc", "def", 0},
		{"", "abc", 0},
		{"longest", "stone", 3},
		{"abcde", "ace", 3},
	}
	for _, c := range cases {
		n, seq := dp.LCS(c.a, c.b)
		assert.Equal(t, c.n, n, "%q vs %q", c.a, c.b)
		assert.Len(t, []rune(seq), n)
		assert.True(t, isSubsequence(seq, c.a) && isSubsequence(seq, c.b), "%q", seq)
	}
}

func isSubsequence(sub, s string) bool {
	r := []rune(sub)
	i := 0
	for _, c := range s {
		if i < len(r) && r[i] == c {
			i++
		}
	}

	return i == len(r)
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 3, dp.EditDistance("kitten", "sitting"))
	assert.Equal(t, 0, dp.EditDistance("same", "same"))
	assert.Equal(t, 4, dp.EditDistance("", "four"))
	assert.Equal(t, 5, dp.EditDistance("intention", "execution"))
}

func TestCoinChange(t *testing.T) {
	n, err := dp.CoinChange([]int{1, 2, 5}, 11)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = dp.CoinChange([]int{2}, 0)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = dp.CoinChange([]int{2}, 3)
	assert.ErrorIs(t, err, dp.ErrUnreachable)
	_, err = dp.CoinChange([]int{0}, 3)
	assert.ErrorIs(t, err, dp.ErrBadCoin)
	_, err = dp.CoinChange([]int{1}, -3)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
}

func TestLIS(t *testing.T) {
	got := dp.LIS([]int{10, 9, 2, 5, 3, 7, 101, 18})
	assert.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
	assert.Equal(t, []int{}, dp.LIS(nil))
	assert.Equal(t, []int{4}, dp.LIS([]int{4, 4, 4}))
	assert.Equal(t, []int{0, 1, 2, 3}, dp.LIS([]int{0, 1, 2, 3}))
}
