package bst_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldsa/bst"
)

// buildTree inserts keys in order, failing the test on any error.
func buildTree(t *testing.T, keys ...int) *bst.Tree[int, string] {
	t.Helper()
	tr := bst.New[int, string]()
	for _, k := range keys {
		require.NoError(t, tr.Insert(k, "v"))
	}

	return tr
}

func TestTree_EmptyTree(t *testing.T) {
	tr := bst.New[int, string]()
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.Height())
	assert.Empty(t, tr.InOrder())
	assert.Empty(t, tr.LevelOrder())
	assert.True(t, tr.IsBST())
	assert.True(t, tr.IsBalanced())

	_, err := tr.Min()
	assert.ErrorIs(t, err, bst.ErrEmptyTree)
	_, err = tr.Max()
	assert.ErrorIs(t, err, bst.ErrEmptyTree)
	assert.ErrorIs(t, tr.Delete(1), bst.ErrKeyNotFound)
}

func TestTree_InsertSearch(t *testing.T) {
	tr := buildTree(t, 50, 30, 70, 20, 40, 60, 80)

	for _, k := range []int{20, 30, 40, 50, 60, 70, 80} {
		assert.True(t, tr.Contains(k), "key %d", k)
	}
	for _, k := range []int{0, 25, 55, 99} {
		_, ok := tr.Search(k)
		assert.False(t, ok, "key %d must be absent", k)
	}

	err := tr.Insert(40, "dup")
	assert.ErrorIs(t, err, bst.ErrDuplicateKey)
	assert.Equal(t, 7, tr.Len())

	assert.Equal(t, []int{20, 30, 40, 50, 60, 70, 80}, tr.InOrder())
	assert.Equal(t, []int{50, 30, 20, 40, 70, 60, 80}, tr.PreOrder())
	assert.Equal(t, []int{20, 40, 30, 60, 80, 70, 50}, tr.PostOrder())
	assert.Equal(t, []int{50, 30, 70, 20, 40, 60, 80}, tr.LevelOrder())

	mn, err := tr.Min()
	require.NoError(t, err)
	mx, err := tr.Max()
	require.NoError(t, err)
	assert.Equal(t, 20, mn)
	assert.Equal(t, 80, mx)
	assert.Equal(t, 3, tr.Height())
}

func TestTree_Upsert(t *testing.T) {
	tr := bst.New[string, int]()
	assert.True(t, tr.Upsert("a", 1))
	assert.False(t, tr.Upsert("a", 2))
	v, ok := tr.Search("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, tr.Len())
}

func TestTree_DeleteCases(t *testing.T) {
	tr := buildTree(t, 50, 30, 70, 20, 40, 60, 80)

	// leaf
	require.NoError(t, tr.Delete(20))
	// one child (30 now has only 40)
	require.NoError(t, tr.Delete(30))
	// two children (root)
	require.NoError(t, tr.Delete(50))

	assert.Equal(t, []int{40, 60, 70, 80}, tr.InOrder())
	assert.Equal(t, 4, tr.Len())
	assert.True(t, tr.IsBST())
	assert.ErrorIs(t, tr.Delete(50), bst.ErrKeyNotFound)
}

func TestTree_SortedInsertDegeneratesAndBalances(t *testing.T) {
	keys := make([]int, 63)
	for i := range keys {
		keys[i] = i
	}
	tr := buildTree(t, keys...)
	assert.Equal(t, 63, tr.Height(), "sorted inserts build a linked list")
	assert.False(t, tr.IsBalanced())

	tr.Balance()
	assert.Equal(t, 6, tr.Height(), "63 keys fit in 6 full levels")
	assert.True(t, tr.IsBalanced())
	assert.True(t, tr.IsBST())
	assert.Equal(t, keys, tr.InOrder())
}

// TestTree_Property inserts random keys and compares against a sorted oracle.
func TestTree_Property(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for round := 0; round < 20; round++ {
		tr := bst.New[int, int]()
		seen := map[int]bool{}
		for i := 0; i < 300; i++ {
			k := r.Intn(500)
			err := tr.Insert(k, k*10)
			if seen[k] {
				require.ErrorIs(t, err, bst.ErrDuplicateKey)
			} else {
				require.NoError(t, err)
			}
			seen[k] = true
		}
		oracle := make([]int, 0, len(seen))
		for k := range seen {
			oracle = append(oracle, k)
		}
		slices.Sort(oracle)
		require.Equal(t, oracle, tr.InOrder())

		for k := 0; k < 500; k++ {
			v, ok := tr.Search(k)
			require.Equal(t, seen[k], ok)
			if ok {
				require.Equal(t, k*10, v)
			}
		}

		// delete half and re-check ordering
		for _, k := range oracle[:len(oracle)/2] {
			require.NoError(t, tr.Delete(k))
		}
		require.True(t, tr.IsBST())
		require.Equal(t, oracle[len(oracle)/2:], tr.InOrder())
	}
}
