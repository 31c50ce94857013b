package search_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/lvldsa/search"
)

// sortedRandom builds the lesson's demo input: n random values in [1, 10000], sorted.
func sortedRandom(n int) []int {
	r := rand.New(rand.NewSource(42))
	s := make([]int, n)
	for i := range s {
		s[i] = 1 + r.Intn(10000)
	}
	slices.Sort(s)

	return s
}

func BenchmarkBinary_10k(b *testing.B) {
	s := sortedRandom(10000)
	target := s[len(s)*3/4]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.Binary(s, target)
	}
}

func BenchmarkLinear_10k(b *testing.B) {
	s := sortedRandom(10000)
	target := s[len(s)*3/4]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.Linear(s, target)
	}
}
