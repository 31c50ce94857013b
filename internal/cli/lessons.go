package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/katalvlaran/lvldsa/internal/config"
	"github.com/katalvlaran/lvldsa/internal/fixtures"
)

// ErrUnknownLesson is returned by run for a name missing from the registry.
var ErrUnknownLesson = errors.New("unknown lesson")

// env is what every lesson demo receives.
type env struct {
	cfg config.Config
	fx  *fixtures.Set
	rng *rand.Rand
}

func newEnv(cfg config.Config) (*env, error) {
	fx, err := fixtures.Load()
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}

	return &env{cfg: cfg, fx: fx, rng: rand.New(rand.NewSource(cfg.Seed))}, nil
}

// randomInts returns n values in [1, maxValue].
func (e *env) randomInts(n, maxValue int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = e.rng.Intn(maxValue) + 1
	}

	return out
}

type lesson struct {
	name    string
	title   string
	summary string
	run     func(ctx context.Context, w io.Writer, e *env) error
}

// lessons returns the registry in course order.
func lessons() []lesson {
	return []lesson{
		{"search", "Lesson 1: Binary Search", "linear vs binary search, locate card, rotations", runSearch},
		{"bst", "Lesson 2: Binary Search Trees", "tuple trees, traversals, displays, user database", runBST},
		{"avl", "Lesson 2b: AVL Trees", "self-balancing search tree vs plain BST", runAVL},
		{"linkedlist", "Lesson 3: Linked Lists", "singly linked list operations", runLinkedList},
		{"stackqueue", "Lesson 3b: Stacks and Queues", "slice stack, ring-buffer queue", runStackQueue},
		{"heap", "Lesson 3c: Binary Heaps", "priority queue and top-k", runHeap},
		{"hashtable", "Lesson 4: Hash Tables", "separate chaining vs open addressing", runHashTable},
		{"sorting", "Lesson 5: Sorting", "quadratic, divide and conquer, counting sort", runSorting},
		{"dp", "Lesson 6: Dynamic Programming", "fibonacci, knapsack, LCS, edit distance, coins, LIS", runDP},
		{"graphs", "Lesson 7: Graph Algorithms", "adjacency list and matrix, BFS, DFS, topological sort, shortest paths, MST", runGraphs},
		{"problems", "Interview Problems", "practice problems built on the lessons", runProblems},
	}
}

func findLesson(name string) (lesson, bool) {
	for _, l := range lessons() {
		if l.name == name {
			return l, true
		}
	}

	return lesson{}, false
}
