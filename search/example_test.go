package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvldsa/search"
)

// ExampleBinaryAll shows the three ways of asking about a repeated element.
func ExampleBinaryAll() {
	s := []int{1, 2, 2, 2, 3, 4}
	fmt.Println(search.BinaryFirst(s, 2), search.BinaryLast(s, 2))
	fmt.Println(search.BinaryAll(s, 2))
	fmt.Println(search.Binary(s, 9))
	// Output:
	// 1 3
	// [1 2 3]
	// -1
}

// ExampleLinear scans an unsorted slice.
func ExampleLinear() {
	fmt.Println(search.Linear([]int{9, 4, 7, 4}, 4))
	fmt.Println(search.LinearAll([]int{9, 4, 7, 4}, 4))
	// Output:
	// 1
	// [1 3]
}
