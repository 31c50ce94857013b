package dp_test

import (
	"fmt"

	"github.com/katalvlaran/lvldsa/dp"
)

func ExampleKnapsack() {
	items := []dp.Item{{Weight: 1, Value: 1}, {Weight: 3, Value: 4}, {Weight: 4, Value: 5}, {Weight: 5, Value: 7}}
	res, _ := dp.Knapsack(items, 7)
	fmt.Println(res.Value, res.Items)
	// Output: 9 [1 2]
}
