package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/katalvlaran/lvldsa/problems"
	"github.com/katalvlaran/lvldsa/search"
)

func runSearch(_ context.Context, w io.Writer, e *env) error {
	printSection(w, "LOCATE CARD")
	for _, c := range e.fx.Search {
		got := problems.LocateCard(c.Input, c.Target)
		want := search.Linear(c.Input, c.Target)
		printCheck(w, got == want, "%s: index %s", c.Name, num(got))
	}

	printSection(w, "RANDOM SORTED ARRAY")
	n := e.cfg.Search.ArraySize
	if n == 0 {
		printInfo(w, "array_size is 0, nothing to search")
		return nil
	}
	arr := e.randomInts(n, e.cfg.Search.MaxValue)
	slices.Sort(arr)
	target := arr[e.rng.Intn(n)]
	fmt.Fprintf(w, "Array size: %s, target: %s\n", num(n), num(target))

	start := time.Now()
	bi := search.BinaryFirst(arr, target)
	binaryTime := time.Since(start)

	start = time.Now()
	li := search.Linear(arr, target)
	linearTime := time.Since(start)

	if bi == search.NotFound {
		fmt.Fprintln(w, "Element not found")
	} else {
		fmt.Fprintf(w, "Element found at index: %s\n", num(bi))
	}
	printDetail(w, "binary search: %s", binaryTime)
	printDetail(w, "linear search: %s", linearTime)
	printCheck(w, bi == li, "binary and linear agree on the first occurrence")
	printDetail(w, "occurrences of %d: %d", target, len(search.BinaryAll(arr, target)))

	return nil
}
