package distmap_test

import (
	"fmt"

	"github.com/flarelab/flare/distmap"
)

// ExampleMapValues doubles every value of a two-partition collection and
// materializes the result in its original order.
func ExampleMapValues() {
	pairs := []distmap.Pair[int, float64]{
		distmap.KV(0, 1.5), distmap.KV(1, 2.5), distmap.KV(2, 3.5),
	}
	m, _ := distmap.FromSeq(pairs, 2)

	doubled := distmap.MapValues(m, func(v float64) float64 { return 2 * v })
	fmt.Println(distmap.Values(doubled))
	// Output: [3 5 7]
}

// ExampleReduceByKey sums values per key, keeping first-occurrence order.
func ExampleReduceByKey() {
	pairs := []distmap.Pair[string, int]{
		distmap.KV("x", 1), distmap.KV("y", 10), distmap.KV("x", 2),
	}
	m, _ := distmap.FromSeq(pairs, 1)

	sums := distmap.ReduceByKey(m, func(a, b int) int { return a + b })
	for _, p := range distmap.Collect(sums) {
		fmt.Println(p.Key, p.Value)
	}
	// Output:
	// x 3
	// y 10
}
