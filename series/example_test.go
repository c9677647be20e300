package series_test

import (
	"fmt"

	"github.com/flarelab/flare/series"
)

// ExampleSeries_MeanByIndex groups positions by their shared label and
// averages each group, per entry.
func ExampleSeries_MeanByIndex() {
	ix := series.NewIndex(series.Nums(0, 0, 1, 1)...)
	data, _ := series.FromSlices([][]float64{{1, 3, 10, 20}}, ix)

	means, _ := data.MeanByIndex()
	v, _ := means.First()
	fmt.Println(v)
	// Output: [2 15]
}

// ExampleSeries_ZScore standardizes each entry against its own mean and
// deviation.
func ExampleSeries_ZScore() {
	data, _ := series.FromSlices([][]float64{{1, 2, 3}}, nil)

	z, _ := data.ZScore(series.AxisRecords)
	v, _ := z.First()
	fmt.Printf("%.2f\n", v)
	// Output: [-1.22 0.00 1.22]
}

// ExampleMatrix_ApplyValues maps a function over every element of the
// dense view.
func ExampleMatrix_ApplyValues() {
	data, _ := series.FromSlices([][]float64{{4, 5}, {6, 7}}, nil)

	out := data.ToMatrix().ApplyValues(func(x float64) float64 { return x + 1 })
	fmt.Println(out.ToArray())
	// Output: [[5 6] [7 8]]
}
