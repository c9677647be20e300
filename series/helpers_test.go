package series_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flarelab/flare/series"
)

// fromVecs builds a series from vectors, failing the test on error.
func fromVecs(t *testing.T, ix *series.Index, vecs ...[]float64) *series.Series {
	t.Helper()
	s, err := series.FromSlices(vecs, ix)
	require.NoError(t, err, "fixture construction must succeed")

	return s
}

// arange returns [0, 1, ..., n-1].
func arange(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

// first returns the first entry's vector, failing the test on error.
func first(t *testing.T, s *series.Series) []float64 {
	t.Helper()
	v, err := s.First()
	require.NoError(t, err)

	return v
}

// numRows converts rows of numbers into label tuples.
func numRows(rows ...[]float64) [][]series.Label {
	out := make([][]series.Label, len(rows))
	for i, r := range rows {
		out[i] = series.Nums(r...)
	}

	return out
}

// threeLevelIndex is the 3-level fixture index over 12 positions used by
// the selection and aggregation tests.
func threeLevelIndex(t *testing.T) *series.Index {
	t.Helper()
	ix, err := series.NewMultiIndex(numRows(
		[]float64{0, 0, 0}, []float64{0, 0, 1}, []float64{0, 1, 0}, []float64{0, 1, 1},
		[]float64{0, 1, 2}, []float64{0, 1, 3}, []float64{1, 0, 0}, []float64{1, 0, 1},
		[]float64{1, 1, 0}, []float64{1, 1, 1}, []float64{1, 1, 2}, []float64{1, 1, 3},
	)...)
	require.NoError(t, err)

	return ix
}

// flatGroupIndex is the flat fixture index [0,0,0,0,1,1,1,1,2,2,2,2].
func flatGroupIndex() *series.Index {
	return series.NewIndex(series.Nums(0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2)...)
}
