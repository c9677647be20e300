package series_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flarelab/flare/series"
)

// TestFromSlices_Invariant checks construction and the length invariant.
func TestFromSlices_Invariant(t *testing.T) {
	s := fromVecs(t, nil, []float64{1, 2, 3}, []float64{2, 2, 4}, []float64{4, 2, 1})
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Index().Equal(series.DefaultIndex(3)), "nil index defaults to positional")
	assert.Equal(t, []series.Key{series.NewKey(0), series.NewKey(1), series.NewKey(2)}, s.Keys())

	_, err := series.FromSlices([][]float64{{1, 2, 3}, {1, 2}}, nil)
	assert.ErrorIs(t, err, series.ErrDimensionMismatch, "ragged vectors must be rejected")

	_, err = series.FromSlices(nil, nil)
	assert.ErrorIs(t, err, series.ErrEmptySeries)
}

// TestSetIndex covers reassignment and its dimension guards.
func TestSetIndex(t *testing.T) {
	s := fromVecs(t, nil, []float64{1, 2, 3}, []float64{2, 2, 4}, []float64{4, 2, 1})

	require.NoError(t, s.SetIndex(series.NewIndex(series.Nums(3, 2, 1)...)))
	assert.Equal(t, series.Nums(3, 2, 1), mustLevel(t, s.Index(), 0))

	err := s.SetIndex(series.NewIndex(series.Nums(1, 2)...))
	assert.ErrorIs(t, err, series.ErrDimensionMismatch, "wrong length must be rejected")

	err = s.SetIndex(nil)
	assert.ErrorIs(t, err, series.ErrDimensionMismatch, "nil index must be rejected")

	err = s.SetIndex(series.NewIndex())
	assert.ErrorIs(t, err, series.ErrDimensionMismatch, "empty index must be rejected")

	assert.Equal(t, series.Nums(3, 2, 1), mustLevel(t, s.Index(), 0), "failed SetIndex must not change the index")
}

// TestSelect verifies single- and multi-label selection over string labels.
func TestSelect(t *testing.T) {
	ix := series.NewIndex(series.Strs("label1", "label2", "label3", "label4")...)
	s := fromVecs(t, ix, []float64{4, 5, 6, 7}, []float64{8, 9, 10, 11})

	one, err := s.Select(series.Str("label1"))
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, first(t, one), "single label yields length-1 vectors")

	two, err := s.Select(series.Str("label1"), series.Str("label2"))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, first(t, two))
	assert.Equal(t, series.Strs("label1", "label2"), mustLevel(t, two.Index(), 0))
}

// TestSelect_AllLabelsIsIdentity: selecting every label reproduces the
// collection.
func TestSelect_AllLabelsIsIdentity(t *testing.T) {
	ix := series.NewIndex(series.Strs("a", "b", "c")...)
	s := fromVecs(t, ix, []float64{1, 2, 3}, []float64{4, 5, 6})

	all, err := s.Select(series.Strs("a", "b", "c")...)
	require.NoError(t, err)
	assert.Equal(t, s.Values(), all.Values())
	assert.True(t, s.Index().Equal(all.Index()))
}

// TestSelect_MultiLevelRejected: flat selection needs a flat index.
func TestSelect_MultiLevelRejected(t *testing.T) {
	ix, err := series.NewMultiIndex(numRows([]float64{0, 0}, []float64{1, 1})...)
	require.NoError(t, err)
	s := fromVecs(t, ix, []float64{1, 2})

	_, err = s.Select(series.Num(0))
	assert.ErrorIs(t, err, series.ErrBadSelection)
}

// TestToArray sorts rows by key.
func TestToArray(t *testing.T) {
	s := fromVecs(t, nil, []float64{1, 2}, []float64{3, 4})
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, s.ToArray())
}

// mustLevel extracts one index level, failing the test on error.
func mustLevel(t *testing.T, ix *series.Index, level int) []series.Label {
	t.Helper()
	ls, err := ix.Level(level)
	require.NoError(t, err)

	return ls
}
