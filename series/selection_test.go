package series_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flarelab/flare/series"
)

func one(v float64) series.LabelSet { return series.OneOf(series.Num(v)) }

// TestSelectByIndex_Flat selects one group out of a flat grouped index.
func TestSelectByIndex_Flat(t *testing.T) {
	s := fromVecs(t, flatGroupIndex(), arange(12))

	sub, mask, err := s.SelectByIndex([]series.LabelSet{one(1)}, series.DefaultSelectOptions())
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6, 7}, first(t, sub))
	assert.Equal(t, series.Nums(1, 1, 1, 1), mustLevel(t, sub.Index(), 0))
	assert.Equal(t, []bool{false, false, false, false, true, true, true, true, false, false, false, false}, mask)
}

// TestSelectByIndex_FlatSqueeze: a fully squeezed flat index resets to the
// positional default.
func TestSelectByIndex_FlatSqueeze(t *testing.T) {
	s := fromVecs(t, flatGroupIndex(), arange(12))

	sub, _, err := s.SelectByIndex([]series.LabelSet{one(1)}, series.SelectOptions{Squeeze: true})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6, 7}, first(t, sub))
	assert.True(t, sub.Index().Equal(series.DefaultIndex(4)))
}

// TestSelectByIndex_MultiLevel selects level-2 zeros out of the 3-level
// fixture, checking values, index structure, and the raw mask.
func TestSelectByIndex_MultiLevel(t *testing.T) {
	s := fromVecs(t, threeLevelIndex(t), arange(12))

	sub, mask, err := s.SelectByIndex([]series.LabelSet{one(0)}, series.SelectOptions{Levels: []int{2}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 6, 8}, first(t, sub))
	assert.Equal(t, numRows(
		[]float64{0, 0, 0}, []float64{0, 1, 0}, []float64{1, 0, 0}, []float64{1, 1, 0},
	), sub.Index().Rows())
	assert.Equal(t, []bool{true, false, true, false, false, false, true, false, true, false, false, false}, mask)
}

// TestSelectByIndex_MultiLevelSqueeze drops the now-constant matched level.
func TestSelectByIndex_MultiLevelSqueeze(t *testing.T) {
	s := fromVecs(t, threeLevelIndex(t), arange(12))

	sub, _, err := s.SelectByIndex([]series.LabelSet{one(0)},
		series.SelectOptions{Levels: []int{2}, Squeeze: true})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 6, 8}, first(t, sub))
	assert.Equal(t, numRows(
		[]float64{0, 0}, []float64{0, 1}, []float64{1, 0}, []float64{1, 1},
	), sub.Index().Rows())
}

// TestSelectByIndex_TwoLevels constrains two levels at once.
func TestSelectByIndex_TwoLevels(t *testing.T) {
	s := fromVecs(t, threeLevelIndex(t), arange(12))

	sub, _, err := s.SelectByIndex(
		[]series.LabelSet{one(1), one(0)},
		series.SelectOptions{Levels: []int{0, 1}})
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 7}, first(t, sub))
	assert.Equal(t, numRows([]float64{1, 0, 0}, []float64{1, 0, 1}), sub.Index().Rows())
}

// TestSelectByIndex_ValueSets: one level bound to a set of allowed values.
func TestSelectByIndex_ValueSets(t *testing.T) {
	s := fromVecs(t, threeLevelIndex(t), arange(12))

	sub, _, err := s.SelectByIndex(
		[]series.LabelSet{one(0), series.OneOf(series.Num(2), series.Num(3))},
		series.SelectOptions{Levels: []int{0, 2}})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, first(t, sub))
	assert.Equal(t, numRows([]float64{0, 1, 2}, []float64{0, 1, 3}), sub.Index().Rows())
}

// TestSelectByIndex_Filter inverts the selection without simplifying the
// level structure.
func TestSelectByIndex_Filter(t *testing.T) {
	s := fromVecs(t, threeLevelIndex(t), arange(12))

	sub, _, err := s.SelectByIndex([]series.LabelSet{one(1)},
		series.SelectOptions{Levels: []int{1}, Filter: true})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 6, 7}, first(t, sub))
	assert.Equal(t, numRows(
		[]float64{0, 0, 0}, []float64{0, 0, 1}, []float64{1, 0, 0}, []float64{1, 0, 1},
	), sub.Index().Rows())
}

// TestSelectByIndex_Errors covers the structure and argument guards.
func TestSelectByIndex_Errors(t *testing.T) {
	flat := fromVecs(t, flatGroupIndex(), arange(12))

	_, _, err := flat.SelectByIndex(nil, series.DefaultSelectOptions())
	assert.ErrorIs(t, err, series.ErrBadSelection, "empty selection must be rejected")

	_, _, err = flat.SelectByIndex([]series.LabelSet{one(1)},
		series.SelectOptions{Levels: []int{1}})
	assert.ErrorIs(t, err, series.ErrFlatIndex, "level > 0 on a flat index is a structure error")

	_, _, err = flat.SelectByIndex([]series.LabelSet{one(1)},
		series.SelectOptions{Filter: true, Squeeze: true})
	assert.ErrorIs(t, err, series.ErrBadSelection, "filter+squeeze must be rejected")

	multi := fromVecs(t, threeLevelIndex(t), arange(12))
	_, _, err = multi.SelectByIndex([]series.LabelSet{one(1)},
		series.SelectOptions{Levels: []int{3}})
	assert.ErrorIs(t, err, series.ErrBadLevel)

	_, _, err = multi.SelectByIndex([]series.LabelSet{one(1), one(2)},
		series.SelectOptions{Levels: []int{0}})
	assert.ErrorIs(t, err, series.ErrBadLevel, "level/value count mismatch")
}

// TestBetween windows a numeric flat index inclusively.
func TestBetween(t *testing.T) {
	s := fromVecs(t, nil, []float64{4, 5, 6, 7}, []float64{8, 9, 10, 11})

	win, err := s.ToTimeSeries().Between(0, 1)
	require.NoError(t, err)
	assert.Equal(t, series.Nums(0, 1), mustLevel(t, win.Index(), 0))
	assert.Equal(t, []float64{4, 5}, first(t, win.Series))

	str := fromVecs(t, series.NewIndex(series.Strs("a", "b")...), []float64{1, 2})
	_, err = str.ToTimeSeries().Between(0, 1)
	assert.ErrorIs(t, err, series.ErrLabelKind, "string labels have no range semantics")
}
