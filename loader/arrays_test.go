package loader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flarelab/flare/loader"
	"github.com/flarelab/flare/series"
)

// TestFromArrays builds a collection from uniform in-memory vectors.
func TestFromArrays(t *testing.T) {
	s, err := loader.FromArrays([][]int16{{4, 5, 6, 7}, {8, 9, 10, 11}})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Index().Equal(series.DefaultIndex(4)))
	assert.Equal(t, [][]float64{{4, 5, 6, 7}, {8, 9, 10, 11}}, s.Values())
}

// TestFromArrays_ShapeMismatch rejects ragged input.
func TestFromArrays_ShapeMismatch(t *testing.T) {
	_, err := loader.FromArrays([][]float64{{1, 2, 3}, {1, 2}})
	assert.ErrorIs(t, err, loader.ErrShapeMismatch)

	_, err = loader.FromArrays[float64](nil)
	assert.ErrorIs(t, err, loader.ErrEmptyInput)
}

// TestFromMatrices flattens 2-D arrays row-major and validates both axes.
func TestFromMatrices(t *testing.T) {
	s, err := loader.FromMatrices([][][]uint8{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}}, s.Values())

	_, err = loader.FromMatrices([][][]uint8{
		{{1, 2}, {3, 4}},
		{{5, 6}},
	})
	assert.ErrorIs(t, err, loader.ErrShapeMismatch, "row count mismatch")

	_, err = loader.FromMatrices([][][]uint8{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7}},
	})
	assert.ErrorIs(t, err, loader.ErrShapeMismatch, "column count mismatch")
}
