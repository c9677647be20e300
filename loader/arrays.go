// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/flarelab/flare/series"
)

// Element constrains the numeric element types a loader accepts. A single
// collection always holds one element kind; the type parameter enforces
// that at compile time, and values are widened to float64 on ingest.
type Element interface {
	constraints.Integer | constraints.Float
}

// FromArrays builds a series from in-memory vectors, one entry per array,
// keyed by position. All arrays must share one length; ErrShapeMismatch
// otherwise.
func FromArrays[T Element](arrays [][]T) (*series.Series, error) {
	if len(arrays) == 0 {
		return nil, ErrEmptyInput
	}

	want := len(arrays[0])
	values := make([][]float64, len(arrays))
	for i, a := range arrays {
		if len(a) != want {
			return nil, fmt.Errorf("got lengths %d and %d: %w", want, len(a), ErrShapeMismatch)
		}
		values[i] = widen(a)
	}

	return series.FromSlices(values, nil)
}

// FromMatrices builds a series from in-memory 2-D arrays, one entry per
// matrix, row-major flattened. All matrices must share one shape;
// ErrShapeMismatch otherwise (ragged rows included).
func FromMatrices[T Element](matrices [][][]T) (*series.Series, error) {
	if len(matrices) == 0 {
		return nil, ErrEmptyInput
	}

	rows, cols := len(matrices[0]), 0
	if rows > 0 {
		cols = len(matrices[0][0])
	}
	values := make([][]float64, len(matrices))
	for i, m := range matrices {
		if len(m) != rows {
			return nil, fmt.Errorf("got %d and %d rows: %w", rows, len(m), ErrShapeMismatch)
		}
		flat := make([]float64, 0, rows*cols)
		for _, row := range m {
			if len(row) != cols {
				return nil, fmt.Errorf("got %d and %d columns: %w", cols, len(row), ErrShapeMismatch)
			}
			flat = append(flat, widen(row)...)
		}
		values[i] = flat
	}

	return series.FromSlices(values, nil)
}

// widen converts a numeric slice to float64.
func widen[T Element](in []T) []float64 {
	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = float64(x)
	}

	return out
}
