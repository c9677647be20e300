// SPDX-License-Identifier: MIT

package series

import "github.com/flarelab/flare/distmap"

// Matrix reinterprets a Series as a dense matrix: one row per entry, one
// column per index position. It wraps the same collection without copying.
type Matrix struct {
	*Series
}

// ToMatrix returns the matrix view of the collection.
func (s *Series) ToMatrix() *Matrix { return &Matrix{Series: s} }

// NRows reports the number of entries.
func (m *Matrix) NRows() int { return m.Len() }

// NCols reports the index length.
func (m *Matrix) NCols() int { return m.index.Len() }

// ApplyValues maps fn over every element, preserving shape and index.
func (m *Matrix) ApplyValues(fn func(float64) float64) *Matrix {
	data := distmap.MapValues(m.data, func(v []float64) []float64 {
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = fn(x)
		}

		return out
	})

	return derive(data, m.index).ToMatrix()
}
