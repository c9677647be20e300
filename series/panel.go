// SPDX-License-Identifier: MIT
// Package series: panel-based chunking and averaging.

package series

import (
	"fmt"

	"github.com/flarelab/flare/distmap"
)

// GroupByPanel splits every entry into contiguous chunks of the given
// length, emitting one entry per (record, panel ordinal) pair. The index
// resets to the positional index 0..length-1. The length must evenly
// divide the index length; ErrBadPanelLength otherwise.
func (s *Series) GroupByPanel(length int) (*Series, error) {
	if err := s.checkPanelLength(length); err != nil {
		return nil, err
	}

	npanels := s.index.Len() / length
	data := distmap.FlatMap(s.data, func(k Key, v []float64) []distmap.Pair[Key, []float64] {
		out := make([]distmap.Pair[Key, []float64], npanels)
		for p := 0; p < npanels; p++ {
			chunk := append([]float64(nil), v[p*length:(p+1)*length]...)
			out[p] = distmap.KV(Key{ID: k.ID, Panel: p}, chunk)
		}

		return out
	})

	return derive(data, DefaultIndex(length)), nil
}

// MeanByPanel splits every entry into the same chunks as GroupByPanel but
// averages corresponding positions across a record's panels, keeping one
// entry per original key.
func (s *Series) MeanByPanel(length int) (*Series, error) {
	if err := s.checkPanelLength(length); err != nil {
		return nil, err
	}

	npanels := s.index.Len() / length
	data := distmap.MapValues(s.data, func(v []float64) []float64 {
		out := make([]float64, length)
		for p := 0; p < npanels; p++ {
			for j := 0; j < length; j++ {
				out[j] += v[p*length+j]
			}
		}
		for j := range out {
			out[j] /= float64(npanels)
		}

		return out
	})

	return derive(data, DefaultIndex(length)), nil
}

func (s *Series) checkPanelLength(length int) error {
	if length < 1 || s.index.Len()%length != 0 {
		return fmt.Errorf("length %d over %d positions: %w", length, s.index.Len(), ErrBadPanelLength)
	}

	return nil
}
