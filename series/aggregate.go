// SPDX-License-Identifier: MIT
// Package series: label-based grouping and aggregation along the index.

package series

import "github.com/flarelab/flare/distmap"

// AggregateByIndex partitions index positions into groups sharing the same
// label tuple (restricted to levels, when given), in first-occurrence
// order, and reduces each group's positions with fn — per entry,
// independently. The resulting index holds one tuple per distinct group.
func (s *Series) AggregateByIndex(fn Reduction, levels ...int) (*Series, error) {
	if err := s.index.checkLevels(levels); err != nil {
		return nil, err
	}

	groups, rows := s.index.groups(levels)

	width := s.index.Width()
	if len(levels) > 0 {
		width = len(levels)
	}
	labels := make([]Label, 0, len(rows)*width)
	for _, row := range rows {
		labels = append(labels, row...)
	}
	ix := &Index{width: width, labels: labels}

	data := distmap.MapValues(s.data, func(v []float64) []float64 {
		out := make([]float64, len(groups))
		scratch := make([]float64, 0, len(v))
		for g, positions := range groups {
			scratch = scratch[:0]
			for _, p := range positions {
				scratch = append(scratch, v[p])
			}
			out[g] = fn(scratch)
		}

		return out
	})

	return derive(data, ix), nil
}

// StatByIndex is AggregateByIndex specialized to a named statistic.
func (s *Series) StatByIndex(st Stat, levels ...int) (*Series, error) {
	fn, err := st.reduction()
	if err != nil {
		return nil, err
	}

	return s.AggregateByIndex(fn, levels...)
}

// SumByIndex sums each index group.
func (s *Series) SumByIndex(levels ...int) (*Series, error) {
	return s.StatByIndex(StatSum, levels...)
}

// MeanByIndex averages each index group.
func (s *Series) MeanByIndex(levels ...int) (*Series, error) {
	return s.StatByIndex(StatMean, levels...)
}

// MinByIndex takes the minimum of each index group.
func (s *Series) MinByIndex(levels ...int) (*Series, error) {
	return s.StatByIndex(StatMin, levels...)
}

// MaxByIndex takes the maximum of each index group.
func (s *Series) MaxByIndex(levels ...int) (*Series, error) {
	return s.StatByIndex(StatMax, levels...)
}

// CountByIndex counts the positions of each index group.
func (s *Series) CountByIndex(levels ...int) (*Series, error) {
	return s.StatByIndex(StatCount, levels...)
}

// MedianByIndex takes the median of each index group.
func (s *Series) MedianByIndex(levels ...int) (*Series, error) {
	return s.StatByIndex(StatMedian, levels...)
}

// groups buckets index positions by their tuple at levels (all levels when
// empty), in first-occurrence order. It returns the position lists and the
// representative tuple of each group.
func (ix *Index) groups(levels []int) ([][]int, [][]Label) {
	seen := make(map[string]int)
	var positions [][]int
	var rows [][]Label

	for pos := 0; pos < ix.Len(); pos++ {
		key := ix.rowKey(pos, levels)
		g, ok := seen[key]
		if !ok {
			g = len(positions)
			seen[key] = g
			positions = append(positions, nil)

			var row []Label
			if len(levels) == 0 {
				row = ix.At(pos)
			} else {
				row = make([]Label, len(levels))
				for i, lv := range levels {
					row[i] = ix.labels[pos*ix.width+lv]
				}
			}
			rows = append(rows, row)
		}
		positions[g] = append(positions[g], pos)
	}

	return positions, rows
}
