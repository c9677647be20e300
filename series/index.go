// SPDX-License-Identifier: MIT

package series

import "strings"

// Index is the shared, ordered description of what each position in every
// entry's value vector means: one fixed-width tuple of labels per position.
// A flat index has width 1. Index values are immutable; every accessor
// returns copies.
//
// Labels are stored in one row-major buffer with stride width, so level
// addressing is plain positional indexing.
type Index struct {
	width  int
	labels []Label // row-major, len == Len()*width
}

// NewIndex builds a flat (width-1) index from labels, in order.
func NewIndex(labels ...Label) *Index {
	return &Index{width: 1, labels: append([]Label(nil), labels...)}
}

// NewMultiIndex builds a multi-level index from rows, one label tuple per
// position. Every row must share one width of at least one; otherwise
// ErrRaggedIndex is returned.
func NewMultiIndex(rows ...[]Label) (*Index, error) {
	if len(rows) == 0 {
		return &Index{width: 1}, nil
	}

	width := len(rows[0])
	if width < 1 {
		return nil, ErrRaggedIndex
	}

	labels := make([]Label, 0, len(rows)*width)
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrRaggedIndex
		}
		labels = append(labels, row...)
	}

	return &Index{width: width, labels: labels}, nil
}

// DefaultIndex builds the positional flat index 0, 1, ..., n-1.
func DefaultIndex(n int) *Index {
	labels := make([]Label, n)
	for i := range labels {
		labels[i] = Num(float64(i))
	}

	return &Index{width: 1, labels: labels}
}

// Len reports the number of positions the index describes.
func (ix *Index) Len() int {
	if ix.width == 0 {
		return 0
	}

	return len(ix.labels) / ix.width
}

// Width reports the number of levels per position (1 for a flat index).
func (ix *Index) Width() int { return ix.width }

// IsFlat reports whether the index has a single level.
func (ix *Index) IsFlat() bool { return ix.width == 1 }

// At returns a copy of the label tuple at position pos.
func (ix *Index) At(pos int) []Label {
	row := make([]Label, ix.width)
	copy(row, ix.labels[pos*ix.width:(pos+1)*ix.width])

	return row
}

// Label returns the single label at position pos of a flat index. For a
// multi-level index it returns the level-0 component.
func (ix *Index) Label(pos int) Label { return ix.labels[pos*ix.width] }

// Level returns a copy of one level across all positions. The level must be
// in [0, Width); ErrBadLevel otherwise.
func (ix *Index) Level(level int) ([]Label, error) {
	if level < 0 || level >= ix.width {
		return nil, ErrBadLevel
	}

	out := make([]Label, ix.Len())
	for i := range out {
		out[i] = ix.labels[i*ix.width+level]
	}

	return out, nil
}

// Rows returns a copy of every label tuple, in position order.
func (ix *Index) Rows() [][]Label {
	out := make([][]Label, ix.Len())
	for i := range out {
		out[i] = ix.At(i)
	}

	return out
}

// Equal reports whether two indexes have identical width and labels.
func (ix *Index) Equal(other *Index) bool {
	if other == nil || ix.width != other.width || len(ix.labels) != len(other.labels) {
		return false
	}
	for i, l := range ix.labels {
		if l != other.labels[i] {
			return false
		}
	}

	return true
}

// checkLevels validates level positions against the index width. Addressing
// any level above zero requires a multi-level index.
func (ix *Index) checkLevels(levels []int) error {
	for _, lv := range levels {
		if lv < 0 || lv >= ix.width {
			if ix.IsFlat() && lv > 0 {
				return ErrFlatIndex
			}

			return ErrBadLevel
		}
	}

	return nil
}

// sub returns the index restricted to positions where keep is true.
func (ix *Index) sub(keep []bool) *Index {
	labels := make([]Label, 0, len(ix.labels))
	for i := 0; i < ix.Len(); i++ {
		if keep[i] {
			labels = append(labels, ix.labels[i*ix.width:(i+1)*ix.width]...)
		}
	}

	return &Index{width: ix.width, labels: labels}
}

// drop removes the given levels from every tuple. Dropping every level
// yields the positional default index.
func (ix *Index) drop(levels map[int]bool) *Index {
	width := 0
	for lv := 0; lv < ix.width; lv++ {
		if !levels[lv] {
			width++
		}
	}
	if width == 0 {
		return DefaultIndex(ix.Len())
	}

	labels := make([]Label, 0, ix.Len()*width)
	for i := 0; i < ix.Len(); i++ {
		for lv := 0; lv < ix.width; lv++ {
			if !levels[lv] {
				labels = append(labels, ix.labels[i*ix.width+lv])
			}
		}
	}

	return &Index{width: width, labels: labels}
}

// rowKey renders the canonical grouping key of position pos restricted to
// levels (all levels when levels is empty). Kind prefixes keep numeric and
// string labels from ever colliding.
func (ix *Index) rowKey(pos int, levels []int) string {
	var sb strings.Builder
	write := func(l Label) {
		if l.isStr {
			sb.WriteString("s:")
		} else {
			sb.WriteString("n:")
		}
		sb.WriteString(l.String())
		sb.WriteByte(0x1f)
	}
	if len(levels) == 0 {
		for lv := 0; lv < ix.width; lv++ {
			write(ix.labels[pos*ix.width+lv])
		}
	} else {
		for _, lv := range levels {
			write(ix.labels[pos*ix.width+lv])
		}
	}

	return sb.String()
}
