// SPDX-License-Identifier: MIT
// Package series: label-based position selection over the shared index.

package series

import "fmt"

// LabelSet is the set of labels accepted for one level of a selection.
type LabelSet []Label

// OneOf builds a LabelSet from its arguments.
func OneOf(labels ...Label) LabelSet { return LabelSet(labels) }

// SelectOptions configures SelectByIndex.
//
//   - Levels  — index levels the value sets apply to, positionally matched
//     with the sets. Empty means levels 0, 1, ... len(vals)-1.
//   - Squeeze — drop each constrained level from the resulting index when it
//     has become constant; a fully squeezed flat index resets to the
//     positional default.
//   - Filter  — invert the selection: drop matching positions and keep the
//     rest, leaving the level structure untouched. Incompatible with
//     Squeeze.
type SelectOptions struct {
	Levels  []int
	Squeeze bool
	Filter  bool
}

// DefaultSelectOptions returns the zero configuration: match levels
// positionally, keep matching positions, no squeezing.
func DefaultSelectOptions() SelectOptions { return SelectOptions{} }

// MaskByIndex computes the boolean keep-mask of the selection: position p is
// set when, for every i, the label at level levels[i] is in vals[i]. Empty
// levels defaults to 0..len(vals)-1.
func (s *Series) MaskByIndex(vals []LabelSet, levels []int) ([]bool, error) {
	if len(vals) == 0 {
		return nil, fmt.Errorf("no label sets given: %w", ErrBadSelection)
	}
	if len(levels) == 0 {
		levels = make([]int, len(vals))
		for i := range levels {
			levels[i] = i
		}
	}
	if len(levels) != len(vals) {
		return nil, fmt.Errorf("%d levels for %d label sets: %w", len(levels), len(vals), ErrBadLevel)
	}
	if err := s.index.checkLevels(levels); err != nil {
		return nil, err
	}

	sets := make([]map[Label]bool, len(vals))
	for i, vs := range vals {
		sets[i] = make(map[Label]bool, len(vs))
		for _, l := range vs {
			sets[i][l] = true
		}
	}

	mask := make([]bool, s.index.Len())
	for pos := range mask {
		row := s.index.labels[pos*s.index.width : (pos+1)*s.index.width]
		match := true
		for i, lv := range levels {
			if !sets[i][row[lv]] {
				match = false

				break
			}
		}
		mask[pos] = match
	}

	return mask, nil
}

// SelectByIndex restricts every entry to the positions selected by vals and
// opts, returning the restricted collection together with the raw keep-mask
// over the original index (after Filter inversion, when requested).
func (s *Series) SelectByIndex(vals []LabelSet, opts SelectOptions) (*Series, []bool, error) {
	if opts.Filter && opts.Squeeze {
		return nil, nil, fmt.Errorf("filter and squeeze are mutually exclusive: %w", ErrBadSelection)
	}

	mask, err := s.MaskByIndex(vals, opts.Levels)
	if err != nil {
		return nil, nil, err
	}
	if opts.Filter {
		for i := range mask {
			mask[i] = !mask[i]
		}
	}

	ix := s.index.sub(mask)
	if opts.Squeeze {
		ix = squeezeLevels(ix, opts.Levels, len(vals))
	}

	return derive(maskValues(s.data, mask), ix), mask, nil
}

// squeezeLevels drops each constrained level that is constant across the
// selected positions.
func squeezeLevels(ix *Index, levels []int, nvals int) *Index {
	if len(levels) == 0 {
		levels = make([]int, nvals)
		for i := range levels {
			levels[i] = i
		}
	}

	drop := make(map[int]bool, len(levels))
	for _, lv := range levels {
		constant := true
		for pos := 1; pos < ix.Len(); pos++ {
			if ix.labels[pos*ix.width+lv] != ix.labels[lv] {
				constant = false

				break
			}
		}
		if constant {
			drop[lv] = true
		}
	}
	if len(drop) == 0 {
		return ix
	}

	return ix.drop(drop)
}
