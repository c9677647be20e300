// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"sort"

	"github.com/flarelab/flare/distmap"
)

// NoPanel marks a Key that carries no panel component.
const NoPanel = -1

// Key identifies one entry of a Series: a record ID, plus a panel ordinal
// once the entry has been split by GroupByPanel. Construct keys with NewKey;
// the zero Key is not valid.
type Key struct {
	ID    uint64
	Panel int
}

// NewKey returns the key of record id with no panel component.
func NewKey(id uint64) Key { return Key{ID: id, Panel: NoPanel} }

// String renders "(id)" or "(id,panel)".
func (k Key) String() string {
	if k.Panel == NoPanel {
		return fmt.Sprintf("(%d)", k.ID)
	}

	return fmt.Sprintf("(%d,%d)", k.ID, k.Panel)
}

// less orders keys by record ID, then panel.
func (k Key) less(other Key) bool {
	if k.ID != other.ID {
		return k.ID < other.ID
	}

	return k.Panel < other.Panel
}

// Series is a distributed collection of fixed-length float64 vectors, one
// per key, sharing a single Index that labels every vector position.
//
// Invariant: len(value) == Index().Len() for every entry, established at
// construction and preserved by every operation. Series values are
// immutable snapshots; SetIndex is the only permitted mutation.
type Series struct {
	data  distmap.Map[Key, []float64]
	index *Index
}

// New wraps an existing collection with its index, verifying that every
// value length matches the index length (ErrDimensionMismatch otherwise).
func New(data distmap.Map[Key, []float64], ix *Index) (*Series, error) {
	if ix == nil || ix.Len() == 0 {
		return nil, ErrDimensionMismatch
	}
	for i := 0; i < data.NumPartitions(); i++ {
		for _, p := range data.Partition(i) {
			if len(p.Value) != ix.Len() {
				return nil, fmt.Errorf("entry %s has length %d, index has %d: %w",
					p.Key, len(p.Value), ix.Len(), ErrDimensionMismatch)
			}
		}
	}

	return &Series{data: data, index: ix}, nil
}

// FromSlices builds a Series from in-memory vectors, keyed by position,
// with one partition per vector. A nil index defaults to the positional
// index of the first vector's length.
func FromSlices(values [][]float64, ix *Index) (*Series, error) {
	if len(values) == 0 {
		return nil, ErrEmptySeries
	}
	if ix == nil {
		ix = DefaultIndex(len(values[0]))
	}

	pairs := make([]distmap.Pair[Key, []float64], len(values))
	for i, v := range values {
		pairs[i] = distmap.KV(NewKey(uint64(i)), append([]float64(nil), v...))
	}
	data, err := distmap.FromSeq(pairs, len(values))
	if err != nil {
		return nil, err
	}

	return New(data, ix)
}

// derive wraps transformed data with its index, skipping validation: every
// internal transform is length-preserving by construction.
func derive(data distmap.Map[Key, []float64], ix *Index) *Series {
	return &Series{data: data, index: ix}
}

// Data exposes the underlying distributed collection.
func (s *Series) Data() distmap.Map[Key, []float64] { return s.data }

// Index returns the shared index.
func (s *Series) Index() *Index { return s.index }

// SetIndex replaces the shared index in place. The new index must be
// non-nil, non-empty, and of the existing length; ErrDimensionMismatch
// otherwise. This is the only mutation a Series permits.
func (s *Series) SetIndex(ix *Index) error {
	if ix == nil || ix.Len() == 0 || ix.Len() != s.index.Len() {
		return ErrDimensionMismatch
	}
	s.index = ix

	return nil
}

// Len reports the number of entries in the collection.
func (s *Series) Len() int { return s.data.Len() }

// Keys materializes every entry key in collection order.
func (s *Series) Keys() []Key { return distmap.Keys(s.data) }

// Values materializes every value vector in collection order.
func (s *Series) Values() [][]float64 { return distmap.Values(s.data) }

// First returns the value vector of the first entry, or ErrEmptySeries.
func (s *Series) First() ([]float64, error) {
	p, err := distmap.First(s.data)
	if err != nil {
		return nil, ErrEmptySeries
	}

	return append([]float64(nil), p.Value...), nil
}

// ToArray collects every entry into a 2-D array, rows ordered by key. Like
// every materialization point it assumes the collection has been filtered
// or aggregated down to a size that fits in one process.
func (s *Series) ToArray() [][]float64 {
	pairs := distmap.Collect(s.data)
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key.less(pairs[j].Key) })

	out := make([][]float64, len(pairs))
	for i, p := range pairs {
		out[i] = append([]float64(nil), p.Value...)
	}

	return out
}

// Select restricts every entry to the positions whose label is among
// labels, preserving the original index order. A single label yields
// length-1 vectors. Requires a flat index.
func (s *Series) Select(labels ...Label) (*Series, error) {
	if !s.index.IsFlat() {
		return nil, fmt.Errorf("select on multi-level index: %w", ErrBadSelection)
	}

	want := make(map[Label]bool, len(labels))
	for _, l := range labels {
		want[l] = true
	}
	keep := make([]bool, s.index.Len())
	for i := range keep {
		keep[i] = want[s.index.Label(i)]
	}

	return derive(maskValues(s.data, keep), s.index.sub(keep)), nil
}

// maskValues restricts every vector to the positions where keep is true.
func maskValues(data distmap.Map[Key, []float64], keep []bool) distmap.Map[Key, []float64] {
	return distmap.MapValues(data, func(v []float64) []float64 {
		out := make([]float64, 0, len(v))
		for i, x := range v {
			if keep[i] {
				out = append(out, x)
			}
		}

		return out
	})
}
