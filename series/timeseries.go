// SPDX-License-Identifier: MIT

package series

import "fmt"

// TimeSeries reinterprets a Series with its index as time points. It adds
// no storage, only temporal operation semantics.
type TimeSeries struct {
	*Series
}

// ToTimeSeries returns the temporal view of the collection.
func (s *Series) ToTimeSeries() *TimeSeries { return &TimeSeries{Series: s} }

// Between restricts every entry to the positions whose label falls in
// [lo, hi] inclusive. The index must be flat and numeric: ErrBadSelection
// for a multi-level index, ErrLabelKind when a string label is encountered.
func (t *TimeSeries) Between(lo, hi float64) (*TimeSeries, error) {
	if !t.index.IsFlat() {
		return nil, fmt.Errorf("between on multi-level index: %w", ErrBadSelection)
	}

	keep := make([]bool, t.index.Len())
	for i := range keep {
		v, ok := t.index.Label(i).Float()
		if !ok {
			return nil, fmt.Errorf("position %d: %w", i, ErrLabelKind)
		}
		keep[i] = lo <= v && v <= hi
	}

	return derive(maskValues(t.data, keep), t.index.sub(keep)).ToTimeSeries(), nil
}
