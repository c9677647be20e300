// SPDX-License-Identifier: MIT
// Package series: statistical transforms over the collection.
//
// Every transform here is elementwise over entries and therefore
// embarrassingly parallel, except the AxisAcross variants, which need a
// global position-wise statistic first. Those run the mandatory two-pass
// scheme: one Aggregate pass produces the statistic, which is then closed
// over by a MapValues pass — per-entry workers never see other entries.

package series

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/flarelab/flare/distmap"
)

// Axis selects the direction of a transform.
type Axis uint8

const (
	// AxisRecords applies the transform within each entry's own vector.
	AxisRecords Axis = iota

	// AxisAcross applies the transform position-wise across all entries.
	AxisAcross
)

// Center subtracts the mean: each entry's own mean (AxisRecords) or the
// position-wise mean across the collection (AxisAcross).
func (s *Series) Center(axis Axis) (*Series, error) {
	switch axis {
	case AxisRecords:
		return derive(distmap.MapValues(s.data, func(v []float64) []float64 {
			m := stat.Mean(v, nil)
			out := make([]float64, len(v))
			for i, x := range v {
				out[i] = x - m
			}

			return out
		}), s.index), nil
	case AxisAcross:
		means, _ := s.positionMoments()

		return derive(distmap.MapValues(s.data, func(v []float64) []float64 {
			out := make([]float64, len(v))
			for i, x := range v {
				out[i] = x - means[i]
			}

			return out
		}), s.index), nil
	default:
		return nil, ErrBadAxis
	}
}

// Standardize divides by the standard deviation (population, ddof=0):
// each entry's own (AxisRecords) or the position-wise one (AxisAcross).
func (s *Series) Standardize(axis Axis) (*Series, error) {
	switch axis {
	case AxisRecords:
		return derive(distmap.MapValues(s.data, func(v []float64) []float64 {
			sd := popStd(v)
			out := make([]float64, len(v))
			for i, x := range v {
				out[i] = x / sd
			}

			return out
		}), s.index), nil
	case AxisAcross:
		_, stds := s.positionMoments()

		return derive(distmap.MapValues(s.data, func(v []float64) []float64 {
			out := make([]float64, len(v))
			for i, x := range v {
				out[i] = x / stds[i]
			}

			return out
		}), s.index), nil
	default:
		return nil, ErrBadAxis
	}
}

// ZScore centers and standardizes in one step.
func (s *Series) ZScore(axis Axis) (*Series, error) {
	switch axis {
	case AxisRecords:
		return derive(distmap.MapValues(s.data, func(v []float64) []float64 {
			m := stat.Mean(v, nil)
			sd := popStd(v)
			out := make([]float64, len(v))
			for i, x := range v {
				out[i] = (x - m) / sd
			}

			return out
		}), s.index), nil
	case AxisAcross:
		means, stds := s.positionMoments()

		return derive(distmap.MapValues(s.data, func(v []float64) []float64 {
			out := make([]float64, len(v))
			for i, x := range v {
				out[i] = (x - means[i]) / stds[i]
			}

			return out
		}), s.index), nil
	default:
		return nil, ErrBadAxis
	}
}

// posMoments accumulates position-wise first and second moments.
type posMoments struct {
	n          float64
	sum, sumsq []float64
}

// positionMoments computes position-wise means and population standard
// deviations across all entries in a single aggregation pass.
func (s *Series) positionMoments() (means, stds []float64) {
	agg := distmap.Aggregate(s.data,
		func() posMoments { return posMoments{} },
		func(acc posMoments, p distmap.Pair[Key, []float64]) posMoments {
			if acc.sum == nil {
				acc.sum = make([]float64, len(p.Value))
				acc.sumsq = make([]float64, len(p.Value))
			}
			for i, x := range p.Value {
				acc.sum[i] += x
				acc.sumsq[i] += x * x
			}
			acc.n++

			return acc
		},
		func(a, b posMoments) posMoments {
			if a.sum == nil {
				return b
			}
			if b.sum == nil {
				return a
			}
			for i := range a.sum {
				a.sum[i] += b.sum[i]
				a.sumsq[i] += b.sumsq[i]
			}
			a.n += b.n

			return a
		},
	)

	means = make([]float64, len(agg.sum))
	stds = make([]float64, len(agg.sum))
	for i := range agg.sum {
		means[i] = agg.sum[i] / agg.n
		variance := agg.sumsq[i]/agg.n - means[i]*means[i]
		if variance < 0 {
			variance = 0
		}
		stds[i] = math.Sqrt(variance)
	}

	return means, stds
}

// SeriesStat reduces every entry to the named statistic, yielding length-1
// vectors indexed by the statistic's name.
func (s *Series) SeriesStat(st Stat) (*Series, error) {
	fn, err := st.reduction()
	if err != nil {
		return nil, err
	}

	data := distmap.MapValues(s.data, func(v []float64) []float64 {
		return []float64{fn(v)}
	})

	return derive(data, NewIndex(Str(st.String()))), nil
}

// SeriesMean reduces every entry to its mean.
func (s *Series) SeriesMean() *Series { return s.mustStat(StatMean) }

// SeriesSum reduces every entry to its sum.
func (s *Series) SeriesSum() *Series { return s.mustStat(StatSum) }

// SeriesMedian reduces every entry to its median.
func (s *Series) SeriesMedian() *Series { return s.mustStat(StatMedian) }

// SeriesStd reduces every entry to its population standard deviation.
func (s *Series) SeriesStd() *Series { return s.mustStat(StatStd) }

// SeriesMin reduces every entry to its minimum.
func (s *Series) SeriesMin() *Series { return s.mustStat(StatMin) }

// SeriesMax reduces every entry to its maximum.
func (s *Series) SeriesMax() *Series { return s.mustStat(StatMax) }

func (s *Series) mustStat(st Stat) *Series {
	out, err := s.SeriesStat(st)
	if err != nil {
		// unreachable: every named kind has a kernel
		panic(err)
	}

	return out
}

// statsColumns fixes the column order of SeriesStats.
var statsColumns = []Stat{StatCount, StatMean, StatStd, StatMin, StatMax, StatSum, StatMedian}

// SeriesStats reduces every entry to the full record of named statistics,
// indexed by statistic name and queryable via Select:
//
//	stats := data.SeriesStats()
//	means, _ := stats.Select(series.Str("mean"))
func (s *Series) SeriesStats() *Series {
	labels := make([]Label, len(statsColumns))
	for i, st := range statsColumns {
		labels[i] = Str(st.String())
	}

	data := distmap.MapValues(s.data, func(v []float64) []float64 {
		out := make([]float64, len(statsColumns))
		for i, st := range statsColumns {
			out[i] = reductions[st](v)
		}

		return out
	})

	return derive(data, NewIndex(labels...))
}

// SeriesPercentile reduces every entry to its linearly interpolated
// quantiles, one per q in the given order, indexed by q. Each q must lie in
// [0, 100]; ErrBadQuantile otherwise.
func (s *Series) SeriesPercentile(qs ...float64) (*Series, error) {
	if len(qs) == 0 {
		return nil, ErrBadQuantile
	}
	for _, q := range qs {
		if q < 0 || q > 100 || math.IsNaN(q) {
			return nil, fmt.Errorf("q=%v: %w", q, ErrBadQuantile)
		}
	}
	qs = append([]float64(nil), qs...)

	data := distmap.MapValues(s.data, func(v []float64) []float64 {
		return quantiles(v, qs...)
	})

	return derive(data, NewIndex(Nums(qs...)...)), nil
}

// Correlate computes, per entry, the Pearson correlation between the
// entry's vector and each reference signal, in input order. Every signal
// must match the index length; ErrDimensionMismatch otherwise.
func (s *Series) Correlate(signals ...[]float64) (*Series, error) {
	if len(signals) == 0 {
		return nil, fmt.Errorf("no signals: %w", ErrDimensionMismatch)
	}
	for i, sig := range signals {
		if len(sig) != s.index.Len() {
			return nil, fmt.Errorf("signal %d has length %d, index has %d: %w",
				i, len(sig), s.index.Len(), ErrDimensionMismatch)
		}
	}

	data := distmap.MapValues(s.data, func(v []float64) []float64 {
		out := make([]float64, len(signals))
		for i, sig := range signals {
			out[i] = stat.Correlation(v, sig, nil)
		}

		return out
	})

	return derive(data, DefaultIndex(len(signals))), nil
}

// Subset deterministically extracts up to n representative value vectors:
// entries whose statistic over |v| strictly exceeds thresh, ranked by that
// statistic descending with ties broken by ascending key. StatNone ranks by
// the raw vectors compared lexicographically, qualifying entries with any
// raw element above thresh. This is a materialization point; the result is
// bounded by n.
func (s *Series) Subset(n int, st Stat, thresh float64) ([][]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("subset size %d: %w", n, ErrBadSelection)
	}

	var score Reduction
	if st != StatNone {
		fn, err := st.reduction()
		if err != nil {
			return nil, err
		}
		score = func(v []float64) float64 { return fn(absVec(v)) }
	}

	qualified := distmap.Filter(s.data, func(_ Key, v []float64) bool {
		if st == StatNone {
			for _, x := range v {
				if x > thresh {
					return true
				}
			}

			return false
		}

		return score(v) > thresh
	})

	pairs := distmap.Collect(qualified)
	sort.Slice(pairs, func(i, j int) bool {
		if st == StatNone {
			if c := compareVec(pairs[i].Value, pairs[j].Value); c != 0 {
				return c > 0
			}
		} else {
			si, sj := score(pairs[i].Value), score(pairs[j].Value)
			if si != sj {
				return si > sj
			}
		}

		return pairs[i].Key.less(pairs[j].Key)
	})

	if n > len(pairs) {
		n = len(pairs)
	}
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = append([]float64(nil), pairs[i].Value...)
	}

	return out, nil
}

// Squelch zeroes every entry whose maximum absolute value falls below
// thresh, leaving entries at or above it untouched. Idempotent.
func (s *Series) Squelch(thresh float64) *Series {
	return derive(distmap.MapValues(s.data, func(v []float64) []float64 {
		if maxAbs(v) < thresh {
			return make([]float64, len(v))
		}

		return append([]float64(nil), v...)
	}), s.index)
}

func absVec(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Abs(x)
	}

	return out
}

func maxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}

	return m
}

// compareVec orders vectors lexicographically: -1, 0, or +1.
func compareVec(a, b []float64) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}
