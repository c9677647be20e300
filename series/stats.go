// SPDX-License-Identifier: MIT
// Package series: enumerated statistic kinds and their reduction kernels.
// String-keyed dispatch stays at the boundary (ParseStat); internal dispatch
// is exhaustive over the enum.

package series

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stat enumerates the named reductions understood across the package.
// StatNone is only meaningful in Subset, where it selects raw-value
// ordering instead of a summary statistic.
type Stat uint8

const (
	StatNone Stat = iota
	StatSum
	StatMean
	StatMin
	StatMax
	StatCount
	StatMedian
	StatStd
)

var statNames = map[Stat]string{
	StatNone:   "",
	StatSum:    "sum",
	StatMean:   "mean",
	StatMin:    "min",
	StatMax:    "max",
	StatCount:  "count",
	StatMedian: "median",
	StatStd:    "std",
}

// String returns the lower-case statistic name ("" for StatNone).
func (st Stat) String() string { return statNames[st] }

// ParseStat maps a statistic name to its kind. The empty string parses to
// StatNone; unknown names return ErrUnknownStat.
func ParseStat(name string) (Stat, error) {
	for st, n := range statNames {
		if n == name {
			return st, nil
		}
	}

	return StatNone, fmt.Errorf("%q: %w", name, ErrUnknownStat)
}

// Reduction collapses a vector into one number.
type Reduction func([]float64) float64

// reductions maps each statistic kind to its kernel. Standard deviation is
// the population deviation (divide by n), matching the rest of the package.
var reductions = map[Stat]Reduction{
	StatSum: floats.Sum,
	StatMean: func(v []float64) float64 {
		if len(v) == 0 {
			return math.NaN()
		}

		return stat.Mean(v, nil)
	},
	StatMin: func(v []float64) float64 {
		if len(v) == 0 {
			return math.NaN()
		}

		return floats.Min(v)
	},
	StatMax: func(v []float64) float64 {
		if len(v) == 0 {
			return math.NaN()
		}

		return floats.Max(v)
	},
	StatCount:  func(v []float64) float64 { return float64(len(v)) },
	StatMedian: func(v []float64) float64 { return quantiles(v, 50)[0] },
	StatStd:    popStd,
}

// reduction returns the kernel for st, or ErrUnknownStat for kinds without
// one (StatNone).
func (st Stat) reduction() (Reduction, error) {
	fn, ok := reductions[st]
	if !ok {
		return nil, fmt.Errorf("%q: %w", st, ErrUnknownStat)
	}

	return fn, nil
}

// popStd is the population standard deviation (ddof = 0).
func popStd(v []float64) float64 {
	if len(v) == 0 {
		return math.NaN()
	}

	return stat.PopStdDev(v, nil)
}

// quantiles computes linearly interpolated quantiles of v, one per q in
// [0, 100], in the given order. Linear interpolation makes quantile 25 of
// 1..5 exactly 2; neither of gonum's cumulant kinds produces that.
func quantiles(v []float64, qs ...float64) []float64 {
	sorted := append([]float64(nil), v...)
	sort.Float64s(sorted)

	out := make([]float64, len(qs))
	for i, q := range qs {
		out[i] = sortedQuantile(sorted, q)
	}

	return out
}

// sortedQuantile interpolates quantile q over an already sorted vector.
func sortedQuantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	h := float64(n-1) * q / 100
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}

	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}
