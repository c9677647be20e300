// Package series implements distributed, key-indexed array analytics: a
// collection of fixed-length float64 vectors keyed by record, sharing one
// Index that labels every vector position, with selection, grouping,
// aggregation, and statistical transforms that operate consistently along
// that index across every entry — without ever materializing the full
// dataset in one process.
//
// # Data model
//
// A Series pairs a distmap collection (Key → []float64) with a shared
// Index. The index is an ordered sequence of fixed-width label tuples; a
// flat index has width 1, and a multi-level index addresses components by
// level position. Every entry's vector length equals the index length —
// the package-wide invariant, established at construction and preserved by
// every operation.
//
// Operations are functional: each returns a fresh Series backed by fresh
// storage. The one exception is SetIndex, which relabels positions in
// place after validating the new length.
//
// # Operation families
//
//   - Index algebra: Select, SelectByIndex (with squeeze/filter/mask
//     modes), AggregateByIndex, StatByIndex and its per-statistic wrappers,
//     GroupByPanel, MeanByPanel.
//   - Series algebra: Center, Standardize, ZScore (per-entry or
//     position-wise across entries), SeriesStat/SeriesStats/
//     SeriesPercentile, Correlate, Subset, Squelch.
//   - Views: ToMatrix (row/column semantics, elementwise maps, dense
//     materialization) and ToTimeSeries (temporal windowing via Between).
//
// Cross-entry transforms (the AxisAcross variants) follow the mandatory
// aggregate-then-apply scheme: a single aggregation pass computes the
// global statistic, which is then broadcast into an elementwise second
// pass. Everything else is per-entry and runs without coordination.
//
// Standard deviations throughout are population deviations (divide by n);
// quantiles interpolate linearly between order statistics.
//
// Materialization points — ToArray, Subset, First, Keys, Values — are the
// only operations that pull data into the calling process, and are meant
// for collections already filtered or aggregated down to modest size.
package series
