// Package flare is a toolkit for analyzing large collections of
// key-indexed numeric records — time series, flattened image planes, or
// any family of equal-length vectors that share one labeled value axis.
//
// 🚀 What is flare?
//
//	A small, deterministic analytics library that brings together:
//		• distmap/ — a partitioned key/value collection with a local
//		  concurrent engine and pluggable backends
//		• series/  — the indexed collection: selection, masking,
//		  aggregation, descriptive statistics and record algebra
//		• loader/  — adapters that build collections from in-memory
//		  arrays, binary stack files, TIF/PNG images and remote tile
//		  services
//
// ✨ Why choose flare?
//
//   - Deterministic – every materializing operation returns entries in a
//     stable key order, so results are reproducible run over run
//   - Lazy where it matters – transforms stay distributed; only Collect,
//     ToArray, First and friends materialize
//   - Composable views – Matrix and TimeSeries reinterpret the same data
//     without copying it
//
// Value-axis labels live in an Index: flat (one label per position) or
// multi-level (tuples of labels). Selection, squeezing and aggregation all
// operate through it, so a record's shape and its meaning stay attached.
//
// Quick sketch:
//
//	key (0) ─ [1.0  2.0  3.0  4.0]
//	key (1) ─ [5.0  6.0  7.0  8.0]
//	           │
//	index ──── [0    0    1    1 ]
//
//	MeanByIndex averages positions sharing a label: [1.5 3.5], [5.5 7.5].
//
// Dive into the per-package docs for the full operation catalog.
//
//	go get github.com/flarelab/flare
package flare
