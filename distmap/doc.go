// Package distmap provides the partitioned key/value collection primitive
// that the rest of flare is built on: an ordered set of (key, value) pairs
// split into contiguous partitions, transformed through generic
// map/filter/group/reduce operations.
//
// The contract is deliberately small. A backend only has to expose its
// partitions (Map interface); every transformation is a top-level generic
// function written against that interface, so any batch-parallel execution
// engine can be substituted without touching callers.
//
// Determinism guarantees, relied upon throughout flare:
//
//   - FromSeq splits its input into contiguous chunks, so Collect returns
//     pairs in the original sequence order.
//   - Every transform preserves partition order and in-partition order.
//   - GroupBy and ReduceByKey order result keys by first occurrence.
//   - First returns the first pair of the first non-empty partition.
//
// Transforms run one goroutine per partition; the per-pair functions they
// take are pure and infallible by contract, matching the execution model of
// a batch engine where failures surface at materialization points.
//
// Materialization points — Collect, Keys, Values, First, Aggregate — are the
// only operations that pull data out of the collection into the calling
// process. Everything else yields a new Map.
package distmap
