// SPDX-License-Identifier: MIT
// Package distmap: generic transforms and materialization points over Map.
//
// Transforms are top-level functions rather than interface methods because
// several of them change the key or value type, which Go methods cannot
// express. Each transform processes partitions concurrently (one goroutine
// per partition) and writes results into a positionally indexed slice, so
// output partition order never depends on goroutine scheduling.

package distmap

import "sync"

// eachPartition runs fn(i, partition) for every partition of m, one
// goroutine per partition, and waits for all of them.
func eachPartition[K comparable, V any](m Map[K, V], fn func(i int, part []Pair[K, V])) {
	var wg sync.WaitGroup
	for i := 0; i < m.NumPartitions(); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fn(i, m.Partition(i))
		}(i)
	}
	wg.Wait()
}

// Transform applies fn to every pair, producing a collection that may have
// new key and value types. Partitioning and order are preserved.
func Transform[K1, K2 comparable, V1, V2 any](m Map[K1, V1], fn func(K1, V1) (K2, V2)) Map[K2, V2] {
	parts := make([][]Pair[K2, V2], m.NumPartitions())
	eachPartition(m, func(i int, part []Pair[K1, V1]) {
		out := make([]Pair[K2, V2], len(part))
		for j, p := range part {
			k, v := fn(p.Key, p.Value)
			out[j] = Pair[K2, V2]{Key: k, Value: v}
		}
		parts[i] = out
	})

	return newLocal(parts)
}

// FlatMap applies fn to every pair and concatenates the resulting pair
// slices in encounter order.
func FlatMap[K1, K2 comparable, V1, V2 any](m Map[K1, V1], fn func(K1, V1) []Pair[K2, V2]) Map[K2, V2] {
	parts := make([][]Pair[K2, V2], m.NumPartitions())
	eachPartition(m, func(i int, part []Pair[K1, V1]) {
		var out []Pair[K2, V2]
		for _, p := range part {
			out = append(out, fn(p.Key, p.Value)...)
		}
		parts[i] = out
	})

	return newLocal(parts)
}

// MapValues applies fn to every value, keeping keys and partitioning.
func MapValues[K comparable, V, W any](m Map[K, V], fn func(V) W) Map[K, W] {
	return Transform(m, func(k K, v V) (K, W) { return k, fn(v) })
}

// Filter keeps the pairs for which keep returns true, preserving order.
func Filter[K comparable, V any](m Map[K, V], keep func(K, V) bool) Map[K, V] {
	parts := make([][]Pair[K, V], m.NumPartitions())
	eachPartition(m, func(i int, part []Pair[K, V]) {
		var out []Pair[K, V]
		for _, p := range part {
			if keep(p.Key, p.Value) {
				out = append(out, p)
			}
		}
		parts[i] = out
	})

	return newLocal(parts)
}

// Collect materializes every pair in partition order.
func Collect[K comparable, V any](m Map[K, V]) []Pair[K, V] {
	out := make([]Pair[K, V], 0, m.Len())
	for i := 0; i < m.NumPartitions(); i++ {
		out = append(out, m.Partition(i)...)
	}

	return out
}

// Keys materializes every key in partition order.
func Keys[K comparable, V any](m Map[K, V]) []K {
	out := make([]K, 0, m.Len())
	for i := 0; i < m.NumPartitions(); i++ {
		for _, p := range m.Partition(i) {
			out = append(out, p.Key)
		}
	}

	return out
}

// Values materializes every value in partition order.
func Values[K comparable, V any](m Map[K, V]) []V {
	out := make([]V, 0, m.Len())
	for i := 0; i < m.NumPartitions(); i++ {
		for _, p := range m.Partition(i) {
			out = append(out, p.Value)
		}
	}

	return out
}

// First returns the first pair of the first non-empty partition, or
// ErrEmptyMap when the collection holds no pairs.
func First[K comparable, V any](m Map[K, V]) (Pair[K, V], error) {
	for i := 0; i < m.NumPartitions(); i++ {
		if part := m.Partition(i); len(part) > 0 {
			return part[0], nil
		}
	}

	var zero Pair[K, V]

	return zero, ErrEmptyMap
}

// GroupBy buckets values by the group key fn derives from each pair.
// Result keys are ordered by first occurrence; values within a group keep
// encounter order. The result lives in a single partition.
func GroupBy[K comparable, V any, G comparable](m Map[K, V], fn func(K, V) G) Map[G, []V] {
	groups := make(map[G][]V)
	var order []G
	for _, p := range Collect(m) {
		g := fn(p.Key, p.Value)
		if _, ok := groups[g]; !ok {
			order = append(order, g)
		}
		groups[g] = append(groups[g], p.Value)
	}

	out := make([]Pair[G, []V], len(order))
	for i, g := range order {
		out[i] = Pair[G, []V]{Key: g, Value: groups[g]}
	}

	return newLocal([][]Pair[G, []V]{out})
}

// ReduceByKey merges the values sharing a key with fn, left to right in
// encounter order. Result keys are ordered by first occurrence.
func ReduceByKey[K comparable, V any](m Map[K, V], fn func(V, V) V) Map[K, V] {
	acc := make(map[K]V)
	var order []K
	for _, p := range Collect(m) {
		if cur, ok := acc[p.Key]; ok {
			acc[p.Key] = fn(cur, p.Value)
		} else {
			order = append(order, p.Key)
			acc[p.Key] = p.Value
		}
	}

	out := make([]Pair[K, V], len(order))
	for i, k := range order {
		out[i] = Pair[K, V]{Key: k, Value: acc[k]}
	}

	return newLocal([][]Pair[K, V]{out})
}

// Aggregate folds every pair into a per-partition accumulator (seeded by
// zero) and merges the partition accumulators in partition order. This is
// the aggregation half of two-pass operations: callers compute a global
// statistic here, then broadcast it into a MapValues pass.
func Aggregate[K comparable, V, A any](m Map[K, V], zero func() A, fold func(A, Pair[K, V]) A, merge func(A, A) A) A {
	accs := make([]A, m.NumPartitions())
	eachPartition(m, func(i int, part []Pair[K, V]) {
		acc := zero()
		for _, p := range part {
			acc = fold(acc, p)
		}
		accs[i] = acc
	})

	out := zero()
	for _, a := range accs {
		out = merge(out, a)
	}

	return out
}
