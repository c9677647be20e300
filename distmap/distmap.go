// SPDX-License-Identifier: MIT
// Package distmap: collection contract and the local partitioned engine.

package distmap

// Pair is one keyed record of a collection.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// KV is a convenience constructor for Pair.
func KV[K comparable, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

// Map is a partitioned, immutable collection of keyed records.
//
// Partition returns a read-only view; callers must not mutate the returned
// slice. Implementations must keep partition contents and order stable for
// the lifetime of the value.
type Map[K comparable, V any] interface {
	// NumPartitions reports how many partitions the collection holds.
	NumPartitions() int

	// Partition returns the pairs of partition i, 0 <= i < NumPartitions.
	Partition(i int) []Pair[K, V]

	// Len reports the total number of pairs across all partitions.
	Len() int
}

// local is the in-process engine: partitions are plain slices, transforms
// run one goroutine per partition (see ops.go).
type local[K comparable, V any] struct {
	parts [][]Pair[K, V]
	n     int
}

func (l *local[K, V]) NumPartitions() int           { return len(l.parts) }
func (l *local[K, V]) Partition(i int) []Pair[K, V] { return l.parts[i] }
func (l *local[K, V]) Len() int                     { return l.n }

// newLocal wraps ready-made partitions without copying.
func newLocal[K comparable, V any](parts [][]Pair[K, V]) *local[K, V] {
	n := 0
	for _, p := range parts {
		n += len(p)
	}

	return &local[K, V]{parts: parts, n: n}
}

// FromSeq builds a collection from pairs, split into numPartitions
// contiguous chunks. Order is preserved: Collect(FromSeq(p, n)) == p.
// Empty trailing partitions are created when numPartitions exceeds
// len(pairs), keeping the requested partition count.
func FromSeq[K comparable, V any](pairs []Pair[K, V], numPartitions int) (Map[K, V], error) {
	if numPartitions < 1 {
		return nil, ErrBadPartitions
	}

	parts := make([][]Pair[K, V], numPartitions)
	chunk := (len(pairs) + numPartitions - 1) / numPartitions
	if chunk == 0 {
		chunk = 1
	}
	for i := range parts {
		lo := i * chunk
		hi := lo + chunk
		if lo > len(pairs) {
			lo = len(pairs)
		}
		if hi > len(pairs) {
			hi = len(pairs)
		}
		// copy so the collection never aliases caller storage
		parts[i] = append([]Pair[K, V](nil), pairs[lo:hi]...)
	}

	return newLocal(parts), nil
}

// FromValues builds a collection from bare values, keyed by position.
func FromValues[V any](values []V, numPartitions int) (Map[int, V], error) {
	pairs := make([]Pair[int, V], len(values))
	for i, v := range values {
		pairs[i] = KV(i, v)
	}

	return FromSeq(pairs, numPartitions)
}

// Repartition redistributes the pairs of m into numPartitions contiguous
// chunks, preserving encounter order.
func Repartition[K comparable, V any](m Map[K, V], numPartitions int) (Map[K, V], error) {
	return FromSeq(Collect(m), numPartitions)
}
