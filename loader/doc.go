// Package loader constructs series collections from external sources:
// in-memory arrays, directories of flat binary stack files, multi-page TIFF
// and single-page PNG images, and a remote tile service.
//
// Every adapter validates its input up front (uniform shapes, dimensions,
// requested bounds against server metadata) and fails with a sentinel error
// before doing further I/O. One source record becomes one collection entry,
// keyed by its position in the sorted enumeration; multi-dimensional source
// data is flattened into the entry's vector, and the collection index is
// the positional default.
//
// File enumeration is deterministic: lexicographically sorted, optionally
// recursive, with an optional [start, stop) slice over the sorted names.
// Decoding runs concurrently across files; the first failure cancels the
// rest and propagates with the failing path or URL attached. Nothing is
// retried.
//
// The remote tile adapter is isolated behind the TileFetcher capability so
// transports can be swapped or faked; the default fetcher uses net/http.
package loader
