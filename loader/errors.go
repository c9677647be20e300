// SPDX-License-Identifier: MIT

package loader

import "errors"

var (
	// ErrEmptyInput indicates no arrays were given to an in-memory loader.
	ErrEmptyInput = errors.New("loader: no input arrays")

	// ErrShapeMismatch indicates input arrays of differing shapes.
	ErrShapeMismatch = errors.New("loader: arrays must all share one shape")

	// ErrBadDims indicates missing or non-positive stack dimensions.
	ErrBadDims = errors.New("loader: dimensions must be positive")

	// ErrNoFiles indicates no files matched the path and extension filter.
	ErrNoFiles = errors.New("loader: no matching files")

	// ErrBadStackFile indicates a binary stack file whose size disagrees
	// with the declared dimensions and element type.
	ErrBadStackFile = errors.New("loader: stack file size mismatch")

	// ErrBadResolution indicates a resolution the tile server does not
	// report metadata for.
	ErrBadResolution = errors.New("loader: resolution not in server metadata")

	// ErrBoundsOutOfRange indicates requested time or spatial bounds outside
	// the extent the tile server reports. Detected before any cutout request
	// is issued.
	ErrBoundsOutOfRange = errors.New("loader: bounds outside dataset extent")

	// ErrTileFetch indicates a transport or codec failure while talking to
	// the tile server; the message carries the failing URL.
	ErrTileFetch = errors.New("loader: tile fetch failed")
)
