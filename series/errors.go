// SPDX-License-Identifier: MIT
// Package series: sentinel error set.
// All operations return these sentinels (optionally wrapped with context via
// fmt.Errorf("...: %w", Err)) and tests match them with errors.Is. No
// user-triggered condition panics.

package series

import "errors"

var (
	// ErrDimensionMismatch indicates a value length, signal length, or new
	// index length that disagrees with the collection's index length.
	ErrDimensionMismatch = errors.New("series: dimension mismatch")

	// ErrBadLevel indicates a level position outside the index width, or a
	// level/value count disagreement in a selection.
	ErrBadLevel = errors.New("series: level out of range")

	// ErrFlatIndex indicates multi-level addressing was requested on a
	// single-level index.
	ErrFlatIndex = errors.New("series: index is not multi-level")

	// ErrBadSelection indicates an invalid selection request, such as
	// combining Filter with Squeeze.
	ErrBadSelection = errors.New("series: invalid selection")

	// ErrRaggedIndex indicates index rows of differing widths.
	ErrRaggedIndex = errors.New("series: index rows must share one width")

	// ErrBadPanelLength indicates a panel length that does not evenly divide
	// the index length.
	ErrBadPanelLength = errors.New("series: panel length must divide index length")

	// ErrUnknownStat indicates an unrecognized statistic name or kind.
	ErrUnknownStat = errors.New("series: unknown statistic")

	// ErrBadAxis indicates an axis other than AxisRecords or AxisAcross.
	ErrBadAxis = errors.New("series: invalid axis")

	// ErrBadQuantile indicates a quantile outside [0, 100], or none given.
	ErrBadQuantile = errors.New("series: quantile must be in [0, 100]")

	// ErrLabelKind indicates a label of the wrong kind for the operation,
	// e.g. a range selection over string labels.
	ErrLabelKind = errors.New("series: label kind not supported here")

	// ErrEmptySeries indicates an operation that needs at least one entry
	// was applied to an empty collection.
	ErrEmptySeries = errors.New("series: collection is empty")
)
