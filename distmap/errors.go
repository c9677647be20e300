// SPDX-License-Identifier: MIT

package distmap

import "errors"

var (
	// ErrBadPartitions indicates a requested partition count below one.
	ErrBadPartitions = errors.New("distmap: partition count must be >= 1")

	// ErrEmptyMap indicates First was called on a collection with no pairs.
	ErrEmptyMap = errors.New("distmap: collection is empty")
)
