// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/flarelab/flare/distmap"
	"github.com/flarelab/flare/series"
)

// maxDecoders caps concurrent file decoding.
const maxDecoders = 8

// FileOptions configures directory enumeration shared by the file-based
// adapters.
//
//   - Ext       — required extension, without the dot.
//   - Start     — index of the first file to load, over the sorted names.
//   - Stop      — index past the last file to load; negative means the end.
//   - Recursive — descend into subdirectories.
type FileOptions struct {
	Ext       string
	Start     int
	Stop      int
	Recursive bool
}

// listFiles enumerates the files under dir with the given extension,
// lexicographically sorted, sliced to [Start, Stop) with out-of-range
// bounds clamped. ErrNoFiles when the slice is empty.
func listFiles(dir string, opts FileOptions) ([]string, error) {
	suffix := "." + strings.TrimPrefix(opts.Ext, ".")

	var paths []string
	if opts.Recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), suffix) {
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", dir, err)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", dir, err)
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
				paths = append(paths, filepath.Join(dir, e.Name()))
			}
		}
	}
	sort.Strings(paths)

	start, stop := opts.Start, opts.Stop
	if stop < 0 || stop > len(paths) {
		stop = len(paths)
	}
	if start < 0 {
		start = 0
	}
	if start >= stop {
		return nil, fmt.Errorf("%s (ext %q, slice [%d,%d)): %w", dir, opts.Ext, opts.Start, opts.Stop, ErrNoFiles)
	}

	return paths[start:stop], nil
}

// decodeFiles reads every path concurrently, decodes each with decode, and
// assembles the vectors into a series keyed by file position. All vectors
// must come out the same length; ErrShapeMismatch otherwise.
func decodeFiles(paths []string, decode func(buf []byte) ([]float64, error)) (*series.Series, error) {
	values := make([][]float64, len(paths))

	var g errgroup.Group
	g.SetLimit(maxDecoders)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			buf, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			v, err := decode(buf)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			values[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, v := range values {
		if len(v) != len(values[0]) {
			return nil, fmt.Errorf("%s yields %d values, %s yields %d: %w",
				paths[0], len(values[0]), paths[i], len(v), ErrShapeMismatch)
		}
	}

	pairs := make([]distmap.Pair[series.Key, []float64], len(values))
	for i, v := range values {
		pairs[i] = distmap.KV(series.NewKey(uint64(i)), v)
	}
	data, err := distmap.FromSeq(pairs, len(pairs))
	if err != nil {
		return nil, err
	}

	return series.New(data, series.DefaultIndex(len(values[0])))
}
