// SPDX-License-Identifier: MIT
// Package loader: remote tile service adapter.
//
// The service exposes, per resource, a JSON info document describing the
// dataset extent, and a cutout endpoint returning one zlib-compressed
// buffer of little-endian float64 values in C-order (t,z,y,x) per request.
// Bounds are validated against the info document before any cutout request
// is issued; each time step becomes one collection entry, reordered to
// (x,y,z).

package loader

import (
	"bytes"
	"compress/zlib"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/flarelab/flare/distmap"
	"github.com/flarelab/flare/series"
)

// maxTileFetches caps concurrent cutout requests.
const maxTileFetches = 4

// TileFetcher is the transport capability of the tile adapter: fetch one
// URL, return its body. Implementations must honor ctx cancellation.
type TileFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches tiles over HTTP. A nil Client uses
// http.DefaultClient.
type HTTPFetcher struct {
	Client *http.Client
}

// Fetch issues one GET and returns the response body. Non-200 statuses and
// transport failures wrap ErrTileFetch with the URL attached.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", url, ErrTileFetch, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", url, ErrTileFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: status %d: %w", url, resp.StatusCode, ErrTileFetch)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", url, ErrTileFetch, err)
	}

	return body, nil
}

// TileOptions bounds a tile request.
//
//   - Start, Stop — time slice [Start, Stop); negative means the extent the
//     server reports.
//   - MinBound, MaxBound — inclusive-exclusive (x, y, z) corners; nil means
//     the full spatial extent.
type TileOptions struct {
	Start, Stop        int
	MinBound, MaxBound []int
}

// DefaultTileOptions requests the server's full extent.
func DefaultTileOptions() TileOptions { return TileOptions{Start: -1, Stop: -1} }

// TileClient talks to one tile server.
type TileClient struct {
	server  string
	fetcher TileFetcher
}

// NewTileClient returns a client for the given server base URL. A nil
// fetcher defaults to an HTTPFetcher.
func NewTileClient(server string, fetcher TileFetcher) *TileClient {
	if fetcher == nil {
		fetcher = &HTTPFetcher{}
	}

	return &TileClient{server: server, fetcher: fetcher}
}

// tileInfo is the server's per-resource metadata document.
type tileInfo struct {
	Dataset struct {
		ImageSize  map[string][]int `json:"imagesize"`
		SliceRange []int            `json:"slicerange"`
		TimeRange  []int            `json:"timerange"`
		CubeDims   map[string][]int `json:"cube_dimension"`
	} `json:"dataset"`
}

// FromTiles builds a series from the remote resource at the given
// resolution: one entry per time step, each the (x,y,z) reordering of the
// server's cutout buffer. Requested bounds are validated against the
// resource metadata before any cutout request; out-of-range bounds fail
// with ErrBoundsOutOfRange, unknown resolutions with ErrBadResolution.
func (c *TileClient) FromTiles(ctx context.Context, resource string, resolution int, opts TileOptions) (*series.Series, error) {
	infoURL := fmt.Sprintf("%s/%s/info", c.server, resource)
	raw, err := c.fetcher.Fetch(ctx, infoURL)
	if err != nil {
		return nil, err
	}
	var info tileInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("%s: decode metadata: %w: %w", infoURL, ErrTileFetch, err)
	}

	resKey := strconv.Itoa(resolution)
	size, ok := info.Dataset.ImageSize[resKey]
	if !ok || len(size) < 2 {
		return nil, fmt.Errorf("resolution %d of %s: %w", resolution, resource, ErrBadResolution)
	}
	if len(info.Dataset.SliceRange) < 2 || len(info.Dataset.TimeRange) < 2 {
		return nil, fmt.Errorf("%s: incomplete metadata: %w", infoURL, ErrTileFetch)
	}
	zRange, tRange := info.Dataset.SliceRange, info.Dataset.TimeRange

	start, stop := opts.Start, opts.Stop
	if start < 0 {
		start = tRange[0]
	}
	if stop < 0 {
		stop = tRange[1]
	}
	if start < tRange[0] || stop > tRange[1] || start >= stop {
		return nil, fmt.Errorf("time [%d,%d) outside [%d,%d): %w", start, stop, tRange[0], tRange[1], ErrBoundsOutOfRange)
	}

	minB, maxB := opts.MinBound, opts.MaxBound
	if minB == nil {
		minB = []int{0, 0, zRange[0]}
	}
	if maxB == nil {
		maxB = []int{size[0], size[1], zRange[1]}
	}
	if len(minB) != 3 || len(maxB) != 3 {
		return nil, fmt.Errorf("bounds need 3 components: %w", ErrBoundsOutOfRange)
	}
	lo := []int{0, 0, zRange[0]}
	hi := []int{size[0], size[1], zRange[1]}
	for i := 0; i < 3; i++ {
		if minB[i] < lo[i] || maxB[i] > hi[i] || minB[i] >= maxB[i] {
			return nil, fmt.Errorf("axis %d [%d,%d) outside [%d,%d): %w",
				i, minB[i], maxB[i], lo[i], hi[i], ErrBoundsOutOfRange)
		}
	}

	nx, ny, nz := maxB[0]-minB[0], maxB[1]-minB[1], maxB[2]-minB[2]
	steps := stop - start
	values := make([][]float64, steps)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxTileFetches)
	for i := 0; i < steps; i++ {
		i := i
		g.Go(func() error {
			url := fmt.Sprintf("%s/%s/cutout/%d/%d,%d/%d,%d/%d,%d/%d,%d",
				c.server, resource, resolution,
				minB[0], maxB[0], minB[1], maxB[1], minB[2], maxB[2],
				start+i, start+i+1)
			buf, err := c.fetcher.Fetch(gctx, url)
			if err != nil {
				return err
			}
			v, err := decodeCutout(buf, nx, ny, nz)
			if err != nil {
				return fmt.Errorf("%s: %w: %w", url, ErrTileFetch, err)
			}
			values[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pairs := make([]distmap.Pair[series.Key, []float64], steps)
	for i, v := range values {
		pairs[i] = distmap.KV(series.NewKey(uint64(i)), v)
	}
	data, err := distmap.FromSeq(pairs, steps)
	if err != nil {
		return nil, err
	}

	return series.New(data, series.DefaultIndex(nx*ny*nz))
}

// decodeCutout decompresses one cutout buffer and reorders its single time
// step from C-order (t,z,y,x) to column-major (x,y,z).
func decodeCutout(buf []byte, nx, ny, nz int) ([]float64, error) {
	zr, err := zlib.NewReader(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	want := nx * ny * nz * 8
	if len(raw) != want {
		return nil, fmt.Errorf("got %d bytes, want %d", len(raw), want)
	}

	out := make([]float64, nx*ny*nz)
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				in := ((z*ny)+y)*nx + x
				v := math.Float64frombits(binary.LittleEndian.Uint64(raw[in*8:]))
				out[(x*ny+y)*nz+z] = v
			}
		}
	}

	return out, nil
}
