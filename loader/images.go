// SPDX-License-Identifier: MIT

package loader

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/chai2010/tiff"

	"github.com/flarelab/flare/series"
)

// DefaultTIFOptions enumerates *.tif files, whole directory.
func DefaultTIFOptions() FileOptions { return FileOptions{Ext: "tif", Stop: -1} }

// DefaultPNGOptions enumerates *.png files, whole directory.
func DefaultPNGOptions() FileOptions { return FileOptions{Ext: "png", Stop: -1} }

// FromTIF builds a series from a directory of TIFF files, one entry per
// file. Every page (directory) of a file is decoded and the page planes are
// stacked along the trailing axis, so a file of p pages of w×h pixels
// yields a vector of w*h*p values; a single-page file stays a plain w*h
// plane. All files must agree on page shape and count; ErrShapeMismatch
// otherwise.
func FromTIF(dir string, opts FileOptions) (*series.Series, error) {
	paths, err := listFiles(dir, opts)
	if err != nil {
		return nil, err
	}

	return decodeFiles(paths, func(buf []byte) ([]float64, error) {
		frames, _, err := tiff.DecodeAll(bytes.NewReader(buf))
		if err != nil {
			return nil, fmt.Errorf("decode tiff: %w", err)
		}

		var out []float64
		for _, ifd := range frames {
			for _, img := range ifd {
				out = append(out, imagePlane(img)...)
			}
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("decode tiff: no pages: %w", ErrShapeMismatch)
		}

		return out, nil
	})
}

// FromPNG builds a series from a directory of PNG files, one entry per
// file, decoded with the standard codec to a luminance plane. All files
// must share one size; ErrShapeMismatch otherwise.
func FromPNG(dir string, opts FileOptions) (*series.Series, error) {
	paths, err := listFiles(dir, opts)
	if err != nil {
		return nil, err
	}

	return decodeFiles(paths, func(buf []byte) ([]float64, error) {
		img, err := png.Decode(bytes.NewReader(buf))
		if err != nil {
			return nil, fmt.Errorf("decode png: %w", err)
		}

		return imagePlane(img), nil
	})
}

// imagePlane flattens one image into row-major luminance values on the
// 8-bit scale. Grayscale sources keep their exact sample values.
func imagePlane(img image.Image) []float64 {
	b := img.Bounds()
	out := make([]float64, 0, b.Dx()*b.Dy())

	switch src := img.(type) {
	case *image.Gray:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := src.Pix[(y-b.Min.Y)*src.Stride : (y-b.Min.Y)*src.Stride+b.Dx()]
			for _, p := range row {
				out = append(out, float64(p))
			}
		}
	case *image.Gray16:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				out = append(out, float64(src.Gray16At(x, y).Y)/257)
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, _ := img.At(x, y).RGBA()
				lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(bl)
				out = append(out, lum/257)
			}
		}
	}

	return out
}
