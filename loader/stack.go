// SPDX-License-Identifier: MIT

package loader

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/flarelab/flare/series"
)

// ElemType enumerates the element encodings a binary stack file may use.
// All multi-byte encodings are little-endian.
type ElemType uint8

const (
	Int8 ElemType = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
)

// Size reports the encoded width of one element, in bytes.
func (e ElemType) Size() int {
	switch e {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	default:
		return 8
	}
}

// String names the element type in the usual dtype spelling.
func (e ElemType) String() string {
	switch e {
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Float32:
		return "float32"
	default:
		return "float64"
	}
}

// DefaultStackOptions matches the common acquisition format: "stack"
// extension, whole directory, non-recursive.
func DefaultStackOptions() FileOptions {
	return FileOptions{Ext: "stack", Stop: -1}
}

// FromStack builds a series from a directory of flat binary files, one
// entry per file. Each file must hold exactly prod(dims) elements of type
// elem in column-major order; ErrBadStackFile otherwise. dims must be
// non-empty and positive; ErrBadDims otherwise.
//
// The entry vector keeps the file's element order, so position p of the
// vector is the column-major offset p of the array.
func FromStack(dir string, dims []int, elem ElemType, opts FileOptions) (*series.Series, error) {
	count := 1
	for _, d := range dims {
		if d < 1 {
			return nil, fmt.Errorf("dims %v: %w", dims, ErrBadDims)
		}
		count *= d
	}
	if len(dims) == 0 {
		return nil, ErrBadDims
	}

	paths, err := listFiles(dir, opts)
	if err != nil {
		return nil, err
	}

	return decodeFiles(paths, func(buf []byte) ([]float64, error) {
		return decodeStack(buf, elem, count)
	})
}

// decodeStack decodes exactly count elements of type elem from buf.
func decodeStack(buf []byte, elem ElemType, count int) ([]float64, error) {
	if len(buf) != count*elem.Size() {
		return nil, fmt.Errorf("%d bytes for %d %s elements: %w", len(buf), count, elem, ErrBadStackFile)
	}

	out := make([]float64, count)
	for i := 0; i < count; i++ {
		b := buf[i*elem.Size():]
		switch elem {
		case Int8:
			out[i] = float64(int8(b[0]))
		case Uint8:
			out[i] = float64(b[0])
		case Int16:
			out[i] = float64(int16(binary.LittleEndian.Uint16(b)))
		case Uint16:
			out[i] = float64(binary.LittleEndian.Uint16(b))
		case Int32:
			out[i] = float64(int32(binary.LittleEndian.Uint32(b)))
		case Uint32:
			out[i] = float64(binary.LittleEndian.Uint32(b))
		case Float32:
			out[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
		default:
			out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b))
		}
	}

	return out, nil
}
