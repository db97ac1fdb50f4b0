package stl

import (
	"fmt"
	"os"

	"github.com/philipparndt/stlmeter/pkg/geometry"
)

// DefaultMaxTriangles is the ceiling applied to binary triangle counts when a
// Decoder does not set its own.
const DefaultMaxTriangles = 5_000_000

// Decoder converts raw STL bytes into triangles.
// The zero value is ready to use and applies DefaultMaxTriangles.
type Decoder struct {
	// MaxTriangles bounds the triangle count a binary header may declare
	MaxTriangles uint32
}

func (d Decoder) maxTriangles() uint32 {
	if d.MaxTriangles == 0 {
		return DefaultMaxTriangles
	}
	return d.MaxTriangles
}

// Walk decodes data in the given format and calls fn for every triangle in
// file order, without collecting them.
func (d Decoder) Walk(data []byte, format Format, fn func(geometry.Triangle)) error {
	_, err := d.walk(data, format, fn)
	return err
}

func (d Decoder) walk(data []byte, format Format, fn func(geometry.Triangle)) (string, error) {
	switch format {
	case ASCII:
		return walkASCII(data, fn)
	case Binary:
		if err := walkBinary(data, d.maxTriangles(), fn); err != nil {
			return "", err
		}
		return binaryName(data), nil
	default:
		return "", fmt.Errorf("%w: unknown format %d", ErrUnrecoverableFormat, int(format))
	}
}

// Decode converts data in the given format into an ordered triangle list
func (d Decoder) Decode(data []byte, format Format) ([]geometry.Triangle, error) {
	triangles := make([]geometry.Triangle, 0, d.capacityHint(data, format))
	_, err := d.walk(data, format, func(t geometry.Triangle) {
		triangles = append(triangles, t)
	})
	if err != nil {
		return nil, err
	}
	return triangles, nil
}

// Parse detects the format of data and decodes it into a Model
func (d Decoder) Parse(data []byte) (*Model, error) {
	format := DetectFormat(data)
	model := NewModel("", format)
	model.Triangles = make([]geometry.Triangle, 0, d.capacityHint(data, format))

	name, err := d.walk(data, format, model.AddTriangle)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s STL: %w", format, err)
	}
	model.Name = name
	return model, nil
}

// ParseFile reads an STL file and returns a Model
func (d Decoder) ParseFile(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return d.Parse(data)
}

// capacityHint is the validated binary triangle count, so Decode allocates
// once. Headers that fail validation get no preallocation.
func (d Decoder) capacityHint(data []byte, format Format) int {
	if format != Binary {
		return 0
	}
	count, err := binaryTriangleCount(data, d.maxTriangles())
	if err != nil {
		return 0
	}
	return int(count)
}

// Walk calls fn for every triangle in data using a default Decoder
func Walk(data []byte, format Format, fn func(geometry.Triangle)) error {
	return Decoder{}.Walk(data, format, fn)
}

// Decode converts data into triangles using a default Decoder
func Decode(data []byte, format Format) ([]geometry.Triangle, error) {
	return Decoder{}.Decode(data, format)
}

// Parse detects the format of data and decodes it using a default Decoder
func Parse(data []byte) (*Model, error) {
	return Decoder{}.Parse(data)
}

// ParseFile reads and decodes an STL file using a default Decoder
func ParseFile(filename string) (*Model, error) {
	return Decoder{}.ParseFile(filename)
}
