package stl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/philipparndt/stlmeter/pkg/geometry"
)

const (
	binaryCountOffset = binaryHeaderSize
	binaryPrefixSize  = binaryHeaderSize + 4
	binaryRecordSize  = 50
)

// binaryRecord is one 50-byte facet record of a binary STL file
type binaryRecord struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // attribute byte count, ignored
}

func (r *binaryRecord) get(b []byte) {
	_ = b[binaryRecordSize-1] // early bounds check
	get3F32(b, &r.Normal)
	get3F32(b[12:], &r.Vertex1)
	get3F32(b[24:], &r.Vertex2)
	get3F32(b[36:], &r.Vertex3)
}

func (r binaryRecord) put(b []byte) {
	_ = b[binaryRecordSize-1] // early bounds check
	put3F32(b, r.Normal)
	put3F32(b[12:], r.Vertex1)
	put3F32(b[24:], r.Vertex2)
	put3F32(b[36:], r.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (r binaryRecord) finite() bool {
	return finite3F32(r.Normal) && finite3F32(r.Vertex1) && finite3F32(r.Vertex2) && finite3F32(r.Vertex3)
}

func (r binaryRecord) toTriangle() geometry.Triangle {
	return geometry.NewTriangle(
		vectorFrom3F32(r.Normal),
		vectorFrom3F32(r.Vertex1),
		vectorFrom3F32(r.Vertex2),
		vectorFrom3F32(r.Vertex3),
	)
}

func recordFromTriangle(t geometry.Triangle) binaryRecord {
	return binaryRecord{
		Normal:  f32From(t.Normal),
		Vertex1: f32From(t.V1),
		Vertex2: f32From(t.V2),
		Vertex3: f32From(t.V3),
	}
}

// binaryTriangleCount validates the fixed-size prefix and the declared
// triangle count against limit and the buffer length.
func binaryTriangleCount(data []byte, limit uint32) (uint32, error) {
	if len(data) < binaryPrefixSize {
		return 0, fmt.Errorf("%w: binary STL needs at least %d bytes, got %d", ErrTruncatedInput, binaryPrefixSize, len(data))
	}

	count := binary.LittleEndian.Uint32(data[binaryCountOffset:binaryPrefixSize])
	if count == 0 {
		return 0, fmt.Errorf("%w: header declares 0 triangles", ErrInvalidTriangleCount)
	}
	// Counts with the sign bit set are far above any sane ceiling.
	if count > limit {
		return 0, fmt.Errorf("%w: header declares %d triangles, limit is %d", ErrInvalidTriangleCount, count, limit)
	}

	expected := int64(binaryPrefixSize) + int64(binaryRecordSize)*int64(count)
	if int64(len(data)) < expected {
		return 0, fmt.Errorf("%w: %d triangles need %d bytes, got %d", ErrTruncatedInput, count, expected, len(data))
	}
	return count, nil
}

// walkBinary visits every facet record in file order. Trailing bytes after
// the last declared record are ignored.
func walkBinary(data []byte, limit uint32, fn func(geometry.Triangle)) error {
	count, err := binaryTriangleCount(data, limit)
	if err != nil {
		return err
	}

	var rec binaryRecord
	for i := uint32(0); i < count; i++ {
		off := binaryPrefixSize + int(i)*binaryRecordSize
		rec.get(data[off : off+binaryRecordSize])
		if !rec.finite() {
			return fmt.Errorf("%w: non-finite value in triangle %d", ErrMalformedGeometry, i)
		}
		fn(rec.toTriangle())
	}
	return nil
}

// binaryName extracts printable text from the 80-byte header
func binaryName(data []byte) string {
	if len(data) < binaryHeaderSize {
		return ""
	}
	header := bytes.TrimRight(data[:binaryHeaderSize], "\x00 ")
	return string(bytes.TrimSpace(header))
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func finite3F32(f [3]float32) bool {
	for _, v := range f {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func vectorFrom3F32(f [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(f[0]), float64(f[1]), float64(f[2]))
}

func f32From(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
