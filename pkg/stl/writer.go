package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/philipparndt/stlmeter/pkg/geometry"
)

// WriteBinary writes triangles to w in binary STL format. name is stored in
// the 80-byte header, truncated if necessary.
func WriteBinary(w io.Writer, name string, triangles []geometry.Triangle) error {
	if len(triangles) == 0 {
		return fmt.Errorf("%w: cannot write an empty binary STL", ErrInvalidTriangleCount)
	}
	if int64(len(triangles)) > int64(^uint32(0)) {
		return fmt.Errorf("%w: %d triangles exceed the binary STL limit", ErrInvalidTriangleCount, len(triangles))
	}

	var prefix [binaryPrefixSize]byte
	copy(prefix[:binaryHeaderSize], name)
	binary.LittleEndian.PutUint32(prefix[binaryCountOffset:], uint32(len(triangles)))
	if _, err := w.Write(prefix[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	var buf [binaryRecordSize]byte
	for i, t := range triangles {
		recordFromTriangle(t).put(buf[:])
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}
	return nil
}

// WriteASCII writes triangles to w in ASCII STL format
func WriteASCII(w io.Writer, name string, triangles []geometry.Triangle) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range triangles {
		fmt.Fprintf(bw, "  facet normal %s\n", formatVector(t.Normal))
		bw.WriteString("    outer loop\n")
		for _, v := range t.Vertices() {
			fmt.Fprintf(bw, "      vertex %s\n", formatVector(v))
		}
		bw.WriteString("    endloop\n")
		bw.WriteString("  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ASCII STL: %w", err)
	}
	return nil
}

func formatVector(v geometry.Vector3) string {
	return strconv.FormatFloat(v.X, 'e', -1, 64) + " " +
		strconv.FormatFloat(v.Y, 'e', -1, 64) + " " +
		strconv.FormatFloat(v.Z, 'e', -1, 64)
}
