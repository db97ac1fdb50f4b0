package stl

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/philipparndt/stlmeter/pkg/geometry"
)

// facet is normal followed by three vertices, 12 floats as stored on disk
type facet [12]float32

// binarySTL builds a binary STL by hand so decoder tests do not depend on
// WriteBinary. count is written verbatim, independent of len(facets).
func binarySTL(header string, count uint32, facets ...facet) []byte {
	buf := make([]byte, binaryPrefixSize+binaryRecordSize*len(facets))
	copy(buf[:binaryHeaderSize], header)
	binary.LittleEndian.PutUint32(buf[binaryCountOffset:], count)
	for i, f := range facets {
		off := binaryPrefixSize + i*binaryRecordSize
		for j, v := range f {
			binary.LittleEndian.PutUint32(buf[off+4*j:], math.Float32bits(v))
		}
	}
	return buf
}

// quadFacets is a flat 10mm x 10mm square in the XY plane
var quadFacets = []facet{
	{0, 0, 1, 0, 0, 0, 10, 0, 0, 10, 10, 0},
	{0, 0, 1, 0, 0, 0, 10, 10, 0, 0, 10, 0},
}

// tetrahedronTriangles is a closed, outward-wound tetrahedron with legs of 10mm
func tetrahedronTriangles() []geometry.Triangle {
	o := geometry.NewVector3(0, 0, 0)
	x := geometry.NewVector3(10, 0, 0)
	y := geometry.NewVector3(0, 10, 0)
	z := geometry.NewVector3(0, 0, 10)
	tri := func(a, b, c geometry.Vector3) geometry.Triangle {
		t := geometry.NewTriangle(geometry.Vector3{}, a, b, c)
		t.Normal = t.CalculateNormal()
		return t
	}
	return []geometry.Triangle{
		tri(o, y, x),
		tri(o, x, z),
		tri(o, z, y),
		tri(x, y, z),
	}
}

func asciiSTL(lines ...string) []byte {
	return []byte(strings.Join(lines, "\n") + "\n")
}

// asciiTriangle is a complete, well-formed ASCII facet block
var asciiTriangle = []string{
	"  facet normal 0 0 1",
	"    outer loop",
	"      vertex 0 0 0",
	"      vertex 10 0 0",
	"      vertex 10 10 0",
	"    endloop",
	"  endfacet",
}

func asciiDocument(name string, blocks ...[]string) []byte {
	lines := []string{"solid " + name}
	for _, b := range blocks {
		lines = append(lines, b...)
	}
	lines = append(lines, "endsolid "+name)
	return asciiSTL(lines...)
}
