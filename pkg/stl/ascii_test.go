package stl

import (
	"strings"
	"testing"

	"github.com/philipparndt/stlmeter/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeASCII(t *testing.T) {
	second := []string{
		"facet normal 0 0 -1",
		"outer loop",
		"vertex 0 0 0",
		"vertex 0 10 0",
		"vertex 10 10 0",
		"endloop",
		"endfacet",
	}
	data := asciiDocument("plate", asciiTriangle, second)

	triangles, err := Decode(data, ASCII)
	require.NoError(t, err)
	require.Len(t, triangles, 2)

	assert.Equal(t, geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(10, 0, 0),
		geometry.NewVector3(10, 10, 0),
	), triangles[0])
	assert.Equal(t, geometry.NewVector3(0, 0, -1), triangles[1].Normal)
}

func TestDecodeASCIISkipsMalformedFacets(t *testing.T) {
	twoVertices := []string{
		"facet normal 0 0 1",
		"outer loop",
		"vertex 0 0 0",
		"vertex 1 0 0",
		"endloop",
		"endfacet",
	}
	fourVertices := []string{
		"facet normal 0 0 1",
		"outer loop",
		"vertex 0 0 0",
		"vertex 1 0 0",
		"vertex 1 1 0",
		"vertex 0 1 0",
		"endloop",
		"endfacet",
	}
	garbled := []string{
		"facet normal 0 0 1",
		"outer loop",
		"vertex 0 0 0",
		"vertex 1 zero 0",
		"vertex 1 1 0",
		"endloop",
		"endfacet",
	}
	data := asciiDocument("messy", twoVertices, asciiTriangle, fourVertices, garbled, asciiTriangle)

	triangles, err := Decode(data, ASCII)
	require.NoError(t, err)
	assert.Len(t, triangles, 2)
}

func TestDecodeASCIIAllFacetsMalformed(t *testing.T) {
	data := asciiDocument("broken", []string{"facet normal 0 0 1", "vertex 0 0 0", "endfacet"})

	triangles, err := Decode(data, ASCII)
	require.NoError(t, err)
	assert.Empty(t, triangles)
}

func TestDecodeASCIINonFinite(t *testing.T) {
	for _, value := range []string{"nan", "inf", "-Inf", "1e999"} {
		t.Run(value, func(t *testing.T) {
			bad := []string{
				"facet normal 0 0 1",
				"outer loop",
				"vertex 0 0 0",
				"vertex " + value + " 0 0",
				"vertex 1 1 0",
				"endloop",
				"endfacet",
			}
			_, err := Decode(asciiDocument("bad", asciiTriangle, bad), ASCII)
			assert.ErrorIs(t, err, ErrMalformedGeometry)
		})
	}
}

func TestDecodeASCIINoFacets(t *testing.T) {
	data := asciiSTL("solid empty", "endsolid empty")

	_, err := Decode(data, ASCII)
	assert.ErrorIs(t, err, ErrUnrecoverableFormat)
}

func TestDecodeASCIIWhitespaceAndCase(t *testing.T) {
	data := []byte(strings.Join([]string{
		"SOLID Upper",
		"\tFACET NORMAL 0 0 1",
		"   OUTER LOOP",
		"      VERTEX   0 0 0",
		"VERTEX 10 0 0   ",
		"\t\tvertex 10 10 0",
		"ENDLOOP",
		"ENDFACET",
		"ENDSOLID Upper",
	}, "\r\n"))

	triangles, err := Decode(data, ASCII)
	require.NoError(t, err)
	require.Len(t, triangles, 1)
	assert.Equal(t, geometry.NewVector3(10, 10, 0), triangles[0].V3)
}

func TestDecodeASCIILineEndings(t *testing.T) {
	lines := append([]string{"solid plate"}, asciiTriangle...)
	lines = append(lines, "endsolid plate")

	tests := []struct {
		name string
		eol  string
	}{
		{"unix", "\n"},
		{"windows", "\r\n"},
		{"classic mac", "\r"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(strings.Join(lines, tt.eol) + tt.eol)
			require.Equal(t, ASCII, DetectFormat(data))

			model, err := Parse(data)
			require.NoError(t, err)
			assert.Equal(t, "plate", model.Name)
			require.Equal(t, 1, model.TriangleCount())
			assert.Equal(t, geometry.NewVector3(10, 10, 0), model.Triangles[0].V3)
		})
	}
}

func TestDecodeASCIILineNumbersWithCRLF(t *testing.T) {
	data := []byte("solid x\r\nfacet normal 0 0 1\r\nouter loop\r\nvertex nan 0 0\r\n")

	_, err := Decode(data, ASCII)
	require.ErrorIs(t, err, ErrMalformedGeometry)
	assert.Contains(t, err.Error(), "line 4")
}

func TestParseASCIIName(t *testing.T) {
	model, err := Parse(asciiDocument("gear housing", asciiTriangle))
	require.NoError(t, err)

	assert.Equal(t, "gear housing", model.Name)
	assert.Equal(t, ASCII, model.Format)
	assert.Equal(t, 1, model.TriangleCount())
}

func TestParseWrapsFormat(t *testing.T) {
	_, err := Parse(binarySTL("", 3, quadFacets...))
	require.ErrorIs(t, err, ErrTruncatedInput)
	assert.Contains(t, err.Error(), "binary")
}
