package stl

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBinaryRoundTrip(t *testing.T) {
	want := tetrahedronTriangles()

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, "tetra", want))
	assert.Equal(t, binaryPrefixSize+binaryRecordSize*len(want), buf.Len())

	model, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, Binary, model.Format)
	assert.Equal(t, "tetra", model.Name)
	require.Len(t, model.Triangles, len(want))
	for i := range want {
		assert.InDelta(t, 0, want[i].V1.Distance(model.Triangles[i].V1), 1e-6)
		assert.InDelta(t, 0, want[i].V3.Distance(model.Triangles[i].V3), 1e-6)
	}
}

func TestWriteASCIIRoundTrip(t *testing.T) {
	want := tetrahedronTriangles()

	var buf bytes.Buffer
	require.NoError(t, WriteASCII(&buf, "tetra", want))

	model, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, ASCII, model.Format)
	assert.Equal(t, "tetra", model.Name)
	assert.Equal(t, want, model.Triangles)
}

func TestWriteBinaryEmpty(t *testing.T) {
	err := WriteBinary(&bytes.Buffer{}, "", nil)
	assert.ErrorIs(t, err, ErrInvalidTriangleCount)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.stl")
	require.NoError(t, os.WriteFile(path, binarySTL("", 2, quadFacets...), 0o644))

	model, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, model.TriangleCount())

	bbox := model.BoundingBox()
	assert.Equal(t, 10.0, bbox.Size().X)
	assert.Equal(t, 0.0, bbox.Size().Z)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.stl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
