package stl

import (
	"github.com/philipparndt/stlmeter/pkg/geometry"
)

// Model represents a complete decoded STL file
type Model struct {
	Name      string
	Format    Format
	Triangles []geometry.Triangle
}

// NewModel creates a new, empty STL model
func NewModel(name string, format Format) *Model {
	return &Model{
		Name:      name,
		Format:    format,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.ExtendTriangle(triangle)
	}
	return bbox
}
