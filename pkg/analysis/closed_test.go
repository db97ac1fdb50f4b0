package analysis

import (
	"testing"

	"github.com/philipparndt/stlmeter/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestCheckClosed(t *testing.T) {
	c := cube(10, geometry.Vector3{})
	mixed := append([]geometry.Triangle{}, c...)
	mixed[0] = flipped(c[:1])[0]

	tests := []struct {
		name      string
		triangles []geometry.Triangle
		want      ClosedReport
	}{
		{"cube", c, ClosedReport{Closed: true}},
		{"tetrahedron", tetrahedron(), ClosedReport{Closed: true}},
		{"flipped cube", flipped(c), ClosedReport{Closed: true}},
		{"missing face", c[:11], ClosedReport{BoundaryEdges: 3}},
		{"flat quad", quad(
			geometry.NewVector3(0, 0, 0),
			geometry.NewVector3(10, 0, 0),
			geometry.NewVector3(10, 10, 0),
			geometry.NewVector3(0, 10, 0),
		), ClosedReport{BoundaryEdges: 4}},
		{"empty", nil, ClosedReport{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckClosed(tt.triangles))
		})
	}

	t.Run("inconsistent winding", func(t *testing.T) {
		report := CheckClosed(mixed)
		assert.False(t, report.Closed)
		assert.Positive(t, report.NonManifoldEdges)
	})

	t.Run("duplicate triangle", func(t *testing.T) {
		report := CheckClosed(append(append([]geometry.Triangle{}, c...), c[0]))
		assert.False(t, report.Closed)
		assert.Positive(t, report.NonManifoldEdges)
	})
}
