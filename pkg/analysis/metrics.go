package analysis

import (
	"math"

	"github.com/philipparndt/stlmeter/pkg/geometry"
	"github.com/philipparndt/stlmeter/pkg/stl"
)

// STL carries no unit metadata; coordinates are taken to be millimeters.
const (
	mm3PerCm3 = 1000.0
	mm2PerCm2 = 100.0
)

// MeshMetrics is the physical summary of a mesh handed to pricing and display
type MeshMetrics struct {
	Dimensions    geometry.Vector3 `json:"dimensions"`    // bounding box size, mm
	Volume        float64          `json:"volume"`        // cm³
	SurfaceArea   float64          `json:"surfaceArea"`   // cm²
	TriangleCount int              `json:"triangleCount"`
}

// Accumulator reduces a stream of triangles to MeshMetrics in a single pass.
// The zero value is not usable; create one with NewAccumulator.
//
// The volume is the sum of signed origin tetrahedra, which equals the mesh
// volume only for closed, consistently wound meshes. Closedness is not
// checked here; see CheckClosed.
type Accumulator struct {
	bounds    geometry.BoundingBox
	volume    float64 // signed, mm³
	area      float64 // mm²
	triangles int
}

// NewAccumulator creates an empty accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{bounds: geometry.NewBoundingBox()}
}

// Add folds one triangle into the running totals
func (a *Accumulator) Add(t geometry.Triangle) {
	a.bounds.ExtendTriangle(t)
	a.volume += t.SignedVolume()
	a.area += t.Area()
	a.triangles++
}

// Bounds returns the bounding box of everything added so far
func (a *Accumulator) Bounds() geometry.BoundingBox {
	return a.bounds
}

// Metrics returns the metrics of everything added so far
func (a *Accumulator) Metrics() MeshMetrics {
	if a.triangles == 0 {
		return MeshMetrics{}
	}
	return MeshMetrics{
		Dimensions:    a.bounds.Size(),
		Volume:        math.Abs(a.volume) / mm3PerCm3,
		SurfaceArea:   a.area / mm2PerCm2,
		TriangleCount: a.triangles,
	}
}

// Measure computes the metrics of a triangle list.
// An empty list yields all-zero metrics.
func Measure(triangles []geometry.Triangle) MeshMetrics {
	acc := NewAccumulator()
	for _, t := range triangles {
		acc.Add(t)
	}
	return acc.Metrics()
}

// AnalyzeBytes detects, decodes and measures raw STL bytes without keeping
// the triangle list.
func AnalyzeBytes(data []byte) (MeshMetrics, error) {
	return AnalyzeBytesWith(stl.Decoder{}, data)
}

// AnalyzeBytesWith is AnalyzeBytes with a caller-configured decoder
func AnalyzeBytesWith(dec stl.Decoder, data []byte) (MeshMetrics, error) {
	acc := NewAccumulator()
	if err := dec.Walk(data, stl.DetectFormat(data), acc.Add); err != nil {
		return MeshMetrics{}, err
	}
	return acc.Metrics(), nil
}
