package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/stlmeter/pkg/geometry"
	"github.com/philipparndt/stlmeter/pkg/stl"
)

// EdgeInfo contains information about an edge in the model
type EdgeInfo struct {
	Start      geometry.Vector3
	End        geometry.Vector3
	Length     float64
	TriangleID int
}

// MeasurementResult contains the metrics of a model plus per-edge statistics
type MeasurementResult struct {
	MeshMetrics
	BoundingBox   geometry.BoundingBox
	Closed        ClosedReport
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// SummarizeModel measures a model and checks whether it is closed, without
// collecting per-edge data.
func SummarizeModel(model *stl.Model) *MeasurementResult {
	acc := NewAccumulator()
	for _, triangle := range model.Triangles {
		acc.Add(triangle)
	}
	return &MeasurementResult{
		MeshMetrics: acc.Metrics(),
		BoundingBox: acc.Bounds(),
		Closed:      CheckClosed(model.Triangles),
	}
}

// AnalyzeModel performs comprehensive analysis on an STL model, including
// every edge of every triangle.
func AnalyzeModel(model *stl.Model) *MeasurementResult {
	result := SummarizeModel(model)
	result.AllEdges = make([]EdgeInfo, 0, 3*len(model.Triangles))

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i, triangle := range model.Triangles {
		edges := [3][2]geometry.Vector3{
			{triangle.V1, triangle.V2},
			{triangle.V2, triangle.V3},
			{triangle.V3, triangle.V1},
		}
		for _, edge := range edges {
			length := edge[0].Distance(edge[1])
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:      edge[0],
				End:        edge[1],
				Length:     length,
				TriangleID: i,
			})

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the model
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges in the model
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}
	if count < 0 {
		count = 0
	}
	return edges[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
