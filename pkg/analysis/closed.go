package analysis

import "github.com/philipparndt/stlmeter/pkg/geometry"

// ClosedReport is an advisory check of whether a mesh is watertight and
// consistently wound, which the volume formula silently assumes.
type ClosedReport struct {
	Closed bool `json:"closed"`
	// BoundaryEdges have no oppositely oriented partner
	BoundaryEdges int `json:"boundaryEdges"`
	// NonManifoldEdges occur more than once in the same direction, or are
	// shared by more than two triangles
	NonManifoldEdges int `json:"nonManifoldEdges"`
}

type directedEdge struct {
	from, to geometry.Vector3
}

// CheckClosed reports whether every directed edge is used exactly once and is
// matched by exactly one edge running the opposite way. Vertices are matched
// by exact coordinates. An empty mesh is not closed.
func CheckClosed(triangles []geometry.Triangle) ClosedReport {
	if len(triangles) == 0 {
		return ClosedReport{}
	}

	counts := make(map[directedEdge]int, 3*len(triangles))
	for _, t := range triangles {
		counts[directedEdge{t.V1, t.V2}]++
		counts[directedEdge{t.V2, t.V3}]++
		counts[directedEdge{t.V3, t.V1}]++
	}

	var report ClosedReport
	for edge, n := range counts {
		if edge.from == edge.to {
			// degenerate edge, it cannot bound anything
			continue
		}
		reverse := counts[directedEdge{edge.to, edge.from}]
		switch {
		case n > 1 || reverse > 1:
			report.NonManifoldEdges++
		case reverse == 0:
			report.BoundaryEdges++
		}
	}
	report.Closed = report.BoundaryEdges == 0 && report.NonManifoldEdges == 0
	return report
}
