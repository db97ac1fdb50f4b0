package analysis

import (
	"github.com/philipparndt/stlmeter/pkg/geometry"
)

func quad(a, b, c, d geometry.Vector3) []geometry.Triangle {
	t1 := geometry.NewTriangle(geometry.Vector3{}, a, b, c)
	t2 := geometry.NewTriangle(geometry.Vector3{}, a, c, d)
	t1.Normal = t1.CalculateNormal()
	t2.Normal = t2.CalculateNormal()
	return []geometry.Triangle{t1, t2}
}

// cube returns 12 outward-wound triangles of an axis-aligned cube with side s
// whose minimum corner is at origin.
func cube(s float64, origin geometry.Vector3) []geometry.Triangle {
	p := func(x, y, z float64) geometry.Vector3 {
		return origin.Add(geometry.NewVector3(x*s, y*s, z*s))
	}
	var tris []geometry.Triangle
	tris = append(tris, quad(p(0, 0, 0), p(0, 1, 0), p(1, 1, 0), p(1, 0, 0))...) // bottom
	tris = append(tris, quad(p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1))...) // top
	tris = append(tris, quad(p(0, 0, 0), p(1, 0, 0), p(1, 0, 1), p(0, 0, 1))...) // front
	tris = append(tris, quad(p(0, 1, 0), p(0, 1, 1), p(1, 1, 1), p(1, 1, 0))...) // back
	tris = append(tris, quad(p(0, 0, 0), p(0, 0, 1), p(0, 1, 1), p(0, 1, 0))...) // left
	tris = append(tris, quad(p(1, 0, 0), p(1, 1, 0), p(1, 1, 1), p(1, 0, 1))...) // right
	return tris
}

// tetrahedron is a closed, outward-wound tetrahedron with 10mm legs on the axes
func tetrahedron() []geometry.Triangle {
	o := geometry.NewVector3(0, 0, 0)
	x := geometry.NewVector3(10, 0, 0)
	y := geometry.NewVector3(0, 10, 0)
	z := geometry.NewVector3(0, 0, 10)
	var tris []geometry.Triangle
	for _, f := range [][3]geometry.Vector3{{o, y, x}, {o, x, z}, {o, z, y}, {x, y, z}} {
		t := geometry.NewTriangle(geometry.Vector3{}, f[0], f[1], f[2])
		t.Normal = t.CalculateNormal()
		tris = append(tris, t)
	}
	return tris
}

func flipped(tris []geometry.Triangle) []geometry.Triangle {
	out := make([]geometry.Triangle, len(tris))
	for i, t := range tris {
		out[i] = geometry.NewTriangle(t.Normal.Mul(-1), t.V1, t.V3, t.V2)
	}
	return out
}
