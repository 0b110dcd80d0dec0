package geometry

import (
	"github.com/lixenwraith/orbfolio/vmath"
)

// HitMesh is the low-resolution raycast proxy for an orb. It carries its own
// independently computed angle cache but is always morphed with the same
// coefficients and base radius as the visual sphere, so ray hits approximate
// the visible surface at a fraction of the triangle count
type HitMesh struct {
	*PointSphere

	tris [][3]int // triangle vertex indices over the lat/long grid
}

// NewHitMesh builds a triangulated low-res sphere
func NewHitMesh(rows, cols int) *HitMesh {
	m := &HitMesh{PointSphere: NewPointSphere(rows, cols)}
	m.tris = make([][3]int, 0, m.Rows*m.Cols*2)

	idx := func(row, col int) int {
		return row*m.Cols + col%m.Cols
	}
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			a := idx(row, col)
			b := idx(row, col+1)
			c := idx(row+1, col)
			d := idx(row+1, col+1)
			// Degenerate cap triangles at the poles collapse to zero area
			// and never intersect, so no special casing
			m.tris = append(m.tris, [3]int{a, b, c}, [3]int{b, d, c})
		}
	}
	return m
}

// TriangleCount returns the number of proxy triangles
func (m *HitMesh) TriangleCount() int {
	return len(m.tris)
}

// Raycast intersects a local-space ray with the deformed proxy surface and
// returns the nearest hit point and ray parameter. An untouched (zero
// triangle) mesh reports no hit rather than failing
func (m *HitMesh) Raycast(ray vmath.Ray) (vmath.Vec3, float64, bool) {
	// Broad phase: the deformed surface fits inside the last morph's
	// bounding radius (small margin for interpolation midpoints)
	if _, ok := vmath.RaySphere(ray, vmath.Vec3{}, m.maxR*1.05); !ok {
		return vmath.Vec3{}, 0, false
	}

	best := 0.0
	found := false
	for _, tri := range m.tris {
		t, ok := vmath.RayTriangle(ray, m.Positions[tri[0]], m.Positions[tri[1]], m.Positions[tri[2]])
		if !ok {
			continue
		}
		if !found || t < best {
			best = t
			found = true
		}
	}
	if !found {
		return vmath.Vec3{}, 0, false
	}
	return ray.At(best), best, true
}
