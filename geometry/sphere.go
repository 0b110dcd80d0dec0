package geometry

import (
	"math"

	"github.com/lixenwraith/orbfolio/harmonics"
	"github.com/lixenwraith/orbfolio/vmath"
)

// Angle is one cached unit-sphere direction. The cache is computed once at
// construction and never mutated; morphing only rewrites positions
type Angle struct {
	Theta, Phi float64
}

// PointSphere is a tessellated sphere whose vertices are displaced radially
// by spherical harmonics. Positions are mutated in place every morph, with an
// explicit dirty mark for the renderer; the buffer is never reallocated
type PointSphere struct {
	Rows, Cols int

	Angles    []Angle      // fixed at creation
	Positions []vmath.Vec3 // local space, rewritten by Morph

	maxR  float64 // largest radius seen in the last morph
	dirty bool
}

// NewPointSphere tessellates a unit lat/long sphere with rows+1 rings of cols
// vertices and caches each vertex's (theta, phi)
func NewPointSphere(rows, cols int) *PointSphere {
	if rows < 2 {
		rows = 2
	}
	if cols < 3 {
		cols = 3
	}

	n := (rows + 1) * cols
	s := &PointSphere{
		Rows:      rows,
		Cols:      cols,
		Angles:    make([]Angle, n),
		Positions: make([]vmath.Vec3, n),
	}

	i := 0
	for row := 0; row <= rows; row++ {
		theta := float64(row) / float64(rows) * math.Pi
		st, ct := math.Sincos(theta)
		for col := 0; col < cols; col++ {
			phi := float64(col)/float64(cols)*2*math.Pi - math.Pi
			sp, cp := math.Sincos(phi)

			// Unit cartesian, then back through the documented conversion
			// so the cache matches exactly what Morph reconstructs
			x, y, z := st*cp, ct, st*sp
			s.Angles[i] = Angle{
				Theta: math.Acos(clampUnit(y)),
				Phi:   math.Atan2(z, x),
			}
			s.Positions[i] = vmath.Vec3{X: x, Y: y, Z: z}
			i++
		}
	}
	s.maxR = 1
	return s
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// VertexCount returns the fixed number of vertices
func (s *PointSphere) VertexCount() int {
	return len(s.Angles)
}

// Morph rewrites every position as the harmonic displacement at the cached
// angle; the nominal radius is the DC coefficient. The per-vertex loop
// allocates nothing; it runs every frame during coefficient interpolation
func (s *PointSphere) Morph(c *harmonics.Coeffs) {
	maxR := 0.0
	for i := range s.Angles {
		a := &s.Angles[i]
		r := harmonics.Eval(a.Theta, a.Phi, c)

		st, ct := math.Sincos(a.Theta)
		sp, cp := math.Sincos(a.Phi)
		s.Positions[i] = vmath.Vec3{X: r * st * cp, Y: r * ct, Z: r * st * sp}

		if ar := math.Abs(r); ar > maxR {
			maxR = ar
		}
	}
	s.maxR = maxR
	s.dirty = true
}

// BoundingRadius is the largest vertex radius from the last morph, used for
// broad-phase ray rejection
func (s *PointSphere) BoundingRadius() float64 {
	return s.maxR
}

// Dirty reports whether positions changed since the last ClearDirty
func (s *PointSphere) Dirty() bool {
	return s.dirty
}

// ClearDirty acknowledges an upload/draw of the current positions
func (s *PointSphere) ClearDirty() {
	s.dirty = false
}
