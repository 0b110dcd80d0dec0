package vmath

// Ray is an origin plus a normalized direction
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return V3Add(r.Origin, V3Scale(r.Dir, t))
}

const rayEpsilon = 1e-9

// RayTriangle intersects a ray with triangle (a,b,c) using Moller-Trumbore.
// Returns the ray parameter t and true on a front- or back-face hit with t > 0.
func RayTriangle(r Ray, a, b, c Vec3) (float64, bool) {
	ab := V3Sub(b, a)
	ac := V3Sub(c, a)

	p := V3Cross(r.Dir, ac)
	det := V3Dot(ab, p)
	if det > -rayEpsilon && det < rayEpsilon {
		return 0, false // parallel to triangle plane
	}
	invDet := 1.0 / det

	tv := V3Sub(r.Origin, a)
	u := V3Dot(tv, p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := V3Cross(tv, ab)
	v := V3Dot(r.Dir, q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := V3Dot(ac, q) * invDet
	if t <= rayEpsilon {
		return 0, false
	}
	return t, true
}

// RaySphere returns the near intersection parameter with a sphere, used as a
// cheap broad-phase reject before per-triangle tests
func RaySphere(r Ray, center Vec3, radius float64) (float64, bool) {
	oc := V3Sub(r.Origin, center)
	b := V3Dot(oc, r.Dir)
	c := V3MagSq(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	t := -b - sqrt(disc)
	if t <= 0 {
		// Origin inside the sphere still counts as a hit
		t = -b + sqrt(disc)
		if t <= 0 {
			return 0, false
		}
	}
	return t, true
}
