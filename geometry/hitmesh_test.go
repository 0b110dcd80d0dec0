package geometry

import (
	"math"
	"testing"

	"github.com/lixenwraith/orbfolio/harmonics"
	"github.com/lixenwraith/orbfolio/vmath"
)

func TestRaycastPureSphere(t *testing.T) {
	m := NewHitMesh(10, 16)
	c := harmonics.Coeffs{2.0}
	m.Morph(&c)

	ray := vmath.Ray{Origin: vmath.Vec3{Z: -10}, Dir: vmath.Vec3{Z: 1}}
	hit, tt, ok := m.Raycast(ray)
	if !ok {
		t.Fatal("expected hit through sphere center")
	}
	// Faceted surface sits slightly inside the analytic sphere
	if tt < 7.5 || tt > 8.1 {
		t.Errorf("t = %g, want near 8 for radius-2 sphere", tt)
	}
	if r := vmath.V3Mag(hit); r < 1.9 || r > 2.01 {
		t.Errorf("hit at radius %g, want near 2", r)
	}
}

func TestRaycastMiss(t *testing.T) {
	m := NewHitMesh(8, 12)
	c := harmonics.Coeffs{1.0}
	m.Morph(&c)

	ray := vmath.Ray{Origin: vmath.Vec3{X: 5, Z: -10}, Dir: vmath.Vec3{Z: 1}}
	if _, _, ok := m.Raycast(ray); ok {
		t.Error("expected miss for offset ray")
	}
}

func TestRaycastNearestFace(t *testing.T) {
	m := NewHitMesh(10, 16)
	c := harmonics.Coeffs{1.0}
	m.Morph(&c)

	// A ray through the center crosses front and back faces; the near one wins
	ray := vmath.Ray{Origin: vmath.Vec3{Z: -5}, Dir: vmath.Vec3{Z: 1}}
	hit, _, ok := m.Raycast(ray)
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Z > 0 {
		t.Errorf("hit the far face at z=%g", hit.Z)
	}
}

func TestRaycastTracksDeformation(t *testing.T) {
	m := NewHitMesh(12, 18)
	rng := vmath.NewFastRand(31)
	c := harmonics.Random(1.0, 1.2, rng)
	m.Morph(&c)

	// Any center ray must land on the deformed surface, not the unit sphere
	ray := vmath.Ray{Origin: vmath.Vec3{Z: -20}, Dir: vmath.Vec3{Z: 1}}
	hit, _, ok := m.Raycast(ray)
	if !ok {
		t.Fatal("expected hit on deformed surface")
	}

	// The hit radius should match the harmonic displacement along -Z
	// (theta=pi/2, phi=-pi/2) within facet tolerance
	want := harmonics.Eval(math.Pi/2, -math.Pi/2, &c)
	if diff := math.Abs(vmath.V3Mag(hit) - math.Abs(want)); diff > 0.15 {
		t.Errorf("hit radius %g, analytic %g (diff %g)", vmath.V3Mag(hit), want, diff)
	}
}

func TestSharedCoefficientsKeepMeshesAligned(t *testing.T) {
	vis := NewPointSphere(24, 36)
	hit := NewHitMesh(10, 14)

	rng := vmath.NewFastRand(41)
	c := harmonics.Random(1.4, 0.9, rng)
	vis.Morph(&c)
	hit.Morph(&c)

	// Proxy vertices must lie on the same analytic surface as the visual
	// mesh: radius at each cached angle equals the harmonic evaluation there
	for i, a := range hit.Angles {
		want := math.Abs(harmonics.Eval(a.Theta, a.Phi, &c))
		got := vmath.V3Mag(hit.Positions[i])
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("proxy vertex %d off surface: %g vs %g", i, got, want)
		}
	}
}

func TestRaycastEmptyDeformedMeshSafe(t *testing.T) {
	m := NewHitMesh(2, 3) // minimum tessellation still raycasts safely
	c := harmonics.Coeffs{1}
	m.Morph(&c)
	ray := vmath.Ray{Origin: vmath.Vec3{Z: -3}, Dir: vmath.Vec3{Z: 1}}
	m.Raycast(ray) // must not panic
}
