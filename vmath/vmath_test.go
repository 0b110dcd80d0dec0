package vmath

import (
	"math"
	"testing"
)

func TestV3RotateEulerRoundTrip(t *testing.T) {
	cases := []struct {
		v, r Vec3
	}{
		{Vec3{1, 0, 0}, Vec3{0.3, -1.1, 2.0}},
		{Vec3{0, 1, 0}, Vec3{math.Pi / 2, 0, 0}},
		{Vec3{-2.5, 0.4, 7}, Vec3{5.9, 0.01, -3.3}},
	}

	for i, c := range cases {
		got := V3RotateEulerInv(V3RotateEuler(c.v, c.r), c.r)
		if V3Dist(got, c.v) > 1e-12 {
			t.Errorf("case %d: round trip drifted: got %+v want %+v", i, got, c.v)
		}
	}
}

func TestV3RotateEulerPreservesLength(t *testing.T) {
	v := Vec3{1.2, -3.4, 0.7}
	r := Vec3{0.8, 1.9, -0.4}
	if diff := math.Abs(V3Mag(V3RotateEuler(v, r)) - V3Mag(v)); diff > 1e-12 {
		t.Errorf("rotation changed length by %g", diff)
	}
}

func TestRayTriangleHit(t *testing.T) {
	ray := Ray{Origin: Vec3{0.25, 0.25, -5}, Dir: Vec3{0, 0, 1}}
	tt, ok := RayTriangle(ray, Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0})
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(tt-5) > 1e-12 {
		t.Errorf("t = %g, want 5", tt)
	}
}

func TestRayTriangleMiss(t *testing.T) {
	ray := Ray{Origin: Vec3{2, 2, -5}, Dir: Vec3{0, 0, 1}}
	if _, ok := RayTriangle(ray, Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0}); ok {
		t.Error("expected miss outside triangle")
	}

	// Behind the origin
	back := Ray{Origin: Vec3{0.25, 0.25, 5}, Dir: Vec3{0, 0, 1}}
	if _, ok := RayTriangle(back, Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0}); ok {
		t.Error("expected miss behind ray origin")
	}
}

func TestRaySphere(t *testing.T) {
	ray := Ray{Origin: Vec3{0, 0, -10}, Dir: Vec3{0, 0, 1}}
	tt, ok := RaySphere(ray, Vec3{}, 2)
	if !ok || math.Abs(tt-8) > 1e-12 {
		t.Fatalf("near hit: t=%g ok=%v, want t=8", tt, ok)
	}

	// From inside, the far intersection counts
	inside := Ray{Origin: Vec3{}, Dir: Vec3{0, 0, 1}}
	tt, ok = RaySphere(inside, Vec3{}, 2)
	if !ok || math.Abs(tt-2) > 1e-12 {
		t.Fatalf("inside hit: t=%g ok=%v, want t=2", tt, ok)
	}

	if _, ok := RaySphere(ray, Vec3{50, 0, 0}, 2); ok {
		t.Error("expected miss for offset sphere")
	}
}

func TestApproachConverges(t *testing.T) {
	v := 0.0
	for i := 0; i < 600; i++ {
		v = Approach(v, 1, 8, 1.0/60)
		if v < 0 || v > 1 {
			t.Fatalf("left [0,1] at step %d: %g", i, v)
		}
	}
	if v < 0.999 {
		t.Errorf("did not converge: %g", v)
	}
}

func TestSmoothStepMonotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 100; i++ {
		v := SmoothStep(float64(i) / 100)
		if v < prev {
			t.Fatalf("not monotonic at %d: %g < %g", i, v, prev)
		}
		prev = v
	}
	if SmoothStep(0) != 0 || SmoothStep(1) != 1 {
		t.Error("endpoints must be 0 and 1")
	}
}

func TestFastRandDeterminism(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 1000; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("diverged at draw %d", i)
		}
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of [0,1): %g", f)
		}
	}
}
