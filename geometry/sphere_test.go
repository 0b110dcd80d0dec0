package geometry

import (
	"math"
	"testing"

	"github.com/lixenwraith/orbfolio/harmonics"
	"github.com/lixenwraith/orbfolio/vmath"
)

// Coefficients all-zero except the DC term reproduce the unit sphere scaled
// by that radius, exactly
func TestMorphPureSphere(t *testing.T) {
	s := NewPointSphere(12, 18)
	c := harmonics.Coeffs{1.5}
	s.Morph(&c)

	for i, p := range s.Positions {
		if diff := math.Abs(vmath.V3Mag(p) - 1.5); diff > 1e-12 {
			t.Fatalf("vertex %d at radius %g, want exactly 1.5", i, vmath.V3Mag(p))
		}
	}
}

func TestAnglesFixedAcrossMorphs(t *testing.T) {
	s := NewPointSphere(8, 12)
	before := make([]Angle, len(s.Angles))
	copy(before, s.Angles)

	rng := vmath.NewFastRand(11)
	for i := 0; i < 10; i++ {
		c := harmonics.Random(rng.Range(0.5, 3), 1, rng)
		s.Morph(&c)
	}

	for i := range before {
		if s.Angles[i] != before[i] {
			t.Fatalf("angle cache mutated at %d", i)
		}
	}
	if len(s.Angles) != len(before) {
		t.Fatal("angle cache length changed")
	}
}

func TestMorphDirtyFlag(t *testing.T) {
	s := NewPointSphere(6, 9)
	if s.Dirty() {
		t.Error("fresh sphere should not be dirty")
	}

	c := harmonics.Coeffs{1}
	s.Morph(&c)
	if !s.Dirty() {
		t.Error("morph must mark dirty")
	}
	s.ClearDirty()
	if s.Dirty() {
		t.Error("ClearDirty must reset the flag")
	}
}

func TestMorphReusesBuffers(t *testing.T) {
	s := NewPointSphere(8, 12)
	p0 := &s.Positions[0]

	for i := 0; i < 5; i++ {
		c := harmonics.Coeffs{float64(i + 1)}
		s.Morph(&c)
	}
	if p0 != &s.Positions[0] {
		t.Error("position buffer was reallocated")
	}
}

func TestBoundingRadiusCoversVertices(t *testing.T) {
	s := NewPointSphere(10, 16)
	rng := vmath.NewFastRand(21)
	c := harmonics.Random(1.2, 1.5, rng)
	s.Morph(&c)

	for i, p := range s.Positions {
		if vmath.V3Mag(p) > s.BoundingRadius()+1e-12 {
			t.Fatalf("vertex %d outside bounding radius", i)
		}
	}
}
