package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/orbfolio/vmath"
)

func TestProjectCenter(t *testing.T) {
	c := NewCamera(10, 1.0, 80, 24)
	sx, sy, depth, behind := c.Project(vmath.Vec3{})
	if behind {
		t.Fatal("scene center is in front of the camera")
	}
	if math.Abs(sx-40) > 1e-9 || math.Abs(sy-12) > 1e-9 {
		t.Errorf("center projects to (%g,%g), want (40,12)", sx, sy)
	}
	if math.Abs(depth-10) > 1e-9 {
		t.Errorf("depth = %g, want 10", depth)
	}
}

func TestProjectScreenRayRoundTrip(t *testing.T) {
	c := NewCamera(14, 1.05, 120, 40)

	points := []vmath.Vec3{
		{X: 2, Y: 1, Z: 3},
		{X: -4, Y: -2, Z: 0},
		{X: 0.5, Y: 3, Z: -5},
	}
	for _, p := range points {
		sx, sy, _, behind := c.Project(p)
		if behind {
			t.Fatalf("point %+v unexpectedly behind camera", p)
		}
		ray := c.ScreenRay(sx, sy)

		// The ray must pass through the original point
		toP := vmath.V3Sub(p, ray.Origin)
		tt := vmath.V3Dot(toP, ray.Dir)
		closest := ray.At(tt)
		if vmath.V3Dist(closest, p) > 1e-9 {
			t.Errorf("ray misses %+v by %g", p, vmath.V3Dist(closest, p))
		}
	}
}

// Points behind the camera still yield a coordinate: no special-casing,
// no panic. Callers decide what to do with it
func TestProjectBehindCameraTotal(t *testing.T) {
	c := NewCamera(5, 1.0, 80, 24)
	sx, sy, _, behind := c.Project(vmath.Vec3{X: 1, Y: 1, Z: -20})
	if !behind {
		t.Error("point should report behind")
	}
	if math.IsNaN(sx) || math.IsNaN(sy) || math.IsInf(sx, 0) || math.IsInf(sy, 0) {
		t.Error("behind-camera projection must stay finite")
	}
}

func TestResize(t *testing.T) {
	c := NewCamera(10, 1.0, 80, 24)
	c.Resize(100, 50)
	sx, sy, _, _ := c.Project(vmath.Vec3{})
	if sx != 50 || sy != 25 {
		t.Errorf("center after resize: (%g,%g)", sx, sy)
	}
}
