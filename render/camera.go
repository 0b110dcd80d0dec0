package render

import (
	"math"

	"github.com/lixenwraith/orbfolio/vmath"
)

// cellAspect compensates terminal cells being roughly twice as tall as wide
const cellAspect = 2.0

// Camera is a fixed pinhole looking down +Z from negative Z toward the
// scene center. Screen coordinates are terminal cells, origin top-left,
// y growing downward
type Camera struct {
	Pos vmath.Vec3
	FOV float64 // vertical field of view, radians

	W, H int // screen size in cells
}

// NewCamera places the camera at distance d on -Z
func NewCamera(d, fov float64, w, h int) *Camera {
	return &Camera{
		Pos: vmath.Vec3{Z: -d},
		FOV: fov,
		W:   w,
		H:   h,
	}
}

// Resize updates the screen extent
func (c *Camera) Resize(w, h int) {
	c.W = w
	c.H = h
}

func (c *Camera) focal() float64 {
	return float64(c.H) / 2 / math.Tan(c.FOV/2)
}

// Project maps a world point to fractional screen cells plus view depth.
// Points behind the camera still produce a coordinate (behind=true, mirrored
// perspective); callers downstream decide whether to draw. No clamping
func (c *Camera) Project(p vmath.Vec3) (sx, sy, depth float64, behind bool) {
	d := vmath.V3Sub(p, c.Pos)
	depth = d.Z
	behind = depth <= 0

	z := depth
	if behind {
		// Keep the math total: mirror through the tiny epsilon plane
		z = 1e-6
	}
	f := c.focal()
	sx = float64(c.W)/2 + d.X/z*f*cellAspect/2
	sy = float64(c.H)/2 - d.Y/z*f
	return sx, sy, depth, behind
}

// ScreenRay inverts Project: the world-space ray through a screen cell.
// An empty scene behind it simply yields no intersections
func (c *Camera) ScreenRay(sx, sy float64) vmath.Ray {
	f := c.focal()
	dir := vmath.V3Normalize(vmath.Vec3{
		X: (sx - float64(c.W)/2) / (f * cellAspect / 2),
		Y: -(sy - float64(c.H)/2) / f,
		Z: 1,
	})
	return vmath.Ray{Origin: c.Pos, Dir: dir}
}
