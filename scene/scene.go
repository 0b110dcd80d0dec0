package scene

import (
	"math"

	"github.com/lixenwraith/orbfolio/component"
	"github.com/lixenwraith/orbfolio/content"
	"github.com/lixenwraith/orbfolio/parameter"
	"github.com/lixenwraith/orbfolio/vmath"
)

// Rect is a screen-space rectangle in cell coordinates
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Scene owns every orb and the shared focus state. It is built once at
// startup and passed explicitly to the resolver, animator and renderer;
// there is no ambient global state
type Scene struct {
	Orbs []*component.Orb

	// FocusIndex is the orb whose detail panel is open, -1 for none.
	// While set, hover is suppressed on every other orb
	FocusIndex int

	// NavIndex is the keyboard selection cursor over orbs
	NavIndex int

	// PanelBounds is where the renderer last drew the detail panel; the
	// resolver uses it to distinguish inside from outside clicks
	PanelBounds Rect

	Stars *Starfield
}

// New constructs the scene: one orb per project, arranged on a ring unless
// the project pins an explicit origin. The seed fans out to per-orb
// generators so any single orb's trajectory is reproducible
func New(projects []content.Project, spacing float64, seed uint64, starfield bool) *Scene {
	s := &Scene{
		FocusIndex: -1,
	}

	n := len(projects)
	for i, p := range projects {
		var origin vmath.Vec3
		if p.Origin != nil {
			origin = vmath.Vec3{X: p.Origin[0], Y: p.Origin[1], Z: p.Origin[2]}
		} else if n > 0 {
			// Default layout: a slightly tilted ring around the center
			a := float64(i) / float64(n) * 2 * math.Pi
			ringR := spacing * float64(n) / (2 * math.Pi)
			if ringR < spacing {
				ringR = spacing
			}
			origin = vmath.Vec3{
				X: ringR * math.Cos(a),
				Y: ringR * 0.25 * math.Sin(2*a),
				Z: ringR * math.Sin(a) * 0.35,
			}
		}
		s.Orbs = append(s.Orbs, NewOrb(p, i, origin, seed+uint64(i)*0x9e3779b97f4a7c15))
	}

	if starfield {
		s.Stars = NewStarfield(parameter.StarCount, seed^0xdeadbeef)
	}
	return s
}

// PanelOpen reports whether any detail panel is open
func (s *Scene) PanelOpen() bool {
	return s.FocusIndex >= 0
}

// FocusedOrb returns the orb with an open panel, or nil
func (s *Scene) FocusedOrb() *component.Orb {
	if s.FocusIndex < 0 || s.FocusIndex >= len(s.Orbs) {
		return nil
	}
	return s.Orbs[s.FocusIndex]
}

// HoveredOrb returns the currently hovered orb, or nil
func (s *Scene) HoveredOrb() *component.Orb {
	for _, o := range s.Orbs {
		if o.Hovered {
			return o
		}
	}
	return nil
}
