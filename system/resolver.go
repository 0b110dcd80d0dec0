package system

import (
	"github.com/lixenwraith/orbfolio/audio"
	"github.com/lixenwraith/orbfolio/component"
	"github.com/lixenwraith/orbfolio/scene"
	"github.com/lixenwraith/orbfolio/vmath"
)

// View converts screen cells into orb-local rays; implemented by the
// renderer, faked in tests
type View interface {
	OrbRay(o *component.Orb, x, y int) vmath.Ray
}

// Resolver drives hover and focus state from pointer, touch and keyboard
// input. It operates in two modes: browse (no detail panel open, all orbs
// hoverable) and focus (one panel open, every other orb suppressed).
//
// Audio cues fire at transition edges only, never per event or per frame
type Resolver struct {
	scene *scene.Scene
	view  View
	cues  audio.Cues
}

// NewResolver wires the resolver to its collaborators
func NewResolver(s *scene.Scene, view View, cues audio.Cues) *Resolver {
	if cues == nil {
		cues = audio.NopCues{}
	}
	return &Resolver{scene: s, view: view, cues: cues}
}

// PointerMove resolves hover for the cell under the pointer. In browse mode
// the nearest ray intersection over all hit meshes wins; in focus mode only
// the focused orb is considered. An empty orb list simply resolves no hit
func (r *Resolver) PointerMove(x, y int) {
	target, hitLocal := r.pick(x, y)
	r.setHover(target, hitLocal, true)
}

// pick raycasts the pointer cell against eligible orbs and returns the
// nearest hit (standard nearest-t tie-break) with its local-space point
func (r *Resolver) pick(x, y int) (*component.Orb, vmath.Vec3) {
	var best *component.Orb
	var bestHit vmath.Vec3
	bestT := 0.0

	for _, o := range r.scene.Orbs {
		if r.scene.PanelOpen() && o.Index != r.scene.FocusIndex {
			continue
		}
		ray := r.view.OrbRay(o, x, y)
		hit, tLocal, ok := o.Hit.Raycast(ray)
		if !ok {
			continue
		}
		// Uniform scale maps local ray parameter to world distance
		tWorld := tLocal * orbScale(o)
		if best == nil || tWorld < bestT {
			best = o
			bestHit = hit
			bestT = tWorld
		}
	}
	return best, bestHit
}

func orbScale(o *component.Orb) float64 {
	if o.Scale == 0 {
		return 1
	}
	return o.Scale
}

// setHover applies the hover transition contract: clear the previous orb,
// set the new one with its hit point, fire the hover cue exactly once per
// transition. Moving within the same orb only refreshes the ripple origin
func (r *Resolver) setHover(target *component.Orb, hitLocal vmath.Vec3, cue bool) {
	prev := r.scene.HoveredOrb()

	if target == nil {
		if prev != nil {
			prev.ClearHover()
		}
		return
	}

	if prev == target {
		// Same orb: the ripple origin tracks the live cursor, no cue
		target.SetHover(hitLocal)
		return
	}

	if prev != nil {
		prev.ClearHover()
	}
	target.SetHover(hitLocal)
	target.Wave.Start()
	if cue {
		r.cues.Hover()
	}
}

// Click opens the hovered project in browse mode. In focus mode a click
// outside the panel bounds closes it; clicks inside are the panel's business
func (r *Resolver) Click(x, y int) {
	if r.scene.PanelOpen() {
		if !r.scene.PanelBounds.Contains(x, y) {
			r.CloseProject()
		}
		return
	}

	if o := r.scene.HoveredOrb(); o != nil {
		r.OpenProject(o.Index)
	}
}

// Tap treats a touch as an instantaneous hover plus click: no separate
// hover state survives the gesture
func (r *Resolver) Tap(x, y int) {
	if r.scene.PanelOpen() {
		r.Click(x, y)
		return
	}
	target, hitLocal := r.pick(x, y)
	if target == nil {
		if prev := r.scene.HoveredOrb(); prev != nil {
			prev.ClearHover()
		}
		return
	}
	r.setHover(target, hitLocal, false)
	r.OpenProject(target.Index)
}

// KeyNav cycles the keyboard selection by delta (+1/-1) when no panel is
// open, applying the same clear/set hover contract as pointer movement
func (r *Resolver) KeyNav(delta int) {
	if r.scene.PanelOpen() {
		return
	}
	n := len(r.scene.Orbs)
	if n == 0 {
		return
	}

	r.scene.NavIndex = ((r.scene.NavIndex+delta)%n + n) % n
	o := r.scene.Orbs[r.scene.NavIndex]

	// Keyboard hover seeds the ripple at the camera-facing pole
	r.setHover(o, vmath.Vec3{Z: -o.BaseR}, true)
}

// KeyEnter opens the keyboard-selected orb
func (r *Resolver) KeyEnter() {
	if r.scene.PanelOpen() {
		return
	}
	if o := r.scene.HoveredOrb(); o != nil {
		r.OpenProject(o.Index)
		return
	}
	if len(r.scene.Orbs) > 0 {
		r.OpenProject(r.scene.NavIndex)
	}
}

// OpenProject opens the detail panel for an orb and restarts its label
// typewriter. The click cue fires here, at the edge
func (r *Resolver) OpenProject(index int) {
	if index < 0 || index >= len(r.scene.Orbs) {
		return
	}
	o := r.scene.Orbs[index]

	// Focus suppresses hover everywhere else
	for _, other := range r.scene.Orbs {
		if other != o && other.Hovered {
			other.ClearHover()
		}
	}

	r.scene.FocusIndex = index
	r.scene.NavIndex = index
	o.Label.Reset()
	r.cues.Click()
}

// CloseProject dismisses the open panel
func (r *Resolver) CloseProject() {
	if !r.scene.PanelOpen() {
		return
	}
	r.scene.FocusIndex = -1
	r.scene.PanelBounds = scene.Rect{}
	r.cues.Close()
}
