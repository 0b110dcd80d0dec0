package component

import (
	"github.com/lixenwraith/orbfolio/parameter"
)

// Wave is the per-orb ripple state machine: idle -> active on hover start,
// fading once the pointer leaves, back to idle when the fade window elapses.
// The CPU side only manages timing; per-vertex ripple math lives in the
// renderer
type Wave struct {
	Active  bool
	Elapsed float64 // seconds since activation, fed to the renderer

	fadeFor float64 // seconds spent unhovered while still active
}

// Start activates the ripple, restarting the clock on re-hover
func (w *Wave) Start() {
	w.Active = true
	w.Elapsed = 0
	w.fadeFor = 0
}

// Update advances the wave clock. While hovered the fade timer stays pinned
// at zero; after hover ends the wave expires once the fade window passes
func (w *Wave) Update(dt float64, hovered bool) {
	if !w.Active {
		return
	}
	w.Elapsed += dt

	if hovered {
		w.fadeFor = 0
		return
	}
	w.fadeFor += dt
	if w.fadeFor > parameter.WaveFadeSeconds {
		w.Active = false
	}
}
