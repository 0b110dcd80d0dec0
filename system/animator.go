package system

import (
	"math"

	"github.com/lixenwraith/orbfolio/component"
	"github.com/lixenwraith/orbfolio/harmonics"
	"github.com/lixenwraith/orbfolio/parameter"
	"github.com/lixenwraith/orbfolio/scene"
	"github.com/lixenwraith/orbfolio/vmath"
)

// Animator advances every orb's continuous motion once per rendered frame
// and keeps shader uniforms in sync. It owns the scene clock; pausing stops
// the clock without tearing down any state
type Animator struct {
	scene *scene.Scene

	time   float64 // accumulated scene seconds
	paused bool

	// orbPanics counts per-orb update failures; one misbehaving orb must
	// never halt the frame loop
	orbPanics int
}

// NewAnimator creates the animator for a scene
func NewAnimator(s *scene.Scene) *Animator {
	return &Animator{scene: s}
}

// Time returns the accumulated scene time in seconds
func (a *Animator) Time() float64 {
	return a.time
}

// TogglePause flips the clock, returning the new paused state
func (a *Animator) TogglePause() bool {
	a.paused = !a.paused
	return a.paused
}

// Paused reports whether the clock is stopped
func (a *Animator) Paused() bool {
	return a.paused
}

// OrbPanics returns how many per-orb updates have been isolated so far
func (a *Animator) OrbPanics() int {
	return a.orbPanics
}

// Update ticks the whole scene by dt seconds. Hover and focus flags written
// by input handlers before this call are folded into eased values and
// uniforms here, so every input mutation is visible on the next tick
func (a *Animator) Update(dt float64) {
	if a.paused || dt <= 0 {
		return
	}
	a.time += dt

	if a.scene.Stars != nil {
		a.scene.Stars.Update(a.time)
	}

	for _, o := range a.scene.Orbs {
		a.updateOrb(o, dt)
	}
}

// updateOrb isolates one orb's update so a panic in one orb's math cannot
// take down the rest of the frame
func (a *Animator) updateOrb(o *component.Orb, dt float64) {
	defer func() {
		if r := recover(); r != nil {
			a.orbPanics++
		}
	}()
	a.tickOrb(o, dt)
}

func (a *Animator) tickOrb(o *component.Orb, dt float64) {
	t := a.time

	// Coefficient interpolation: continuous, infinite. When the lerp
	// completes the target becomes current and a fresh target is drawn
	o.LerpT += o.MorphSpeed * dt
	if o.LerpT >= 1 {
		o.Coeffs = o.CoeffsTarget
		o.CoeffsTarget = harmonics.Random(o.BaseR, parameter.MorphAmp*o.BaseR, o.Rng)
		o.LerpT = 0
	}

	var c harmonics.Coeffs
	harmonics.LerpEased(&c, &o.Coeffs, &o.CoeffsTarget, o.LerpT)
	o.Visual.Morph(&c)
	o.Hit.Morph(&c)

	// Sway: 3-axis Lissajous around the origin, never synchronized
	o.Position = vmath.Vec3{
		X: o.Origin.X + o.SwayAmp.X*math.Sin(t*o.SwayFreq.X+o.SwayPhase.X),
		Y: o.Origin.Y + o.SwayAmp.Y*math.Sin(t*o.SwayFreq.Y+o.SwayPhase.Y),
		Z: o.Origin.Z + o.SwayAmp.Z*math.Sin(t*o.SwayFreq.Z+o.SwayPhase.Z),
	}

	// Breathing: uniform multiplicative radius pulsing
	o.Scale = 1 + o.BreathAmp*math.Sin(t*o.BreathSpeed+o.BreathPhase)

	// Rotation: constant per-axis angular velocity
	o.Rotation = vmath.V3Add(o.Rotation, vmath.V3Scale(o.RotSpeed, dt))

	// Pulse glow: two mixed sines with per-orb phase
	p1 := math.Sin(t*o.PulseFreq1 + o.PulsePhase)
	p2 := math.Sin(t*o.PulseFreq2 + o.PulsePhase*1.7)
	glow := 0.5 + 0.5*(p1*(1-o.PulseMix)+p2*o.PulseMix)

	// Hover easing: exponential convergence, never a snap
	target := 0.0
	if o.Hovered {
		target = 1
	}
	o.HoverT = vmath.Approach(o.HoverT, target, parameter.HoverEaseRate, dt)

	// Wave ripple timing; the ripple origin tracks the live cursor
	o.Wave.Update(dt, o.Hovered)
	if o.Hovered && o.HasHit {
		o.Uniforms.WaveCenter = o.HitLocal
	}

	// Label typewriter runs while this orb's panel is open
	if a.scene.FocusIndex == o.Index {
		o.Label.Advance(dt)
	}

	if o.Decor != nil {
		o.Decor.Update(t, dt)
	}

	// Uniform sync closes the tick: the renderer reads a consistent block
	o.Uniforms.Glow = glow
	o.Uniforms.HoverT = o.HoverT
	o.Uniforms.NoiseAmp = vmath.Lerp(parameter.NoiseAmpIdle, parameter.NoiseAmpHover, o.HoverT)
	o.Uniforms.WaveActive = o.Wave.Active
	o.Uniforms.WaveTime = o.Wave.Elapsed
}
