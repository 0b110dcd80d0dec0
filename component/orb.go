package component

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orbfolio/content"
	"github.com/lixenwraith/orbfolio/geometry"
	"github.com/lixenwraith/orbfolio/harmonics"
	"github.com/lixenwraith/orbfolio/vmath"
)

// Orb is one deformable point-cloud sphere representing a project. Created
// once at startup, mutated in place every frame, never destroyed
type Orb struct {
	// Identity, immutable
	Index   int
	Project content.Project

	// Geometry state. Visual and Hit share coefficients and base radius so
	// ray hits approximate the visible surface
	Visual *geometry.PointSphere
	Hit    *geometry.HitMesh

	Coeffs       harmonics.Coeffs
	CoeffsTarget harmonics.Coeffs
	BaseR        float64
	LerpT        float64 // 0..1 progress toward CoeffsTarget
	MorphSpeed   float64 // full morphs per second

	// Motion state, randomized per orb at creation
	Origin      vmath.Vec3
	SwayAmp     vmath.Vec3
	SwayFreq    vmath.Vec3
	SwayPhase   vmath.Vec3
	BreathAmp   float64
	BreathSpeed float64
	BreathPhase float64
	RotSpeed    vmath.Vec3
	PulseFreq1  float64
	PulseFreq2  float64
	PulseMix    float64
	PulsePhase  float64

	// Group transform, written by the animator, read by the renderer
	Position vmath.Vec3
	Rotation vmath.Vec3 // accumulated euler angles
	Scale    float64

	// Interaction state. Input handlers write these between ticks; the
	// animator folds them into uniforms on the next tick
	Hovered  bool
	HoverT   float64 // eased 0..1, never snaps
	HitLocal vmath.Vec3
	HasHit   bool
	Wave     Wave

	// Rendering state
	Uniforms Uniforms
	Label    Label
	Decor    Decoration

	// Rng drives this orb's morph retargeting; owning it per orb keeps
	// trajectories reproducible from the seed
	Rng *vmath.FastRand
}

// Uniforms mirrors the shader uniform block: the animator keeps it in sync
// each tick and the renderer consumes it at draw time
type Uniforms struct {
	Color   colorful.Color
	Opacity float64

	Glow   float64 // pulse brightness signal
	HoverT float64 // gates wave, noise and label intensities

	NoiseAmp  float64
	NoiseSeed float64

	WaveActive bool
	WaveTime   float64
	WaveCenter vmath.Vec3 // local space ripple origin
}

// SetColor applies a theme or accent change. Not part of the per-frame path
func (o *Orb) SetColor(c colorful.Color, opacity float64) {
	o.Uniforms.Color = c
	o.Uniforms.Opacity = opacity
}

// ClearHover resets all pointer-derived state; the wave keeps fading on its
// own timer
func (o *Orb) ClearHover() {
	o.Hovered = false
	o.HasHit = false
}

// SetHover marks the orb hovered and records the local-space hit point that
// seeds the ripple
func (o *Orb) SetHover(hitLocal vmath.Vec3) {
	o.Hovered = true
	o.HitLocal = hitLocal
	o.HasHit = true
}
