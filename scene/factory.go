package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orbfolio/component"
	"github.com/lixenwraith/orbfolio/content"
	"github.com/lixenwraith/orbfolio/geometry"
	"github.com/lixenwraith/orbfolio/harmonics"
	"github.com/lixenwraith/orbfolio/parameter"
	"github.com/lixenwraith/orbfolio/vmath"
)

// NewOrb builds one orb from a project descriptor. Everything random is
// drawn from a generator owned by the orb, so two orbs built with the same
// seed are identical and follow identical trajectories.
//
// Tessellation and radius are randomized within bounded ranges for variety;
// motion parameters are independently randomized so no two orbs move alike
func NewOrb(p content.Project, index int, origin vmath.Vec3, seed uint64) *component.Orb {
	rng := vmath.NewFastRand(seed)

	rows := parameter.OrbMinRows + rng.Intn(parameter.OrbMaxRows-parameter.OrbMinRows+1)
	cols := int(float64(rows) * parameter.OrbColsPerRow)
	baseR := rng.Range(parameter.OrbMinRadius, parameter.OrbMaxRadius)
	amp := parameter.MorphAmp * baseR

	o := &component.Orb{
		Index:   index,
		Project: p,

		Visual: geometry.NewPointSphere(rows, cols),
		Hit:    geometry.NewHitMesh(parameter.HitMeshRows, parameter.HitMeshCols),

		BaseR:      baseR,
		MorphSpeed: rng.Range(parameter.MorphSpeedMin, parameter.MorphSpeedMax),

		Origin: vmath.Vec3{
			X: origin.X + rng.Centered(parameter.OriginJitter),
			Y: origin.Y + rng.Centered(parameter.OriginJitter),
			Z: origin.Z + rng.Centered(parameter.OriginJitter),
		},
		SwayAmp: vmath.Vec3{
			X: rng.Range(parameter.SwayAmpMin, parameter.SwayAmpMax),
			Y: rng.Range(parameter.SwayAmpMin, parameter.SwayAmpMax),
			Z: rng.Range(parameter.SwayAmpMin, parameter.SwayAmpMax),
		},
		SwayFreq: vmath.Vec3{
			X: rng.Range(parameter.SwayFreqMin, parameter.SwayFreqMax),
			Y: rng.Range(parameter.SwayFreqMin, parameter.SwayFreqMax),
			Z: rng.Range(parameter.SwayFreqMin, parameter.SwayFreqMax),
		},
		SwayPhase: vmath.Vec3{
			X: rng.Range(0, 2*math.Pi),
			Y: rng.Range(0, 2*math.Pi),
			Z: rng.Range(0, 2*math.Pi),
		},
		BreathAmp:   rng.Range(parameter.BreathAmpMin, parameter.BreathAmpMax),
		BreathSpeed: rng.Range(parameter.BreathSpeedMin, parameter.BreathSpeedMax),
		BreathPhase: rng.Range(0, 2*math.Pi),
		RotSpeed: vmath.Vec3{
			X: rng.Centered(parameter.RotSpeedMax),
			Y: rng.Centered(parameter.RotSpeedMax),
			Z: rng.Centered(parameter.RotSpeedMax),
		},
		PulseFreq1: rng.Range(parameter.PulseFreqMin, parameter.PulseFreqMax),
		PulseFreq2: rng.Range(parameter.PulseFreqMin, parameter.PulseFreqMax),
		PulseMix:   rng.Float64(),
		PulsePhase: rng.Range(0, 2*math.Pi),

		Scale: 1,
		Label: component.NewLabel(p.DisplayName()),
		Rng:   rng,
	}

	o.Coeffs = harmonics.Random(baseR, amp, rng)
	o.CoeffsTarget = harmonics.Random(baseR, amp, rng)
	o.Decor = component.DecorationFor(index, baseR, rng)

	// Initial surface so raycasts work before the first animator tick
	o.Visual.Morph(&o.Coeffs)
	o.Hit.Morph(&o.Coeffs)

	o.Uniforms = component.Uniforms{
		Color:     defaultAccent(index),
		Opacity:   0.85,
		NoiseAmp:  parameter.NoiseAmpIdle,
		NoiseSeed: rng.Range(0, 1000),
	}
	o.Position = o.Origin
	return o
}

// defaultAccent spreads hues evenly over the orb set
func defaultAccent(index int) colorful.Color {
	return colorful.Hcl(float64(index*67%360), 0.6, 0.7)
}
