package parameter

// Orb Geometry
const (
	// OrbMinRows/OrbMaxRows bound the random tessellation of the visual
	// point sphere; variety without blowing the per-frame morph budget
	OrbMinRows = 18
	OrbMaxRows = 28

	// Columns track rows at a fixed ratio to keep vertex density even
	OrbColsPerRow = 3 / 2.0

	// OrbMinRadius/OrbMaxRadius bound the random base radius
	OrbMinRadius = 1.1
	OrbMaxRadius = 1.8

	// HitMeshRows/HitMeshCols fix the low-res raycast proxy tessellation
	HitMeshRows = 10
	HitMeshCols = 14
)

// Morphing
const (
	// MorphAmp controls the magnitude of non-DC harmonic draws
	MorphAmp = 0.55

	// MorphSpeedMin/Max bound per-orb lerp speed (full morphs per second)
	MorphSpeedMin = 0.10
	MorphSpeedMax = 0.22
)

// Sway (3-axis Lissajous around the origin)
const (
	SwayAmpMin  = 0.25
	SwayAmpMax  = 0.80
	SwayFreqMin = 0.08
	SwayFreqMax = 0.30
)

// Breathing (uniform radius pulsing)
const (
	BreathAmpMin   = 0.015
	BreathAmpMax   = 0.050
	BreathSpeedMin = 0.4
	BreathSpeedMax = 1.1
)

// Rotation (constant per-axis angular velocity, rad/s)
const (
	RotSpeedMax = 0.25
)

// Pulse glow (two mixed sines)
const (
	PulseFreqMin = 0.5
	PulseFreqMax = 2.2
)

// Interaction
const (
	// HoverEaseRate is the per-second exponential convergence rate of hoverT
	HoverEaseRate = 8.0

	// WaveFadeSeconds is how long the ripple keeps animating after the
	// pointer leaves the orb
	WaveFadeSeconds = 2.5

	// WaveSpeed and WaveDecay shape the renderer's ripple displacement
	WaveSpeed = 6.0
	WaveDecay = 1.8
	WaveAmp   = 0.22
)

// Label typewriter
const (
	// LabelRevealRate is revealed dots per second
	LabelRevealRate = 24.0
)

// Surface noise (perlin shimmer fed to the renderer)
const (
	NoiseAmpIdle  = 0.02
	NoiseAmpHover = 0.09
	NoiseScale    = 1.6
)

// Scene layout
const (
	// OrbSpacing is the nominal distance between orb origins on the ring
	OrbSpacing = 5.0

	// OriginJitter is the random offset applied to computed origins
	OriginJitter = 0.9

	// CameraDistance along -Z from the scene center
	CameraDistance = 14.0

	// CameraFOV is the vertical field of view in radians
	CameraFOV = 1.05
)

// Starfield backdrop
const (
	StarCount     = 160
	StarShellMin  = 18.0
	StarShellMax  = 34.0
	StarDriftAmp  = 1.2
	StarDriftRate = 0.05
)
