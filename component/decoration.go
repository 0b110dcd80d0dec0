package component

import (
	"math"

	"github.com/lixenwraith/orbfolio/vmath"
)

// DecorPoint is one decorative particle in orb-local space
type DecorPoint struct {
	Pos       vmath.Vec3
	Intensity float64 // 0..1 brightness scalar applied over the orb color
}

// Decoration is a purely cosmetic sub-mesh attached to an orb. Variants are
// explicit types selected per orb index through the constructor table below,
// not positional lookups
type Decoration interface {
	Kind() string
	Update(t, dt float64)
	Points(out []DecorPoint) []DecorPoint // appends local-space points
}

// DecorationFor picks the variant for an orb index. The table is the single
// dispatch point for decoration kinds
func DecorationFor(index int, baseR float64, rng *vmath.FastRand) Decoration {
	ctors := []func(float64, *vmath.FastRand) Decoration{
		newCoreGlow,
		newOrbitRing,
		newSatellites,
	}
	return ctors[index%len(ctors)](baseR, rng)
}

// --- Core glow: a dense cluster of faint points at the center ---

type CoreGlow struct {
	offsets []vmath.Vec3
	phase   float64
	pulse   float64
}

func newCoreGlow(baseR float64, rng *vmath.FastRand) Decoration {
	g := &CoreGlow{phase: rng.Range(0, 2*math.Pi)}
	for i := 0; i < 10; i++ {
		g.offsets = append(g.offsets, vmath.Vec3{
			X: rng.Centered(baseR * 0.18),
			Y: rng.Centered(baseR * 0.18),
			Z: rng.Centered(baseR * 0.18),
		})
	}
	return g
}

func (g *CoreGlow) Kind() string { return "core-glow" }

func (g *CoreGlow) Update(t, dt float64) {
	g.pulse = 0.5 + 0.5*math.Sin(t*1.3+g.phase)
}

func (g *CoreGlow) Points(out []DecorPoint) []DecorPoint {
	for _, off := range g.offsets {
		out = append(out, DecorPoint{Pos: off, Intensity: 0.35 + 0.45*g.pulse})
	}
	return out
}

// --- Orbit ring: a tilted circle of points spinning around the orb ---

type OrbitRing struct {
	radius float64
	tilt   float64
	spin   float64
	count  int
	angle  float64
}

func newOrbitRing(baseR float64, rng *vmath.FastRand) Decoration {
	return &OrbitRing{
		radius: baseR * rng.Range(1.5, 1.9),
		tilt:   rng.Range(0.2, 0.9),
		spin:   rng.Range(0.2, 0.6),
		count:  14,
	}
}

func (r *OrbitRing) Kind() string { return "orbit-ring" }

func (r *OrbitRing) Update(t, dt float64) {
	r.angle += r.spin * dt
}

func (r *OrbitRing) Points(out []DecorPoint) []DecorPoint {
	st, ct := math.Sincos(r.tilt)
	for i := 0; i < r.count; i++ {
		a := r.angle + float64(i)/float64(r.count)*2*math.Pi
		sa, ca := math.Sincos(a)
		p := vmath.Vec3{X: r.radius * ca, Y: r.radius * sa * st, Z: r.radius * sa * ct}
		out = append(out, DecorPoint{Pos: p, Intensity: 0.5})
	}
	return out
}

// --- Satellites: a few sparks on independent inclined orbits ---

type Satellites struct {
	radii  []float64
	speeds []float64
	incl   []float64
	angles []float64
}

func newSatellites(baseR float64, rng *vmath.FastRand) Decoration {
	s := &Satellites{}
	for i := 0; i < 3; i++ {
		s.radii = append(s.radii, baseR*rng.Range(1.4, 2.1))
		s.speeds = append(s.speeds, rng.Range(0.4, 1.2))
		s.incl = append(s.incl, rng.Range(0, math.Pi))
		s.angles = append(s.angles, rng.Range(0, 2*math.Pi))
	}
	return s
}

func (s *Satellites) Kind() string { return "satellites" }

func (s *Satellites) Update(t, dt float64) {
	for i := range s.angles {
		s.angles[i] += s.speeds[i] * dt
	}
}

func (s *Satellites) Points(out []DecorPoint) []DecorPoint {
	for i, r := range s.radii {
		sa, ca := math.Sincos(s.angles[i])
		si, ci := math.Sincos(s.incl[i])
		p := vmath.Vec3{X: r * ca, Y: r * sa * si, Z: r * sa * ci}
		out = append(out, DecorPoint{Pos: p, Intensity: 0.9})
	}
	return out
}
