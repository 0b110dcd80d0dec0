package scene

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/orbfolio/parameter"
	"github.com/lixenwraith/orbfolio/vmath"
)

// Star is one backdrop point. Base is fixed; Pos drifts with the noise field
type Star struct {
	Base      vmath.Vec3
	Pos       vmath.Vec3
	Intensity float64
}

// Starfield is the decorative backdrop: a shell of points drifting slowly
// through an opensimplex field. Non-interactive; raycasts never consult it
type Starfield struct {
	Stars []Star
	noise opensimplex.Noise
}

// NewStarfield scatters count stars over a spherical shell
func NewStarfield(count int, seed uint64) *Starfield {
	rng := vmath.NewFastRand(seed)
	f := &Starfield{noise: opensimplex.New(int64(seed))}

	for i := 0; i < count; i++ {
		// Uniform direction by normalizing a cube sample
		dir := vmath.V3Normalize(vmath.Vec3{
			X: rng.Centered(1),
			Y: rng.Centered(1),
			Z: rng.Centered(1),
		})
		if dir == (vmath.Vec3{}) {
			dir = vmath.Vec3{Y: 1}
		}
		base := vmath.V3Scale(dir, rng.Range(parameter.StarShellMin, parameter.StarShellMax))
		f.Stars = append(f.Stars, Star{
			Base:      base,
			Pos:       base,
			Intensity: rng.Range(0.15, 0.7),
		})
	}
	return f
}

// Update drifts every star through the noise field. Cheap: three noise
// evaluations per star at a slow rate
func (f *Starfield) Update(t float64) {
	nt := t * parameter.StarDriftRate
	for i := range f.Stars {
		s := &f.Stars[i]
		s.Pos = vmath.Vec3{
			X: s.Base.X + parameter.StarDriftAmp*f.noise.Eval3(s.Base.X*0.05, s.Base.Y*0.05, nt),
			Y: s.Base.Y + parameter.StarDriftAmp*f.noise.Eval3(s.Base.Y*0.05, s.Base.Z*0.05, nt+31),
			Z: s.Base.Z + parameter.StarDriftAmp*f.noise.Eval3(s.Base.Z*0.05, s.Base.X*0.05, nt+67),
		}
	}
}

// twinkle support for the renderer
func (f *Starfield) Twinkle(i int, t float64) float64 {
	s := &f.Stars[i]
	return s.Intensity * (0.75 + 0.25*math.Sin(t*1.7+float64(i)))
}
