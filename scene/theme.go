package scene

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Theme is a named accent palette applied to the whole orb set at once.
// Applying a theme touches only the color uniforms; geometry, motion and
// interaction state are untouched
type Theme struct {
	Name    string
	Hues    []float64 // degrees, cycled over orbs
	Chroma  float64
	Light   float64
	Opacity float64
}

// Themes holds the built-in palettes in cycle order. The first entry matches
// the accents orbs are created with
var Themes = []Theme{
	{Name: "spectrum", Hues: nil, Chroma: 0.6, Light: 0.7, Opacity: 0.85},
	{Name: "ember", Hues: []float64{12, 28, 42, 58}, Chroma: 0.65, Light: 0.65, Opacity: 0.9},
	{Name: "abyss", Hues: []float64{210, 235, 255, 190}, Chroma: 0.5, Light: 0.6, Opacity: 0.85},
	{Name: "moss", Hues: []float64{95, 130, 155, 75}, Chroma: 0.45, Light: 0.65, Opacity: 0.85},
	{Name: "mono", Hues: []float64{0}, Chroma: 0.0, Light: 0.75, Opacity: 0.8},
}

// ApplyTheme recolors every orb from the palette. A nil hue list means the
// default evenly-spread spectrum
func ApplyTheme(s *Scene, th Theme) {
	for _, o := range s.Orbs {
		var c colorful.Color
		if len(th.Hues) == 0 {
			c = defaultAccent(o.Index)
		} else {
			c = colorful.Hcl(th.Hues[o.Index%len(th.Hues)], th.Chroma, th.Light)
		}
		o.SetColor(c, th.Opacity)
	}
}
