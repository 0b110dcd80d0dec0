package render

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orbfolio/component"
	"github.com/lixenwraith/orbfolio/parameter"
	"github.com/lixenwraith/orbfolio/scene"
	"github.com/lixenwraith/orbfolio/vmath"
)

// cell is one entry of the depth-composited frame buffer
type cell struct {
	depth     float64
	intensity float64
	color     colorful.Color
	ch        rune
	set       bool
}

// Renderer composites the scene into a cell buffer and flushes it to the
// terminal. It owns all per-vertex "shader" math: wave ripple displacement,
// noise shimmer and glow are computed here at draw time from orb uniforms;
// the animator only keeps those uniforms in sync
type Renderer struct {
	screen tcell.Screen
	Camera *Camera

	buf  []cell
	w, h int

	noise *perlin.Perlin

	// scratch decoration buffer, reused across orbs
	decor []component.DecorPoint
}

// New creates a renderer over an initialized screen
func New(screen tcell.Screen, cam *Camera) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		Camera: cam,
		buf:    make([]cell, w*h),
		w:      w,
		h:      h,
		noise:  perlin.NewPerlin(2, 2, 3, 1613),
	}
}

// Resize follows a terminal resize, reallocating the composite buffer once
func (r *Renderer) Resize(w, h int) {
	r.w, r.h = w, h
	r.buf = make([]cell, w*h)
	r.Camera.Resize(w, h)
}

// Frame draws one complete frame: backdrop, orbs, labels, HUD and the
// detail panel (which also publishes its bounds for outside-click tests)
func (r *Renderer) Frame(s *scene.Scene, t float64) {
	for i := range r.buf {
		r.buf[i] = cell{}
	}

	if s.Stars != nil {
		r.drawStars(s, t)
	}
	for _, o := range s.Orbs {
		r.drawOrb(o, t)
	}

	r.flush()

	// Overlays draw directly: they sit above the composite
	r.drawLabels(s)
	r.drawHUD(s)
	r.drawPanel(s)

	r.screen.Show()
}

func (r *Renderer) plot(sx, sy, depth, intensity float64, col colorful.Color, ch rune) {
	x, y := int(sx), int(sy)
	if x < 0 || x >= r.w || y < 0 || y >= r.h || depth <= 0 {
		return
	}
	c := &r.buf[y*r.w+x]
	if c.set && c.depth < depth {
		return
	}
	*c = cell{depth: depth, intensity: intensity, color: col, ch: ch, set: true}
}

func (r *Renderer) flush() {
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			c := &r.buf[y*r.w+x]
			if !c.set {
				r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
				continue
			}
			ch := c.ch
			if ch == 0 {
				ch = densityFor(c.intensity)
			}
			cr, cg, cb := c.color.RGB255()
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb)))
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// --- orbs ---

func (r *Renderer) drawOrb(o *component.Orb, t float64) {
	u := &o.Uniforms

	// Brightness from pulse glow and hover, shared across vertices
	base := 0.45 + 0.35*u.Glow + 0.25*u.HoverT
	col := shade(u.Color, u.Glow, u.HoverT)

	for _, p := range o.Visual.Positions {
		lp := r.displace(p, o, t)
		wp := r.toWorld(lp, o)

		sx, sy, depth, behind := r.Camera.Project(wp)
		if behind {
			continue
		}

		// Depth cue: vertices on the far side dim toward the backdrop
		facing := 0.6 + 0.4*vmath.Clamp01(1-(wp.Z-o.Position.Z)/(o.BaseR*2))
		r.plot(sx, sy, depth, vmath.Clamp01(base*facing*u.Opacity), col, 0)
	}
	o.Visual.ClearDirty()

	if o.Decor != nil {
		r.decor = o.Decor.Points(r.decor[:0])
		for _, dp := range r.decor {
			wp := r.toWorld(dp.Pos, o)
			sx, sy, depth, behind := r.Camera.Project(wp)
			if behind {
				continue
			}
			r.plot(sx, sy, depth, dp.Intensity*u.Opacity, col, '·')
		}
	}
}

// displace applies the per-vertex surface effects in orb-local space: the
// wave ripple radiating from the last hit point and the perlin shimmer.
// This is the shader half of the wave state machine
func (r *Renderer) displace(p vmath.Vec3, o *component.Orb, t float64) vmath.Vec3 {
	u := &o.Uniforms

	if u.NoiseAmp > 0 {
		n := r.noise.Noise3D(
			p.X*parameter.NoiseScale+u.NoiseSeed,
			p.Y*parameter.NoiseScale,
			p.Z*parameter.NoiseScale+t*0.4,
		)
		p = vmath.V3Scale(p, 1+n*u.NoiseAmp)
	}

	if u.WaveActive {
		d := vmath.V3Dist(p, u.WaveCenter)
		env := math.Exp(-parameter.WaveDecay * d)
		gate := 0.25 + 0.75*u.HoverT
		disp := parameter.WaveAmp * gate * env *
			math.Sin(d*4-u.WaveTime*parameter.WaveSpeed)
		if mag := vmath.V3Mag(p); mag > 1e-9 {
			p = vmath.V3Scale(p, 1+disp/mag)
		}
	}
	return p
}

func (r *Renderer) toWorld(lp vmath.Vec3, o *component.Orb) vmath.Vec3 {
	p := vmath.V3RotateEuler(lp, o.Rotation)
	p = vmath.V3Scale(p, o.Scale)
	return vmath.V3Add(p, o.Position)
}

// OrbRay converts a screen cell to a local-space ray for one orb, matching
// the forward transform used at draw time. The resolver raycasts with it
func (r *Renderer) OrbRay(o *component.Orb, x, y int) vmath.Ray {
	ray := r.Camera.ScreenRay(float64(x)+0.5, float64(y)+0.5)

	origin := vmath.V3Sub(ray.Origin, o.Position)
	scale := o.Scale
	if scale == 0 {
		scale = 1
	}
	origin = vmath.V3Scale(origin, 1/scale)
	origin = vmath.V3RotateEulerInv(origin, o.Rotation)
	dir := vmath.V3RotateEulerInv(ray.Dir, o.Rotation)
	return vmath.Ray{Origin: origin, Dir: vmath.V3Normalize(dir)}
}

// ScreenPos projects an orb's center to fractional cells; used for label and
// HUD placement. Off-screen and behind-camera positions still report a
// coordinate
func (r *Renderer) ScreenPos(o *component.Orb) (float64, float64) {
	sx, sy, _, _ := r.Camera.Project(o.Position)
	return sx, sy
}

// --- backdrop ---

func (r *Renderer) drawStars(s *scene.Scene, t float64) {
	dim := colorful.Color{R: 0.5, G: 0.55, B: 0.65}
	for i := range s.Stars.Stars {
		st := &s.Stars.Stars[i]
		sx, sy, depth, behind := r.Camera.Project(st.Pos)
		if behind {
			continue
		}
		tw := s.Stars.Twinkle(i, t)
		ch := starChars[0]
		if tw > 0.45 {
			ch = starChars[1]
		}
		if tw > 0.6 {
			ch = starChars[2]
		}
		r.plot(sx, sy, depth, tw, dim, ch)
	}
}

// --- overlays ---

func (r *Renderer) drawLabels(s *scene.Scene) {
	o := s.HoveredOrb()
	if o == nil {
		o = s.FocusedOrb()
	}
	if o == nil {
		return
	}

	text := o.Label.Visible()
	if s.FocusIndex != o.Index {
		// Outside an open panel the full name shows immediately; the
		// typewriter reveal runs while a panel is open
		text = o.Project.DisplayName()
	}
	if text == "" {
		return
	}

	sx, sy := r.ScreenPos(o)
	x := int(sx) - len([]rune(text))/2
	y := int(sy) - int(float64(r.h)/6) - 1

	style := styleFor(o.Uniforms.Color).Bold(true)
	r.drawText(x, y, text, style)
}

func (r *Renderer) drawHUD(s *scene.Scene) {
	var status string
	if o := s.FocusedOrb(); o != nil {
		sx, sy := r.ScreenPos(o)
		status = fmt.Sprintf(" [%s] open  (%.0f,%.0f)  esc: close ", o.Project.DisplayName(), sx, sy)
	} else if o := s.HoveredOrb(); o != nil {
		sx, sy := r.ScreenPos(o)
		status = fmt.Sprintf(" %s  (%.0f,%.0f)  click/enter: open ", o.Project.DisplayName(), sx, sy)
	} else {
		status = " orbfolio  arrows: browse  enter: open  q: quit "
	}
	r.drawText(0, r.h-1, status, tcell.StyleDefault.Dim(true))
}

// drawPanel renders the detail view for the focused orb and records its
// bounds so the resolver can tell inside from outside clicks
func (r *Renderer) drawPanel(s *scene.Scene) {
	o := s.FocusedOrb()
	if o == nil {
		s.PanelBounds = scene.Rect{}
		return
	}

	w := r.w / 3
	if w < 24 {
		w = 24
	}
	if w > r.w {
		w = r.w
	}
	h := r.h - 4
	x := r.w - w - 1
	y := 2
	s.PanelBounds = scene.Rect{X: x, Y: y, W: w, H: h}

	style := tcell.StyleDefault
	for py := y; py < y+h && py < r.h; py++ {
		for px := x; px < x+w && px < r.w; px++ {
			r.screen.SetContent(px, py, ' ', nil, style)
		}
	}

	accent := styleFor(o.Uniforms.Color)
	line := y + 1
	r.drawText(x+2, line, o.Label.Visible(), accent.Bold(true))
	line += 2
	r.drawText(x+2, line, "["+o.Project.Tag+"]", style.Dim(true))
	line += 2
	for _, tech := range o.Project.Techs {
		r.drawText(x+2, line, "- "+tech, style)
		line++
	}
	line++
	line = r.drawWrapped(x+2, line, w-4, o.Project.Description, style)
	line++
	r.drawText(x+2, line, o.Project.Link, style.Underline(true))
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	if y < 0 || y >= r.h {
		return
	}
	for i, ch := range []rune(text) {
		px := x + i
		if px < 0 || px >= r.w {
			continue
		}
		r.screen.SetContent(px, y, ch, nil, style)
	}
}

func (r *Renderer) drawWrapped(x, y, w int, text string, style tcell.Style) int {
	if w <= 0 {
		return y
	}
	words := []rune(text)
	for len(words) > 0 && y < r.h {
		n := w
		if n > len(words) {
			n = len(words)
		}
		r.drawText(x, y, string(words[:n]), style)
		words = words[n:]
		y++
	}
	return y
}

// shade blends the orb color toward white with glow and hover intensity
func shade(c colorful.Color, glow, hoverT float64) colorful.Color {
	white := colorful.Color{R: 1, G: 1, B: 1}
	return c.BlendLab(white, vmath.Clamp01(0.15*glow+0.35*hoverT))
}

func styleFor(c colorful.Color) tcell.Style {
	cr, cg, cb := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb)))
}
