package component

import (
	"testing"

	"github.com/lixenwraith/orbfolio/parameter"
	"github.com/lixenwraith/orbfolio/vmath"
)

func TestWaveLifecycle(t *testing.T) {
	var w Wave
	if w.Active {
		t.Fatal("wave starts idle")
	}

	w.Start()
	if !w.Active || w.Elapsed != 0 {
		t.Fatal("Start must activate with zero elapsed")
	}

	const dt = 1.0 / 60

	// Hovered: never expires no matter how long
	for i := 0; i < 600; i++ {
		w.Update(dt, true)
	}
	if !w.Active {
		t.Fatal("wave expired while hovered")
	}

	// Unhovered: stays active through the whole fade window...
	elapsed := 0.0
	for elapsed+dt < parameter.WaveFadeSeconds {
		w.Update(dt, false)
		elapsed += dt
		if !w.Active {
			t.Fatalf("wave expired early at %gs after hover end", elapsed)
		}
	}
	// ...and expires shortly after it
	for i := 0; i < 30 && w.Active; i++ {
		w.Update(dt, false)
	}
	if w.Active {
		t.Error("wave never expired after fade window")
	}
}

func TestWaveRehoverPinsFade(t *testing.T) {
	var w Wave
	w.Start()

	const dt = 1.0 / 60
	for i := 0; i < 100; i++ { // ~1.7s unhovered
		w.Update(dt, false)
	}
	// Pointer returns: fade timer resets
	w.Update(dt, true)
	for i := 0; i < 100; i++ {
		w.Update(dt, false)
	}
	if !w.Active {
		t.Error("fade timer did not reset on re-hover")
	}
}

func TestLabelTypewriterMonotonic(t *testing.T) {
	l := NewLabel("packet-loom")
	const dt = 1.0 / 60

	prev := 0
	for i := 0; i < 200; i++ {
		l.Advance(dt)
		n := l.Revealed()
		if n < prev {
			t.Fatalf("revealed decreased: %d -> %d", prev, n)
		}
		if n > l.Total() {
			t.Fatalf("revealed %d exceeds total %d", n, l.Total())
		}
		prev = n
	}
	if !l.Done {
		t.Fatal("label should finish within 200 frames")
	}

	// Done latches
	l.Advance(dt)
	if !l.Done || l.Revealed() != l.Total() {
		t.Error("Done must latch until reset")
	}
	if l.Visible() != "packet-loom" {
		t.Errorf("Visible = %q", l.Visible())
	}
}

func TestLabelReset(t *testing.T) {
	l := NewLabel("orb")
	for i := 0; i < 100; i++ {
		l.Advance(1.0 / 60)
	}
	l.Reset()
	if l.Done || l.Revealed() != 0 {
		t.Error("Reset must restart the typewriter")
	}
}

func TestLabelEmptyName(t *testing.T) {
	l := NewLabel("")
	l.Advance(1)
	if l.Revealed() != 0 || !l.Done {
		t.Error("empty label completes immediately and reveals nothing")
	}
}

func TestDecorationTable(t *testing.T) {
	rng := vmath.NewFastRand(9)
	kinds := map[string]bool{}
	for i := 0; i < 6; i++ {
		d := DecorationFor(i, 1.5, rng)
		if d == nil {
			t.Fatalf("nil decoration for index %d", i)
		}
		kinds[d.Kind()] = true

		d.Update(0.5, 1.0/60)
		pts := d.Points(nil)
		if len(pts) == 0 {
			t.Errorf("%s produced no points", d.Kind())
		}
		for _, p := range pts {
			if p.Intensity < 0 || p.Intensity > 1 {
				t.Errorf("%s intensity %g out of [0,1]", d.Kind(), p.Intensity)
			}
		}
	}
	if len(kinds) != 3 {
		t.Errorf("expected 3 variants, saw %d", len(kinds))
	}

	// Same index always maps to the same variant
	a := DecorationFor(1, 1, vmath.NewFastRand(1))
	b := DecorationFor(4, 1, vmath.NewFastRand(1))
	if a.Kind() != b.Kind() {
		t.Error("index dispatch must be stable modulo table size")
	}
}

func TestClearHoverKeepsWaveFading(t *testing.T) {
	o := &Orb{}
	o.SetHover(vmath.Vec3{X: 1})
	o.Wave.Start()

	o.ClearHover()
	if o.Hovered || o.HasHit {
		t.Error("ClearHover must drop pointer state")
	}
	if !o.Wave.Active {
		t.Error("wave keeps animating after hover clears")
	}
}
