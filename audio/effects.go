package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/orbfolio/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate

	// sweep shifts frequency linearly over the duration (close cue)
	sweepTo float64
}

// NewOscillator creates a finite oscillator stream
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweepTo:  freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// NewSweepOscillator sweeps from freq to target over the duration
func NewSweepOscillator(freq, target float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweepTo:  target,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.sweepTo-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a simplified attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer with a safe volume effect;
// math.Log2(0) is -Inf, so zero volume means silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// --- Cue generators ---

// CreateHoverCue is a soft sine blip fired once per hover transition
func CreateHoverCue(vol float64) beep.Streamer {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	osc := NewOscillator(parameter.HoverCueFreq, parameter.HoverCueDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.HoverCueDuration, parameter.HoverCueAttack, parameter.HoverCueRelease, rate)
	return newVolume(shaped, vol*0.5)
}

// CreateClickCue is a rising two-note square chime for opening a project
func CreateClickCue(vol float64) beep.Streamer {
	rate := beep.SampleRate(parameter.AudioSampleRate)

	n1 := NewOscillator(parameter.ClickCueNote1Freq, parameter.ClickCueNoteDuration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.ClickCueNoteDuration, parameter.ClickCueAttack, parameter.ClickCueNote1Release, rate)

	n2 := NewOscillator(parameter.ClickCueNote2Freq, parameter.ClickCueNoteDuration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.ClickCueNoteDuration, parameter.ClickCueAttack, parameter.ClickCueNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol*0.35)
}

// CreateCloseCue is a falling saw sweep for dismissing the detail panel
func CreateCloseCue(vol float64) beep.Streamer {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	osc := NewSweepOscillator(parameter.CloseCueFreq, parameter.CloseCueFreq/2, parameter.CloseCueDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.CloseCueDuration, parameter.CloseCueAttack, parameter.CloseCueRelease, rate)
	return newVolume(shaped, vol*0.3)
}
