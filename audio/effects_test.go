package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) ([][2]float64, int) {
	var out [][2]float64
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		total += n
		if !ok {
			return out, total
		}
	}
}

func TestOscillatorFiniteAndBounded(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewOscillator(440, 50*time.Millisecond, WaveSine, rate)

	samples, n := drain(s)
	want := rate.N(50 * time.Millisecond)
	if n != want {
		t.Errorf("streamed %d samples, want %d", n, want)
	}
	for i, smp := range samples {
		if math.Abs(smp[0]) > 1 || math.Abs(smp[1]) > 1 {
			t.Fatalf("sample %d out of [-1,1]: %v", i, smp)
		}
	}
}

func TestSweepOscillatorEndsAtTarget(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewSweepOscillator(880, 110, 30*time.Millisecond, WaveSaw, rate)
	if _, n := drain(s); n != rate.N(30*time.Millisecond) {
		t.Error("sweep must run the full duration")
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(44100)
	dur := 40 * time.Millisecond
	osc := NewOscillator(1000, dur, WaveSquare, rate)
	env := NewEnvelope(osc, dur, 5*time.Millisecond, 10*time.Millisecond, rate)

	samples, _ := drain(env)
	if len(samples) == 0 {
		t.Fatal("no samples")
	}
	// Square wave is +-1; attack must tame the first sample, release the last
	if math.Abs(samples[0][0]) > 0.01 {
		t.Errorf("attack not applied: first sample %g", samples[0][0])
	}
	if math.Abs(samples[len(samples)-1][0]) > 0.05 {
		t.Errorf("release not applied: last sample %g", samples[len(samples)-1][0])
	}
}

func TestCueGeneratorsProduceAudio(t *testing.T) {
	cues := map[string]func(float64) beep.Streamer{
		"hover": CreateHoverCue,
		"click": CreateClickCue,
		"close": CreateCloseCue,
	}
	for name, create := range cues {
		samples, n := drain(create(0.7))
		if n == 0 {
			t.Errorf("%s cue produced no samples", name)
			continue
		}
		peak := 0.0
		for _, smp := range samples {
			if a := math.Abs(smp[0]); a > peak {
				peak = a
			}
		}
		if peak == 0 {
			t.Errorf("%s cue is silent", name)
		}
		if peak > 1 {
			t.Errorf("%s cue clips: peak %g", name, peak)
		}
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	samples, _ := drain(CreateHoverCue(0))
	for _, smp := range samples {
		if smp[0] != 0 || smp[1] != 0 {
			t.Fatal("zero volume must be silent")
		}
	}
}
