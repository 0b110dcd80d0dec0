package audio

import (
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/orbfolio/parameter"
)

// Cues is the minimal audio interface the interaction resolver fires at
// transition edges. Fire-and-forget: calls never block the frame loop
type Cues interface {
	Hover()
	Click()
	Close()
}

// Engine plays synthesized cues through the speaker. Graceful degradation:
// if no audio backend is available every cue is a no-op and the scene runs
// silent; audio failure is never fatal
type Engine struct {
	volume   float64
	disabled atomic.Bool
}

// NewEngine opens the speaker. On failure the engine is returned disabled
// along with the error for logging
func NewEngine(enabled bool, volume float64) (*Engine, error) {
	e := &Engine{volume: volume}
	if !enabled {
		e.disabled.Store(true)
		return e, nil
	}

	rate := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferLen)); err != nil {
		e.disabled.Store(true)
		return e, err
	}
	return e, nil
}

// Stop releases the audio backend
func (e *Engine) Stop() {
	if !e.disabled.Load() {
		speaker.Close()
	}
}

// ToggleMute flips audio on or off, returning the new muted state
func (e *Engine) ToggleMute() bool {
	muted := !e.disabled.Load()
	e.disabled.Store(muted)
	return muted
}

func (e *Engine) play(s beep.Streamer) {
	if e.disabled.Load() {
		return
	}
	speaker.Play(s)
}

// Hover implements Cues
func (e *Engine) Hover() { e.play(CreateHoverCue(e.volume)) }

// Click implements Cues
func (e *Engine) Click() { e.play(CreateClickCue(e.volume)) }

// Close implements Cues
func (e *Engine) Close() { e.play(CreateCloseCue(e.volume)) }

// NopCues discards every cue; used when audio is disabled by configuration
// and in tests
type NopCues struct{}

func (NopCues) Hover() {}
func (NopCues) Click() {}
func (NopCues) Close() {}
