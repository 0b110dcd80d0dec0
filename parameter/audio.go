package parameter

import "time"

// Audio Engine
const (
	AudioSampleRate = 44100

	// AudioBufferLen is the speaker buffer duration; short enough that
	// cues feel edge-triggered
	AudioBufferLen = time.Second / 10
)

// Hover cue: soft single sine blip
const (
	HoverCueFreq     = 660.0
	HoverCueDuration = 45 * time.Millisecond
	HoverCueAttack   = 4 * time.Millisecond
	HoverCueRelease  = 30 * time.Millisecond
)

// Click cue: rising two-note square chime
const (
	ClickCueNote1Freq     = 987.77  // B5
	ClickCueNote2Freq     = 1318.51 // E6
	ClickCueNoteDuration  = 60 * time.Millisecond
	ClickCueAttack        = 2 * time.Millisecond
	ClickCueNote1Release  = 40 * time.Millisecond
	ClickCueNote2Release  = 55 * time.Millisecond
)

// Close cue: falling saw sweep
const (
	CloseCueFreq     = 440.0
	CloseCueDuration = 90 * time.Millisecond
	CloseCueAttack   = 3 * time.Millisecond
	CloseCueRelease  = 70 * time.Millisecond
)
