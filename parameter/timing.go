package parameter

import "time"

// Frame Loop
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps dt after stalls so animations never jump
	MaxFrameDelta = 50 * time.Millisecond

	// EventChannelSize buffers terminal events between ticks
	EventChannelSize = 100
)
