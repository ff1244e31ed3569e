package parameter

import "time"

// Frame loop timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS)
	// Terminal output of a full scene is the bottleneck, 30 is smooth enough for a slow sun
	FrameUpdateInterval = 33 * time.Millisecond

	// MaxFrameDelta caps a single tick's deltaTime in seconds
	// Prevents a stall (resize, suspend) from jumping the day/night cycle
	MaxFrameDelta = 0.1

	// InputQueueSize is the buffered capacity of the input reader channel
	InputQueueSize = 64
)
