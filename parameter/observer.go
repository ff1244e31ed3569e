package parameter

import "time"

// Observer stream
const (
	// ObserverFrameRate caps routine FRAME broadcasts per second; turning point frames bypass it
	ObserverFrameRate  = 10.0
	ObserverFrameBurst = 2

	// ObserverQueueSize is the per-connection outbound buffer, full queues drop frames
	ObserverQueueSize = 16

	ObserverWriteTimeout    = 5 * time.Second
	ObserverReadTimeout     = 60 * time.Second
	ObserverShutdownTimeout = 2 * time.Second

	// ObserverBufferSize is the websocket read/write buffer size
	ObserverBufferSize = 16 * 1024
)
