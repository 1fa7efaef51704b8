package parameter

import "time"

// Client Loop Timing
const (
	// TickInterval drives event dispatch, transient sweeps and redraw
	// ~30 updates per second is plenty for a turn-based battle view
	TickInterval = 33 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
