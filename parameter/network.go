package parameter

import "time"

// WebSocket Timing
const (
	// ConnectTimeout bounds the initial dial
	ConnectTimeout = 10 * time.Second

	// WriteTimeout bounds a single frame write
	WriteTimeout = 10 * time.Second

	// PongTimeout is the max silence before the connection is considered dead
	PongTimeout = 60 * time.Second

	// PingInterval keeps the connection alive, must be under PongTimeout
	PingInterval = (PongTimeout * 9) / 10
)

// Reconnect Policy
const (
	// ReconnectBaseDelay is the first retry delay after a drop
	ReconnectBaseDelay = time.Second

	// ReconnectMaxDelay caps exponential backoff
	ReconnectMaxDelay = 30 * time.Second
)

// Queues
const (
	// SendQueueSize bounds outbound intents awaiting the write loop
	SendQueueSize = 64
)
