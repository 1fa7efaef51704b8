package network

import (
	"net/http"
	"time"

	"github.com/lixenwraith/riftfall/parameter"
)

// Config holds websocket transport configuration
type Config struct {
	// URL of the battle event channel (ws:// or wss://)
	URL string

	// Header sent with the upgrade request (bearer token etc.)
	Header http.Header

	// Timing
	ConnectTimeout time.Duration
	WriteTimeout   time.Duration
	PongTimeout    time.Duration
	PingInterval   time.Duration

	// Reconnect backoff
	ReconnectBase time.Duration
	ReconnectMax  time.Duration

	// Reconnect false disables automatic reconnection (tests)
	Reconnect bool

	// Buffer sizes
	SendQueueSize int
}

// DefaultConfig returns production-safe defaults for the given URL
func DefaultConfig(url string) *Config {
	return &Config{
		URL:            url,
		Header:         http.Header{},
		ConnectTimeout: parameter.ConnectTimeout,
		WriteTimeout:   parameter.WriteTimeout,
		PongTimeout:    parameter.PongTimeout,
		PingInterval:   parameter.PingInterval,
		ReconnectBase:  parameter.ReconnectBaseDelay,
		ReconnectMax:   parameter.ReconnectMaxDelay,
		Reconnect:      true,
		SendQueueSize:  parameter.SendQueueSize,
	}
}
