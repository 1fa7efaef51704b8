package network

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/riftfall/events"
)

// ErrSendQueueFull is returned when outbound intents outpace the writer
var ErrSendQueueFull = errors.New("network: send queue full")

// ErrStopped is returned by Emit after Stop
var ErrStopped = errors.New("network: transport stopped")

// Transport maintains the persistent event channel to the battle server
//
// Lifecycle: Start dials and runs a connect/read/reconnect loop in the
// background. Received frames are decoded through the events registry
// and pushed onto the queue; connect and disconnect are surfaced as
// events on the same queue so the battle core observes them in order.
// A drop triggers exponential-backoff reconnection that resumes
// listening; no state is replayed (the server re-pushes on rejoin)
type Transport struct {
	config *Config
	queue  *events.EventQueue

	mu     sync.Mutex
	conn   *websocket.Conn
	sendCh chan []byte

	running atomic.Bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewTransport creates a transport pushing inbound events to the queue
func NewTransport(cfg *Config, queue *events.EventQueue) *Transport {
	return &Transport{
		config: cfg,
		queue:  queue,
		sendCh: make(chan []byte, cfg.SendQueueSize),
		stopCh: make(chan struct{}),
	}
}

// Start begins the connect loop
func (t *Transport) Start() {
	if !t.running.CompareAndSwap(false, true) {
		return // Already running
	}
	t.wg.Add(1)
	go t.connectLoop()
}

// Stop halts the transport and closes the connection
func (t *Transport) Stop() {
	if !t.running.CompareAndSwap(true, false) {
		return
	}
	close(t.stopCh)

	t.mu.Lock()
	if t.conn != nil {
		t.conn.Close()
	}
	t.mu.Unlock()

	t.wg.Wait()
}

// Emit queues a named outbound event
// Non-blocking; a full queue drops the intent with an error rather than
// stalling the input path
func (t *Transport) Emit(event string, payload any) error {
	if !t.running.Load() {
		return ErrStopped
	}

	frame, err := EncodeEnvelope(event, payload)
	if err != nil {
		return err
	}

	select {
	case t.sendCh <- frame:
		return nil
	default:
		return ErrSendQueueFull
	}
}

// connectLoop dials, runs one session, and reconnects with backoff
func (t *Transport) connectLoop() {
	defer t.wg.Done()

	delay := t.config.ReconnectBase

	for {
		select {
		case <-t.stopCh:
			return
		default:
		}

		conn, err := t.dial()
		if err != nil {
			log.Printf("network: connect failed: %v", err)
			if !t.config.Reconnect {
				return
			}
			if !t.sleep(delay) {
				return
			}
			delay = backoff(delay, t.config.ReconnectMax)
			continue
		}

		delay = t.config.ReconnectBase
		t.queue.Push(events.GameEvent{Type: events.EventConnected, Timestamp: time.Now()})

		t.runSession(conn)

		t.queue.Push(events.GameEvent{Type: events.EventDisconnected, Timestamp: time.Now()})
		if !t.config.Reconnect {
			return
		}
	}
}

// dial establishes one websocket connection
func (t *Transport) dial() (*websocket.Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: t.config.ConnectTimeout}
	conn, _, err := dialer.Dial(t.config.URL, t.config.Header)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.conn = conn
	t.mu.Unlock()
	return conn, nil
}

// runSession services one connection until it drops
func (t *Transport) runSession(conn *websocket.Conn) {
	done := make(chan struct{})

	conn.SetReadDeadline(time.Now().Add(t.config.PongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(t.config.PongTimeout))
	})

	t.wg.Add(1)
	go t.writeLoop(conn, done)

	t.readLoop(conn)

	close(done)
	conn.Close()
}

// readLoop decodes frames into the event queue until the connection drops
func (t *Transport) readLoop(conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-t.stopCh:
			default:
				log.Printf("network: read failed: %v", err)
			}
			return
		}

		ev, err := DecodeEnvelope(raw)
		if err != nil {
			// One bad frame is not worth the connection
			log.Printf("network: dropping frame: %v", err)
			continue
		}
		t.queue.Push(ev)
	}
}

// writeLoop sends queued intents and keepalive pings
func (t *Transport) writeLoop(conn *websocket.Conn, done <-chan struct{}) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-t.stopCh:
			return
		case frame := <-t.sendCh:
			conn.SetWriteDeadline(time.Now().Add(t.config.WriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				log.Printf("network: write failed: %v", err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(t.config.WriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// sleep waits for the backoff delay, abandoning on stop
func (t *Transport) sleep(d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-t.stopCh:
		return false
	}
}

// backoff doubles the delay up to the cap
func backoff(current, max time.Duration) time.Duration {
	next := current * 2
	if next > max {
		return max
	}
	return next
}
