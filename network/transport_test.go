package network

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/riftfall/events"
)

// testServer is a minimal battle endpoint: it records received intents
// and can push envelopes to the connected client
type testServer struct {
	*httptest.Server
	upgrader websocket.Upgrader
	conns    chan *websocket.Conn
	received chan Envelope
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		conns:    make(chan *websocket.Conn, 4),
		received: make(chan Envelope, 16),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/battle", func(w http.ResponseWriter, r *http.Request) {
		conn, err := ts.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		ts.conns <- conn
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var env Envelope
			if err := json.Unmarshal(raw, &env); err != nil {
				continue
			}
			ts.received <- env
		}
	})
	ts.Server = httptest.NewServer(mux)
	return ts
}

func (ts *testServer) wsURL() string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/battle"
}

func (ts *testServer) waitConn(t *testing.T) *websocket.Conn {
	t.Helper()
	select {
	case conn := <-ts.conns:
		return conn
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for client connection")
		return nil
	}
}

func drain(queue *events.EventQueue, deadline time.Duration, want int) []events.GameEvent {
	var got []events.GameEvent
	expire := time.After(deadline)
	for len(got) < want {
		select {
		case <-expire:
			return got
		default:
			got = append(got, queue.Consume()...)
			time.Sleep(5 * time.Millisecond)
		}
	}
	return got
}

// TestTransportDeliversInboundEvents verifies server pushes land on the
// queue as typed events, preceded by the connect event
func TestTransportDeliversInboundEvents(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	queue := events.NewEventQueue()
	cfg := DefaultConfig(ts.wsURL())
	cfg.Reconnect = false
	tr := NewTransport(cfg, queue)
	tr.Start()
	defer tr.Stop()

	conn := ts.waitConn(t)
	frame, _ := EncodeEnvelope("battle_state", map[string]any{
		"mobs": []map[string]any{{"id": "m1", "name": "Gnoll", "currentHp": 10, "maxHp": 10}},
	})
	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		t.Fatalf("server write failed: %v", err)
	}

	got := drain(queue, 2*time.Second, 2)
	if len(got) < 2 {
		t.Fatalf("Expected connect + battle_state, got %d events", len(got))
	}
	if got[0].Type != events.EventConnected {
		t.Errorf("Expected EventConnected first, got %v", got[0].Type)
	}
	if got[1].Type != events.EventBattleState {
		t.Fatalf("Expected EventBattleState, got %v", got[1].Type)
	}
	p := got[1].Payload.(*events.BattleStatePayload)
	if len(p.Mobs) != 1 || p.Mobs[0].ID != "m1" {
		t.Errorf("Unexpected roster payload: %+v", p)
	}
}

// TestTransportEmitReachesServer verifies outbound intents arrive framed
func TestTransportEmitReachesServer(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	queue := events.NewEventQueue()
	cfg := DefaultConfig(ts.wsURL())
	cfg.Reconnect = false
	tr := NewTransport(cfg, queue)
	tr.Start()
	defer tr.Stop()

	ts.waitConn(t)

	if err := tr.Emit("join_battle", map[string]string{"playerId": "p1", "sessionId": "s1"}); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	select {
	case env := <-ts.received:
		if env.Event != "join_battle" {
			t.Errorf("Expected join_battle, got %q", env.Event)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for intent")
	}
}

// TestTransportSurfacesDisconnect verifies a server-side close pushes the
// disconnect event; no resync is attempted
func TestTransportSurfacesDisconnect(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	queue := events.NewEventQueue()
	cfg := DefaultConfig(ts.wsURL())
	cfg.Reconnect = false
	tr := NewTransport(cfg, queue)
	tr.Start()
	defer tr.Stop()

	conn := ts.waitConn(t)
	conn.Close()

	got := drain(queue, 2*time.Second, 2)
	if len(got) < 2 {
		t.Fatalf("Expected connect + disconnect, got %d events", len(got))
	}
	if got[len(got)-1].Type != events.EventDisconnected {
		t.Errorf("Expected EventDisconnected last, got %v", got[len(got)-1].Type)
	}
}

// TestTransportSkipsBadFrames verifies one bad frame does not cost the
// connection
func TestTransportSkipsBadFrames(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	queue := events.NewEventQueue()
	cfg := DefaultConfig(ts.wsURL())
	cfg.Reconnect = false
	tr := NewTransport(cfg, queue)
	tr.Start()
	defer tr.Stop()

	conn := ts.waitConn(t)
	conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"no_such_event"}`))
	conn.WriteMessage(websocket.TextMessage, []byte(`not json at all`))

	frame, _ := EncodeEnvelope("battle_end", map[string]string{"winner": "p1"})
	conn.WriteMessage(websocket.TextMessage, frame)

	got := drain(queue, 2*time.Second, 2)
	var sawEnd bool
	for _, ev := range got {
		if ev.Type == events.EventBattleEnd {
			sawEnd = true
		}
		if ev.Type == events.EventDisconnected {
			t.Fatal("Connection dropped over a bad frame")
		}
	}
	if !sawEnd {
		t.Error("Expected battle_end to arrive after bad frames")
	}
}
