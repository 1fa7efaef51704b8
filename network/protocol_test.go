package network

import (
	"encoding/json"
	"testing"

	"github.com/lixenwraith/riftfall/events"
)

func init() {
	events.InitRegistry()
}

// TestDecodeEnvelopeKnownEvents verifies inbound frames map to typed events
func TestDecodeEnvelopeKnownEvents(t *testing.T) {
	raw := []byte(`{"event":"player_attacked","data":{"value":6,"targetHP":4,"targetMobId":"m1"}}`)

	ev, err := DecodeEnvelope(raw)
	if err != nil {
		t.Fatalf("DecodeEnvelope failed: %v", err)
	}
	if ev.Type != events.EventPlayerAttacked {
		t.Errorf("Expected EventPlayerAttacked, got %v", ev.Type)
	}

	p, ok := ev.Payload.(*events.PlayerAttackedPayload)
	if !ok {
		t.Fatalf("Expected *PlayerAttackedPayload, got %T", ev.Payload)
	}
	if p.Value != 6 || p.TargetHP != 4 || p.TargetMobID != "m1" {
		t.Errorf("Unexpected payload: %+v", p)
	}
}

// TestDecodeEnvelopeMissingDataDegrades verifies a missing data field
// produces a zero payload, not an error
func TestDecodeEnvelopeMissingDataDegrades(t *testing.T) {
	ev, err := DecodeEnvelope([]byte(`{"event":"battle_end"}`))
	if err != nil {
		t.Fatalf("DecodeEnvelope failed: %v", err)
	}

	p, ok := ev.Payload.(*events.BattleEndPayload)
	if !ok {
		t.Fatalf("Expected zero *BattleEndPayload, got %T", ev.Payload)
	}
	if p.Winner != "" {
		t.Errorf("Expected zero payload, got %+v", p)
	}
}

// TestDecodeEnvelopeUnknownEvent verifies unknown names error out for
// the read loop to skip
func TestDecodeEnvelopeUnknownEvent(t *testing.T) {
	if _, err := DecodeEnvelope([]byte(`{"event":"drops_received","data":{}}`)); err == nil {
		t.Error("Expected error for unregistered event")
	}
}

// TestDecodeEnvelopeMalformedJSON verifies garbage frames error out
func TestDecodeEnvelopeMalformedJSON(t *testing.T) {
	if _, err := DecodeEnvelope([]byte(`{"event":`)); err == nil {
		t.Error("Expected error for malformed frame")
	}
}

// TestEncodeEnvelope verifies outbound intent framing
func TestEncodeEnvelope(t *testing.T) {
	frame, err := EncodeEnvelope("join_battle", map[string]string{
		"playerId":  "p1",
		"sessionId": "s1",
	})
	if err != nil {
		t.Fatalf("EncodeEnvelope failed: %v", err)
	}

	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		t.Fatalf("Decode of own frame failed: %v", err)
	}
	if env.Event != "join_battle" {
		t.Errorf("Expected event join_battle, got %q", env.Event)
	}

	var data map[string]string
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("Decode of data failed: %v", err)
	}
	if data["playerId"] != "p1" || data["sessionId"] != "s1" {
		t.Errorf("Unexpected data: %v", data)
	}
}
