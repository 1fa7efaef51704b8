package network

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lixenwraith/riftfall/events"
)

// Envelope frames every named event on the wire
// Inbound and outbound use the same shape, mirroring the backend's
// named-event channel
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// DecodeEnvelope parses a raw frame into a typed GameEvent
// Unknown event names and undecodable payloads return an error; the
// read loop logs and skips them, it never disconnects over one bad frame
func DecodeEnvelope(raw []byte) (events.GameEvent, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return events.GameEvent{}, fmt.Errorf("malformed envelope: %w", err)
	}

	et, ok := events.GetEventType(env.Event)
	if !ok {
		return events.GameEvent{}, fmt.Errorf("unknown event %q", env.Event)
	}

	ev := events.GameEvent{Type: et, Timestamp: time.Now()}

	payload := events.NewPayloadStruct(et)
	if payload != nil {
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, payload); err != nil {
				return events.GameEvent{}, fmt.Errorf("decode %q payload: %w", env.Event, err)
			}
		}
		// Missing data degrades to a zero payload; reducers treat it
		// as a partial payload, not a fault
		ev.Payload = payload
	}

	return ev, nil
}

// EncodeEnvelope frames an outbound intent
func EncodeEnvelope(event string, payload any) ([]byte, error) {
	env := Envelope{Event: event}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %q payload: %w", event, err)
		}
		env.Data = data
	}
	return json.Marshal(env)
}
