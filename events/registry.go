package events

import (
	"reflect"
)

var (
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
	registryInit  = false
)

// RegisterType maps a wire name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct (e.g., &BattleEndPayload{})
// Pass nil if the event has no payload
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a given wire name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the wire name for an EventType
func GetEventName(et EventType) string {
	return typeToName[et]
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// The transport unmarshals the envelope's data field into it
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

// InitRegistry populates the registry with the backend event contract
// Must be called once at startup, before the transport connects
func InitRegistry() {
	if registryInit {
		return
	}
	registryInit = true

	RegisterType("battle_state", EventBattleState, &BattleStatePayload{})
	RegisterType("player_attacked", EventPlayerAttacked, &PlayerAttackedPayload{})
	RegisterType("mob_attacked", EventMobAttacked, &MobAttackedPayload{})
	RegisterType("skill_cast", EventSkillCast, &SkillCastPayload{})
	RegisterType("skill_failed", EventSkillFailed, &SkillFailedPayload{})
	RegisterType("battle_end", EventBattleEnd, &BattleEndPayload{})
	RegisterType("connect", EventConnected, nil)
	RegisterType("disconnect", EventDisconnected, nil)
}
