package events

import (
	"time"
)

// EventType represents the type of battle event
type EventType int

const (
	// EventNone is the zero value, never dispatched
	EventNone EventType = iota

	// EventBattleState carries a full roster snapshot
	// Source: server | Consumer: battle.Controller | Payload: *BattleStatePayload
	EventBattleState

	// EventPlayerAttacked reports the result of the local player's attack
	// Source: server | Payload: *PlayerAttackedPayload
	EventPlayerAttacked

	// EventMobAttacked reports a mob attacking the local player
	// Source: server | Payload: *MobAttackedPayload
	EventMobAttacked

	// EventSkillCast reports the result of a skill use, including mana left
	// Source: server | Payload: *SkillCastPayload
	EventSkillCast

	// EventSkillFailed reports a rejected skill use, log-only
	// Source: server | Payload: *SkillFailedPayload
	EventSkillFailed

	// EventBattleEnd terminates the battle session
	// Source: server | Payload: *BattleEndPayload
	EventBattleEnd

	// EventConnected signals transport (re)connection
	// Source: network transport | Payload: nil
	EventConnected

	// EventDisconnected signals transport drop, reconnect follows
	// Source: network transport | Payload: nil
	EventDisconnected
)

// GameEvent represents a single event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
