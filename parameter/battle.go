package parameter

import "time"

// Transient Visual States
const (
	// HurtFlashDuration is how long a combatant stays in the hurt pose
	// before the scheduler reverts it to idle
	HurtFlashDuration = 200 * time.Millisecond

	// PlayerAttackPoseDuration is how long the player holds the attack pose
	PlayerAttackPoseDuration = 300 * time.Millisecond

	// MobAttackPoseDuration is how long a mob holds the attack pose
	MobAttackPoseDuration = 200 * time.Millisecond
)

// Battle Log
const (
	// BattleLogCap bounds the newest-first combat log
	// Oldest entries are silently discarded
	BattleLogCap = 21
)

// Join Handshake
const (
	// JoinIdentityAttempts bounds the wait for an externally-resolved
	// player identity before the join is abandoned
	JoinIdentityAttempts = 20

	// JoinIdentityInterval is the delay between identity polls
	// 20 attempts at 100ms gives a ~2s ceiling
	JoinIdentityInterval = 100 * time.Millisecond
)
