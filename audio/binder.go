package audio

import "github.com/lixenwraith/riftfall/battle"

// CuePlayer is the playback surface the binder drives
// Satisfied by SoundManager
type CuePlayer interface {
	PlayHit()
	PlayHurt()
	PlaySkill()
	PlayVictory()
	PlayDefeat()
}

// Binder derives audio cues from battle state transitions. It keeps the
// previous snapshot and compares on every store notification
//
// Thread-Safety: Observe must be called from one goroutine, the client
// loop that owns the store subscription
type Binder struct {
	player  CuePlayer
	prev    battle.State
	decided bool
}

// NewBinder creates a cue binder seeded with the current snapshot
func NewBinder(player CuePlayer, initial battle.State) *Binder {
	return &Binder{
		player:  player,
		prev:    initial,
		decided: initial.Outcome.Decided,
	}
}

// Observe compares the snapshot against the previous one and plays at
// most one cue per transition
func (b *Binder) Observe(snap battle.State) {
	defer func() { b.prev = snap }()

	if snap.Outcome.Decided && !b.decided {
		b.decided = true
		if snap.Outcome.Result == battle.ResultVictory {
			b.player.PlayVictory()
		} else {
			b.player.PlayDefeat()
		}
		return
	}

	if snap.Player.CurrentHP < b.prev.Player.CurrentHP {
		b.player.PlayHurt()
		return
	}

	// A mana drop means a skill landed; plain hits leave mana untouched
	if snap.Player.CurrentMana < b.prev.Player.CurrentMana {
		b.player.PlaySkill()
		return
	}

	if b.mobDamaged(snap) {
		b.player.PlayHit()
	}
}

func (b *Binder) mobDamaged(snap battle.State) bool {
	for _, mob := range snap.Mobs {
		if prev, ok := b.prev.Mob(mob.ID); ok && mob.HP < prev.HP {
			return true
		}
	}
	return false
}
