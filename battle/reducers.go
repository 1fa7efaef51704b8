package battle

import (
	"fmt"

	"github.com/lixenwraith/riftfall/events"
	"github.com/lixenwraith/riftfall/parameter"
)

// Reducers are pure: current state in, next state out, no side effects.
// All of them are total over partial payloads; unknown entity references
// are an expected race with roster snapshots and degrade to a no-op,
// never a fault. Once the outcome is decided no reducer mutates vitals
// or roster even if the server keeps sending combat events.

// pushLog prepends an entry, newest-first, bounded by BattleLogCap
func pushLog(log []string, entry string) []string {
	next := make([]string, 0, parameter.BattleLogCap)
	next = append(next, entry)
	if len(log) >= parameter.BattleLogCap {
		log = log[:parameter.BattleLogCap-1]
	}
	return append(next, log...)
}

// applyRosterSnapshot replaces the roster by diff:
// unseen ids are created idle, missing ids are deleted (clearing a
// selection that pointed there), surviving ids keep their visual state
// and take the snapshot's hp/maxHp. The first snapshot also seeds the
// default selection.
func applyRosterSnapshot(s State, mobs []events.MobSnapshot) State {
	if s.Outcome.Decided {
		return s
	}

	next := s.clone()
	initial := len(s.Mobs) == 0

	roster := make([]MobRecord, 0, len(mobs))
	for _, snap := range mobs {
		rec := MobRecord{
			ID:     snap.ID,
			Name:   snap.Name,
			HP:     snap.CurrentHP,
			MaxHP:  snap.MaxHP,
			Visual: VisualIdle,
		}
		if prev, ok := s.Mob(snap.ID); ok {
			rec.Visual = prev.Visual
		}
		roster = append(roster, rec)
	}
	next.Mobs = roster

	// Selection must never dangle
	if next.SelectedMobID != "" {
		if _, ok := next.Mob(next.SelectedMobID); !ok {
			next.SelectedMobID = ""
		}
	}
	if initial && next.SelectedMobID == "" && len(roster) > 0 {
		next.SelectedMobID = roster[0].ID
	}

	return next
}

// applyPlayerAttackResult records damage the player dealt:
// target hp set, target hurt, player attack pose, one log line.
// Unknown target is a silent no-op
func applyPlayerAttackResult(s State, p events.PlayerAttackedPayload) State {
	if s.Outcome.Decided {
		return s
	}

	i := s.mobIndex(p.TargetMobID)
	if i < 0 {
		return s
	}

	next := s.clone()
	next.Mobs[i].HP = p.TargetHP
	next.Mobs[i].Visual = VisualHurt
	next.Player.Visual = VisualAttack
	next.Log = pushLog(next.Log, fmt.Sprintf("You dealt %d damage to mob!", p.Value))
	return next
}

// applyMobAttackResult records damage a mob dealt to the player:
// player hp set, player hurt, attacker attack pose, one log line.
// Unknown attacker is a silent no-op
func applyMobAttackResult(s State, p events.MobAttackedPayload) State {
	if s.Outcome.Decided {
		return s
	}

	i := s.mobIndex(p.AttackerMobID)
	if i < 0 {
		return s
	}

	next := s.clone()
	next.Player.CurrentHP = p.TargetHP
	next.Player.Visual = VisualHurt
	next.Mobs[i].Visual = VisualAttack
	next.Log = pushLog(next.Log, fmt.Sprintf("Mob %s dealt %d damage to you!", p.AttackerMobID, p.Value))
	return next
}

// applySkillResult composes attack-result semantics with a mana update
func applySkillResult(s State, p events.SkillCastPayload) State {
	if s.Outcome.Decided {
		return s
	}

	i := s.mobIndex(p.TargetMobID)
	if i < 0 {
		return s
	}

	next := s.clone()
	next.Mobs[i].HP = p.TargetHP
	next.Mobs[i].Visual = VisualHurt
	next.Player.Visual = VisualAttack
	next.Player.CurrentMana = p.MPLeft
	next.Log = pushLog(next.Log, fmt.Sprintf("You used %s for %d damage!", p.SkillName, p.Value))
	return next
}

// applySkillFailure is log-only
func applySkillFailure(s State, p events.SkillFailedPayload) State {
	next := s.clone()
	next.Log = pushLog(next.Log, fmt.Sprintf("Skill failed: %s", p.Reason))
	return next
}

// applyBattleEnd sets the terminal outcome exactly once; duplicate
// delivery is ignored. Victory is decided by identity comparison of the
// winner against the local player id
func applyBattleEnd(s State, p events.BattleEndPayload) State {
	if s.Outcome.Decided {
		return s
	}

	next := s.clone()
	next.Outcome.Decided = true
	if p.Winner == s.Player.ID {
		next.Outcome.Result = ResultVictory
		next.Log = pushLog(next.Log, "Battle ended! You won!")
	} else {
		next.Outcome.Result = ResultDefeat
		next.Log = pushLog(next.Log, "Battle ended! You lost!")
	}
	return next
}

// applySelection is the one local-intent state change: it is always
// allowed and never produces transport traffic. Selecting an id that is
// not in the roster is rejected to keep the no-dangling invariant
func applySelection(s State, id string) State {
	if _, ok := s.Mob(id); !ok {
		return s
	}
	next := s.clone()
	next.SelectedMobID = id
	return next
}

// applyVisual sets the display pose for one entity, used by the
// transient scheduler for both the initial pose and the timed revert.
// Unknown ids no-op so a cancelled timer can never revive a dead record
func applyVisual(s State, entityID string, v VisualState) State {
	if entityID == PlayerEntityID {
		next := s.clone()
		next.Player.Visual = v
		return next
	}
	i := s.mobIndex(entityID)
	if i < 0 {
		return s
	}
	next := s.clone()
	next.Mobs[i].Visual = v
	return next
}
