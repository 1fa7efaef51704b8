package audio

import (
	"testing"

	"github.com/lixenwraith/riftfall/battle"
	"github.com/lixenwraith/riftfall/events"
)

type cueRecorder struct {
	cues []string
}

func (r *cueRecorder) PlayHit()     { r.cues = append(r.cues, "hit") }
func (r *cueRecorder) PlayHurt()    { r.cues = append(r.cues, "hurt") }
func (r *cueRecorder) PlaySkill()   { r.cues = append(r.cues, "skill") }
func (r *cueRecorder) PlayVictory() { r.cues = append(r.cues, "victory") }
func (r *cueRecorder) PlayDefeat()  { r.cues = append(r.cues, "defeat") }

func newBinderStore() *battle.Store {
	store := battle.NewStore(battle.NewState("p1", "Tester", 100, 100, 50, 50))
	store.ApplyRosterSnapshot([]events.MobSnapshot{
		{ID: "m1", Name: "Wisp", CurrentHP: 30, MaxHP: 30},
	})
	return store
}

func TestBinderPlaysHitOnMobDamage(t *testing.T) {
	store := newBinderStore()
	rec := &cueRecorder{}
	binder := NewBinder(rec, store.Snapshot())

	store.ApplyPlayerAttackResult(events.PlayerAttackedPayload{Value: 5, TargetHP: 25, TargetMobID: "m1"})
	binder.Observe(store.Snapshot())

	if len(rec.cues) != 1 || rec.cues[0] != "hit" {
		t.Errorf("cues = %v, want [hit]", rec.cues)
	}
}

func TestBinderPlaysHurtOnPlayerDamage(t *testing.T) {
	store := newBinderStore()
	rec := &cueRecorder{}
	binder := NewBinder(rec, store.Snapshot())

	store.ApplyMobAttackResult(events.MobAttackedPayload{Value: 12, TargetHP: 88, AttackerMobID: "m1"})
	binder.Observe(store.Snapshot())

	if len(rec.cues) != 1 || rec.cues[0] != "hurt" {
		t.Errorf("cues = %v, want [hurt]", rec.cues)
	}
}

func TestBinderPrefersSkillOverHit(t *testing.T) {
	store := newBinderStore()
	rec := &cueRecorder{}
	binder := NewBinder(rec, store.Snapshot())

	// A cast damages the mob and drains mana in one transition
	store.ApplySkillResult(events.SkillCastPayload{Value: 10, SkillName: "Fireball", TargetHP: 20, MPLeft: 40, TargetMobID: "m1"})
	binder.Observe(store.Snapshot())

	if len(rec.cues) != 1 || rec.cues[0] != "skill" {
		t.Errorf("cues = %v, want [skill]", rec.cues)
	}
}

func TestBinderPlaysOutcomeOnce(t *testing.T) {
	store := newBinderStore()
	rec := &cueRecorder{}
	binder := NewBinder(rec, store.Snapshot())

	store.ApplyBattleEnd(events.BattleEndPayload{Winner: "p1"})
	binder.Observe(store.Snapshot())
	binder.Observe(store.Snapshot())

	if len(rec.cues) != 1 || rec.cues[0] != "victory" {
		t.Errorf("cues = %v, want [victory] exactly once", rec.cues)
	}
}

func TestBinderNoCueOnUnchangedState(t *testing.T) {
	store := newBinderStore()
	rec := &cueRecorder{}
	binder := NewBinder(rec, store.Snapshot())

	binder.Observe(store.Snapshot())
	if len(rec.cues) != 0 {
		t.Errorf("cues = %v, want none", rec.cues)
	}
}
