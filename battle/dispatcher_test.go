package battle

import (
	"testing"
)

func newDispatcherFixture() (*Store, *Dispatcher, *fakeSender) {
	st := NewStore(newTestState())
	sender := &fakeSender{}
	return st, NewDispatcher(st, sender, "s1"), sender
}

// TestRequestAttackEmitsIntent verifies the attack intent wire shape
func TestRequestAttackEmitsIntent(t *testing.T) {
	st, d, sender := newDispatcherFixture()
	st.ApplyRosterSnapshot(snapshot("m1", "m2"))

	if err := d.RequestAttack(); err != nil {
		t.Fatalf("RequestAttack failed: %v", err)
	}

	intents := sender.intents()
	if len(intents) != 1 {
		t.Fatalf("Expected 1 intent, got %d", len(intents))
	}
	if intents[0].event != IntentPlayerAction {
		t.Errorf("Expected %q, got %q", IntentPlayerAction, intents[0].event)
	}

	action, ok := intents[0].payload.(PlayerActionIntent)
	if !ok {
		t.Fatalf("Expected PlayerActionIntent, got %T", intents[0].payload)
	}
	if action.SessionID != "s1" || action.Action.Actor != "player" ||
		action.Action.Type != "attack" || action.Action.TargetMobID != "m1" {
		t.Errorf("Unexpected intent payload: %+v", action)
	}
}

// TestRequestAttackWithoutSelectionIsNoOp verifies the local precondition
func TestRequestAttackWithoutSelectionIsNoOp(t *testing.T) {
	_, d, sender := newDispatcherFixture()

	if err := d.RequestAttack(); err != nil {
		t.Fatalf("RequestAttack failed: %v", err)
	}
	if len(sender.intents()) != 0 {
		t.Errorf("Expected no intent without selection, got %d", len(sender.intents()))
	}
}

// TestRequestSkillEmitsIntent verifies the skill intent wire shape
func TestRequestSkillEmitsIntent(t *testing.T) {
	st, d, sender := newDispatcherFixture()
	st.ApplyRosterSnapshot(snapshot("m1"))

	if err := d.RequestSkill("skill-42"); err != nil {
		t.Fatalf("RequestSkill failed: %v", err)
	}

	intents := sender.intents()
	if len(intents) != 1 {
		t.Fatalf("Expected 1 intent, got %d", len(intents))
	}

	skill, ok := intents[0].payload.(UseSkillIntent)
	if !ok {
		t.Fatalf("Expected UseSkillIntent, got %T", intents[0].payload)
	}
	if skill.SessionID != "s1" || skill.SkillID != "skill-42" || skill.TargetMobID != "m1" {
		t.Errorf("Unexpected skill payload: %+v", skill)
	}
}

// TestSelectMobStaysLocal verifies selection changes produce no traffic
func TestSelectMobStaysLocal(t *testing.T) {
	st, d, sender := newDispatcherFixture()
	st.ApplyRosterSnapshot(snapshot("m1", "m2"))

	d.SelectMob("m2")

	if st.Snapshot().SelectedMobID != "m2" {
		t.Errorf("Expected selection m2, got %q", st.Snapshot().SelectedMobID)
	}
	if len(sender.intents()) != 0 {
		t.Errorf("Expected no transport traffic on selection, got %d", len(sender.intents()))
	}
}

// TestSelectionRetargetsNextIntent verifies intents follow the selection
func TestSelectionRetargetsNextIntent(t *testing.T) {
	st, d, sender := newDispatcherFixture()
	st.ApplyRosterSnapshot(snapshot("m1", "m2"))

	d.SelectMob("m2")
	if err := d.RequestAttack(); err != nil {
		t.Fatalf("RequestAttack failed: %v", err)
	}

	action := sender.intents()[0].payload.(PlayerActionIntent)
	if action.Action.TargetMobID != "m2" {
		t.Errorf("Expected target m2, got %q", action.Action.TargetMobID)
	}
}
