package battle

import (
	"testing"
	"time"

	"github.com/lixenwraith/riftfall/parameter"
)

func newSchedulerFixture() (*Store, *Scheduler, *MockTimeProvider) {
	st := NewStore(newTestState())
	st.ApplyRosterSnapshot(snapshot("m1", "m2"))
	clock := NewMockTimeProvider(time.Unix(1000, 0))
	return st, NewScheduler(st, clock), clock
}

// TestTransientRevertsAfterDuration verifies the hurt flicker reverts to
// idle once its deadline passes, and not before
func TestTransientRevertsAfterDuration(t *testing.T) {
	st, sc, clock := newSchedulerFixture()

	sc.PlayTransient("m1", VisualHurt, parameter.HurtFlashDuration)

	if mob, _ := st.Snapshot().Mob("m1"); mob.Visual != VisualHurt {
		t.Fatalf("Expected immediate hurt pose, got %q", mob.Visual)
	}

	clock.Advance(parameter.HurtFlashDuration / 2)
	sc.Sweep()
	if mob, _ := st.Snapshot().Mob("m1"); mob.Visual != VisualHurt {
		t.Errorf("Expected pose held before deadline, got %q", mob.Visual)
	}

	clock.Advance(parameter.HurtFlashDuration)
	sc.Sweep()
	if mob, _ := st.Snapshot().Mob("m1"); mob.Visual != VisualIdle {
		t.Errorf("Expected revert to idle after deadline, got %q", mob.Visual)
	}
	if sc.PendingCount() != 0 {
		t.Errorf("Expected no pending reverts, got %d", sc.PendingCount())
	}
}

// TestLaterTransientWinsAndRestartsTimer verifies no queueing or
// stacking: the second request replaces the first and its timer
func TestLaterTransientWinsAndRestartsTimer(t *testing.T) {
	st, sc, clock := newSchedulerFixture()

	sc.PlayTransient("m1", VisualHurt, parameter.HurtFlashDuration)
	clock.Advance(parameter.HurtFlashDuration - 50*time.Millisecond)

	// Restart just before the first revert would fire
	sc.PlayTransient("m1", VisualAttack, parameter.MobAttackPoseDuration)
	clock.Advance(60 * time.Millisecond)
	sc.Sweep()

	if mob, _ := st.Snapshot().Mob("m1"); mob.Visual != VisualAttack {
		t.Errorf("Expected restarted pose to survive old deadline, got %q", mob.Visual)
	}

	clock.Advance(parameter.MobAttackPoseDuration)
	sc.Sweep()
	if mob, _ := st.Snapshot().Mob("m1"); mob.Visual != VisualIdle {
		t.Errorf("Expected idle after restarted timer, got %q", mob.Visual)
	}
}

// TestPlayerTransient verifies the player pose uses the same machinery
func TestPlayerTransient(t *testing.T) {
	st, sc, clock := newSchedulerFixture()

	sc.PlayTransient(PlayerEntityID, VisualAttack, parameter.PlayerAttackPoseDuration)
	if st.Snapshot().Player.Visual != VisualAttack {
		t.Fatal("Expected player attack pose")
	}

	clock.Advance(parameter.PlayerAttackPoseDuration)
	sc.Sweep()
	if st.Snapshot().Player.Visual != VisualIdle {
		t.Error("Expected player pose reverted to idle")
	}
}

// TestCancelAbsentDropsRemovedMobTimers verifies a mob leaving the
// roster takes its pending revert with it
func TestCancelAbsentDropsRemovedMobTimers(t *testing.T) {
	st, sc, clock := newSchedulerFixture()

	sc.PlayTransient("m1", VisualHurt, parameter.HurtFlashDuration)
	sc.PlayTransient("m2", VisualHurt, parameter.HurtFlashDuration)
	sc.PlayTransient(PlayerEntityID, VisualAttack, parameter.PlayerAttackPoseDuration)

	st.ApplyRosterSnapshot(snapshot("m2"))
	sc.CancelAbsent([]string{"m2"})

	if sc.PendingCount() != 2 {
		t.Errorf("Expected m1 timer cancelled, pending = %d", sc.PendingCount())
	}

	// The expired sweep must not revive the removed record
	clock.Advance(time.Second)
	sc.Sweep()
	if _, ok := st.Snapshot().Mob("m1"); ok {
		t.Error("Expected m1 to stay removed")
	}
}

// TestCancelAllAtTeardown verifies teardown leaves no timers behind
func TestCancelAllAtTeardown(t *testing.T) {
	_, sc, _ := newSchedulerFixture()

	sc.PlayTransient("m1", VisualHurt, parameter.HurtFlashDuration)
	sc.PlayTransient(PlayerEntityID, VisualAttack, parameter.PlayerAttackPoseDuration)
	sc.CancelAll()

	if sc.PendingCount() != 0 {
		t.Errorf("Expected no pending reverts after CancelAll, got %d", sc.PendingCount())
	}
}
