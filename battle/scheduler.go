package battle

import (
	"sync"
	"time"
)

// Scheduler converts visual state transitions into self-reverting timed
// display poses without touching authoritative vitals
//
// Contract:
//   - PlayTransient sets the pose immediately and schedules an
//     unconditional revert to idle after the duration
//   - A later request for the same entity wins and restarts the timer;
//     no queueing, no stacking
//   - Entity removal cancels any pending revert so a dead record is
//     never revived
//
// Reverts fire from Sweep, driven by the client loop tick, so there is
// no timer goroutine to leak after teardown
type Scheduler struct {
	store *Store
	clock TimeProvider

	mu      sync.Mutex
	pending map[string]time.Time // Entity id -> revert deadline
}

// NewScheduler creates a scheduler bound to the store and clock
func NewScheduler(store *Store, clock TimeProvider) *Scheduler {
	return &Scheduler{
		store:   store,
		clock:   clock,
		pending: make(map[string]time.Time),
	}
}

// PlayTransient applies a display pose and schedules its revert
func (sc *Scheduler) PlayTransient(entityID string, v VisualState, duration time.Duration) {
	sc.store.SetVisual(entityID, v)

	sc.mu.Lock()
	sc.pending[entityID] = sc.clock.Now().Add(duration)
	sc.mu.Unlock()
}

// Sweep reverts every expired pose to idle
// Called once per client loop tick
func (sc *Scheduler) Sweep() {
	now := sc.clock.Now()

	sc.mu.Lock()
	var expired []string
	for id, deadline := range sc.pending {
		if !now.Before(deadline) {
			expired = append(expired, id)
			delete(sc.pending, id)
		}
	}
	sc.mu.Unlock()

	for _, id := range expired {
		sc.store.SetVisual(id, VisualIdle)
	}
}

// Cancel drops the pending revert for one entity
func (sc *Scheduler) Cancel(entityID string) {
	sc.mu.Lock()
	delete(sc.pending, entityID)
	sc.mu.Unlock()
}

// CancelAbsent drops pending reverts for entities no longer in the
// roster. The player entry is always retained
func (sc *Scheduler) CancelAbsent(liveIDs []string) {
	live := make(map[string]struct{}, len(liveIDs)+1)
	live[PlayerEntityID] = struct{}{}
	for _, id := range liveIDs {
		live[id] = struct{}{}
	}

	sc.mu.Lock()
	for id := range sc.pending {
		if _, ok := live[id]; !ok {
			delete(sc.pending, id)
		}
	}
	sc.mu.Unlock()
}

// CancelAll drops every pending revert, used at session teardown
func (sc *Scheduler) CancelAll() {
	sc.mu.Lock()
	sc.pending = make(map[string]time.Time)
	sc.mu.Unlock()
}

// PendingCount reports outstanding reverts
func (sc *Scheduler) PendingCount() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.pending)
}
