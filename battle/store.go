package battle

import (
	"sync"

	"github.com/lixenwraith/riftfall/events"
)

// Store is the single source of truth for combat state
// Thread-Safety:
//   - Writes: reducer application under lock, one logical owner (the session)
//   - Reads: Snapshot returns a deep copy, surfaces never alias store slices
//   - Notify: subscribers invoked outside the lock, after each change
type Store struct {
	mu    sync.RWMutex
	state State

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewStore creates a store around the given initial state
func NewStore(initial State) *Store {
	return &Store{
		state: initial,
		subs:  make(map[int]func()),
	}
}

// Subscribe registers a change callback and returns an unsubscribe handle
// Callbacks run on the writer's goroutine and must not write back
func (st *Store) Subscribe(fn func()) (unsubscribe func()) {
	st.subMu.Lock()
	id := st.nextSub
	st.nextSub++
	st.subs[id] = fn
	st.subMu.Unlock()

	return func() {
		st.subMu.Lock()
		delete(st.subs, id)
		st.subMu.Unlock()
	}
}

// Snapshot returns a deep copy of the current state
func (st *Store) Snapshot() State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.state.clone()
}

// notify invokes all subscribers, outside the state lock
func (st *Store) notify() {
	st.subMu.Lock()
	fns := make([]func(), 0, len(st.subs))
	for _, fn := range st.subs {
		fns = append(fns, fn)
	}
	st.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// apply swaps in the reducer result and notifies if anything changed
func (st *Store) apply(reduce func(State) State) {
	st.mu.Lock()
	st.state = reduce(st.state)
	st.mu.Unlock()
	st.notify()
}

// ApplyRosterSnapshot reconciles the roster against a full server snapshot
func (st *Store) ApplyRosterSnapshot(mobs []events.MobSnapshot) {
	st.apply(func(s State) State { return applyRosterSnapshot(s, mobs) })
}

// ApplyPlayerAttackResult records the player's confirmed attack
func (st *Store) ApplyPlayerAttackResult(p events.PlayerAttackedPayload) {
	st.apply(func(s State) State { return applyPlayerAttackResult(s, p) })
}

// ApplyMobAttackResult records a mob's confirmed attack on the player
func (st *Store) ApplyMobAttackResult(p events.MobAttackedPayload) {
	st.apply(func(s State) State { return applyMobAttackResult(s, p) })
}

// ApplySkillResult records a confirmed skill use
func (st *Store) ApplySkillResult(p events.SkillCastPayload) {
	st.apply(func(s State) State { return applySkillResult(s, p) })
}

// ApplySkillFailure appends the failure reason to the log
func (st *Store) ApplySkillFailure(p events.SkillFailedPayload) {
	st.apply(func(s State) State { return applySkillFailure(s, p) })
}

// ApplyBattleEnd sets the terminal outcome, idempotently
func (st *Store) ApplyBattleEnd(p events.BattleEndPayload) {
	st.apply(func(s State) State { return applyBattleEnd(s, p) })
}

// SelectMob changes the local target selection
func (st *Store) SelectMob(id string) {
	st.apply(func(s State) State { return applySelection(s, id) })
}

// SetVisual sets a display pose, used by the transient scheduler
func (st *Store) SetVisual(entityID string, v VisualState) {
	st.apply(func(s State) State { return applyVisual(s, entityID, v) })
}
