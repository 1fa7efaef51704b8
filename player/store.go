// Package player mirrors the player profile served by the backend:
// identity, level progression, allocatable stats and current vitals.
// Vitals are authoritative from the server; battle events update them
// through the setters, nothing is computed locally
package player

import "sync"

// Profile is the full player record from GET /players
type Profile struct {
	ID          string `json:"id"`
	Nickname    string `json:"nickname"`
	Level       int    `json:"level"`
	XP          int    `json:"xp"`
	NextLevelXP int    `json:"nextLevelXp"`
	CurrentHP   int    `json:"currentHp"`
	MaxHP       int    `json:"maxHp"`
	CurrentMana int    `json:"currentMana"`
	MaxMana     int    `json:"maxMana"`
	AvatarURL   string `json:"avatarUrl"`
	StatPoints  int    `json:"statPoints"`
	SkillPoints int    `json:"skillPoints"`
	Str         int    `json:"str"`
	Agi         int    `json:"agi"`
	Int         int    `json:"int"`
	Vit         int    `json:"vit"`
	Attack      int    `json:"attack"`
	Defense     int    `json:"defense"`
}

// Store holds the profile mirror with subscriber notification
// Implements battle.PlayerSync for vitals confirmed mid-battle
type Store struct {
	mu      sync.RWMutex
	profile Profile

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewStore creates an empty profile store
func NewStore() *Store {
	return &Store{
		subs: make(map[int]func()),
	}
}

// Subscribe registers a change callback and returns an unsubscribe handle
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

// Profile returns a copy of the current profile
func (st *Store) Profile() Profile {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.profile
}

// SetProfile replaces the whole profile, typically after GET /players
func (st *Store) SetProfile(p Profile) {
	st.mu.Lock()
	st.profile = p
	st.mu.Unlock()
	st.notify()
}

// SetCurrentHP updates hp from a battle-confirmed event
func (st *Store) SetCurrentHP(hp int) {
	st.mu.Lock()
	st.profile.CurrentHP = hp
	st.mu.Unlock()
	st.notify()
}

// SetCurrentMana updates mana from a battle-confirmed event
func (st *Store) SetCurrentMana(mana int) {
	st.mu.Lock()
	st.profile.CurrentMana = mana
	st.mu.Unlock()
	st.notify()
}

// Clear resets the profile, used at logout
func (st *Store) Clear() {
	st.mu.Lock()
	st.profile = Profile{}
	st.mu.Unlock()
	st.notify()
}

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
