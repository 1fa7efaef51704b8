package battle

import (
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/riftfall/parameter"
)

// Phase is the join handshake state
type Phase int

const (
	// PhaseAwaitingIdentity polls for the externally-resolved player id
	PhaseAwaitingIdentity Phase = iota

	// PhaseJoining means the join intent was emitted, waiting for the
	// first roster snapshot
	PhaseJoining

	// PhaseInBattle means at least one roster snapshot arrived
	PhaseInBattle

	// PhaseEnded is terminal, entered on battle_end
	PhaseEnded

	// PhaseUnavailable is terminal, entered when the identity never
	// resolved within the retry budget. Surfaces show a non-crashing
	// "could not join battle" state
	PhaseUnavailable
)

// String returns a phase name for logs
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingIdentity:
		return "awaiting_identity"
	case PhaseJoining:
		return "joining"
	case PhaseInBattle:
		return "in_battle"
	case PhaseEnded:
		return "ended"
	case PhaseUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// IdentityProvider exposes the asynchronously-resolved local player id
// Returns empty until resolution completes
type IdentityProvider interface {
	PlayerID() string
}

// Session runs the join handshake for one battle session id
//
// AwaitingIdentity -> Joining -> InBattle -> Ended
//
// The identity wait is a bounded poll advanced by the client loop tick,
// not a blocking sleep, so teardown cancels it for free. The join intent
// is emitted exactly once per session id; reconnects and re-renders of a
// surface never re-join
type Session struct {
	sessionID string
	identity  IdentityProvider
	sender    IntentSender
	clock     TimeProvider

	mu       sync.Mutex
	phase    Phase
	attempts int
	nextPoll time.Time
	joined   bool
}

// NewSession creates a handshake for the given session id
func NewSession(sessionID string, identity IdentityProvider, sender IntentSender, clock TimeProvider) *Session {
	return &Session{
		sessionID: sessionID,
		identity:  identity,
		sender:    sender,
		clock:     clock,
		phase:     PhaseAwaitingIdentity,
	}
}

// Phase returns the current handshake phase
func (ss *Session) Phase() Phase {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.phase
}

// Advance drives the bounded identity poll, called once per loop tick
// Returns the phase after advancement
func (ss *Session) Advance() Phase {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if ss.phase != PhaseAwaitingIdentity {
		return ss.phase
	}

	now := ss.clock.Now()
	if now.Before(ss.nextPoll) {
		return ss.phase
	}
	ss.nextPoll = now.Add(parameter.JoinIdentityInterval)

	playerID := ss.identity.PlayerID()
	if playerID != "" && ss.sessionID != "" {
		if !ss.joined {
			ss.joined = true
			// Send errors surface as a disconnect; the handshake stays
			// in Joining and the server re-delivers state on reconnect
			err := ss.sender.Emit(IntentJoinBattle, JoinBattleIntent{
				PlayerID:  playerID,
				SessionID: ss.sessionID,
			})
			if err != nil {
				log.Printf("battle: join emit failed for session %s: %v", ss.sessionID, err)
			}
		}
		ss.phase = PhaseJoining
		return ss.phase
	}

	ss.attempts++
	if ss.attempts >= parameter.JoinIdentityAttempts {
		ss.phase = PhaseUnavailable
	}
	return ss.phase
}

// NotifyRosterReceived moves Joining to InBattle on the first snapshot
func (ss *Session) NotifyRosterReceived() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.phase == PhaseJoining || ss.phase == PhaseAwaitingIdentity {
		ss.phase = PhaseInBattle
	}
}

// NotifyEnded moves to the terminal Ended phase
// No transition leaves it
func (ss *Session) NotifyEnded() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.phase != PhaseUnavailable {
		ss.phase = PhaseEnded
	}
}
