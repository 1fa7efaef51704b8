package battle

import (
	"log"

	"github.com/lixenwraith/riftfall/events"
	"github.com/lixenwraith/riftfall/parameter"
)

// PlayerSync mirrors battle-confirmed vitals into the profile store
// Optional; nil disables mirroring
type PlayerSync interface {
	SetCurrentHP(hp int)
	SetCurrentMana(mana int)
}

// Controller is the battle sync core: it owns the store, the transient
// scheduler, the intent dispatcher and the join handshake for exactly
// one battle session, and is the only writer to the store
//
// Data flow: transport -> event queue -> router -> Controller.HandleEvent
// -> reducers -> subscriber notify -> surfaces. Tick drives the
// handshake poll and the transient sweep from the client loop
type Controller struct {
	store      *Store
	scheduler  *Scheduler
	dispatcher *Dispatcher
	session    *Session
	router     *events.Router
	playerSync PlayerSync
}

// NewController wires a battle session's sync core and registers it on
// the router. Close must be called on teardown
func NewController(
	sessionID string,
	initial State,
	identity IdentityProvider,
	sender IntentSender,
	clock TimeProvider,
	router *events.Router,
	playerSync PlayerSync,
) *Controller {
	store := NewStore(initial)
	c := &Controller{
		store:      store,
		scheduler:  NewScheduler(store, clock),
		dispatcher: NewDispatcher(store, sender, sessionID),
		session:    NewSession(sessionID, identity, sender, clock),
		router:     router,
		playerSync: playerSync,
	}
	router.Register(c)
	return c
}

// Store exposes the state store for surfaces to subscribe and read
func (c *Controller) Store() *Store {
	return c.store
}

// Dispatcher exposes the intent dispatcher for input handlers
func (c *Controller) Dispatcher() *Dispatcher {
	return c.dispatcher
}

// Phase reports the join handshake phase for surfaces
func (c *Controller) Phase() Phase {
	return c.session.Phase()
}

// Tick advances one client loop cycle: dispatch pending events, drive
// the join handshake, revert expired poses
func (c *Controller) Tick() {
	c.router.DispatchAll()
	c.session.Advance()
	c.scheduler.Sweep()
}

// Close deregisters event handling and cancels pending transients
// A closed controller never mutates the store again
func (c *Controller) Close() {
	c.router.Deregister(c)
	c.scheduler.CancelAll()
}

// EventTypes implements events.Handler
func (c *Controller) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventBattleState,
		events.EventPlayerAttacked,
		events.EventMobAttacked,
		events.EventSkillCast,
		events.EventSkillFailed,
		events.EventBattleEnd,
		events.EventConnected,
		events.EventDisconnected,
	}
}

// HandleEvent implements events.Handler
// Transport payloads are not assumed validated: a type mismatch degrades
// to a logged warning, never a fault
func (c *Controller) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventBattleState:
		p, ok := ev.Payload.(*events.BattleStatePayload)
		if !ok {
			log.Printf("battle: malformed battle_state payload: %T", ev.Payload)
			return
		}
		c.store.ApplyRosterSnapshot(p.Mobs)

		live := make([]string, 0, len(p.Mobs))
		for _, m := range p.Mobs {
			live = append(live, m.ID)
		}
		c.scheduler.CancelAbsent(live)
		c.session.NotifyRosterReceived()

	case events.EventPlayerAttacked:
		p, ok := ev.Payload.(*events.PlayerAttackedPayload)
		if !ok {
			log.Printf("battle: malformed player_attacked payload: %T", ev.Payload)
			return
		}
		if _, known := c.store.Snapshot().Mob(p.TargetMobID); !known {
			return // Target raced with a roster update
		}
		c.store.ApplyPlayerAttackResult(*p)
		c.scheduler.PlayTransient(p.TargetMobID, VisualHurt, parameter.HurtFlashDuration)
		c.scheduler.PlayTransient(PlayerEntityID, VisualAttack, parameter.PlayerAttackPoseDuration)

	case events.EventMobAttacked:
		p, ok := ev.Payload.(*events.MobAttackedPayload)
		if !ok {
			log.Printf("battle: malformed mob_attacked payload: %T", ev.Payload)
			return
		}
		if _, known := c.store.Snapshot().Mob(p.AttackerMobID); !known {
			return
		}
		c.store.ApplyMobAttackResult(*p)
		c.scheduler.PlayTransient(PlayerEntityID, VisualHurt, parameter.HurtFlashDuration)
		c.scheduler.PlayTransient(p.AttackerMobID, VisualAttack, parameter.MobAttackPoseDuration)
		if c.playerSync != nil {
			c.playerSync.SetCurrentHP(p.TargetHP)
		}

	case events.EventSkillCast:
		p, ok := ev.Payload.(*events.SkillCastPayload)
		if !ok {
			log.Printf("battle: malformed skill_cast payload: %T", ev.Payload)
			return
		}
		if _, known := c.store.Snapshot().Mob(p.TargetMobID); !known {
			return
		}
		c.store.ApplySkillResult(*p)
		c.scheduler.PlayTransient(p.TargetMobID, VisualHurt, parameter.HurtFlashDuration)
		c.scheduler.PlayTransient(PlayerEntityID, VisualAttack, parameter.PlayerAttackPoseDuration)
		if c.playerSync != nil {
			c.playerSync.SetCurrentMana(p.MPLeft)
		}

	case events.EventSkillFailed:
		p, ok := ev.Payload.(*events.SkillFailedPayload)
		if !ok {
			log.Printf("battle: malformed skill_failed payload: %T", ev.Payload)
			return
		}
		c.store.ApplySkillFailure(*p)

	case events.EventBattleEnd:
		p, ok := ev.Payload.(*events.BattleEndPayload)
		if !ok {
			log.Printf("battle: malformed battle_end payload: %T", ev.Payload)
			return
		}
		c.store.ApplyBattleEnd(*p)
		c.session.NotifyEnded()

	case events.EventConnected:
		log.Printf("battle: transport connected")

	case events.EventDisconnected:
		// No rollback and no proactive resync; reconnect resumes
		// listening and the server is expected to re-push state
		log.Printf("battle: transport disconnected")
	}
}
