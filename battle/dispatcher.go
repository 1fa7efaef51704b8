package battle

// IntentSender emits named events to the backend
// Implemented by network.Transport; faked in tests
type IntentSender interface {
	Emit(event string, payload any) error
}

// Outbound intent wire names
const (
	IntentJoinBattle   = "join_battle"
	IntentPlayerAction = "player_action"
	IntentUseSkill     = "use_skill"
)

// JoinBattleIntent requests entry into a battle session
type JoinBattleIntent struct {
	PlayerID  string `json:"playerId"`
	SessionID string `json:"sessionId"`
}

// ActionDetail describes one combat action inside a player_action intent
type ActionDetail struct {
	Actor       string `json:"actor"`
	Type        string `json:"type"`
	TargetMobID string `json:"targetMobId"`
}

// PlayerActionIntent requests a basic combat action
type PlayerActionIntent struct {
	SessionID string       `json:"sessionId"`
	Action    ActionDetail `json:"action"`
}

// UseSkillIntent requests a skill cast against a target
type UseSkillIntent struct {
	SessionID   string `json:"sessionId"`
	SkillID     string `json:"skillId"`
	TargetMobID string `json:"targetMobId"`
}

// Dispatcher translates user input into outgoing intents
// Preconditions are local only: a missing selection is a no-op, everything
// else is the server's call. It stays permissive after battle end; the
// outcome overlay gates interaction at the presentation layer
type Dispatcher struct {
	store     *Store
	sender    IntentSender
	sessionID string
}

// NewDispatcher creates a dispatcher for one battle session
func NewDispatcher(store *Store, sender IntentSender, sessionID string) *Dispatcher {
	return &Dispatcher{
		store:     store,
		sender:    sender,
		sessionID: sessionID,
	}
}

// SelectMob changes the local target, no transport traffic
func (d *Dispatcher) SelectMob(id string) {
	d.store.SelectMob(id)
}

// RequestAttack emits an attack intent against the current selection
// No-op without a selection
func (d *Dispatcher) RequestAttack() error {
	target := d.store.Snapshot().SelectedMobID
	if target == "" {
		return nil
	}
	return d.sender.Emit(IntentPlayerAction, PlayerActionIntent{
		SessionID: d.sessionID,
		Action: ActionDetail{
			Actor:       "player",
			Type:        "attack",
			TargetMobID: target,
		},
	})
}

// RequestSkill emits a skill-cast intent against the current selection
// No-op without a selection
func (d *Dispatcher) RequestSkill(skillID string) error {
	target := d.store.Snapshot().SelectedMobID
	if target == "" {
		return nil
	}
	return d.sender.Emit(IntentUseSkill, UseSkillIntent{
		SessionID:   d.sessionID,
		SkillID:     skillID,
		TargetMobID: target,
	})
}
