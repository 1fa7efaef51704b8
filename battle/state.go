package battle

// VisualState is a short-lived display pose layered on authoritative vitals
// Reverted to VisualIdle by the transient scheduler, never by the server
type VisualState string

const (
	VisualIdle   VisualState = "idle"
	VisualHurt   VisualState = "hurt"
	VisualAttack VisualState = "attack"
)

// PlayerEntityID keys the local player in the transient scheduler
// Mob entity IDs come from the server and never collide with it
const PlayerEntityID = "player"

// Result is the terminal outcome of a battle session
type Result string

const (
	ResultVictory Result = "victory"
	ResultDefeat  Result = "defeat"
)

// MobRecord mirrors one hostile entity from the latest roster snapshot
type MobRecord struct {
	ID     string
	Name   string
	HP     int
	MaxHP  int
	Visual VisualState
}

// PlayerVitals mirrors the local player's combat-relevant numbers
// HP and mana values are trusted as-is from the server, never clamped here;
// display clamping is the renderers' job
type PlayerVitals struct {
	ID          string
	Name        string
	CurrentHP   int
	MaxHP       int
	CurrentMana int
	MaxMana     int
	Visual      VisualState
}

// Outcome is set exactly once per session and never cleared
type Outcome struct {
	Decided bool
	Result  Result
}

// State is the authoritative local mirror of combat state
// Value semantics: reducers take a State and return the next State;
// the Store is the only writer, surfaces read copies
type State struct {
	Player        PlayerVitals
	Mobs          []MobRecord // Ordered as delivered by the last snapshot
	SelectedMobID string      // Empty = no selection
	Log           []string    // Newest-first, capped at parameter.BattleLogCap
	Outcome       Outcome
}

// NewState creates an empty battle state for the given player identity
func NewState(playerID, playerName string, hp, maxHP, mana, maxMana int) State {
	return State{
		Player: PlayerVitals{
			ID:          playerID,
			Name:        playerName,
			CurrentHP:   hp,
			MaxHP:       maxHP,
			CurrentMana: mana,
			MaxMana:     maxMana,
			Visual:      VisualIdle,
		},
	}
}

// Mob returns the roster record with the given id
func (s State) Mob(id string) (MobRecord, bool) {
	for _, m := range s.Mobs {
		if m.ID == id {
			return m, true
		}
	}
	return MobRecord{}, false
}

// mobIndex returns the roster position of id, or -1
func (s State) mobIndex(id string) int {
	for i, m := range s.Mobs {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// clone returns a deep copy so readers never alias the store's slices
func (s State) clone() State {
	next := s
	next.Mobs = make([]MobRecord, len(s.Mobs))
	copy(next.Mobs, s.Mobs)
	next.Log = make([]string, len(s.Log))
	copy(next.Log, s.Log)
	return next
}
