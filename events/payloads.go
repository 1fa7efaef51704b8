package events

// MobSnapshot is one roster entry inside a battle_state event
type MobSnapshot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CurrentHP int    `json:"currentHp"`
	MaxHP     int    `json:"maxHp"`
}

// BattleStatePayload carries the authoritative roster snapshot
type BattleStatePayload struct {
	Mobs []MobSnapshot `json:"mobs"`
}

// PlayerAttackedPayload reports damage the local player dealt
type PlayerAttackedPayload struct {
	Value       int    `json:"value"`
	TargetHP    int    `json:"targetHP"`
	TargetMobID string `json:"targetMobId"`
}

// MobAttackedPayload reports damage a mob dealt to the local player
type MobAttackedPayload struct {
	Value         int    `json:"value"`
	TargetHP      int    `json:"targetHP"`
	AttackerMobID string `json:"attackerMobId"`
}

// SkillCastPayload reports a successful skill use
type SkillCastPayload struct {
	Value       int    `json:"value"`
	SkillName   string `json:"skillName"`
	TargetHP    int    `json:"targetHP"`
	MPLeft      int    `json:"mpLeft"`
	TargetMobID string `json:"targetMobId"`
}

// SkillFailedPayload reports a rejected skill use
type SkillFailedPayload struct {
	Reason string `json:"reason"`
}

// BattleEndPayload carries the winner of a finished battle
type BattleEndPayload struct {
	Winner string `json:"winner"`
}
