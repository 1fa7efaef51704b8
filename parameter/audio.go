package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferWindow is the speaker buffer length
	AudioBufferWindow = 100 * time.Millisecond
)

// Hit Sound (player attack lands)
const (
	HitSoundDuration = 60 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 40 * time.Millisecond
)

// Hurt Sound (player takes damage)
const (
	HurtSoundDuration = 120 * time.Millisecond
	HurtSoundAttack   = 10 * time.Millisecond
	HurtSoundRelease  = 80 * time.Millisecond
)

// Skill Sound (two-note chime on a successful cast)
const (
	SkillNote1Duration = 70 * time.Millisecond
	SkillNote2Duration = 140 * time.Millisecond
	SkillSoundAttack   = 5 * time.Millisecond
	SkillNote1Release  = 40 * time.Millisecond
	SkillNote2Release  = 100 * time.Millisecond
)

// Outcome Sounds (battle end jingles)
const (
	OutcomeNoteDuration = 180 * time.Millisecond
	OutcomeSoundAttack  = 10 * time.Millisecond
	OutcomeSoundRelease = 120 * time.Millisecond
)
