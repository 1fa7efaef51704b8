package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/riftfall/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// SoundType identifies a battle cue
type SoundType int

const (
	SoundHit SoundType = iota
	SoundHurt
	SoundSkill
	SoundVictory
	SoundDefeat
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope around a streamer
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so 0 volume becomes silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateHitSound generates a short blip for a landed attack
func CreateHitSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(880.0, parameter.HitSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	return newVolume(shaped, volume)
}

// CreateHurtSound generates a low buzz for incoming damage
func CreateHurtSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(110.0, parameter.HurtSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.HurtSoundDuration, parameter.HurtSoundAttack, parameter.HurtSoundRelease, rate)
	return newVolume(shaped, volume)
}

// CreateSkillSound generates a rising two-note chime for a cast
func CreateSkillSound(rate beep.SampleRate, volume float64) beep.Streamer {
	// B5 then E6
	n1 := NewOscillator(987.77, parameter.SkillNote1Duration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, parameter.SkillNote1Duration, parameter.SkillSoundAttack, parameter.SkillNote1Release, rate)

	n2 := NewOscillator(1318.51, parameter.SkillNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, parameter.SkillNote2Duration, parameter.SkillSoundAttack, parameter.SkillNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), volume)
}

// CreateVictorySound generates an ascending jingle
func CreateVictorySound(rate beep.SampleRate, volume float64) beep.Streamer {
	// C5, E5, G5
	notes := []float64{523.25, 659.25, 783.99}
	return newVolume(noteRun(notes, rate), volume)
}

// CreateDefeatSound generates a descending jingle
func CreateDefeatSound(rate beep.SampleRate, volume float64) beep.Streamer {
	// G4, E4, C4
	notes := []float64{392.00, 329.63, 261.63}
	return newVolume(noteRun(notes, rate), volume)
}

func noteRun(freqs []float64, rate beep.SampleRate) beep.Streamer {
	shaped := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		osc := NewOscillator(f, parameter.OutcomeNoteDuration, WaveSine, rate)
		shaped[i] = NewEnvelope(osc, parameter.OutcomeNoteDuration, parameter.OutcomeSoundAttack, parameter.OutcomeSoundRelease, rate)
	}
	return beep.Seq(shaped...)
}

// GetSoundEffect returns the streamer for the given cue
func GetSoundEffect(soundType SoundType, rate beep.SampleRate, volume float64) beep.Streamer {
	switch soundType {
	case SoundHit:
		return CreateHitSound(rate, volume)
	case SoundHurt:
		return CreateHurtSound(rate, volume)
	case SoundSkill:
		return CreateSkillSound(rate, volume)
	case SoundVictory:
		return CreateVictorySound(rate, volume)
	case SoundDefeat:
		return CreateDefeatSound(rate, volume)
	default:
		return nil
	}
}
