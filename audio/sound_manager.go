// Package audio plays short synthesized battle cues through the system
// speaker. Initialization failure is expected on headless machines and
// leaves the manager in a silent no-op state
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/riftfall/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager manages battle cue playback
//
// Thread-Safety: all methods are safe for concurrent use
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 0.8,
	}
}

// Initialize sets up the audio backend
// Callers should treat an error as non-fatal and keep the manager; every
// Play method degrades to a no-op when uninitialized
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferWindow)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the audio backend
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayHit plays the landed-attack blip
func (sm *SoundManager) PlayHit() { sm.play(SoundHit) }

// PlayHurt plays the incoming-damage buzz
func (sm *SoundManager) PlayHurt() { sm.play(SoundHurt) }

// PlaySkill plays the cast chime
func (sm *SoundManager) PlaySkill() { sm.play(SoundSkill) }

// PlayVictory plays the winning jingle
func (sm *SoundManager) PlayVictory() { sm.play(SoundVictory) }

// PlayDefeat plays the losing jingle
func (sm *SoundManager) PlayDefeat() { sm.play(SoundDefeat) }

func (sm *SoundManager) play(t SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := GetSoundEffect(t, sampleRate, sm.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
