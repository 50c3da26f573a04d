// Package audio plays the game's sound effects through beep's speaker.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-gems/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager mixes short effects onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a manager. Nothing is audible until Initialize.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

// SetMuted toggles output without closing the speaker.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports whether output is muted.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayMatch plays the match chime for the given chain depth.
func (sm *SoundManager) PlayMatch(chain int) {
	sm.play(CreateMatchSound(sampleRate, chain))
}

// PlayInvalid plays the rejected-swap buzz.
func (sm *SoundManager) PlayInvalid() {
	sm.play(CreateInvalidSound(sampleRate))
}

// PlayReshuffle plays the board rebuild swoosh.
func (sm *SoundManager) PlayReshuffle() {
	sm.play(CreateReshuffleSound(sampleRate))
}

// HandleEvent maps a game event to its sound.
func (sm *SoundManager) HandleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventMatched, core.EventChain:
		sm.PlayMatch(ev.Chain)
	case core.EventInvalid:
		sm.PlayInvalid()
	case core.EventReshuffled:
		sm.PlayReshuffle()
	case core.EventLevelCleared:
		sm.play(CreateLevelClearedSound(sampleRate))
	case core.EventGameOver:
		sm.play(CreateGameOverSound(sampleRate))
	}
}
