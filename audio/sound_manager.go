package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/flight-globe/engine"
	"github.com/lixenwraith/flight-globe/parameter"
)

// SoundManager plays arrival chimes through a single speaker mixer
// Every Play* call is a no-op until Initialize succeeds, so a missing audio
// device degrades to silence
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	time        engine.TimeProvider
	initialized bool
	muted       bool

	lastChime time.Time
	played    uint64
	dropped   uint64

	// Speaker hooks, replaced in tests
	speakerInit func(beep.SampleRate, int) error
	speakerPlay func(...beep.Streamer)
	lock        func()
	unlock      func()
}

// NewSoundManager creates a manager; tp drives chime rate limiting
func NewSoundManager(cfg Config, tp engine.TimeProvider) *SoundManager {
	return &SoundManager{
		cfg:         cfg,
		rate:        beep.SampleRate(cfg.SampleRate),
		mixer:       &beep.Mixer{},
		time:        tp,
		speakerInit: speaker.Init,
		speakerPlay: speaker.Play,
		lock:        speaker.Lock,
		unlock:      speaker.Unlock,
	}
}

// Initialize sets up the audio system
// Disabled config is not an error: the manager simply stays silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := sm.speakerInit(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	sm.speakerPlay(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
// beep has no speaker Close, clearing the mixer leaves nothing to play
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.lock()
	sm.mixer.Clear()
	sm.unlock()
	sm.initialized = false
}

// Initialized reports whether sound output is live
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted silences or restores output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted returns the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayArrival plays the arrival chime
// Chimes closer together than MinGap are dropped so bursts of arrivals stay one ding
func (sm *SoundManager) PlayArrival() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	if sm.time != nil && sm.cfg.MinGap > 0 {
		now := sm.time.Now()
		if !sm.lastChime.IsZero() && now.Sub(sm.lastChime) < sm.cfg.MinGap {
			sm.dropped++
			return false
		}
		sm.lastChime = now
	}

	sm.add(NewChime(sm.rate, sm.cfg.Volume))
	sm.played++
	return true
}

// PlayError plays a short buzz for rejected input
func (sm *SoundManager) PlayError() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	sm.add(NewBuzz(sm.rate, sm.cfg.Volume))
}

// add queues s on the mixer under the speaker lock
func (sm *SoundManager) add(s beep.Streamer) {
	sm.lock()
	sm.mixer.Add(s)
	sm.unlock()
}

// Stats returns played and rate-limited chime counts
func (sm *SoundManager) Stats() (played, dropped uint64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played, sm.dropped
}
