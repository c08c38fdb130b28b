package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/lite-cycles/constants"
)

// SoundManager owns the speaker and mixer. One-shot effects are added
// to the mixer and drain on their own; the hum runs behind a Ctrl that
// is paused rather than removed.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	humCtrl     *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a manager with the given config
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. With audio disabled in the config it
// returns nil and the manager stays inert, so callers need no special
// casing for silent runs.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.humCtrl != nil {
		sm.humCtrl.Paused = true
	}
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayCrash plays the one-shot crash burst
func (sm *SoundManager) PlayCrash() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Add(CreateCrashSound(sm.cfg))
}

// StartHum starts or resumes the looping background hum
func (sm *SoundManager) StartHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.humCtrl != nil {
		sm.humCtrl.Paused = false
		return
	}
	sm.humCtrl = &beep.Ctrl{Streamer: CreateHum(sm.cfg)}
	sm.mixer.Add(sm.humCtrl)
}

// StopHum pauses the background hum
func (sm *SoundManager) StopHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.humCtrl != nil {
		sm.humCtrl.Paused = true
	}
}
