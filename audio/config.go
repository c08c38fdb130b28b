package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/lite-cycles/constants"
)

// SoundType represents the game's sound effects
type SoundType int

const (
	SoundCrash SoundType = iota // Cycle crash burst
	SoundHum                    // Looping arena hum
)

// AudioConfig holds audio tuning loaded at startup
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the stock configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.8,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundCrash: 1.0,
			SoundHum:   0.4,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("LITE_CYCLES_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100, converted to 0.0-1.0
	if volume := os.Getenv("LITE_CYCLES_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if effectVols := os.Getenv("LITE_CYCLES_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if v, ok := volumes["crash"]; ok {
				cfg.EffectVolumes[SoundCrash] = v
			}
			if v, ok := volumes["hum"]; ok {
				cfg.EffectVolumes[SoundHum] = v
			}
		}
	}

	if sampleRate := os.Getenv("LITE_CYCLES_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
