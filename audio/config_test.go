package audio

import "testing"

// TestDefaultAudioConfig verifies stock values are sane
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("audio disabled by default")
	}
	if cfg.MasterVolume <= 0 || cfg.MasterVolume > 1 {
		t.Errorf("MasterVolume = %f, want (0, 1]", cfg.MasterVolume)
	}
	if cfg.SampleRate <= 0 {
		t.Errorf("SampleRate = %d", cfg.SampleRate)
	}
	for _, st := range []SoundType{SoundCrash, SoundHum} {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("missing effect volume for sound %d", st)
		}
	}
}

// TestLoadAudioConfigEnv verifies environment overrides
func TestLoadAudioConfigEnv(t *testing.T) {
	t.Setenv("LITE_CYCLES_AUDIO_ENABLED", "false")
	t.Setenv("LITE_CYCLES_MASTER_VOLUME", "50")
	t.Setenv("LITE_CYCLES_SFX_VOLUMES", `{"crash": 0.25, "hum": 0.1}`)
	t.Setenv("LITE_CYCLES_SAMPLE_RATE", "48000")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Enabled = true, env override lost")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("MasterVolume = %f, want 0.5", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundCrash] != 0.25 {
		t.Errorf("crash volume = %f, want 0.25", cfg.EffectVolumes[SoundCrash])
	}
	if cfg.EffectVolumes[SoundHum] != 0.1 {
		t.Errorf("hum volume = %f, want 0.1", cfg.EffectVolumes[SoundHum])
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", cfg.SampleRate)
	}
}

// TestLoadAudioConfigClampsVolume verifies out-of-range master volume
// is clamped
func TestLoadAudioConfigClampsVolume(t *testing.T) {
	t.Setenv("LITE_CYCLES_MASTER_VOLUME", "250")
	if cfg := LoadAudioConfig(); cfg.MasterVolume != 1 {
		t.Errorf("MasterVolume = %f, want clamp to 1", cfg.MasterVolume)
	}

	t.Setenv("LITE_CYCLES_MASTER_VOLUME", "-10")
	if cfg := LoadAudioConfig(); cfg.MasterVolume != 0 {
		t.Errorf("MasterVolume = %f, want clamp to 0", cfg.MasterVolume)
	}
}
