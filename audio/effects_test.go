package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestOscillatorSine verifies sine wave generation stays in range
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][1] != samples[i][0] {
			t.Errorf("Sample %d channels differ", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorTerminates verifies the stream ends at its duration
func TestOscillatorTerminates(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	osc := NewOscillator(440.0, duration, WaveSquare, rate)

	total := 0
	samples := make([][2]float64, 512)
	for {
		n, ok := osc.Stream(samples)
		total += n
		if !ok {
			break
		}
	}

	if want := rate.N(duration); total != want {
		t.Errorf("Streamed %d samples, want %d", total, want)
	}
}

// TestEnvelopeAttackSilencesStart verifies the first sample is fully
// attenuated
func TestEnvelopeAttackSilencesStart(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(0, 100*time.Millisecond, WaveNoise, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 1)
	n, ok := env.Stream(samples)
	if !ok || n != 1 {
		t.Fatalf("Stream = (%d, %v)", n, ok)
	}
	if samples[0][0] != 0 {
		t.Errorf("First sample = %f, want 0 at attack start", samples[0][0])
	}
}

// TestCrashSoundFinite verifies the crash burst ends on its own
func TestCrashSoundFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	s := CreateCrashSound(cfg)

	samples := make([][2]float64, 4096)
	iterations := 0
	for {
		_, ok := s.Stream(samples)
		if !ok {
			break
		}
		iterations++
		if iterations > 1000 {
			t.Fatal("crash sound never terminated")
		}
	}
}

// TestHumLoopsForever verifies the hum keeps streaming and stays in
// range
func TestHumLoopsForever(t *testing.T) {
	rate := beep.SampleRate(44100)
	hum := NewHumGenerator(rate)

	samples := make([][2]float64, 4096)
	for round := 0; round < 50; round++ {
		n, ok := hum.Stream(samples)
		if !ok {
			t.Fatal("hum stream ended")
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
				t.Fatalf("hum sample out of range: %f", samples[i][0])
			}
		}
	}
}
