package constants

import "time"

// Audio System Constants
const (
	// AudioSampleRate is the default speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer size
	AudioBufferDuration = 100 * time.Millisecond
)

// Crash Sound
const (
	CrashSoundDuration = 300 * time.Millisecond
	CrashSoundAttack   = 2 * time.Millisecond
	CrashSoundRelease  = 250 * time.Millisecond
)

// Background Hum
const (
	// HumFrequency is the base frequency of the arena hum
	HumFrequency = 60.0

	// HumCycleDuration is the length of one loop of the hum swell
	HumCycleDuration = 2 * time.Second
)
