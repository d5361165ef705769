package constants

import "time"

// Audio
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// ChimeVolume scales the revolution chime, 0..1
	ChimeVolume = 0.6

	// Revolution chime: fundamental and overtone with separate releases
	ChimeFundamentalHz      = 880.0
	ChimeOvertoneHz         = 1760.0
	ChimeDuration           = 600 * time.Millisecond
	ChimeAttack             = 5 * time.Millisecond
	ChimeFundamentalRelease = 550 * time.Millisecond
	ChimeOvertoneRelease    = 200 * time.Millisecond
)
