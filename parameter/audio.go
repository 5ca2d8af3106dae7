package parameter

import "time"

// Arrival chime
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// ChimeDuration is the total length of one arrival chime
	ChimeDuration = 250 * time.Millisecond

	// ChimeAttack is the chime fade-in
	ChimeAttack = 5 * time.Millisecond

	// ChimeRelease is the chime fade-out
	ChimeRelease = 200 * time.Millisecond

	// ChimeFundamental is the base frequency in Hz (A5)
	ChimeFundamental = 880.0

	// ChimeVolume is the master chime volume [0, 1]
	ChimeVolume = 0.3

	// ChimeMinGap drops chimes closer together than this
	ChimeMinGap = 120 * time.Millisecond
)

// Rejected input buzz
const (
	// BuzzDuration is the length of the rejected-input buzz
	BuzzDuration = 120 * time.Millisecond

	// BuzzAttack is the buzz fade-in
	BuzzAttack = 5 * time.Millisecond

	// BuzzRelease is the buzz fade-out
	BuzzRelease = 60 * time.Millisecond

	// BuzzFrequency is the buzz saw frequency in Hz
	BuzzFrequency = 110.0

	// BuzzVolume is relative to the master volume
	BuzzVolume = 0.5
)
