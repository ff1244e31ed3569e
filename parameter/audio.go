package parameter

import "time"

// Celestial chime tones
const (
	// ChimeSampleRate is the speaker sample rate
	ChimeSampleRate = 44100

	// ChimeBufferDuration is the speaker buffer length
	ChimeBufferDuration = 100 * time.Millisecond

	// ChimeDuration is the length of a single chime
	ChimeDuration = 400 * time.Millisecond

	// ChimeDawnFreq and ChimeNoonFreq are the tone frequencies in Hz
	ChimeDawnFreq = 440.0
	ChimeNoonFreq = 660.0

	// ChimeVolume is the gain applied to the raw oscillator
	ChimeVolume = 0.25
)

// Chime envelope
const (
	ChimeAttack  = 10 * time.Millisecond
	ChimeRelease = 250 * time.Millisecond

	// ChimeOvertone is the relative level of the octave partial
	ChimeOvertone = 0.3
)
