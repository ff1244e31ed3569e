// Package audio plays short tones on celestial turning points
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pyramid-scene/celestial"
	"github.com/lixenwraith/pyramid-scene/parameter"
)

const sampleRate = beep.SampleRate(parameter.ChimeSampleRate)

// Chime plays a dawn or noon tone; every call is a no-op until Initialize succeeds
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      int
}

// NewChime creates an uninitialized chime
func NewChime() *Chime {
	return &Chime{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and attaches the mixer
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.ChimeBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup silences pending tones
// The speaker itself stays open, beep cannot reinitialize it reliably
func (c *Chime) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (c *Chime) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = muted
}

func (c *Chime) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Played is the number of tones queued since creation
func (c *Chime) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// Play queues the tone for a turning point event, EventNone is ignored
func (c *Chime) Play(ev celestial.Event) {
	freq, ok := Frequency(ev)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted {
		return
	}

	tone, err := newTone(sampleRate, freq, parameter.ChimeDuration, parameter.ChimeVolume)
	if err != nil {
		return
	}

	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
	c.played++
}

// Frequency maps a turning point to its tone in Hz
func Frequency(ev celestial.Event) (float64, bool) {
	switch ev {
	case celestial.EventDawn:
		return parameter.ChimeDawnFreq, true
	case celestial.EventNoon:
		return parameter.ChimeNoonFreq, true
	default:
		return 0, false
	}
}
