package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/pyramid-scene/parameter"
)

// envelope applies a linear attack and release to a finite streamer
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, rate beep.SampleRate, total, attack, release time.Duration) *envelope {
	tot := rate.N(total)
	att := min(rate.N(attack), tot)
	rel := min(rate.N(release), tot-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   tot,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// newTone builds a bell-like tone: fundamental plus a quieter octave, enveloped and attenuated
func newTone(rate beep.SampleRate, freq float64, duration time.Duration, vol float64) (beep.Streamer, error) {
	fundamental, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	octave, err := generators.SineTone(rate, freq*2)
	if err != nil {
		return nil, err
	}

	n := rate.N(duration)
	partials := beep.Mix(
		beep.Take(n, fundamental),
		newVolume(beep.Take(n, octave), parameter.ChimeOvertone),
	)
	shaped := newEnvelope(partials, rate, duration, parameter.ChimeAttack, parameter.ChimeRelease)
	return newVolume(shaped, vol), nil
}
