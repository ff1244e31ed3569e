// Package celestial animates the rotating celestial body and the day/night light cycle
package celestial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pyramid-scene/parameter"
	"github.com/lixenwraith/pyramid-scene/vmath"
)

// RotationAxis is the fixed horizontal spin axis
var RotationAxis = mgl64.Vec3{1, 0, 0}

// Ambient endpoints of the cycle
var (
	Night = colorful.Color{R: 0, G: 0, B: 0}
	Day   = colorful.Color{R: 1, G: 1, B: 1}
)

// Phase is the direction of the light cycle
type Phase uint8

const (
	PhaseRising  Phase = iota // cycle climbing 0→1
	PhaseFalling              // cycle dropping 1→0
)

func (p Phase) String() string {
	if p == PhaseFalling {
		return "falling"
	}
	return "rising"
}

// Event marks a turning point of the cycle crossed during a tick
type Event uint8

const (
	EventNone Event = iota
	EventDawn       // cycle bottomed out at 0, light starts rising
	EventNoon       // cycle peaked at 1, light starts falling
)

func (e Event) String() string {
	switch e {
	case EventDawn:
		return "dawn"
	case EventNoon:
		return "noon"
	default:
		return "none"
	}
}

// State is the animated celestial and lighting state
type State struct {
	Elapsed   float64        // accumulated seconds, never decreases
	Angle     float64        // degrees about RotationAxis, [0, 360)
	Cycle     float64        // triangle wave output, [0, 1]
	Intensity float64        // directional light, [0.2, 1.2]
	Ambient   colorful.Color // Night→Day blend by Cycle
	Phase     Phase
}

// Orientation is the body rotation as a quaternion
func (s State) Orientation() mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(s.Angle), RotationAxis)
}

// TriangleWave folds phase through a ping-pong onto [0,1]: 0→1 over [0,1], 1→0 over [1,2], period 2
func TriangleWave(phase float64) float64 {
	return vmath.PingPong(phase, 1)
}

// LightIntensity maps a cycle value to the directional light range
func LightIntensity(cycle float64) float64 {
	return vmath.Lerp(parameter.LightIntensityMin, parameter.LightIntensityMax, cycle)
}

// AmbientColor blends black to white componentwise by cycle
func AmbientColor(cycle float64) colorful.Color {
	return Night.BlendRgb(Day, cycle)
}

// Animator accumulates time and derives rotation and lighting
// Single writer: Tick must be serialized by the caller
type Animator struct {
	rotationSpeed float64 // degrees per second
	cycleDuration float64 // seconds per half period
	state         State
	lastEvent     Event
}

// NewAnimator starts at elapsed 0 on the rising edge
func NewAnimator(rotationSpeed, cycleDuration float64) *Animator {
	a := &Animator{
		rotationSpeed: rotationSpeed,
		cycleDuration: cycleDuration,
	}
	a.Reset()
	return a
}

// Reset returns to elapsed 0, angle 0, cycle at the rising edge
func (a *Animator) Reset() {
	a.state = State{}
	a.lastEvent = EventNone
	a.derive()
}

// Tick advances by dt seconds and returns the updated state
// Negative or NaN dt counts as 0 so Elapsed stays monotonic
func (a *Animator) Tick(dt float64) State {
	if !(dt > 0) {
		dt = 0
	}

	prevPhase := a.phase()

	a.state.Angle = vmath.WrapDegrees(a.state.Angle + a.rotationSpeed*dt)
	a.state.Elapsed += dt
	a.derive()

	a.lastEvent = turningPoint(prevPhase, a.phase())
	return a.state
}

// State returns the current state without advancing
func (a *Animator) State() State {
	return a.state
}

// LastEvent is the turning point crossed by the most recent Tick, EventNone if none
func (a *Animator) LastEvent() Event {
	return a.lastEvent
}

// RotationSpeed returns degrees per second
func (a *Animator) RotationSpeed() float64 {
	return a.rotationSpeed
}

// CycleDuration returns seconds per half period
func (a *Animator) CycleDuration() float64 {
	return a.cycleDuration
}

func (a *Animator) phase() float64 {
	if a.cycleDuration <= 0 {
		return 0
	}
	return a.state.Elapsed / a.cycleDuration
}

func (a *Animator) derive() {
	p := a.phase()
	cycle := TriangleWave(p)

	a.state.Cycle = cycle
	a.state.Intensity = LightIntensity(cycle)
	a.state.Ambient = AmbientColor(cycle)
	if int64(math.Floor(p))%2 == 0 {
		a.state.Phase = PhaseRising
	} else {
		a.state.Phase = PhaseFalling
	}
}

// turningPoint reports the latest integer phase in (prev, cur]
// Even integers are cycle minima (dawn), odd are maxima (noon)
func turningPoint(prev, cur float64) Event {
	k := math.Floor(cur)
	if k <= math.Floor(prev) {
		return EventNone
	}
	if int64(k)%2 == 0 {
		return EventDawn
	}
	return EventNoon
}
