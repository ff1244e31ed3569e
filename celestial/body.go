package celestial

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pyramid-scene/parameter"
)

// Body is the celestial sphere placement; it spins in place, its position is fixed
type Body struct {
	Position mgl64.Vec3
	Scale    float64 // diameter
}

// DefaultBody hangs the sphere above the pyramid
func DefaultBody() Body {
	return Body{
		Position: mgl64.Vec3{0, parameter.BodyHeight, 0},
		Scale:    parameter.BodyScale,
	}
}

// Radius is half the diameter
func (b Body) Radius() float64 {
	return b.Scale / 2
}

// Marker returns the world position of a reference point on the body surface for the given state
// The point starts at the top of the sphere and turns with the body
func (b Body) Marker(s State) mgl64.Vec3 {
	local := mgl64.Vec3{0, b.Radius(), 0}
	return b.Position.Add(s.Orientation().Rotate(local))
}
