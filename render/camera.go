package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pyramid-scene/parameter"
	"github.com/lixenwraith/pyramid-scene/vmath"
)

var worldUp = mgl64.Vec3{0, 1, 0}

// Camera orbits a target point; yaw around +Y, pitch above the ground plane
type Camera struct {
	Target   mgl64.Vec3
	Yaw      float64 // degrees
	Pitch    float64 // degrees
	Distance float64
	FOV      float64 // vertical, degrees
	Near     float64
	Far      float64
}

// NewCamera returns the default orbit framing the whole forest
func NewCamera() *Camera {
	return &Camera{
		Target:   mgl64.Vec3{0, parameter.CameraTargetY, 0},
		Yaw:      parameter.CameraYaw,
		Pitch:    parameter.CameraPitch,
		Distance: parameter.CameraDistance,
		FOV:      parameter.CameraFOV,
		Near:     parameter.CameraNear,
		Far:      parameter.CameraFar,
	}
}

// Eye is the camera position in world space
func (c *Camera) Eye() mgl64.Vec3 {
	yaw := mgl64.DegToRad(c.Yaw)
	pitch := mgl64.DegToRad(c.Pitch)
	horiz := c.Distance * math.Cos(pitch)
	return c.Target.Add(mgl64.Vec3{
		horiz * math.Sin(yaw),
		c.Distance * math.Sin(pitch),
		horiz * math.Cos(yaw),
	})
}

// View is the world to camera transform
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye(), c.Target, worldUp)
}

// Projection builds the perspective matrix for a w x h cell viewport
// Cells are CellAspect times taller than wide, the aspect ratio compensates
func (c *Camera) Projection(w, h int) mgl64.Mat4 {
	if w <= 0 || h <= 0 {
		return mgl64.Ident4()
	}
	aspect := float64(w) / (float64(h) * parameter.CellAspect)
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// Orbit rotates around the target, pitch is clamped
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw = vmath.WrapDegrees(c.Yaw + dYaw)
	c.Pitch = vmath.Clamp(c.Pitch+dPitch, parameter.CameraPitchMin, parameter.CameraPitchMax)
}

// Zoom moves toward (negative) or away from the target, distance is clamped
func (c *Camera) Zoom(d float64) {
	c.Distance = vmath.Clamp(c.Distance+d, parameter.CameraDistanceMin, parameter.CameraDistanceMax)
}

// Reset restores the default framing
func (c *Camera) Reset() {
	*c = *NewCamera()
}
