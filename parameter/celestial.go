package parameter

// Celestial cycle defaults
const (
	// RotationSpeedDefault is the celestial body spin in degrees per second
	RotationSpeedDefault = 20.0

	// CycleDurationDefault is seconds for one half period (night to day)
	CycleDurationDefault = 10.0

	// LightIntensityMin and LightIntensityMax bound the directional light
	LightIntensityMin = 0.2
	LightIntensityMax = 1.2
)

// Celestial body placement
const (
	BodyHeight = 30.0
	BodyScale  = 5.0 // diameter in world units
)
