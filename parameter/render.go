package parameter

// Terminal rasterization
const (
	// HUDRows is reserved at the bottom of the screen for status and key help
	HUDRows = 2

	// AmbientWeight and DiffuseWeight split the shading between ambient and directional light
	AmbientWeight = 0.35
	DiffuseWeight = 0.65

	// ShadeFloor keeps unlit surfaces from collapsing to pure black
	ShadeFloor = 0.08

	// FaceTopShade and FaceSideShade approximate Lambert terms for a sun above the scene
	FaceTopShade  = 1.0
	FaceSideShade = 0.6

	// FogStart and FogEnd fade distant ground cells into the sky color, world units from the eye
	FogStart = 80.0
	FogEnd   = 260.0

	// MinProjectedRadius skips spheres smaller than this many rows
	MinProjectedRadius = 0.3
)

// Screen-space light direction for sphere shading, normalized at use
var SphereLightDir = [3]float64{-0.35, -0.55, 0.75}

// Sky gradient endpoints blended by the day/night cycle
var (
	SkyNightRGB = [3]float64{0.02, 0.02, 0.08}
	SkyDayRGB   = [3]float64{0.45, 0.7, 0.95}
)
