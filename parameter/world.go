package parameter

// Generation defaults, matching the reference scene
const (
	// PyramidBaseSizeDefault is the base tier side length
	PyramidBaseSizeDefault = 6

	// PyramidBaseSizeMin and PyramidBaseSizeMax bound the clamped base size
	PyramidBaseSizeMin = 3
	PyramidBaseSizeMax = 10

	// TreeCountDefault is the requested forest population
	TreeCountDefault = 25

	// ForestRadiusDefault is the half-extent of the square sampling area
	ForestRadiusDefault = 40.0

	// TreeSpacingDefault is the minimum distance between trunks
	TreeSpacingDefault = 3.0

	// ForestExclusionMargin is added to the pyramid base size to get the keep-out radius
	ForestExclusionMargin = 5

	// ForestAttemptFactor bounds draws to count * factor
	ForestAttemptFactor = 10

	// ForestPreallocMax caps the up-front tree slice, larger forests grow on append
	ForestPreallocMax = 4096

	// GroundSizeDefault is the side of the square ground plane (10x a 10-unit plane)
	GroundSizeDefault = 100.0
)

// Pyramid block appearance
const (
	// BlockSaturation and BlockValue are the HSV components paired with the tier hue
	BlockSaturation = 0.8
	BlockValue      = 0.9
)

// Tree primitive layout relative to the ground position
const (
	TrunkOffsetY = 1.0
	TrunkRadius  = 0.25 // 0.5 scale on a unit-diameter cylinder
	TrunkHeight  = 2.0  // 1 scale on a 2-unit cylinder

	CanopyOffsetY = 2.5
	CanopyRadius  = 1.0 // 2x scale on a unit-diameter sphere
)

// Tree colors, linear RGB in [0,1]
var (
	TrunkColorRGB  = [3]float64{0.4, 0.2, 0.1}
	CanopyColorRGB = [3]float64{0, 1, 0}
	GroundColorRGB = [3]float64{0.18, 0.45, 0.2}
)
