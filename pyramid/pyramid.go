// Package pyramid synthesizes the tiered block layout of a stepped pyramid
package pyramid

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pyramid-scene/config"
	"github.com/lixenwraith/pyramid-scene/parameter"
)

// Block is one unit cube of the structure
type Block struct {
	Tier     int        // 0 at the base
	X, Z     int        // grid index within the tier, [0, side)
	Position mgl64.Vec3 // cube center in world space
	Hue      float64    // [0,1), Tier/size
}

// TierName is the grouping label of a tier
func TierName(tier int) string {
	return fmt.Sprintf("Level_%d", tier)
}

// Build returns the blocks of a pyramid with the given base size, tier by tier from the base,
// x-major then z within a tier
// size is clamped into the supported range
func Build(size int) []Block {
	size = config.ClampBaseSize(size)
	blocks := make([]Block, 0, Count(size))

	for tier := 0; tier < size; tier++ {
		side := size - tier
		half := float64(side) / 2
		hue := float64(tier) / float64(size)

		for x := 0; x < side; x++ {
			for z := 0; z < side; z++ {
				blocks = append(blocks, Block{
					Tier: tier,
					X:    x,
					Z:    z,
					// 0.5 lift rests each tier on the top face of the one below
					Position: mgl64.Vec3{float64(x) - half, float64(tier) + 0.5, float64(z) - half},
					Hue:      hue,
				})
			}
		}
	}
	return blocks
}

// Count is the number of blocks Build produces for size: sum of (size-t)^2
func Count(size int) int {
	size = config.ClampBaseSize(size)
	n := 0
	for side := size; side > 0; side-- {
		n += side * side
	}
	return n
}

// ExclusionRadius is the keep-out radius around the origin for surrounding placements
func ExclusionRadius(size int) float64 {
	return float64(config.ClampBaseSize(size) + parameter.ForestExclusionMargin)
}
