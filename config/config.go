// Package config holds the generation parameters of a scene and their loading pipeline
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/pyramid-scene/parameter"
	"github.com/lixenwraith/pyramid-scene/vmath"
)

// ErrInvalidConfig is wrapped by every validation and parse failure
var ErrInvalidConfig = errors.New("invalid config")

// Generation is the full tunable parameter set of a world
type Generation struct {
	PyramidBaseSize int     `yaml:"pyramid_base_size" json:"pyramid_base_size"`
	TreeCount       int     `yaml:"tree_count" json:"tree_count"`
	ForestRadius    float64 `yaml:"forest_radius" json:"forest_radius"`
	TreeSpacing     float64 `yaml:"tree_spacing" json:"tree_spacing"`
	RotationSpeed   float64 `yaml:"rotation_speed" json:"rotation_speed"` // degrees per second
	CycleDuration   float64 `yaml:"cycle_duration" json:"cycle_duration"` // seconds per half period
	GroundSize      float64 `yaml:"ground_size" json:"ground_size"`
	Seed            uint64  `yaml:"seed" json:"seed"` // 0 seeds from the clock
}

// Default returns the reference scene parameters
func Default() Generation {
	return Generation{
		PyramidBaseSize: parameter.PyramidBaseSizeDefault,
		TreeCount:       parameter.TreeCountDefault,
		ForestRadius:    parameter.ForestRadiusDefault,
		TreeSpacing:     parameter.TreeSpacingDefault,
		RotationSpeed:   parameter.RotationSpeedDefault,
		CycleDuration:   parameter.CycleDurationDefault,
		GroundSize:      parameter.GroundSizeDefault,
	}
}

// ClampBaseSize maps any base size into the supported range
// Out-of-range sizes are clamped, never rejected
func ClampBaseSize(size int) int {
	return vmath.ClampInt(size, parameter.PyramidBaseSizeMin, parameter.PyramidBaseSizeMax)
}

// Normalized returns a copy with the base size clamped
func (g Generation) Normalized() Generation {
	g.PyramidBaseSize = ClampBaseSize(g.PyramidBaseSize)
	return g
}

// Validate checks every field except PyramidBaseSize, which is clamped instead
func (g Generation) Validate() error {
	finite := []struct {
		name string
		v    float64
	}{
		{"forest_radius", g.ForestRadius},
		{"tree_spacing", g.TreeSpacing},
		{"rotation_speed", g.RotationSpeed},
		{"cycle_duration", g.CycleDuration},
		{"ground_size", g.GroundSize},
	}
	for _, f := range finite {
		if math.IsInf(f.v, 0) || math.IsNaN(f.v) {
			return fmt.Errorf("%w: %s %v is not finite", ErrInvalidConfig, f.name, f.v)
		}
	}

	switch {
	case g.TreeCount < 0:
		return fmt.Errorf("%w: tree_count %d is negative", ErrInvalidConfig, g.TreeCount)
	case !(g.ForestRadius > 0):
		return fmt.Errorf("%w: forest_radius %v must be positive", ErrInvalidConfig, g.ForestRadius)
	case !(g.TreeSpacing > 0):
		return fmt.Errorf("%w: tree_spacing %v must be positive", ErrInvalidConfig, g.TreeSpacing)
	case !(g.CycleDuration > 0):
		return fmt.Errorf("%w: cycle_duration %v must be positive", ErrInvalidConfig, g.CycleDuration)
	case !(g.GroundSize > 0):
		return fmt.Errorf("%w: ground_size %v must be positive", ErrInvalidConfig, g.GroundSize)
	}
	return nil
}
