package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pyramid-scene/celestial"
	"github.com/lixenwraith/pyramid-scene/forest"
	"github.com/lixenwraith/pyramid-scene/parameter"
	"github.com/lixenwraith/pyramid-scene/pyramid"
)

// Kind is a primitive shape
type Kind uint8

const (
	KindCube Kind = iota
	KindCylinder
	KindSphere
)

func (k Kind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindCylinder:
		return "cylinder"
	case KindSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Primitive is a resolved shape: Size is the full extent along each axis
type Primitive struct {
	Kind   Kind
	Center mgl64.Vec3
	Size   mgl64.Vec3
	Color  colorful.Color
}

var (
	TrunkColor  = rgb(parameter.TrunkColorRGB)
	CanopyColor = rgb(parameter.CanopyColorRGB)
	GroundColor = rgb(parameter.GroundColorRGB)
)

// BodyColor is the base tint of the celestial sphere
var BodyColor = colorful.Color{R: 1, G: 0.85, B: 0.35}

func rgb(c [3]float64) colorful.Color {
	return colorful.Color{R: c[0], G: c[1], B: c[2]}
}

// BlockColor converts a tier hue to the block tint: HSV(hue, 0.8, 0.9)
func BlockColor(hue float64) colorful.Color {
	return colorful.Hsv(hue*360, parameter.BlockSaturation, parameter.BlockValue)
}

// BlockPrimitive resolves a pyramid block into a unit cube
func BlockPrimitive(b pyramid.Block) Primitive {
	return Primitive{
		Kind:   KindCube,
		Center: b.Position,
		Size:   mgl64.Vec3{1, 1, 1},
		Color:  BlockColor(b.Hue),
	}
}

// TreeParts resolves a tree into its trunk and canopy
// Trunk center 1 up, canopy center 2.5 up at 2x scale
func TreeParts(t forest.Tree) (trunk, canopy Primitive) {
	trunk = Primitive{
		Kind:   KindCylinder,
		Center: t.Position.Add(mgl64.Vec3{0, parameter.TrunkOffsetY, 0}),
		Size:   mgl64.Vec3{2 * parameter.TrunkRadius, parameter.TrunkHeight, 2 * parameter.TrunkRadius},
		Color:  TrunkColor,
	}
	canopy = Primitive{
		Kind:   KindSphere,
		Center: t.Position.Add(mgl64.Vec3{0, parameter.CanopyOffsetY, 0}),
		Size:   mgl64.Vec3{2 * parameter.CanopyRadius, 2 * parameter.CanopyRadius, 2 * parameter.CanopyRadius},
		Color:  CanopyColor,
	}
	return trunk, canopy
}

// BodyPrimitive resolves the celestial body into a sphere
func BodyPrimitive(b celestial.Body) Primitive {
	return Primitive{
		Kind:   KindSphere,
		Center: b.Position,
		Size:   mgl64.Vec3{b.Scale, b.Scale, b.Scale},
		Color:  BodyColor,
	}
}
