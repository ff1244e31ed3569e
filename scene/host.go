// Package scene defines the rendering collaborator contract the world draws through
package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pyramid-scene/celestial"
	"github.com/lixenwraith/pyramid-scene/forest"
	"github.com/lixenwraith/pyramid-scene/pyramid"
)

// Host resolves world elements into whatever representation its engine needs
type Host interface {
	// DrawGround places a square ground plane of the given side centered on the origin
	DrawGround(size float64)

	// DrawBlock renders a unit cube at the block position tinted by BlockColor(hue)
	DrawBlock(b pyramid.Block)

	// DrawTree renders the TreeParts primitives at the tree ground position
	DrawTree(t forest.Tree)

	// DrawBody positions and orients the celestial sphere for the given state
	DrawBody(b celestial.Body, s celestial.State)

	// SetAmbient sets the scene ambient color
	SetAmbient(c colorful.Color)
}

// Light is the handle of the directional light driven by the day/night cycle
// A host without a light passes nil and the lighting update is skipped
type Light interface {
	SetIntensity(intensity float64)
}
