// Package world composes pyramid, forest and celestial animation into one generated scene
package world

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/pyramid-scene/celestial"
	"github.com/lixenwraith/pyramid-scene/config"
	"github.com/lixenwraith/pyramid-scene/forest"
	"github.com/lixenwraith/pyramid-scene/pyramid"
)

// Ground is the square plane the scene stands on
type Ground struct {
	Size float64
}

// World exclusively owns its geometry and celestial state
// Geometry is read-only after Generate; only Advance mutates the world
type World struct {
	ID     uuid.UUID
	Config config.Generation // normalized
	Seed   uint64            // effective forest seed

	Ground Ground
	Blocks []pyramid.Block
	Trees  []forest.Tree
	Forest forest.Stats
	Body   celestial.Body

	animator *celestial.Animator
	tick     uint64
}

// Frame is the per-tick output forwarded to scene hosts
type Frame struct {
	Tick  uint64
	State celestial.State
	Event celestial.Event
}

// Generate builds a world: pyramid first, then the forest around its footprint, then a fresh
// celestial state at elapsed 0
// The base size is clamped; other invalid fields return an error wrapping config.ErrInvalidConfig
func Generate(cfg config.Generation) (*World, error) {
	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	w := &World{
		ID:     uuid.New(),
		Config: cfg,
		Seed:   seed,
		Ground: Ground{Size: cfg.GroundSize},
		Body:   celestial.DefaultBody(),
	}

	w.Blocks = pyramid.Build(cfg.PyramidBaseSize)

	placer := forest.NewPlacer(seed)
	w.Trees = placer.Place(cfg.TreeCount, cfg.ForestRadius, cfg.TreeSpacing, pyramid.ExclusionRadius(cfg.PyramidBaseSize))
	w.Forest = placer.Stats()

	w.animator = celestial.NewAnimator(cfg.RotationSpeed, cfg.CycleDuration)
	return w, nil
}

// Advance steps the celestial animation by dt seconds
func (w *World) Advance(dt float64) Frame {
	state := w.animator.Tick(dt)
	w.tick++
	return Frame{
		Tick:  w.tick,
		State: state,
		Event: w.animator.LastEvent(),
	}
}

// Celestial returns the current celestial state
func (w *World) Celestial() celestial.State {
	return w.animator.State()
}

// Ticks is the number of Advance calls since generation or Restart
func (w *World) Ticks() uint64 {
	return w.tick
}

// Restart rewinds the animation to elapsed 0, geometry is untouched
func (w *World) Restart() {
	w.animator.Reset()
	w.tick = 0
}

// Underfilled reports whether the forest holds fewer trees than requested
func (w *World) Underfilled() bool {
	return len(w.Trees) < w.Config.TreeCount
}
