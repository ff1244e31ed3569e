package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pyramid-scene/audio"
	"github.com/lixenwraith/pyramid-scene/celestial"
	"github.com/lixenwraith/pyramid-scene/config"
	"github.com/lixenwraith/pyramid-scene/engine"
	"github.com/lixenwraith/pyramid-scene/observer"
	"github.com/lixenwraith/pyramid-scene/parameter"
	"github.com/lixenwraith/pyramid-scene/render"
	"github.com/lixenwraith/pyramid-scene/vmath"
	"github.com/lixenwraith/pyramid-scene/world"
)

const helpLine = "arrows:orbit  +/-:zoom  c:camera  space:pause  r:restart  n:new world  m:mute  q:quit"

// app owns the frame loop: one goroutine advances the world and draws, input arrives on a channel
type app struct {
	screen   tcell.Screen
	renderer *render.Renderer
	clock    *engine.FrameClock
	chime    *audio.Chime

	// Optional observer stream
	hub    *observer.Hub
	server *observer.Server

	cfg   config.Generation
	world *world.World
}

func newApp(screen tcell.Screen, cfg config.Generation, clock *engine.FrameClock, chime *audio.Chime) (*app, error) {
	a := &app{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		clock:    clock,
		chime:    chime,
		cfg:      cfg,
	}
	if err := a.generate(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// attachObserver forwards frames and the bootstrap snapshot to remote viewers
func (a *app) attachObserver(hub *observer.Hub, server *observer.Server) {
	a.hub = hub
	a.server = server
	if err := server.SetWorld(a.world); err != nil {
		log.Printf("observer bootstrap: %v", err)
	}
}

// generate replaces the world and resubmits static geometry
func (a *app) generate(cfg config.Generation) error {
	w, err := world.Generate(cfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.world = w

	a.renderer.Reset()
	w.Render(a.renderer, a.renderer)

	log.Printf("world %s: seed=%d blocks=%d trees=%d/%d attempts=%d",
		w.ID, w.Seed, len(w.Blocks), len(w.Trees), w.Config.TreeCount, w.Forest.Attempts)
	if w.Underfilled() {
		log.Printf("forest underfilled: %d of %d trees placed (rejected: %d exclusion, %d spacing)",
			len(w.Trees), w.Config.TreeCount, w.Forest.RejectedExclusion, w.Forest.RejectedSpacing)
	}

	if a.server != nil {
		if err := a.server.SetWorld(w); err != nil {
			log.Printf("observer bootstrap: %v", err)
		}
	}
	return nil
}

// regenerate derives the next seed from the current one so a session is reproducible
func (a *app) regenerate() error {
	cfg := a.cfg
	cfg.Seed = vmath.NewFastRand(a.world.Seed).Next()
	return a.generate(cfg)
}

// frame advances the world by the clock delta and presents it
func (a *app) frame() world.Frame {
	f := a.world.Advance(a.clock.Tick())
	a.world.Apply(f, a.renderer, a.renderer)

	if f.Event != celestial.EventNone {
		log.Printf("tick %d: %s", f.Tick, f.Event)
		a.chime.Play(f.Event)
	}
	if a.hub != nil {
		a.hub.Publish(f)
	}

	a.renderer.SetStatus(a.status(f), helpLine)
	a.renderer.Present()
	return f
}

func (a *app) status(f world.Frame) string {
	s := fmt.Sprintf("seed %d  t=%.1fs  angle %5.1f  light %.2f  %s  trees %d/%d",
		a.world.Seed, f.State.Elapsed, f.State.Angle, f.State.Intensity, f.State.Phase,
		len(a.world.Trees), a.world.Config.TreeCount)
	if a.chime.Muted() {
		s += "  [MUTED]"
	}
	if a.clock.IsPaused() {
		s += "  [PAUSED]"
	}
	return s
}

// handleEvent applies one input event, false means quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cam := a.renderer.Camera()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			cam.Orbit(-parameter.CameraYawStep, 0)
		case tcell.KeyRight:
			cam.Orbit(parameter.CameraYawStep, 0)
		case tcell.KeyUp:
			cam.Orbit(0, parameter.CameraPitchStep)
		case tcell.KeyDown:
			cam.Orbit(0, -parameter.CameraPitchStep)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				a.clock.Toggle()
			case '+', '=':
				cam.Zoom(-parameter.CameraZoomStep)
			case '-', '_':
				cam.Zoom(parameter.CameraZoomStep)
			case 'c':
				cam.Reset()
			case 'r':
				a.world.Restart()
			case 'n':
				if err := a.regenerate(); err != nil {
					log.Printf("regenerate: %v", err)
				}
			case 'm':
				a.chime.SetMuted(!a.chime.Muted())
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// run drives frames at the configured interval until quit or ctx is done
func (a *app) run(ctx context.Context) {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.InputQueueSize)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-eventChan:
			if !ok || !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.frame()
		}
	}
}
