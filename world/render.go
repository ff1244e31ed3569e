package world

import (
	"github.com/lixenwraith/pyramid-scene/scene"
)

// Render submits the static geometry and the current celestial state to host
func (w *World) Render(host scene.Host, light scene.Light) {
	host.DrawGround(w.Ground.Size)
	for _, b := range w.Blocks {
		host.DrawBlock(b)
	}
	for _, t := range w.Trees {
		host.DrawTree(t)
	}
	w.Apply(Frame{Tick: w.tick, State: w.Celestial()}, host, light)
}

// Apply forwards frame values: the body always moves, lighting only when a light exists
func (w *World) Apply(f Frame, host scene.Host, light scene.Light) {
	host.DrawBody(w.Body, f.State)
	if light == nil {
		return
	}
	light.SetIntensity(f.State.Intensity)
	host.SetAmbient(f.State.Ambient)
}
