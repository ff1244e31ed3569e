// Package render rasterizes the world onto a tcell screen with an orbit camera
package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pyramid-scene/celestial"
	"github.com/lixenwraith/pyramid-scene/forest"
	"github.com/lixenwraith/pyramid-scene/parameter"
	"github.com/lixenwraith/pyramid-scene/pyramid"
	"github.com/lixenwraith/pyramid-scene/scene"
)

// Renderer is a scene.Host and scene.Light drawing to a terminal
// Static geometry is retained between frames; Present rasterizes everything
type Renderer struct {
	screen tcell.Screen
	camera *Camera

	groundSize float64
	prims      []scene.Primitive

	body      celestial.Body
	bodyState celestial.State
	hasBody   bool

	ambient   colorful.Color
	intensity float64

	status string
	help   string

	// Per-frame scratch
	draws    []drawable
	lightDir mgl64.Vec3
}

type drawable struct {
	prim  scene.Primitive
	depth float64
	body  bool
}

var (
	_ scene.Host  = (*Renderer)(nil)
	_ scene.Light = (*Renderer)(nil)
)

// NewRenderer draws to an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	l := parameter.SphereLightDir
	return &Renderer{
		screen:    screen,
		camera:    NewCamera(),
		ambient:   celestial.Night,
		intensity: parameter.LightIntensityMin,
		lightDir:  mgl64.Vec3{l[0], l[1], l[2]}.Normalize(),
	}
}

// Camera exposes the orbit camera for input handling
func (r *Renderer) Camera() *Camera {
	return r.camera
}

func (r *Renderer) DrawGround(size float64) {
	r.groundSize = size
}

func (r *Renderer) DrawBlock(b pyramid.Block) {
	r.prims = append(r.prims, scene.BlockPrimitive(b))
}

func (r *Renderer) DrawTree(t forest.Tree) {
	trunk, canopy := scene.TreeParts(t)
	r.prims = append(r.prims, trunk, canopy)
}

func (r *Renderer) DrawBody(b celestial.Body, s celestial.State) {
	r.body = b
	r.bodyState = s
	r.hasBody = true
}

func (r *Renderer) SetAmbient(c colorful.Color) {
	r.ambient = c
}

func (r *Renderer) SetIntensity(intensity float64) {
	r.intensity = intensity
}

// SetStatus sets the HUD status and key help lines
func (r *Renderer) SetStatus(status, help string) {
	r.status = status
	r.help = help
}

// Reset drops retained geometry so a regenerated world can be submitted
func (r *Renderer) Reset() {
	r.groundSize = 0
	r.prims = r.prims[:0]
	r.hasBody = false
}

// Primitives returns the retained static primitives
func (r *Renderer) Primitives() []scene.Primitive {
	return r.prims
}

// Present rasterizes the retained scene and shows it
func (r *Renderer) Present() {
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	r.screen.Clear()

	viewH := h - parameter.HUDRows
	hud := true
	if viewH < 1 {
		viewH = h
		hud = false
	}

	p := newProjector(r.camera, w, viewH)
	r.drawBackground(p)

	r.draws = r.draws[:0]
	for _, prim := range r.prims {
		if _, _, depth, ok := p.project(prim.Center); ok {
			r.draws = append(r.draws, drawable{prim: prim, depth: depth})
		}
	}
	if r.hasBody {
		bodyPrim := scene.BodyPrimitive(r.body)
		if _, _, depth, ok := p.project(bodyPrim.Center); ok {
			r.draws = append(r.draws, drawable{prim: bodyPrim, depth: depth, body: true})
		}
	}

	// Painter's algorithm: far to near
	sort.Slice(r.draws, func(i, j int) bool {
		return r.draws[i].depth > r.draws[j].depth
	})

	for _, d := range r.draws {
		switch d.prim.Kind {
		case scene.KindCube:
			r.drawCube(p, d.prim)
		case scene.KindCylinder:
			r.drawCylinder(p, d.prim)
		case scene.KindSphere:
			r.drawSphere(p, d.prim, d.body)
			if d.body {
				r.drawMarker(p, d.depth)
			}
		}
	}

	if hud {
		r.drawHUD(w, h)
	}
	r.screen.Show()
}
