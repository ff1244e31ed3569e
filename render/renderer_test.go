package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pyramid-scene/celestial"
	"github.com/lixenwraith/pyramid-scene/forest"
	"github.com/lixenwraith/pyramid-scene/parameter"
	"github.com/lixenwraith/pyramid-scene/pyramid"
	"github.com/lixenwraith/pyramid-scene/scene"
)

const (
	testW = 80
	testH = 24
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(testW, testH)
	t.Cleanup(screen.Fini)
	return NewRenderer(screen), screen
}

func cellAt(t *testing.T, screen tcell.SimulationScreen, x, y int) tcell.SimCell {
	t.Helper()
	cells, w, _ := screen.GetContents()
	return cells[y*w+x]
}

func cellBg(t *testing.T, screen tcell.SimulationScreen, x, y int) (r, g, b int32) {
	t.Helper()
	_, bg, _ := cellAt(t, screen, x, y).Style.Decompose()
	return bg.RGB()
}

func TestRendererRetainsGeometry(t *testing.T) {
	r, _ := newTestRenderer(t)

	r.DrawGround(100)
	for _, b := range pyramid.Build(3) {
		r.DrawBlock(b)
	}
	r.DrawTree(forest.Tree{ID: 0, Position: mgl64.Vec3{20, 0, 0}})

	prims := r.Primitives()
	if len(prims) != 14+2 {
		t.Fatalf("primitives = %d, want 16", len(prims))
	}
	if prims[14].Kind != scene.KindCylinder || prims[15].Kind != scene.KindSphere {
		t.Errorf("tree parts = %v, %v; want cylinder, sphere", prims[14].Kind, prims[15].Kind)
	}

	r.Reset()
	if len(r.Primitives()) != 0 {
		t.Errorf("primitives after reset = %d, want 0", len(r.Primitives()))
	}
}

func TestRendererSkyAndGround(t *testing.T) {
	r, screen := newTestRenderer(t)
	r.DrawGround(parameter.GroundSizeDefault)
	r.SetAmbient(celestial.Day)
	r.SetIntensity(parameter.LightIntensityMax)
	r.Present()

	// Default pitch leaves the top row above the far edge of the ground
	sr, sg, sb := cellBg(t, screen, testW/2, 0)
	if !(sb > sr && sb > sg) {
		t.Errorf("top row bg = (%d,%d,%d), want blue sky", sr, sg, sb)
	}

	gr, gg, gb := cellBg(t, screen, testW/2, testH-parameter.HUDRows-1)
	if !(gg > gr && gg > gb) {
		t.Errorf("bottom view row bg = (%d,%d,%d), want green ground", gr, gg, gb)
	}
}

func TestRendererLightingBrightens(t *testing.T) {
	r, screen := newTestRenderer(t)
	r.DrawGround(parameter.GroundSizeDefault)
	x, y := testW/2, testH-parameter.HUDRows-1

	r.SetAmbient(celestial.Night)
	r.SetIntensity(parameter.LightIntensityMin)
	r.Present()
	_, darkG, _ := cellBg(t, screen, x, y)

	r.SetAmbient(celestial.Day)
	r.SetIntensity(parameter.LightIntensityMax)
	r.Present()
	_, brightG, _ := cellBg(t, screen, x, y)

	if brightG <= darkG {
		t.Errorf("ground green at noon %d, want brighter than night %d", brightG, darkG)
	}
}

func TestRendererDrawsBlockAtTarget(t *testing.T) {
	r, screen := newTestRenderer(t)
	r.SetAmbient(celestial.Day)
	r.SetIntensity(1)

	// Red cube sitting on the camera target
	r.DrawBlock(pyramid.Block{Position: mgl64.Vec3{0, parameter.CameraTargetY, 0}, Hue: 0})
	r.Present()

	viewH := testH - parameter.HUDRows
	red, g, b := cellBg(t, screen, testW/2, viewH/2)
	if !(red > g && red > b) {
		t.Errorf("center cell bg = (%d,%d,%d), want red block", red, g, b)
	}
}

func TestRendererPainterOrder(t *testing.T) {
	r, screen := newTestRenderer(t)
	r.SetAmbient(celestial.Day)
	r.SetIntensity(1)

	c := r.Camera()
	toEye := c.Eye().Sub(c.Target).Normalize()

	// Submit near first: sorting must still draw it last
	near := pyramid.Block{Position: c.Target.Add(toEye.Mul(10)), Hue: 1.0 / 3} // green
	far := pyramid.Block{Position: c.Target, Hue: 0}                          // red
	r.DrawBlock(near)
	r.DrawBlock(far)
	r.Present()

	viewH := testH - parameter.HUDRows
	red, g, b := cellBg(t, screen, testW/2, viewH/2)
	if !(g > red && g > b) {
		t.Errorf("center cell bg = (%d,%d,%d), want the nearer green block", red, g, b)
	}
}

func TestRendererHUD(t *testing.T) {
	r, screen := newTestRenderer(t)
	r.SetStatus("day 42%", "q:quit")
	r.Present()

	status := cellAt(t, screen, 0, testH-2)
	if len(status.Runes) == 0 || status.Runes[0] != 'd' {
		t.Errorf("status row starts with %q, want 'd'", status.Runes)
	}
	help := cellAt(t, screen, 1, testH-1)
	if len(help.Runes) == 0 || help.Runes[0] != ':' {
		t.Errorf("help row second cell %q, want ':'", help.Runes)
	}
}

func TestRendererBodyVisible(t *testing.T) {
	r, screen := newTestRenderer(t)
	c := r.Camera()

	// Park the body on the camera target so it fills the center cell
	body := celestial.Body{Position: c.Target, Scale: 5}
	r.DrawBody(body, celestial.State{})
	r.SetAmbient(celestial.Night)
	r.Present()

	viewH := testH - parameter.HUDRows
	red, g, b := cellBg(t, screen, testW/2, viewH/2)
	want := scene.BodyColor
	if red == 0 || !(red >= b && g >= b) {
		t.Errorf("center cell bg = (%d,%d,%d), want body tint near %v", red, g, b, want.Hex())
	}
}

func TestShadeClamps(t *testing.T) {
	r, _ := newTestRenderer(t)
	r.SetAmbient(celestial.Day)
	r.SetIntensity(parameter.LightIntensityMax)

	c := r.shade(colorful.Color{R: 1, G: 1, B: 1}, 1)
	if c.R > 1 || c.G > 1 || c.B > 1 {
		t.Errorf("shade produced out-of-gamut %v", c)
	}
}
