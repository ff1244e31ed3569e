package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pyramid-scene/parameter"
	"github.com/lixenwraith/pyramid-scene/scene"
	"github.com/lixenwraith/pyramid-scene/vmath"
)

var (
	skyNight = colorful.Color{R: parameter.SkyNightRGB[0], G: parameter.SkyNightRGB[1], B: parameter.SkyNightRGB[2]}
	skyDay   = colorful.Color{R: parameter.SkyDayRGB[0], G: parameter.SkyDayRGB[1], B: parameter.SkyDayRGB[2]}

	hudFg    = colorful.Color{R: 0.85, G: 0.85, B: 0.85}
	hudDimFg = colorful.Color{R: 0.4, G: 0.4, B: 0.45}
	markerFg = colorful.Color{R: 0.55, G: 0.3, B: 0.05}
)

// daylight is the ambient luminance, which tracks the cycle value
func (r *Renderer) daylight() float64 {
	return vmath.Clamp((r.ambient.R+r.ambient.G+r.ambient.B)/3, 0, 1)
}

func (r *Renderer) sky() colorful.Color {
	return skyNight.BlendRgb(skyDay, r.daylight())
}

// shade scales a base color by ambient light plus the directional light for a facing term in [0,1]
func (r *Renderer) shade(c colorful.Color, facing float64) colorful.Color {
	k := parameter.ShadeFloor +
		parameter.AmbientWeight*r.daylight() +
		parameter.DiffuseWeight*facing*r.intensity
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}.Clamped()
}

// drawBackground casts a ray per cell onto the ground plane, misses show sky
func (r *Renderer) drawBackground(p projector) {
	sky := r.sky()
	half := r.groundSize / 2
	eye := p.eye

	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			c := sky
			dir := p.ray(float64(x)+0.5, float64(y)+0.5)
			if half > 0 && dir.Y() < -vmath.Epsilon {
				t := -eye.Y() / dir.Y()
				hit := eye.Add(dir.Mul(t))
				if math.Abs(hit.X()) <= half && math.Abs(hit.Z()) <= half {
					c = r.groundColor(hit, t, sky)
				}
			}
			r.setBg(x, y, c)
		}
	}
}

func (r *Renderer) groundColor(hit mgl64.Vec3, dist float64, sky colorful.Color) colorful.Color {
	base := scene.GroundColor
	// Checker tiles give the plane some depth cue
	if (int(math.Floor(hit.X()/5))+int(math.Floor(hit.Z()/5)))&1 == 0 {
		base = colorful.Color{R: base.R * 0.9, G: base.G * 0.9, B: base.B * 0.9}
	}
	c := r.shade(base, parameter.FaceTopShade)
	fog := vmath.Clamp((dist-parameter.FogStart)/(parameter.FogEnd-parameter.FogStart), 0, 1)
	return c.BlendRgb(sky, fog)
}

// drawCube fills the screen bounds of the whole cube with the side shade, then the top face
func (r *Renderer) drawCube(p projector, prim scene.Primitive) {
	half := prim.Size.Mul(0.5)
	var box, top rect
	box.reset()
	top.reset()

	for i := 0; i < 8; i++ {
		corner := mgl64.Vec3{
			signBit(i, 0) * half.X(),
			signBit(i, 1) * half.Y(),
			signBit(i, 2) * half.Z(),
		}
		sx, sy, _, ok := p.project(prim.Center.Add(corner))
		if !ok {
			return
		}
		box.extend(sx, sy)
		if corner.Y() > 0 {
			top.extend(sx, sy)
		}
	}

	r.fillRect(p, box, r.shade(prim.Color, parameter.FaceSideShade))
	r.fillRect(p, top, r.shade(prim.Color, parameter.FaceTopShade))
}

func (r *Renderer) drawCylinder(p projector, prim scene.Primitive) {
	up := mgl64.Vec3{0, prim.Size.Y() / 2, 0}
	tx, ty, _, okTop := p.project(prim.Center.Add(up))
	bx, by, _, okBottom := p.project(prim.Center.Sub(up))
	_, _, depth, okCenter := p.project(prim.Center)
	if !okTop || !okBottom || !okCenter {
		return
	}

	halfCols := prim.Size.X() / 2 * p.scale(depth) * parameter.CellAspect
	cx := (tx + bx) / 2
	var box rect
	box.reset()
	box.extend(cx-halfCols, ty)
	box.extend(cx+halfCols, by)
	r.fillRect(p, box, r.shade(prim.Color, parameter.FaceSideShade))
}

// drawSphere shades an ellipse with a screen-space normal; the body is emissive
func (r *Renderer) drawSphere(p projector, prim scene.Primitive, emissive bool) {
	cx, cy, depth, ok := p.project(prim.Center)
	if !ok {
		return
	}
	rRows := prim.Size.Y() / 2 * p.scale(depth)
	if rRows < parameter.MinProjectedRadius {
		return
	}
	rCols := rRows * parameter.CellAspect

	minX := max(0, int(cx-rCols-1))
	maxX := min(p.w-1, int(cx+rCols+1))
	minY := max(0, int(cy-rRows-1))
	maxY := min(p.h-1, int(cy+rRows+1))

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float64(sx) + 0.5 - cx) / rCols
			ny := (float64(sy) + 0.5 - cy) / rRows
			distSq := nx*nx + ny*ny
			if distSq > 1 {
				continue
			}
			nz := math.Sqrt(1 - distSq)

			var c colorful.Color
			if emissive {
				k := 0.7 + 0.3*nz
				c = colorful.Color{R: prim.Color.R * k, G: prim.Color.G * k, B: prim.Color.B * k}
			} else {
				diffuse := math.Max(0, nx*r.lightDir.X()+ny*r.lightDir.Y()+nz*r.lightDir.Z())
				c = r.shade(prim.Color, 0.3+0.7*diffuse)
			}
			r.setBg(sx, sy, c)
		}
	}
}

// drawMarker shows the spin of the body while the marker faces the camera
func (r *Renderer) drawMarker(p projector, centerDepth float64) {
	sx, sy, depth, ok := p.project(r.body.Marker(r.bodyState))
	if !ok || depth > centerDepth {
		return
	}
	x, y := int(sx), int(sy)
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return
	}
	_, _, style, _ := r.screen.GetContent(x, y)
	r.screen.SetContent(x, y, '●', nil, style.Foreground(toTcell(markerFg)))
}

func (r *Renderer) drawHUD(w, h int) {
	bg := toTcell(colorful.Color{})
	r.writeStr(0, h-2, w, r.status, tcell.StyleDefault.Background(bg).Foreground(toTcell(hudFg)))
	r.writeStr(0, h-1, w, r.help, tcell.StyleDefault.Background(bg).Foreground(toTcell(hudDimFg)))
}

func (r *Renderer) writeStr(x, y, w int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= w {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) setBg(x, y int, c colorful.Color) {
	r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(toTcell(c)))
}

func (r *Renderer) fillRect(p projector, b rect, c colorful.Color) {
	if b.empty() || b.maxX < 0 || b.maxY < 0 || b.minX >= float64(p.w) || b.minY >= float64(p.h) {
		return
	}
	x0 := max(0, int(math.Round(b.minX)))
	x1 := min(p.w-1, max(int(math.Round(b.maxX))-1, x0))
	y0 := max(0, int(math.Round(b.minY)))
	y1 := min(p.h-1, max(int(math.Round(b.maxY))-1, y0))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.setBg(x, y, c)
		}
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// signBit maps bit n of i to -1 or +1
func signBit(i, n int) float64 {
	if i&(1<<n) != 0 {
		return 1
	}
	return -1
}

// rect is a fractional screen-space bounding box
type rect struct {
	minX, minY, maxX, maxY float64
}

func (b *rect) reset() {
	b.minX, b.minY = math.Inf(1), math.Inf(1)
	b.maxX, b.maxY = math.Inf(-1), math.Inf(-1)
}

func (b *rect) extend(x, y float64) {
	b.minX = math.Min(b.minX, x)
	b.minY = math.Min(b.minY, y)
	b.maxX = math.Max(b.maxX, x)
	b.maxY = math.Max(b.maxY, y)
}

func (b rect) empty() bool {
	return b.minX > b.maxX || b.minY > b.maxY
}
