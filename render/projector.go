package render

import (
	"github.com/go-gl/mathgl/mgl64"
)

// projector maps world points to fractional cell coordinates for one frame
type projector struct {
	vp  mgl64.Mat4
	inv mgl64.Mat4
	eye mgl64.Vec3

	w, h int
	near float64

	// rows covered by one world unit at view depth 1
	rowsPerUnit float64
}

func newProjector(c *Camera, w, h int) projector {
	vp := c.Projection(w, h).Mul4(c.View())
	// proj[1][1] is 1/tan(fov/2); ndc spans 2 units over h rows
	rowsPerUnit := c.Projection(w, h).At(1, 1) * float64(h) / 2
	return projector{
		vp:          vp,
		inv:         vp.Inv(),
		eye:         c.Eye(),
		w:           w,
		h:           h,
		near:        c.Near,
		rowsPerUnit: rowsPerUnit,
	}
}

// project returns cell coordinates and view depth; ok is false behind the near plane
func (p projector) project(v mgl64.Vec3) (sx, sy, depth float64, ok bool) {
	clip := p.vp.Mul4x1(v.Vec4(1))
	depth = clip.W()
	if depth < p.near {
		return 0, 0, depth, false
	}
	sx = (clip.X()/depth + 1) * 0.5 * float64(p.w)
	sy = (1 - clip.Y()/depth) * 0.5 * float64(p.h)
	return sx, sy, depth, true
}

// scale is rows per world unit at the given depth
func (p projector) scale(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return p.rowsPerUnit / depth
}

// ray returns the normalized world direction through the given cell coordinate
func (p projector) ray(sx, sy float64) mgl64.Vec3 {
	nx := sx/float64(p.w)*2 - 1
	ny := 1 - sy/float64(p.h)*2
	near := p.inv.Mul4x1(mgl64.Vec4{nx, ny, -1, 1})
	far := p.inv.Mul4x1(mgl64.Vec4{nx, ny, 1, 1})
	a := near.Vec3().Mul(1 / near.W())
	b := far.Vec3().Mul(1 / far.W())
	return b.Sub(a).Normalize()
}
