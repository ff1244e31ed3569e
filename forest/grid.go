package forest

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// maxGridDim bounds the grid side so a tiny spacing over a huge radius stays small
const maxGridDim = 256

// grid is a dense 2D bucket grid over the sampling square for spacing lookups
// Cell size is never below spacing, so any conflicting tree lies in the 3x3 neighborhood
type grid struct {
	origin   float64 // -radius
	cellSize float64
	dim      int
	cells    [][]int // 1D array: index = z*dim + x, values are tree ids
}

// newGrid returns nil when spacing does not constrain placement
func newGrid(radius, spacing float64) *grid {
	if spacing <= 0 {
		return nil
	}

	extent := 2 * radius
	cellSize := math.Max(spacing, extent/maxGridDim)
	dim := int(math.Ceil(extent/cellSize)) + 1

	return &grid{
		origin:   -radius,
		cellSize: cellSize,
		dim:      dim,
		cells:    make([][]int, dim*dim),
	}
}

func (g *grid) cellOf(p mgl64.Vec3) (int, int) {
	cx := int((p.X() - g.origin) / g.cellSize)
	cz := int((p.Z() - g.origin) / g.cellSize)
	return clampCell(cx, g.dim), clampCell(cz, g.dim)
}

func clampCell(c, dim int) int {
	if c < 0 {
		return 0
	}
	if c >= dim {
		return dim - 1
	}
	return c
}

func (g *grid) add(id int, p mgl64.Vec3) {
	if g == nil {
		return
	}
	cx, cz := g.cellOf(p)
	idx := cz*g.dim + cx
	g.cells[idx] = append(g.cells[idx], id)
}

// tooClose reports whether any accepted tree is strictly closer than spacing to p
func (g *grid) tooClose(p mgl64.Vec3, trees []Tree, spacing float64) bool {
	if g == nil {
		return false
	}

	cx, cz := g.cellOf(p)
	for z := max(0, cz-1); z <= min(g.dim-1, cz+1); z++ {
		for x := max(0, cx-1); x <= min(g.dim-1, cx+1); x++ {
			for _, id := range g.cells[z*g.dim+x] {
				if trees[id].Position.Sub(p).Len() < spacing {
					return true
				}
			}
		}
	}
	return false
}
