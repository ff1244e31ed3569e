// Package forest populates the ground around the pyramid with non-overlapping trees
package forest

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pyramid-scene/parameter"
	"github.com/lixenwraith/pyramid-scene/vmath"
)

// Tree is an accepted ground position
type Tree struct {
	ID       int        // sequential in acceptance order, from 0
	Position mgl64.Vec3 // Y is always 0
}

// Name is the grouping label of a tree
func (t Tree) Name() string {
	return fmt.Sprintf("Tree_%d", t.ID)
}

// Stats describes the most recent Place run
type Stats struct {
	Attempts          int
	Accepted          int
	RejectedExclusion int
	RejectedSpacing   int
}

// Placer runs bounded rejection sampling
// Not safe for concurrent use: acceptance is inherently sequential
type Placer struct {
	rng   *vmath.FastRand
	stats Stats
}

// NewPlacer creates a placer with a deterministic random stream
func NewPlacer(seed uint64) *Placer {
	return &Placer{rng: vmath.NewFastRand(seed)}
}

// MaxAttempts is the draw budget for count trees
func MaxAttempts(count int) int {
	if count <= 0 {
		return 0
	}
	if count > math.MaxInt/parameter.ForestAttemptFactor {
		return math.MaxInt
	}
	return count * parameter.ForestAttemptFactor
}

// Capacity is an upper bound on how many trees spacing apart fit in the square [-radius, radius]^2
// Each tree owns a disc of diameter spacing inside a square of side 2*radius+spacing
func Capacity(radius, spacing float64) int {
	if spacing <= 0 {
		return math.MaxInt
	}
	side := 2*radius + spacing
	bound := side * side / (math.Pi * spacing * spacing / 4)
	if bound >= math.MaxInt {
		return math.MaxInt
	}
	return int(bound) + 1
}

// Place draws candidates uniformly from the square [-radius, radius]^2 at y=0 and accepts
// those at least exclusion from the origin and at least spacing from every accepted tree
// Stops at count accepted or after MaxAttempts(count) draws, whichever comes first;
// the result may hold fewer than count trees when the parameters are too dense
// A count above Capacity is reduced to it before the budget is computed
func (p *Placer) Place(count int, radius, spacing, exclusion float64) []Tree {
	p.stats = Stats{}
	if count <= 0 || radius <= 0 {
		return nil
	}

	trees := make([]Tree, 0, min(count, parameter.ForestPreallocMax))
	grid := newGrid(radius, spacing)
	budget := MaxAttempts(min(count, Capacity(radius, spacing)))

	for len(trees) < count && p.stats.Attempts < budget {
		p.stats.Attempts++

		// Square, not disc: corners are deliberately sampled
		candidate := mgl64.Vec3{p.rng.Range(-radius, radius), 0, p.rng.Range(-radius, radius)}

		if candidate.Len() < exclusion {
			p.stats.RejectedExclusion++
			continue
		}

		if grid.tooClose(candidate, trees, spacing) {
			p.stats.RejectedSpacing++
			continue
		}

		id := len(trees)
		trees = append(trees, Tree{ID: id, Position: candidate})
		grid.add(id, candidate)
	}

	p.stats.Accepted = len(trees)
	return trees
}

// Stats returns counters of the last Place call
func (p *Placer) Stats() Stats {
	return p.stats
}
