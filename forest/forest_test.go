package forest

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pyramid-scene/vmath"
)

// checkInvariants verifies spacing and exclusion over the accepted set
func checkInvariants(t *testing.T, trees []Tree, spacing, exclusion float64) {
	t.Helper()
	for i, a := range trees {
		if a.ID != i {
			t.Errorf("tree %d has id %d, want sequential", i, a.ID)
		}
		if a.Position.Y() != 0 {
			t.Errorf("tree %d off the ground: %v", i, a.Position)
		}
		if d := a.Position.Len(); d < exclusion {
			t.Errorf("tree %d at distance %v inside exclusion %v", i, d, exclusion)
		}
		for j := i + 1; j < len(trees); j++ {
			if d := a.Position.Sub(trees[j].Position).Len(); d < spacing {
				t.Errorf("trees %d and %d only %v apart, spacing %v", i, j, d, spacing)
			}
		}
	}
}

func TestPlaceInvariants(t *testing.T) {
	tests := []struct {
		name                       string
		count                      int
		radius, spacing, exclusion float64
	}{
		{"reference scene", 25, 40, 3, 11},
		{"dense", 200, 20, 1.5, 8},
		{"sparse large", 50, 100, 10, 15},
		{"no exclusion", 30, 15, 2, 0},
		{"tiny spacing huge radius", 100, 5000, 0.01, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(1); seed <= 20; seed++ {
				p := NewPlacer(seed)
				trees := p.Place(tt.count, tt.radius, tt.spacing, tt.exclusion)

				if len(trees) > tt.count {
					t.Fatalf("seed %d: placed %d trees, count %d", seed, len(trees), tt.count)
				}
				checkInvariants(t, trees, tt.spacing, tt.exclusion)

				for _, tr := range trees {
					x, z := tr.Position.X(), tr.Position.Z()
					if x < -tt.radius || x > tt.radius || z < -tt.radius || z > tt.radius {
						t.Fatalf("seed %d: tree outside sampling square: %v", seed, tr.Position)
					}
				}
			}
		})
	}
}

func TestPlaceAttemptBudget(t *testing.T) {
	tests := []struct {
		name                       string
		count                      int
		radius, spacing, exclusion float64
	}{
		{"feasible", 10, 40, 3, 11},
		{"infeasible spacing", 50, 10, 30, 0},
		{"everything excluded", 20, 5, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlacer(3)
			trees := p.Place(tt.count, tt.radius, tt.spacing, tt.exclusion)
			st := p.Stats()

			if st.Attempts > tt.count*10 {
				t.Errorf("attempts %d exceed budget %d", st.Attempts, tt.count*10)
			}
			if st.Accepted != len(trees) {
				t.Errorf("stats accepted %d, returned %d", st.Accepted, len(trees))
			}
			if st.Accepted+st.RejectedExclusion+st.RejectedSpacing != st.Attempts {
				t.Errorf("counters do not add up: %+v", st)
			}
			if len(trees) < tt.count && st.Attempts != MaxAttempts(min(tt.count, Capacity(tt.radius, tt.spacing))) {
				t.Errorf("under-full forest stopped early: %+v", st)
			}
		})
	}
}

func TestMaxAttemptsSaturates(t *testing.T) {
	if got := MaxAttempts(math.MaxInt / 8); got != math.MaxInt {
		t.Errorf("MaxAttempts(MaxInt/8) = %d, want MaxInt", got)
	}
	if got := MaxAttempts(math.MaxInt); got != math.MaxInt {
		t.Errorf("MaxAttempts(MaxInt) = %d, want MaxInt", got)
	}
	if got := MaxAttempts(7); got != 70 {
		t.Errorf("MaxAttempts(7) = %d, want 70", got)
	}
}

func TestCapacity(t *testing.T) {
	if got := Capacity(10, 0); got != math.MaxInt {
		t.Errorf("Capacity without spacing = %d, want MaxInt", got)
	}
	// 23^2 / (pi * 1.5^2) is about 74.8
	if got := Capacity(10, 3); got != 75 {
		t.Errorf("Capacity(10, 3) = %d, want 75", got)
	}
}

func TestPlaceHugeCountTerminates(t *testing.T) {
	p := NewPlacer(1)
	trees := p.Place(math.MaxInt/8, 10, 3, 8)

	checkInvariants(t, trees, 3, 8)
	st := p.Stats()
	if budget := MaxAttempts(Capacity(10, 3)); st.Attempts > budget {
		t.Errorf("attempts %d exceed capped budget %d", st.Attempts, budget)
	}
	if st.Accepted != len(trees) {
		t.Errorf("stats accepted %d, returned %d", st.Accepted, len(trees))
	}
}

func TestPlaceStopsAtCount(t *testing.T) {
	p := NewPlacer(11)
	trees := p.Place(5, 50, 1, 0)
	if len(trees) != 5 {
		t.Fatalf("placed %d trees, want 5 on an easy field", len(trees))
	}
	if st := p.Stats(); st.Attempts < 5 || st.Attempts > 50 {
		t.Errorf("attempts %d outside [5, 50]", st.Attempts)
	}
}

func TestPlaceNarrowRingMayUnderfill(t *testing.T) {
	// radius barely above exclusion: legitimate to return fewer than requested
	for seed := uint64(1); seed <= 10; seed++ {
		p := NewPlacer(seed)
		trees := p.Place(5, 10, 3, 8)
		if len(trees) > 5 {
			t.Fatalf("seed %d: %d trees", seed, len(trees))
		}
		checkInvariants(t, trees, 3, 8)
		if p.Stats().Attempts > 50 {
			t.Fatalf("seed %d: %d attempts", seed, p.Stats().Attempts)
		}
	}
}

func TestPlaceInfeasibleSpacingYieldsOne(t *testing.T) {
	// Square diagonal is ~28, spacing 100 allows a single tree
	p := NewPlacer(5)
	trees := p.Place(10, 10, 100, 0)
	if len(trees) != 1 {
		t.Errorf("placed %d trees, want exactly 1", len(trees))
	}
}

func TestPlaceDegenerateInputs(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		radius float64
	}{
		{"zero count", 0, 10},
		{"negative count", -3, 10},
		{"zero radius", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlacer(1)
			if trees := p.Place(tt.count, tt.radius, 1, 0); len(trees) != 0 {
				t.Errorf("placed %d trees, want none", len(trees))
			}
			if p.Stats().Attempts != 0 {
				t.Errorf("attempts %d, want 0", p.Stats().Attempts)
			}
		})
	}
}

func TestPlaceDeterministic(t *testing.T) {
	a := NewPlacer(77).Place(25, 40, 3, 11)
	b := NewPlacer(77).Place(25, 40, 3, 11)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tree %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

// bruteForcePlace is the all-pairs reference over the same random stream
func bruteForcePlace(seed uint64, count int, radius, spacing, exclusion float64) []Tree {
	rng := vmath.NewFastRand(seed)
	var trees []Tree
	budget := MaxAttempts(min(count, Capacity(radius, spacing)))
	for attempts := 0; len(trees) < count && attempts < budget; attempts++ {
		c := mgl64.Vec3{rng.Range(-radius, radius), 0, rng.Range(-radius, radius)}
		if c.Len() < exclusion {
			continue
		}
		tooClose := false
		for _, tr := range trees {
			if tr.Position.Sub(c).Len() < spacing {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		trees = append(trees, Tree{ID: len(trees), Position: c})
	}
	return trees
}

func TestGridMatchesBruteForce(t *testing.T) {
	params := []struct {
		count                      int
		radius, spacing, exclusion float64
	}{
		{25, 40, 3, 11},
		{300, 30, 2.5, 5},
		{80, 2000, 0.5, 0},
	}

	for _, pp := range params {
		for seed := uint64(1); seed <= 8; seed++ {
			got := NewPlacer(seed).Place(pp.count, pp.radius, pp.spacing, pp.exclusion)
			want := bruteForcePlace(seed, pp.count, pp.radius, pp.spacing, pp.exclusion)
			if len(got) != len(want) {
				t.Fatalf("params %+v seed %d: grid placed %d, brute force %d", pp, seed, len(got), len(want))
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("params %+v seed %d: tree %d differs", pp, seed, i)
				}
			}
		}
	}
}

func TestTreeName(t *testing.T) {
	if got := (Tree{ID: 3}).Name(); got != "Tree_3" {
		t.Errorf("Name = %q, want Tree_3", got)
	}
}
