package vmath

import (
	"testing"
)

func TestPingPong(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"start", 0, 0},
		{"rising", 0.25, 0.25},
		{"peak", 1, 1},
		{"falling", 1.25, 0.75},
		{"trough", 2, 0},
		{"second period", 2.5, 0.5},
		{"negative wraps", -0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PingPong(tt.t, 1)
			if !NearlyEqual(got, tt.want, 1e-12) {
				t.Errorf("PingPong(%v, 1) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestPingPongSymmetryAndPeriod(t *testing.T) {
	for i := 0; i <= 200; i++ {
		p := float64(i) / 100.0 // [0, 2]

		if a, b := PingPong(p, 1), PingPong(2-p, 1); !NearlyEqual(a, b, 1e-9) {
			t.Errorf("reflection broken at %v: %v vs %v", p, a, b)
		}
		if a, b := PingPong(p, 1), PingPong(p+2, 1); !NearlyEqual(a, b, 1e-9) {
			t.Errorf("period broken at %v: %v vs %v", p, a, b)
		}
	}
}

func TestPingPongZeroLength(t *testing.T) {
	if got := PingPong(3, 0); got != 0 {
		t.Errorf("PingPong with zero length = %v, want 0", got)
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{725, 5},
		{-10, 350},
		{-720, 0},
	}

	for _, tt := range tests {
		if got := WrapDegrees(tt.in); !NearlyEqual(got, tt.want, 1e-9) {
			t.Errorf("WrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRepeatNeverReturnsLength(t *testing.T) {
	got := Repeat(-1e-18, 360)
	if got < 0 || got >= 360 {
		t.Errorf("Repeat(-1e-18, 360) = %v, want value in [0, 360)", got)
	}
}

func TestClamp(t *testing.T) {
	if got := ClampInt(1, 3, 10); got != 3 {
		t.Errorf("ClampInt low = %d, want 3", got)
	}
	if got := ClampInt(12, 3, 10); got != 10 {
		t.Errorf("ClampInt high = %d, want 10", got)
	}
	if got := ClampInt(6, 3, 10); got != 6 {
		t.Errorf("ClampInt mid = %d, want 6", got)
	}
	if got := Clamp(1.5, 0.2, 1.2); got != 1.2 {
		t.Errorf("Clamp high = %v, want 1.2", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0.2, 1.2, 0.5); !NearlyEqual(got, 0.7, 1e-12) {
		t.Errorf("Lerp(0.2, 1.2, 0.5) = %v, want 0.7", got)
	}
	if got := Lerp(0.2, 1.2, 0); got != 0.2 {
		t.Errorf("Lerp at 0 = %v, want 0.2", got)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("zero seed produced stuck generator")
	}
}

func TestFastRandRange(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		v := r.Range(-10, 10)
		if v < -10 || v >= 10 {
			t.Fatalf("Range(-10, 10) produced %v", v)
		}
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 produced %v", f)
		}
	}
}
