package engine

import (
	"math"
	"testing"
	"time"
)

func newTestClock(maxDelta float64) (*FrameClock, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewFrameClock(mock, maxDelta), mock
}

func TestFrameClockDelta(t *testing.T) {
	clock, mock := newTestClock(0)

	mock.Advance(16 * time.Millisecond)
	if dt := clock.Tick(); math.Abs(dt-0.016) > 1e-9 {
		t.Errorf("dt = %v, want 0.016", dt)
	}

	if dt := clock.Tick(); dt != 0 {
		t.Errorf("dt without time passing = %v, want 0", dt)
	}

	mock.Advance(2 * time.Second)
	if dt := clock.Tick(); math.Abs(dt-2) > 1e-9 {
		t.Errorf("uncapped dt = %v, want 2", dt)
	}
	if clock.Frames() != 3 {
		t.Errorf("frames = %d, want 3", clock.Frames())
	}
}

func TestFrameClockCap(t *testing.T) {
	clock, mock := newTestClock(0.1)

	mock.Advance(5 * time.Second)
	if dt := clock.Tick(); dt != 0.1 {
		t.Errorf("capped dt = %v, want 0.1", dt)
	}
	if e := clock.Elapsed(); e != 0.1 {
		t.Errorf("elapsed = %v, want 0.1", e)
	}
}

func TestFrameClockPauseSkipsSpan(t *testing.T) {
	clock, mock := newTestClock(0)

	clock.Pause()
	if !clock.IsPaused() {
		t.Fatal("clock should be paused")
	}

	mock.Advance(time.Second)
	if dt := clock.Tick(); dt != 0 {
		t.Errorf("paused dt = %v, want 0", dt)
	}

	mock.Advance(3 * time.Second)
	clock.Resume()

	mock.Advance(50 * time.Millisecond)
	if dt := clock.Tick(); math.Abs(dt-0.05) > 1e-9 {
		t.Errorf("dt after resume = %v, want 0.05 (pause span skipped)", dt)
	}
}

func TestFrameClockToggle(t *testing.T) {
	clock, _ := newTestClock(0)

	if paused := clock.Toggle(); !paused {
		t.Error("first toggle should pause")
	}
	if paused := clock.Toggle(); paused {
		t.Error("second toggle should resume")
	}
	if clock.IsPaused() {
		t.Error("clock should be running")
	}
}

func TestFrameClockBackwardsTime(t *testing.T) {
	clock, mock := newTestClock(0)
	mock.Advance(-time.Second)
	if dt := clock.Tick(); dt != 0 {
		t.Errorf("dt for backwards time = %v, want 0", dt)
	}
}
