package tui

import (
	"testing"
	"time"
)

func TestFixedStepAdvance(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := time.Second / 60

	f := newFixedStep(60, 5)
	if steps, _ := f.Advance(base); steps != 1 {
		t.Fatalf("first frame steps = %d, expected 1", steps)
	}

	tests := []struct {
		name    string
		elapsed time.Duration
		steps   int
		dropped int
	}{
		{"one tick", tick, 1, 0},
		{"half a tick carries over", tick / 2, 0, 0},
		{"carry completes a tick", tick / 2, 1, 0},
		{"three ticks", 3 * tick, 3, 0},
		{"catch-up is capped", 8 * tick, 5, 3},
		{"clock went backwards", -tick, 0, 0},
	}

	now := base
	for _, tc := range tests {
		now = now.Add(tc.elapsed)
		steps, dropped := f.Advance(now)
		if steps != tc.steps || dropped != tc.dropped {
			t.Errorf("%s: Advance() = %d, %d; expected %d, %d", tc.name, steps, dropped, tc.steps, tc.dropped)
		}
	}
}

func TestFixedStepReset(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := newFixedStep(60, 5)
	f.Advance(base)
	f.Reset()

	// A long pause must not turn into a burst of ticks.
	if steps, dropped := f.Advance(base.Add(10 * time.Second)); steps != 1 || dropped != 0 {
		t.Errorf("Advance() after Reset = %d, %d; expected 1, 0", steps, dropped)
	}
}

func TestFixedStepDefaults(t *testing.T) {
	f := newFixedStep(0, 0)
	if f.interval != time.Second/60 || f.maxCatchUp != 1 {
		t.Errorf("newFixedStep(0, 0) = %v/%d, expected 60 Hz and 1", f.interval, f.maxCatchUp)
	}
}
