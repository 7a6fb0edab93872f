package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestTriggerFor(t *testing.T) {
	tests := []struct {
		status   Status
		expected Trigger
	}{
		{StatusReady, TriggerStart},
		{StatusRunning, TriggerNone},
		{StatusOver, TriggerReset},
		{StatusWin, TriggerReset},
	}

	for _, tc := range tests {
		if got := TriggerFor(tc.status); got != tc.expected {
			t.Errorf("TriggerFor(%v) = %v, expected %v", tc.status, got, tc.expected)
		}
	}
}

func TestInputAdapterPaddleTarget(t *testing.T) {
	geom := ComputeGeometry("HELLO", 80, 24, config.DefaultBreakoutConfig())
	ia := NewInputAdapter(32)

	pointer := func(x float64, actions ...core.Action) core.InputFrame {
		in := core.NewInputFrame()
		in.SetPointer(x)
		for _, a := range actions {
			in.Set(a)
		}
		return in
	}
	keys := func(actions ...core.Action) core.InputFrame {
		in := core.NewInputFrame()
		for _, a := range actions {
			in.Set(a)
		}
		return in
	}

	tests := []struct {
		name     string
		in       core.InputFrame
		expected float64
		ok       bool
	}{
		{"no input", core.NewInputFrame(), 320, false},
		{"pointer", pointer(10), 84, true},
		{"pointer off screen is not clamped here", pointer(-50), -396, true},
		{"left key", keys(core.ActionLeft), 288, true},
		{"right key", keys(core.ActionRight), 352, true},
		{"both keys cancel", keys(core.ActionLeft, core.ActionRight), 320, true},
		{"pointer then nudge", pointer(10, core.ActionRight), 116, true},
		{"trigger only", keys(core.ActionTrigger), 320, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ia.PaddleTarget(tc.in, geom, 320)
			if ok != tc.ok || got != tc.expected {
				t.Errorf("PaddleTarget() = %g, %v; expected %g, %v", got, ok, tc.expected, tc.ok)
			}
		})
	}
}
