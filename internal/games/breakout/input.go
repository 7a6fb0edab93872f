package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Trigger is what a click or key press means in the current status.
type Trigger int

const (
	TriggerNone  Trigger = iota // Ball in play
	TriggerStart                // Launch from Ready
	TriggerReset                // Restart after Over or Win
)

// TriggerFor maps a status to the trigger a click fires.
func TriggerFor(s Status) Trigger {
	switch s {
	case StatusReady:
		return TriggerStart
	case StatusOver, StatusWin:
		return TriggerReset
	default:
		return TriggerNone
	}
}

// InputAdapter turns platform input into a paddle target.
// Pointer positions are absolute, arrow keys nudge from the current paddle position.
type InputAdapter struct {
	keyStep float64
}

// NewInputAdapter returns an adapter that nudges by keyStep pixels per key press.
func NewInputAdapter(keyStep float64) *InputAdapter {
	return &InputAdapter{keyStep: keyStep}
}

// PaddleTarget returns the unclamped paddle x requested by in, if any.
// The pointer column is converted to arena pixels with geom.
func (ia *InputAdapter) PaddleTarget(in core.InputFrame, geom Geometry, paddleX float64) (float64, bool) {
	x, ok := paddleX, false
	if in.HasPointer {
		x, ok = geom.PointerToArena(in.PointerX), true
	}
	if in.Has(core.ActionLeft) {
		x, ok = x-ia.keyStep, true
	}
	if in.Has(core.ActionRight) {
		x, ok = x+ia.keyStep, true
	}
	return x, ok
}
