// Package tui hosts a game engine in a Bubble Tea program. It owns the
// frame loop, input mapping, resize debouncing and terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fixedStep converts irregular frame timing into whole simulation ticks.
// Elapsed time accumulates and is paid out in fixed intervals, at most
// maxCatchUp per frame; any excess is dropped.
type fixedStep struct {
	interval   time.Duration
	maxCatchUp int
	acc        time.Duration
	last       time.Time
}

func newFixedStep(tickRate, maxCatchUp int) fixedStep {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxCatchUp <= 0 {
		maxCatchUp = 1
	}
	return fixedStep{
		interval:   time.Second / time.Duration(tickRate),
		maxCatchUp: maxCatchUp,
	}
}

// Advance returns how many ticks to run for a frame at now, and how many
// were discarded by the catch-up cap. The first frame runs one tick.
func (f *fixedStep) Advance(now time.Time) (steps, dropped int) {
	if f.last.IsZero() {
		f.last = now
		return 1, 0
	}

	elapsed := now.Sub(f.last)
	f.last = now
	if elapsed < 0 {
		elapsed = 0
	}

	f.acc += elapsed
	steps = int(f.acc / f.interval)
	f.acc -= time.Duration(steps) * f.interval

	if steps > f.maxCatchUp {
		dropped = steps - f.maxCatchUp
		steps = f.maxCatchUp
	}
	return steps, dropped
}

// Reset forgets accumulated time, e.g. after a pause.
func (f *fixedStep) Reset() {
	f.acc = 0
	f.last = time.Time{}
}
