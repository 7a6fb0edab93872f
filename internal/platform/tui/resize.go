package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// resizeSettledMsg fires once the terminal size has been stable for the
// debounce window. Stale generations are ignored.
type resizeSettledMsg struct {
	gen    int
	width  int
	height int
}

// resizeDebouncer coalesces bursts of WindowSizeMsg into one rebuild.
// The first size is applied immediately so the initial layout is not delayed.
type resizeDebouncer struct {
	delay   time.Duration
	gen     int
	settled bool
}

func newResizeDebouncer(delay time.Duration) resizeDebouncer {
	return resizeDebouncer{delay: delay}
}

// Request registers a new terminal size. It returns true when the size
// should be applied now; otherwise the returned command delivers a
// resizeSettledMsg after the delay.
func (d *resizeDebouncer) Request(width, height int) (bool, tea.Cmd) {
	d.gen++
	if !d.settled || d.delay <= 0 {
		d.settled = true
		return true, nil
	}

	gen := d.gen
	return false, tea.Tick(d.delay, func(time.Time) tea.Msg {
		return resizeSettledMsg{gen: gen, width: width, height: height}
	})
}

// Accept reports whether msg belongs to the latest request.
func (d *resizeDebouncer) Accept(msg resizeSettledMsg) bool {
	return msg.gen == d.gen
}
