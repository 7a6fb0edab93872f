package breakout

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar    = '▀'
	BallChar      = '●'
	LifeFull      = '●'
	LifeEmpty     = '○'
	HUDSeparator  = '─'
	launchHint    = "Click or SPACE to launch"
	tooSmallTitle = "Window too small"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}

	// Check for screen too small
	if !g.geom.Valid || !g.arena.Built() {
		hint := fmt.Sprintf("Need %dx%d", g.geom.NeedW, g.geom.NeedH)
		dst.DrawTextCentered(dst.Height()/2-1, tooSmallTitle)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderBricks draws every live brick as its caption rune, in ID order.
func (g *Game) renderBricks(dst *core.Screen) {
	for _, b := range g.arena.Bodies() {
		if b.Kind != KindBrick {
			continue
		}
		dst.SetColored(b.Cell.X, b.Cell.Y, b.Rune, core.RowColor(b.Line))
		for dx := 1; dx < b.Cell.W; dx++ {
			dst.Set(b.Cell.X+dx, b.Cell.Y, core.WideTail)
		}
	}
}

// renderPaddle draws the paddle across every cell it touches.
func (g *Game) renderPaddle(dst *core.Screen) {
	box := g.arena.Paddle().Box()
	cw := g.geom.CellW
	left := int(math.Floor(box.Left() / cw))
	right := int(math.Ceil(box.Right()/cw)) - 1
	_, row := g.geom.CellOf(box.Center)

	for x := left; x <= right; x++ {
		dst.SetColored(x, row, PaddleChar, core.ColorBrightWhite)
	}
}

// renderBall draws the ball in the cell holding its center.
func (g *Game) renderBall(dst *core.Screen) {
	x, y := g.geom.CellOf(g.arena.Ball().Pos)
	if y >= dst.Height()-g.cfg.Arena.HUDRows {
		return
	}
	dst.SetColored(x, y, BallChar, core.ColorBrightYellow)
}

// renderHUD draws score and lives below the arena.
func (g *Game) renderHUD(dst *core.Screen) {
	if g.cfg.Arena.HUDRows <= 0 {
		return
	}
	y := dst.Height() - g.cfg.Arena.HUDRows

	// Score on left
	dst.DrawTextColored(1, y, fmt.Sprintf("Score: %d", g.session.Score), core.ColorBrightWhite)

	// Lives on right, filled then empty markers
	lives := strings.Repeat(string(LifeFull), g.session.Lives) +
		strings.Repeat(string(LifeEmpty), max(g.session.TotalLives()-g.session.Lives, 0))
	dst.DrawTextColored(dst.Width()-len([]rune(lives))-1, y, lives, core.ColorBrightRed)

	if g.session.Status == StatusReady {
		dst.DrawTextCenteredColored(y, launchHint, core.ColorGray)
	}
}

// renderOverlay draws end of game messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.session.Status {
	case StatusOver:
		subtitle := fmt.Sprintf("Score: %d  |  Click to play again", g.session.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StatusWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Click to play again", g.session.Score)
		g.drawCenteredBox(dst, "CAPTION CLEARED!", subtitle)
	}
}

// drawCenteredBox draws a centered message box over the arena.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height() - g.cfg.Arena.HUDRows

	titleW, subtitleW := len([]rune(title)), len([]rune(subtitle))
	boxW := min(core.Max(titleW, subtitleW)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
