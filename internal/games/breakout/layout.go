package breakout

import (
	"math"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickSpec is the on-screen placement of one caption rune.
type BrickSpec struct {
	Index int       // Rune index in the caption, stable across layouts
	Rune  rune      // Character drawn for the brick
	Line  int       // Wrapped caption line
	Cell  core.Rect // Terminal cells covered by the rune
	Box   core.Box  // Same rectangle in arena pixels
}

// Geometry describes the arena for one terminal size.
// A zero or invalid Geometry means the layout does not fit and the engine stays inert.
type Geometry struct {
	Valid bool

	ScreenW, ScreenH int     // Terminal size in cells
	Width, Height    float64 // Arena size in pixels
	CellW, CellH     float64 // Pixels per cell

	WallThickness float64
	BallRadius    float64
	Paddle        core.Box // Paddle at rest, horizontally centered
	Bricks        []BrickSpec
	Lines         int // Number of wrapped caption lines

	// Minimum terminal size that fits the caption, for the "too small" notice
	NeedW, NeedH int
}

// ComputeGeometry lays the caption out on a screenW x screenH terminal.
//
// The caption is word-wrapped inside the side margins and each wrapped line is
// centered. Every non-space rune becomes one brick covering its display cells.
// The bottom HUD rows are not part of the arena.
func ComputeGeometry(caption string, screenW, screenH int, cfg config.BreakoutConfig) Geometry {
	a := cfg.Arena
	g := Geometry{
		ScreenW:       screenW,
		ScreenH:       screenH,
		CellW:         a.CellWidth,
		CellH:         a.CellHeight,
		WallThickness: a.WallThickness,
		BallRadius:    cfg.Physics.BallRadius,
		NeedW:         a.MinScreenWidth,
	}

	rows := screenH - a.HUDRows
	maxLine := screenW - 2*a.CaptionMargin
	if screenW < a.MinScreenWidth || rows <= 0 || maxLine < 2 {
		return g
	}

	g.Width = float64(screenW) * a.CellWidth
	g.Height = float64(rows) * a.CellHeight

	lines := wrapCaption(caption, maxLine)
	g.Lines = len(lines)

	paddleY := g.Height - cfg.Paddle.Offset
	paddleRow := int(math.Floor(paddleY / a.CellHeight))
	g.NeedH = a.CaptionTop + len(lines) + a.ClearanceRows + (screenH - paddleRow)

	if len(lines) == 0 || paddleRow < a.CaptionTop+len(lines)+a.ClearanceRows {
		return g
	}
	if cfg.Paddle.Width >= g.Width || paddleY-cfg.Paddle.Height/2 <= 0 {
		return g
	}

	for li, line := range lines {
		row := a.CaptionTop + li
		col := (screenW - line.width) / 2
		for _, gl := range line.glyphs {
			if gl.index >= 0 {
				g.Bricks = append(g.Bricks, BrickSpec{
					Index: gl.index,
					Rune:  gl.r,
					Line:  li,
					Cell:  core.NewRect(col, row, gl.width, 1),
					Box: core.BoxFromEdges(
						float64(col)*a.CellWidth,
						float64(row)*a.CellHeight,
						float64(gl.width)*a.CellWidth,
						a.CellHeight,
					),
				})
			}
			col += gl.width
		}
	}

	g.Paddle = core.Box{
		Center: core.V(g.Width/2, paddleY),
		HalfW:  cfg.Paddle.Width / 2,
		HalfH:  cfg.Paddle.Height / 2,
	}
	g.Valid = true
	return g
}

// PointerToArena converts a terminal column to the arena x of that cell's center.
func (g Geometry) PointerToArena(col float64) float64 {
	return (col + 0.5) * g.CellW
}

// CellOf returns the terminal cell containing an arena point.
func (g Geometry) CellOf(p core.Vec2) (int, int) {
	return int(math.Floor(p.X / g.CellW)), int(math.Floor(p.Y / g.CellH))
}

// BallRest is where the ball sits on top of a paddle.
func (g Geometry) BallRest(paddle core.Box) core.Vec2 {
	return core.V(paddle.Center.X, paddle.Top()-g.BallRadius)
}

// glyph is one caption rune with its display width. Index is -1 for inserted spaces.
type glyph struct {
	index int
	r     rune
	width int
}

type captionLine struct {
	glyphs []glyph
	width  int
}

func (l *captionLine) add(gs ...glyph) {
	for _, gl := range gs {
		l.glyphs = append(l.glyphs, gl)
		l.width += gl.width
	}
}

// wrapCaption greedily wraps words into lines no wider than maxWidth cells.
// Words longer than a full line are split.
func wrapCaption(caption string, maxWidth int) []captionLine {
	var lines []captionLine
	var cur captionLine
	flush := func() {
		if len(cur.glyphs) > 0 {
			lines = append(lines, cur)
			cur = captionLine{}
		}
	}

	for _, word := range splitWords(caption) {
		for len(word) > 0 {
			w := wordWidth(word)
			gap := 0
			if cur.width > 0 {
				gap = 1
			}
			if cur.width+gap+w <= maxWidth {
				if gap > 0 {
					cur.add(glyph{index: -1, r: ' ', width: 1})
				}
				cur.add(word...)
				break
			}
			if cur.width > 0 {
				flush()
				continue
			}
			n := fitPrefix(word, maxWidth)
			cur.add(word[:n]...)
			flush()
			word = word[n:]
		}
	}
	flush()
	return lines
}

// splitWords splits the caption on whitespace, keeping each rune's caption index.
func splitWords(caption string) [][]glyph {
	var words [][]glyph
	var cur []glyph
	for i, r := range []rune(caption) {
		if unicode.IsSpace(r) {
			if len(cur) > 0 {
				words = append(words, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, glyph{index: i, r: r, width: runeCells(r)})
	}
	if len(cur) > 0 {
		words = append(words, cur)
	}
	return words
}

func wordWidth(word []glyph) int {
	w := 0
	for _, gl := range word {
		w += gl.width
	}
	return w
}

// fitPrefix returns how many glyphs fit in maxWidth cells, at least one.
func fitPrefix(word []glyph, maxWidth int) int {
	w := 0
	for i, gl := range word {
		if w+gl.width > maxWidth {
			return max(i, 1)
		}
		w += gl.width
	}
	return len(word)
}

// runeCells is the terminal width of r. Zero-width runes still get a cell.
func runeCells(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}
