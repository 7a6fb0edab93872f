package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestComputeGeometryPlacesCaption(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	g := ComputeGeometry("HELLO WORLD", 80, 24, cfg)

	if !g.Valid {
		t.Fatal("80x24 should fit a short caption")
	}
	if g.Width != 640 || g.Height != 368 {
		t.Errorf("arena = %gx%g, expected 640x368", g.Width, g.Height)
	}
	if len(g.Bricks) != 10 {
		t.Fatalf("len(Bricks) = %d, expected 10 (spaces are not bricks)", len(g.Bricks))
	}

	first := g.Bricks[0]
	if first.Index != 0 || first.Rune != 'H' || first.Cell.X != 34 || first.Cell.Y != 2 {
		t.Errorf("first brick = %+v, expected H at (34,2)", first)
	}
	if first.Box.Center.X != 276 || first.Box.Center.Y != 40 {
		t.Errorf("first brick center = %+v, expected (276,40)", first.Box.Center)
	}

	// 'W' keeps its caption index and sits after the gap
	w := g.Bricks[5]
	if w.Index != 6 || w.Rune != 'W' || w.Cell.X != 40 {
		t.Errorf("W brick = %+v, expected index 6 at column 40", w)
	}

	if g.Paddle.Center.X != 320 || g.Paddle.Center.Y != 338 {
		t.Errorf("paddle center = %+v, expected (320,338)", g.Paddle.Center)
	}
	if rest := g.BallRest(g.Paddle); rest.X != 320 || rest.Y != 328 {
		t.Errorf("BallRest = %+v, expected (320,328)", rest)
	}
}

func TestWrapCaption(t *testing.T) {
	tests := []struct {
		name     string
		caption  string
		maxWidth int
		expected []string
	}{
		{"single line", "aaa bbb", 10, []string{"aaa bbb"}},
		{"wraps at word", "aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"collapses whitespace", "  aaa \n\t bbb  ", 20, []string{"aaa bbb"}},
		{"hard splits long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"long word after short", "ab cdefgh", 4, []string{"ab", "cdef", "gh"}},
		{"wide runes", "字字字", 4, []string{"字字", "字"}},
		{"empty", "   ", 10, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lines := wrapCaption(tc.caption, tc.maxWidth)
			if len(lines) != len(tc.expected) {
				t.Fatalf("got %d lines, expected %d", len(lines), len(tc.expected))
			}
			for i, line := range lines {
				var got []rune
				for _, gl := range line.glyphs {
					got = append(got, gl.r)
				}
				if string(got) != tc.expected[i] {
					t.Errorf("line %d = %q, expected %q", i, string(got), tc.expected[i])
				}
				if line.width > tc.maxWidth {
					t.Errorf("line %d width %d exceeds %d", i, line.width, tc.maxWidth)
				}
			}
		})
	}
}

func TestComputeGeometryWideRunes(t *testing.T) {
	g := ComputeGeometry("字a", 80, 24, config.DefaultBreakoutConfig())
	if !g.Valid || len(g.Bricks) != 2 {
		t.Fatalf("expected 2 bricks, got valid=%v bricks=%d", g.Valid, len(g.Bricks))
	}
	if g.Bricks[0].Cell.W != 2 || g.Bricks[0].Box.HalfW != 8 {
		t.Errorf("wide rune should cover 2 cells, got %+v", g.Bricks[0])
	}
	if g.Bricks[1].Cell.X != g.Bricks[0].Cell.X+2 {
		t.Errorf("next rune should start after the wide one, got x=%d", g.Bricks[1].Cell.X)
	}
}

func TestComputeGeometryTooSmall(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()

	tests := []struct {
		name  string
		w, h  int
		valid bool
	}{
		{"normal", 80, 24, true},
		{"narrower than minimum", 20, 24, false},
		{"too short for clearance", 80, 11, false},
		{"exactly enough rows", 80, 12, true},
		{"zero size", 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := ComputeGeometry("HELLO WORLD", tc.w, tc.h, cfg)
			if g.Valid != tc.valid {
				t.Errorf("Valid = %v, expected %v", g.Valid, tc.valid)
			}
			if !g.Valid && len(g.Bricks) != 0 {
				t.Error("invalid geometry should carry no bricks")
			}
		})
	}

	g := ComputeGeometry("HELLO WORLD", 80, 10, cfg)
	if g.NeedH != 12 || g.NeedW != 30 {
		t.Errorf("need = %dx%d, expected 30x12", g.NeedW, g.NeedH)
	}
}

func TestGeometryConversions(t *testing.T) {
	g := ComputeGeometry("HELLO WORLD", 80, 24, config.DefaultBreakoutConfig())

	if x := g.PointerToArena(0); x != 4 {
		t.Errorf("PointerToArena(0) = %g, expected 4", x)
	}
	if x := g.PointerToArena(10); x != 84 {
		t.Errorf("PointerToArena(10) = %g, expected 84", x)
	}
	if cx, cy := g.CellOf(g.Paddle.Center); cx != 40 || cy != 21 {
		t.Errorf("CellOf(paddle) = (%d,%d), expected (40,21)", cx, cy)
	}
}
