package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func testArena(t *testing.T, caption string) (*Arena, Geometry) {
	t.Helper()
	geom := ComputeGeometry(caption, 80, 24, config.DefaultBreakoutConfig())
	a := NewArena()
	if !a.Rebuild(geom, nil) {
		t.Fatal("Rebuild() with valid geometry should succeed")
	}
	return a, geom
}

func TestArenaRebuildBodies(t *testing.T) {
	a, geom := testArena(t, "HELLO WORLD")

	counts := make(map[BodyKind]int)
	sensors := 0
	for _, b := range a.Bodies() {
		counts[b.Kind]++
		if b.Sensor {
			sensors++
			if b.Kind != KindBottom {
				t.Errorf("only the bottom should be a sensor, got %v", b.Kind)
			}
		}
		if b.Kind != KindBall && !b.Static {
			t.Errorf("%v should be static", b.Kind)
		}
	}

	if counts[KindBall] != 1 || counts[KindPaddle] != 1 {
		t.Errorf("expected one ball and one paddle, got %d and %d", counts[KindBall], counts[KindPaddle])
	}
	if counts[KindWall] != 3 || counts[KindBottom] != 1 || sensors != 1 {
		t.Errorf("expected 3 walls and 1 bottom sensor, got %d walls, %d bottom, %d sensors",
			counts[KindWall], counts[KindBottom], sensors)
	}
	if counts[KindBrick] != 10 || a.LiveBrickCount() != 10 {
		t.Errorf("expected 10 bricks, got %d (live %d)", counts[KindBrick], a.LiveBrickCount())
	}

	// Walls overlap past the corners
	top, _ := a.Get(TopWallID)
	left, _ := a.Get(LeftWallID)
	tb, lb := top.Box(), left.Box()
	if tb.Left() >= 0 || tb.Right() <= geom.Width {
		t.Errorf("top wall should extend past both corners, got [%g, %g]", tb.Left(), tb.Right())
	}
	if lb.Top() >= 0 || lb.Bottom() <= geom.Height {
		t.Errorf("left wall should extend past both corners, got [%g, %g]", lb.Top(), lb.Bottom())
	}
	if tb.Bottom() != 0 || lb.Right() != 0 {
		t.Errorf("walls should sit just outside the arena, top bottom=%g left right=%g", tb.Bottom(), lb.Right())
	}
}

func TestArenaBodiesSorted(t *testing.T) {
	a, _ := testArena(t, "HELLO WORLD")
	bodies := a.Bodies()
	for i := 1; i < len(bodies); i++ {
		if bodies[i-1].ID >= bodies[i].ID {
			t.Fatalf("Bodies() not sorted at %d: %d >= %d", i, bodies[i-1].ID, bodies[i].ID)
		}
	}
	if bodies[0].ID != BallID {
		t.Errorf("first body = %d, expected the ball", bodies[0].ID)
	}
}

func TestArenaRebuildInvalidIsNoop(t *testing.T) {
	a := NewArena()
	if a.Rebuild(Geometry{}, nil) {
		t.Error("Rebuild() with invalid geometry should return false")
	}
	if a.Built() || a.Ball() != nil {
		t.Error("arena should stay unbuilt")
	}

	b, _ := testArena(t, "HELLO")
	ball := b.Ball()
	b.Rebuild(Geometry{}, nil)
	if b.Ball() != ball || b.LiveBrickCount() != 5 {
		t.Error("invalid geometry should leave an existing arena untouched")
	}
}

func TestArenaRemoveBrick(t *testing.T) {
	a, _ := testArena(t, "HELLO")
	id := BrickID(2)

	brick, ok := a.Get(id)
	if !ok {
		t.Fatal("brick 2 should exist")
	}
	if !a.RemoveBrick(id) {
		t.Fatal("RemoveBrick() should succeed for a live brick")
	}
	if brick.Alive {
		t.Error("removed brick should be marked dead")
	}
	if _, ok := a.Get(id); ok {
		t.Error("removed brick should be gone from the arena")
	}
	if a.LiveBrickCount() != 4 {
		t.Errorf("LiveBrickCount() = %d, expected 4", a.LiveBrickCount())
	}
	if a.RemoveBrick(id) {
		t.Error("RemoveBrick() twice should fail")
	}
	if a.RemoveBrick(PaddleID) {
		t.Error("RemoveBrick() on a non-brick should fail")
	}
}

func TestArenaRebuildDestroyed(t *testing.T) {
	a, geom := testArena(t, "HELLO")
	oldBall := a.Ball()

	a.Rebuild(geom, map[int]bool{0: true, 4: true})
	if a.LiveBrickCount() != 3 {
		t.Errorf("LiveBrickCount() = %d, expected 3", a.LiveBrickCount())
	}
	if _, ok := a.Get(BrickID(0)); ok {
		t.Error("destroyed brick should not be rebuilt")
	}
	if a.Ball() == oldBall {
		t.Error("Rebuild() should replace bodies, not reuse them")
	}
}

func TestArenaSetPaddleX(t *testing.T) {
	a, _ := testArena(t, "HELLO")

	tests := []struct {
		in, expected float64
	}{
		{-100, 60},
		{0, 60},
		{300, 300},
		{640, 580},
		{1e9, 580},
	}

	for _, tc := range tests {
		if got := a.SetPaddleX(tc.in); got != tc.expected {
			t.Errorf("SetPaddleX(%g) = %g, expected %g", tc.in, got, tc.expected)
		}
	}
}

func TestArenaRestBall(t *testing.T) {
	a, _ := testArena(t, "HELLO")
	a.SetPaddleX(100)
	a.Ball().Vel.X = 3
	a.RestBall()

	if pos := a.Ball().Pos; pos.X != 100 || pos.Y != 328 {
		t.Errorf("ball at %+v, expected (100,328)", pos)
	}
	if a.Ball().Vel.X != 3 {
		t.Error("RestBall() should not touch velocity")
	}
}
