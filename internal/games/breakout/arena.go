package breakout

import (
	"sort"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BodyID identifies a body inside the arena. IDs are stable across rebuilds.
type BodyID int

// Fixed body IDs. Bricks use firstBrickID + caption rune index.
const (
	BallID BodyID = iota + 1
	PaddleID
	TopWallID
	LeftWallID
	RightWallID
	BottomID

	firstBrickID BodyID = 1000
)

// BrickID returns the body ID of the brick for a caption rune index.
func BrickID(captionIndex int) BodyID {
	return firstBrickID + BodyID(captionIndex)
}

// BodyKind tags what a body is.
type BodyKind int

const (
	KindWall BodyKind = iota
	KindBottom
	KindPaddle
	KindBrick
	KindBall
)

// String returns the kind name used in logs.
func (k BodyKind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindBottom:
		return "bottom"
	case KindPaddle:
		return "paddle"
	case KindBrick:
		return "brick"
	case KindBall:
		return "ball"
	default:
		return "unknown"
	}
}

// Body is a simulated object. Rectangles use HalfW/HalfH, the ball uses Radius.
type Body struct {
	ID     BodyID
	Kind   BodyKind
	Pos    core.Vec2 // Center
	Prev   core.Vec2 // Center before the last integration step
	Vel    core.Vec2 // Pixels per base tick; only the ball moves
	HalfW  float64
	HalfH  float64
	Radius float64
	Static bool
	Sensor bool // Detects overlap but never bounces (bottom)
	Alive  bool

	// Brick only
	Rune rune
	Line int
	Cell core.Rect
}

// Box returns the body's rectangle. For the ball it is the bounding square.
func (b *Body) Box() core.Box {
	if b.Kind == KindBall {
		return core.Box{Center: b.Pos, HalfW: b.Radius, HalfH: b.Radius}
	}
	return core.Box{Center: b.Pos, HalfW: b.HalfW, HalfH: b.HalfH}
}

// Arena owns the play field and every body in it.
// It is rebuilt wholesale whenever the geometry changes.
type Arena struct {
	width  float64
	height float64
	built  bool

	bodies map[BodyID]*Body
	bricks map[BodyID]*Body // live bricks only
	ball   *Body
	paddle *Body
}

// NewArena returns an empty, unbuilt arena.
func NewArena() *Arena {
	return &Arena{
		bodies: make(map[BodyID]*Body),
		bricks: make(map[BodyID]*Body),
	}
}

// Rebuild replaces all bodies from geom. Bricks whose caption index is in
// destroyed are not created. Invalid geometry leaves the arena untouched and
// returns false.
func (a *Arena) Rebuild(geom Geometry, destroyed map[int]bool) bool {
	if !geom.Valid {
		return false
	}

	bodies := make(map[BodyID]*Body, len(geom.Bricks)+6)
	bricks := make(map[BodyID]*Body, len(geom.Bricks))

	w, h, t := geom.Width, geom.Height, geom.WallThickness
	walls := []*Body{
		{ID: TopWallID, Kind: KindWall, Pos: core.V(w/2, -t/2), HalfW: w/2 + t, HalfH: t / 2},
		{ID: LeftWallID, Kind: KindWall, Pos: core.V(-t/2, h/2), HalfW: t / 2, HalfH: h/2 + t},
		{ID: RightWallID, Kind: KindWall, Pos: core.V(w+t/2, h/2), HalfW: t / 2, HalfH: h/2 + t},
		{ID: BottomID, Kind: KindBottom, Pos: core.V(w/2, h+t/2), HalfW: w/2 + t, HalfH: t / 2, Sensor: true},
	}
	for _, wall := range walls {
		wall.Static = true
		wall.Alive = true
		bodies[wall.ID] = wall
	}

	paddle := &Body{
		ID:     PaddleID,
		Kind:   KindPaddle,
		Pos:    geom.Paddle.Center,
		HalfW:  geom.Paddle.HalfW,
		HalfH:  geom.Paddle.HalfH,
		Static: true,
		Alive:  true,
	}
	bodies[PaddleID] = paddle

	rest := geom.BallRest(geom.Paddle)
	ball := &Body{
		ID:     BallID,
		Kind:   KindBall,
		Pos:    rest,
		Prev:   rest,
		Radius: geom.BallRadius,
		Alive:  true,
	}
	bodies[BallID] = ball

	for _, spec := range geom.Bricks {
		if destroyed[spec.Index] {
			continue
		}
		brick := &Body{
			ID:     BrickID(spec.Index),
			Kind:   KindBrick,
			Pos:    spec.Box.Center,
			HalfW:  spec.Box.HalfW,
			HalfH:  spec.Box.HalfH,
			Static: true,
			Alive:  true,
			Rune:   spec.Rune,
			Line:   spec.Line,
			Cell:   spec.Cell,
		}
		bodies[brick.ID] = brick
		bricks[brick.ID] = brick
	}

	// Swap in one step so nothing keeps pointing into the old set.
	a.width, a.height = w, h
	a.bodies, a.bricks = bodies, bricks
	a.ball, a.paddle = ball, paddle
	a.built = true
	return true
}

// Built reports whether the arena has ever received valid geometry.
func (a *Arena) Built() bool {
	return a.built
}

// Size returns the arena bounds in pixels.
func (a *Arena) Size() (float64, float64) {
	return a.width, a.height
}

// Ball returns the ball body. Nil until built.
func (a *Arena) Ball() *Body {
	return a.ball
}

// Paddle returns the paddle body. Nil until built.
func (a *Arena) Paddle() *Body {
	return a.paddle
}

// Get returns the body with the given ID, if present.
func (a *Arena) Get(id BodyID) (*Body, bool) {
	b, ok := a.bodies[id]
	return b, ok
}

// Bodies returns a copy of every body, sorted by ID.
func (a *Arena) Bodies() []Body {
	out := make([]Body, 0, len(a.bodies))
	for _, b := range a.bodies {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LiveBricks returns the live bricks. Order is unspecified.
func (a *Arena) LiveBricks() []*Body {
	out := make([]*Body, 0, len(a.bricks))
	for _, b := range a.bricks {
		out = append(out, b)
	}
	return out
}

// LiveBrickCount returns the number of bricks still standing.
func (a *Arena) LiveBrickCount() int {
	return len(a.bricks)
}

// RemoveBrick marks a brick dead and drops it from the live set.
// It returns false if id is not a live brick.
func (a *Arena) RemoveBrick(id BodyID) bool {
	b, ok := a.bricks[id]
	if !ok {
		return false
	}
	b.Alive = false
	delete(a.bricks, id)
	delete(a.bodies, id)
	return true
}

// PaddleRange returns the allowed paddle center x range.
func (a *Arena) PaddleRange() (float64, float64) {
	if a.paddle == nil {
		return 0, 0
	}
	return a.paddle.HalfW, a.width - a.paddle.HalfW
}

// SetPaddleX moves the paddle center to x, clamped to the arena.
// It returns the applied position.
func (a *Arena) SetPaddleX(x float64) float64 {
	if a.paddle == nil {
		return 0
	}
	lo, hi := a.PaddleRange()
	a.paddle.Pos.X = core.ClampF(x, lo, hi)
	return a.paddle.Pos.X
}

// BallRestPos is where the ball sits on top of the paddle.
func (a *Arena) BallRestPos() core.Vec2 {
	box := a.paddle.Box()
	return core.V(box.Center.X, box.Top()-a.ball.Radius)
}

// RestBall puts the ball on the paddle without changing its velocity.
func (a *Arena) RestBall() {
	if a.ball == nil || a.paddle == nil {
		return
	}
	a.ball.Pos = a.BallRestPos()
	a.ball.Prev = a.ball.Pos
}
