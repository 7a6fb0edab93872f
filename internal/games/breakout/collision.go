package breakout

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Outcome reports what the resolver did during one tick.
type Outcome struct {
	SideWall bool
	TopWall  bool
	Paddle   bool
	Brick    BodyID // Destroyed brick, 0 if none
	Cleared  bool   // The destroyed brick was the last one
	Bottom   bool   // Ball reached the bottom sensor
}

// Resolver detects ball contacts and applies the bounce rules.
//
// Contacts are checked in a fixed order: side walls, top wall, paddle, bricks,
// bottom sensor. Each axis is resolved at most once per tick, and a brick is
// only hit on a tick where no wall or paddle resolution fired. Remaining
// overlaps are picked up on the next tick.
type Resolver struct {
	rng      *rand.Rand
	jitter   float64
	minSpeed float64
	maxSpeed float64
	speedUp  float64
}

// NewResolver builds a resolver from the physics config.
func NewResolver(p config.BreakoutPhysics, rng *rand.Rand) *Resolver {
	return &Resolver{
		rng:      rng,
		jitter:   p.WallJitter,
		minSpeed: p.BallSpeed,
		maxSpeed: p.MaxBallSpeed,
		speedUp:  p.SpeedUpFactor,
	}
}

// Resolve runs one collision pass over the arena.
func (r *Resolver) Resolve(a *Arena) Outcome {
	var out Outcome
	ball := a.Ball()
	if ball == nil {
		return out
	}
	w, _ := a.Size()
	rad := ball.Radius
	xDone, yDone := false, false

	// Side walls. Contact is the leading edge crossing the wall's inner face.
	if left, ok := a.Get(LeftWallID); ok && ball.Pos.X-rad < left.Box().Right() {
		ball.Vel.X = math.Abs(ball.Vel.X)
		ball.Pos.X = rad
		ball.Vel = r.jitterBounce(ball.Vel, true)
		xDone = true
	} else if right, ok := a.Get(RightWallID); ok && ball.Pos.X+rad > right.Box().Left() {
		ball.Vel.X = -math.Abs(ball.Vel.X)
		ball.Pos.X = w - rad
		ball.Vel = r.jitterBounce(ball.Vel, true)
		xDone = true
	}
	out.SideWall = xDone

	// Top wall
	if top, ok := a.Get(TopWallID); ok && ball.Pos.Y-rad < top.Box().Bottom() {
		ball.Vel.Y = math.Abs(ball.Vel.Y)
		ball.Pos.Y = rad
		ball.Vel = r.jitterBounce(ball.Vel, false)
		yDone = true
		out.TopWall = true
	}

	// Paddle
	if !yDone && ball.Vel.Y > 0 && hitsPaddle(ball, a.Paddle().Box()) {
		ball.Vel.Y = -math.Abs(ball.Vel.Y)
		ball.Pos.Y = a.Paddle().Box().Top() - rad
		yDone = true
		out.Paddle = true
	}

	// Bricks
	if !xDone && !yDone {
		if brick := deepestBrick(a, ball.Pos, rad); brick != nil {
			ball.Vel = r.brickBounce(ball, brick)
			a.RemoveBrick(brick.ID)
			out.Brick = brick.ID
			if a.LiveBrickCount() == 0 {
				ball.Vel = core.Vec2{}
				out.Cleared = true
			}
		}
	}

	// Bottom sensor never bounces
	if !out.Cleared {
		if bottom, ok := a.Get(BottomID); ok && ball.Pos.Y+rad > bottom.Box().Top() {
			ball.Vel = core.Vec2{}
			out.Bottom = true
		}
	}

	return out
}

// hitsPaddle reports whether a falling ball touches the paddle on this tick.
// Besides plain overlap it checks the path since the previous tick, so a fast
// ball cannot step over the paddle's top edge.
func hitsPaddle(ball *Body, p core.Box) bool {
	rad := ball.Radius
	if ball.Pos.Y+rad >= p.Top() && ball.Pos.Y <= p.Bottom() &&
		math.Abs(ball.Pos.X-p.Center.X) <= p.HalfW {
		return true
	}

	prevBottom, bottom := ball.Prev.Y+rad, ball.Pos.Y+rad
	if prevBottom >= p.Top() || bottom < p.Top() {
		return false
	}
	// x where the ball's lowest point crosses the paddle top
	t := (p.Top() - prevBottom) / (bottom - prevBottom)
	x := ball.Prev.X + t*(ball.Pos.X-ball.Prev.X)
	return math.Abs(x-p.Center.X) <= p.HalfW
}

// deepestBrick returns the live brick the ball penetrates most.
// Ties go to the lowest ID so the result does not depend on map order.
func deepestBrick(a *Arena, pos core.Vec2, rad float64) *Body {
	var best *Body
	bestDepth := 0.0
	for _, b := range a.LiveBricks() {
		box := b.Box()
		if !box.CircleOverlaps(pos, rad) {
			continue
		}
		d2 := pos.Sub(box.ClosestPoint(pos)).LenSq()
		depth := rad - math.Sqrt(d2)
		if d2 == 0 {
			// Center inside the brick: add the distance to the nearest edge.
			depth = rad + math.Min(
				math.Min(pos.X-box.Left(), box.Right()-pos.X),
				math.Min(pos.Y-box.Top(), box.Bottom()-pos.Y),
			)
		}
		if best == nil || depth > bestDepth || (depth == bestDepth && b.ID < best.ID) {
			best, bestDepth = b, depth
		}
	}
	return best
}

// brickBounce reflects the ball velocity about the brick-to-ball normal and
// speeds it up. A ball already moving away from the brick keeps its heading.
func (r *Resolver) brickBounce(ball, brick *Body) core.Vec2 {
	v := ball.Vel
	box := brick.Box()

	n, ok := ball.Pos.Sub(box.ClosestPoint(ball.Pos)).Normalize()
	if !ok {
		n, ok = ball.Pos.Sub(box.Center).Normalize()
	}

	var dir core.Vec2
	switch {
	case !ok:
		dir = reflectDominant(v)
	case v.Dot(n) < 0:
		dir = v.Reflect(n)
	default:
		dir = v
	}

	unit, ok := dir.Normalize()
	if !ok {
		return v
	}
	return ClampSpeed(unit.Scale(v.Len()*r.speedUp), r.minSpeed, r.maxSpeed)
}

// reflectDominant flips the larger velocity component.
func reflectDominant(v core.Vec2) core.Vec2 {
	if math.Abs(v.X) >= math.Abs(v.Y) {
		return core.V(-v.X, v.Y)
	}
	return core.V(v.X, -v.Y)
}

// jitterBounce perturbs the heading of an already reflected velocity by up to
// ±jitter radians, keeping its speed. If the perturbation would turn the
// reflected component back toward the wall it is mirrored instead.
func (r *Resolver) jitterBounce(v core.Vec2, xAxis bool) core.Vec2 {
	if r.jitter <= 0 || r.rng == nil {
		return v
	}
	speed := v.Len()
	if speed == 0 {
		return v
	}

	delta := (r.rng.Float64()*2 - 1) * r.jitter
	out := core.FromPolar(v.Angle()+delta, speed)

	if xAxis && math.Signbit(out.X) != math.Signbit(v.X) {
		out.X = -out.X
	}
	if !xAxis && math.Signbit(out.Y) != math.Signbit(v.Y) {
		out.Y = -out.Y
	}
	return out
}
