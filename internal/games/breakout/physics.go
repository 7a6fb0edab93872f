package breakout

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Integrator advances the ball by one fixed tick.
// Velocities are expressed per base tick, so DTScale keeps the ball's
// real-time speed the same at any simulation rate.
type Integrator struct {
	DTScale float64
}

// NewIntegrator returns an integrator for a simulation running at tickRate
// with speeds tuned for baseTickRate.
func NewIntegrator(baseTickRate, tickRate int) Integrator {
	if baseTickRate <= 0 || tickRate <= 0 {
		return Integrator{DTScale: 1}
	}
	return Integrator{DTScale: float64(baseTickRate) / float64(tickRate)}
}

// Step integrates the ball while running. While ready the ball rests on the
// paddle instead. Other statuses leave the arena untouched.
func (in Integrator) Step(a *Arena, status Status) {
	ball := a.Ball()
	if ball == nil {
		return
	}

	switch status {
	case StatusRunning:
		ball.Prev = ball.Pos
		ball.Pos = ball.Pos.Add(ball.Vel.Scale(in.DTScale))
	case StatusReady:
		a.RestBall()
	}
}

// LaunchVelocity returns a 45° upward velocity of the given speed.
// dir < 0 launches to the left.
func LaunchVelocity(speed float64, dir int) core.Vec2 {
	c := speed / math.Sqrt2
	if dir < 0 {
		return core.V(-c, -c)
	}
	return core.V(c, -c)
}

// ClampSpeed rescales v so its length lies in [lo, hi].
// A zero vector is returned unchanged.
func ClampSpeed(v core.Vec2, lo, hi float64) core.Vec2 {
	speed := v.Len()
	if speed == 0 {
		return v
	}
	target := core.ClampF(speed, lo, hi)
	if target == speed {
		return v
	}
	return v.Scale(target / speed)
}

// newRNG returns the seeded source for launch directions and wall jitter.
func newRNG(seed int64) *rand.Rand {
	s := uint64(seed) //#nosec G115 -- bit pattern reuse is intended
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// launchDir picks -1 or 1 uniformly.
func launchDir(rng *rand.Rand) int {
	if rng.IntN(2) == 0 {
		return -1
	}
	return 1
}
