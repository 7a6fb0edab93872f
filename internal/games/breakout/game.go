// Package breakout implements the caption breakout engine: every visible
// character of a caption is a brick, and the caption is laid out on the
// terminal like text on a page.
package breakout

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// configured is the validated config set by the CLI, used by New.
var configured *config.BreakoutConfig

var logger = log.New(io.Discard)

// SetConfig sets the configuration that games created by New use.
// Invalid configs are rejected and leave the previous one in place.
func SetConfig(cfg config.BreakoutConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	configured = &cfg
	return nil
}

// SetLogger sets the logger used by the engine. Nil restores the silent default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game wires the arena, integrator, resolver, session and input adapter
// together behind the registry interface.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
	caption string

	geom      Geometry // latest layout, possibly invalid
	builtGeom Geometry // layout the arena was last built from

	arena      *Arena
	session    *Session
	integrator Integrator
	resolver   *Resolver
	input      *InputAdapter
	rng        *rand.Rand

	tick uint64
}

// New creates a game with the config given to SetConfig. Without one the
// config is loaded from the default locations on Reset.
func New() *Game {
	if configured != nil {
		return NewWithConfig(*configured)
	}
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading configuration.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Caption Breakout"
}

// Reset starts a fresh session for the given runtime.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime

	if g.cfg.Physics.BallSpeed == 0 {
		g.cfg = loadConfig()
	}
	g.caption = g.cfg.Gameplay.Caption

	g.rng = newRNG(runtime.Seed)
	g.session = NewSession(g.cfg.Gameplay.Lives, g.cfg.Gameplay.BrickPoints)
	g.integrator = NewIntegrator(g.cfg.Physics.BaseTickRate, runtime.TickRate)
	g.resolver = NewResolver(g.cfg.Physics, g.rng)
	g.input = NewInputAdapter(g.cfg.Paddle.KeyStep)
	g.arena = NewArena()
	g.tick = 0

	g.geom = ComputeGeometry(g.caption, runtime.ScreenW, runtime.ScreenH, g.cfg)
	if g.arena.Rebuild(g.geom, g.session.Destroyed()) {
		g.builtGeom = g.geom
	}

	logger.Debug("session reset",
		"screen", [2]int{runtime.ScreenW, runtime.ScreenH},
		"bricks", g.arena.LiveBrickCount(),
		"valid", g.geom.Valid)
}

// loadConfig loads configuration from the default locations.
func loadConfig() config.BreakoutConfig {
	cfg, err := config.LoadBreakout("")
	if err != nil {
		logger.Warn("using default config", "error", err)
		return config.DefaultBreakoutConfig()
	}
	return cfg
}

// Resize rebuilds the arena for a new terminal size. The session survives.
// A size that cannot fit the caption leaves the game inert until the next resize.
func (g *Game) Resize(screenW, screenH int) {
	if g.session == nil {
		return
	}
	g.runtime.ScreenW, g.runtime.ScreenH = screenW, screenH
	g.geom = ComputeGeometry(g.caption, screenW, screenH, g.cfg)
	if !g.geom.Valid {
		logger.Debug("layout does not fit", "screen", [2]int{screenW, screenH}, "need", [2]int{g.geom.NeedW, g.geom.NeedH})
		return
	}

	var vel core.Vec2
	paddleFrac := 0.5
	if g.arena.Built() {
		vel = g.arena.Ball().Vel
		w, _ := g.arena.Size()
		paddleFrac = g.arena.Paddle().Pos.X / w
	}

	g.arena.Rebuild(g.geom, g.session.Destroyed())
	g.builtGeom = g.geom

	g.arena.SetPaddleX(paddleFrac * g.geom.Width)
	g.arena.RestBall()
	if g.session.Status == StatusRunning {
		g.arena.Ball().Vel = vel
	}

	logger.Debug("arena rebuilt",
		"screen", [2]int{screenW, screenH},
		"bricks", g.arena.LiveBrickCount(),
		"status", g.session.Status)
}

// Step advances the game by one tick.
// Order: paddle input, trigger, integration, collision resolution, session update.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.arena == nil || !g.geom.Valid || !g.arena.Built() {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	var events []core.Event

	if x, ok := g.input.PaddleTarget(in, g.geom, g.arena.Paddle().Pos.X); ok {
		g.arena.SetPaddleX(x)
	}

	if in.Has(core.ActionTrigger) {
		events = g.trigger(events)
	}

	g.integrator.Step(g.arena, g.session.Status)

	if g.session.Status == StatusRunning {
		events = g.apply(g.resolver.Resolve(g.arena), events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// trigger handles a click or launch key.
func (g *Game) trigger(events []core.Event) []core.Event {
	switch TriggerFor(g.session.Status) {
	case TriggerStart:
		g.session.Start()
		g.arena.RestBall()
		g.arena.Ball().Vel = LaunchVelocity(g.cfg.Physics.BallSpeed, launchDir(g.rng))
		logger.Debug("ball launched", "tick", g.tick, "vel", g.arena.Ball().Vel)
		events = append(events, core.Event{Kind: core.EventLaunch, ID: int(BallID)})

	case TriggerReset:
		g.session.Reset()
		g.arena.Rebuild(g.geom, g.session.Destroyed())
		g.builtGeom = g.geom
		logger.Debug("session restarted", "tick", g.tick)
		events = append(events, core.Event{Kind: core.EventReset})
	}
	return events
}

// apply feeds a collision outcome into the session.
func (g *Game) apply(out Outcome, events []core.Event) []core.Event {
	if out.Brick != 0 {
		g.session.RecordBrick(int(out.Brick - firstBrickID))
		events = append(events, core.Event{Kind: core.EventBrickDestroyed, ID: int(out.Brick)})
	}

	if out.Cleared {
		g.session.Win()
		logger.Info("caption cleared", "score", g.session.Score, "tick", g.tick)
		g.logSnapshot()
		events = append(events, core.Event{Kind: core.EventWin})
	}

	if out.Bottom {
		status := g.session.LoseLife()
		g.arena.Ball().Vel = core.Vec2{}
		g.arena.RestBall()
		events = append(events, core.Event{Kind: core.EventLifeLost, ID: g.session.Lives})
		if status == StatusOver {
			logger.Info("game over", "score", g.session.Score, "tick", g.tick)
			g.logSnapshot()
			events = append(events, core.Event{Kind: core.EventGameOver})
		}
	}
	return events
}

// logSnapshot records the end-of-session snapshot hash for replay checks.
func (g *Game) logSnapshot() {
	snap := g.Snapshot()
	hash, err := snap.Hash()
	if err != nil {
		logger.Warn("snapshot hash failed", "tick", snap.Tick, "error", err)
		return
	}
	logger.Debug("final snapshot", "tick", snap.Tick, "hash", hash)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score,
		Lives:    g.session.Lives,
		Status:   g.session.Status.String(),
		GameOver: g.session.Status == StatusOver || g.session.Status == StatusWin,
	}
}

// Status returns the session status.
func (g *Game) Status() Status {
	if g.session == nil {
		return StatusReady
	}
	return g.session.Status
}

// Geometry returns the latest computed layout.
func (g *Game) Geometry() Geometry {
	return g.geom
}

// Arena exposes the arena for read-only inspection.
func (g *Game) Arena() *Arena {
	return g.arena
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
