package breakout

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is the read-only view of one tick handed to consumers.
// Bricks lists every brick of the current layout, dead ones included.
type Snapshot struct {
	Tick   uint64       `msgpack:"tick"`
	Status string       `msgpack:"status"`
	Score  int          `msgpack:"score"`
	Lives  int          `msgpack:"lives"`
	Ball   BodyState    `msgpack:"ball"`
	Paddle BodyState    `msgpack:"paddle"`
	Bricks []BrickState `msgpack:"bricks"`
}

// BodyState is a body's position and velocity.
type BodyState struct {
	X  float64 `msgpack:"x"`
	Y  float64 `msgpack:"y"`
	VX float64 `msgpack:"vx"`
	VY float64 `msgpack:"vy"`
}

// BrickState is a brick's alive flag.
type BrickState struct {
	ID    BodyID `msgpack:"id"`
	Alive bool   `msgpack:"alive"`
}

// Snapshot returns the current game state. A game that was never reset
// returns a zero Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil || g.arena == nil {
		return Snapshot{}
	}
	snap := Snapshot{
		Tick:   g.tick,
		Status: g.session.Status.String(),
		Score:  g.session.Score,
		Lives:  g.session.Lives,
	}
	if !g.arena.Built() {
		return snap
	}

	ball, paddle := g.arena.Ball(), g.arena.Paddle()
	snap.Ball = BodyState{X: ball.Pos.X, Y: ball.Pos.Y, VX: ball.Vel.X, VY: ball.Vel.Y}
	snap.Paddle = BodyState{X: paddle.Pos.X, Y: paddle.Pos.Y}

	// Geometry bricks are in caption order, which is ID order.
	snap.Bricks = make([]BrickState, 0, len(g.builtGeom.Bricks))
	for _, spec := range g.builtGeom.Bricks {
		id := BrickID(spec.Index)
		_, alive := g.arena.Get(id)
		snap.Bricks = append(snap.Bricks, BrickState{ID: id, Alive: alive})
	}
	return snap
}

// Encode serializes the snapshot with msgpack.
func (snap *Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Hash returns an FNV-1a hash of the encoded snapshot for determinism checks.
func (snap *Snapshot) Hash() (uint64, error) {
	data, err := snap.Encode()
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64(), nil
}
