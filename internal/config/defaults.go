package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultCaption is the caption used when no configuration overrides it.
const DefaultCaption = "Every letter on this screen is a brick. Keep the ball in play with the " +
	"paddle, knock the whole caption down before your lives run out, and the " +
	"page is yours to read again from the top."

// DefaultBreakoutConfig returns the default Breakout configuration.
// It mirrors defaults/breakout.yaml and is the fallback when the embed cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:     6,
			MaxBallSpeed:  18,
			SpeedUpFactor: 1.1,
			WallJitter:    0.1,
			BallRadius:    4,
			BaseTickRate:  60,
		},
		Paddle: BreakoutPaddle{
			Width:   120,
			Height:  12,
			Offset:  30,
			KeyStep: 32,
		},
		Arena: BreakoutArena{
			CellWidth:      8,
			CellHeight:     16,
			WallThickness:  12,
			HUDRows:        1,
			CaptionTop:     2,
			CaptionMargin:  4,
			ClearanceRows:  6,
			MinScreenWidth: 30,
		},
		Gameplay: BreakoutGameplay{
			Lives:       3,
			BrickPoints: 100,
			Caption:     DefaultCaption,
		},
		Platform: PlatformConfig{
			ResizeDebounce: 250 * time.Millisecond,
			MaxCatchUp:     5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
