// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout platform.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// BreakoutConfig contains all configuration for the caption breakout game.
type BreakoutConfig struct {
	Physics  BreakoutPhysics  `yaml:"physics"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Arena    BreakoutArena    `yaml:"arena"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
	Platform PlatformConfig   `yaml:"platform"`
}

// BreakoutPhysics defines ball physics in arena pixels per tick.
type BreakoutPhysics struct {
	BallSpeed     float64 `yaml:"ball_speed"`      // Launch speed, also the lower speed bound
	MaxBallSpeed  float64 `yaml:"max_ball_speed"`  // Upper speed bound
	SpeedUpFactor float64 `yaml:"speed_up_factor"` // Speed multiplier applied on each brick hit
	WallJitter    float64 `yaml:"wall_jitter"`     // Max angle perturbation (radians) on wall bounces
	BallRadius    float64 `yaml:"ball_radius"`
	BaseTickRate  int     `yaml:"base_tick_rate"` // Tick rate the speeds are expressed in
}

// BreakoutPaddle defines paddle geometry in arena pixels.
type BreakoutPaddle struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Offset  float64 `yaml:"offset"`   // Distance from the arena bottom to the paddle center
	KeyStep float64 `yaml:"key_step"` // Pointer nudge per arrow key press
}

// BreakoutArena defines how the terminal grid maps onto the arena.
type BreakoutArena struct {
	CellWidth      float64 `yaml:"cell_width"`  // Pixels per terminal column
	CellHeight     float64 `yaml:"cell_height"` // Pixels per terminal row
	WallThickness  float64 `yaml:"wall_thickness"`
	HUDRows        int     `yaml:"hud_rows"`        // Rows reserved below the arena for score/lives
	CaptionTop     int     `yaml:"caption_top"`     // First row of the caption
	CaptionMargin  int     `yaml:"caption_margin"`  // Empty columns on each side of the caption
	ClearanceRows  int     `yaml:"clearance_rows"`  // Minimum empty rows between caption and paddle
	MinScreenWidth int     `yaml:"min_screen_width"` // Below this the game stays inert
}

// BreakoutGameplay defines scoring and the caption that forms the bricks.
type BreakoutGameplay struct {
	Lives       int    `yaml:"lives"`
	BrickPoints int    `yaml:"brick_points"`
	Caption     string `yaml:"caption"`
}

// PlatformConfig defines timing of the terminal host.
type PlatformConfig struct {
	ResizeDebounce time.Duration `yaml:"resize_debounce"`
	MaxCatchUp     int           `yaml:"max_catch_up"` // Max fixed ticks run per frame
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI string to a preset. Empty means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal keeps the configured values.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width *= 1.25
		cfg.Physics.BallSpeed = 5
		cfg.Physics.MaxBallSpeed = 14
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width *= 0.75
		cfg.Physics.BallSpeed = 8
		cfg.Physics.MaxBallSpeed = 22
	}
}

// Validate reports configuration values the engine cannot run with.
func (c BreakoutConfig) Validate() error {
	var errs []error

	p := c.Physics
	if p.BallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.ball_speed must be positive, got %g", p.BallSpeed))
	}
	if p.MaxBallSpeed < p.BallSpeed {
		errs = append(errs, fmt.Errorf("physics.max_ball_speed (%g) is below ball_speed (%g)", p.MaxBallSpeed, p.BallSpeed))
	}
	if p.SpeedUpFactor < 1 {
		errs = append(errs, fmt.Errorf("physics.speed_up_factor must be >= 1, got %g", p.SpeedUpFactor))
	}
	if p.WallJitter < 0 {
		errs = append(errs, fmt.Errorf("physics.wall_jitter must not be negative, got %g", p.WallJitter))
	}
	if p.BallRadius <= 0 {
		errs = append(errs, fmt.Errorf("physics.ball_radius must be positive, got %g", p.BallRadius))
	}
	if p.BaseTickRate <= 0 {
		errs = append(errs, fmt.Errorf("physics.base_tick_rate must be positive, got %d", p.BaseTickRate))
	}

	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Arena.CellWidth <= 0 || c.Arena.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("arena cell size must be positive, got %gx%g", c.Arena.CellWidth, c.Arena.CellHeight))
	}
	if c.Arena.WallThickness <= 0 {
		errs = append(errs, fmt.Errorf("arena.wall_thickness must be positive, got %g", c.Arena.WallThickness))
	}

	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.BrickPoints <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.brick_points must be positive, got %d", c.Gameplay.BrickPoints))
	}
	if strings.TrimSpace(c.Gameplay.Caption) == "" {
		errs = append(errs, errors.New("gameplay.caption must contain at least one visible character"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid breakout config: %w", err)
	}
	return nil
}
