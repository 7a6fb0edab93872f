package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

const gameID = "breakout"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play caption breakout",
	Args:  cobra.NoArgs,
	Run:   runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := effectiveConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer closeLog()

	// The engine uses exactly the config validated above
	if err := breakout.SetConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	breakout.SetLogger(logger.WithPrefix("engine"))

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the first layout; the program corrects it on start
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, runtime, tui.Options{Platform: cfg.Platform, Logger: logger}); err != nil {
		logger.Error("program exited", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// effectiveConfig loads the config the flags describe. A bad --config or
// --difficulty is an error, not a silent fallback.
func effectiveConfig() (config.BreakoutConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, err
	}

	config.ApplyBreakoutPreset(&cfg, preset)
	if flagCaption != "" {
		cfg.Gameplay.Caption = flagCaption
	}
	if err := cfg.Validate(); err != nil {
		return config.BreakoutConfig{}, err
	}
	return cfg, nil
}

// openLogger opens the log file. The terminal belongs to the game, so logs
// never go to stderr while playing. On failure a silent logger is returned.
func openLogger() (*log.Logger, func(), error) {
	path := flagLogFile
	if path == "" {
		dir := config.AppDir()
		if dir == "" {
			return discardLogger(), func() {}, fmt.Errorf("home directory unavailable")
		}
		path = filepath.Join(dir, "breakout.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discardLogger(), func() {}, fmt.Errorf("failed to create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discardLogger(), func() {}, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	closed := false
	return logger, func() {
		if !closed {
			closed = true
			_ = f.Close()
		}
	}, nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
