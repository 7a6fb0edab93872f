package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setFlags(t *testing.T, configPath, difficulty, caption string) {
	t.Helper()
	oldConfig, oldDifficulty, oldCaption := flagConfig, flagDifficulty, flagCaption
	flagConfig, flagDifficulty, flagCaption = configPath, difficulty, caption
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagCaption = oldConfig, oldDifficulty, oldCaption
	})
}

func TestEffectiveConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	setFlags(t, "", "hard", "Hi there")
	cfg, err := effectiveConfig()
	if err != nil {
		t.Fatalf("effectiveConfig() error = %v", err)
	}
	if cfg.Gameplay.Lives != 2 || cfg.Gameplay.Caption != "Hi there" {
		t.Errorf("lives = %d caption = %q, expected 2 and %q", cfg.Gameplay.Lives, cfg.Gameplay.Caption, "Hi there")
	}
}

func TestEffectiveConfigErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name       string
		config     string
		difficulty string
		expected   string
	}{
		{"unknown difficulty", "", "brutal", "unknown difficulty"},
		{"missing config", filepath.Join(t.TempDir(), "nope.yaml"), "", "failed to read config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setFlags(t, tc.config, tc.difficulty, "")
			_, err := effectiveConfig()
			if err == nil || !strings.Contains(err.Error(), tc.expected) {
				t.Errorf("effectiveConfig() error = %v, expected %q", err, tc.expected)
			}
		})
	}
}

func TestOpenLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "breakout.log")
	old := flagLogFile
	flagLogFile = path
	t.Cleanup(func() { flagLogFile = old })

	logger, closeLog, err := openLogger()
	if err != nil {
		t.Fatalf("openLogger() error = %v", err)
	}
	logger.Info("hello", "score", 100)
	closeLog()
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "score=100") {
		t.Errorf("log = %q, expected message and fields", string(data))
	}
}
