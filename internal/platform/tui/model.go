package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// helpRows is the number of terminal rows below the game area.
const helpRows = 1

// Options configures the host around a game.
type Options struct {
	Platform      config.PlatformConfig
	Logger        *log.Logger
	ScreenshotDir string // Defaults to <app dir>/screenshots
}

// Model is the Bubble Tea model that hosts a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	keys   KeyMap
	mapper *KeyMapper
	help   help.Model
	logger *log.Logger

	clock  fixedStep
	resize resizeDebouncer

	screenshotDir string
	termW         int
	paused        bool
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size; the game gets the rows above the help line.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(config.AppDir(), "screenshots")
	}

	termW := cfg.ScreenW
	cfg.ScreenH = max(cfg.ScreenH-helpRows, 0)

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = termW

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		keys:          keys,
		mapper:        NewKeyMapper(keys),
		help:          h,
		logger:        logger,
		clock:         newFixedStep(cfg.TickRate, opts.Platform.MaxCatchUp),
		resize:        newResizeDebouncer(opts.Platform.ResizeDebounce),
		screenshotDir: dir,
		termW:         termW,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started",
		"game", m.game.ID(),
		"screen", [2]int{m.config.ScreenW, m.config.ScreenH},
		"tick_rate", m.config.TickRate,
		"seed", m.config.Seed)

	return tea.Batch(tickCmd(m.config.TickRate), tea.SetWindowTitle(m.game.Title()))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.paused {
			m.mapper.MapMouseToFrame(msg, &m.inputFrame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		now, cmd := m.resize.Request(msg.Width, msg.Height)
		if now {
			m.applyResize(msg.Width, msg.Height)
		}
		return m, cmd

	case resizeSettledMsg:
		if m.resize.Accept(msg) {
			m.applyResize(msg.width, msg.height)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.clock.Reset()
		m.inputFrame.Clear()
		m.logger.Debug("pause toggled", "paused", m.paused)
		return m, nil
	}

	if m.paused && !key.Matches(msg, m.keys.Quit) {
		return m, nil
	}

	if m.mapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "status", m.gameState.Status)
		return m, tea.Quit
	}
	return m, nil
}

// applyResize resizes the buffer and lets the game rebuild its layout.
func (m *Model) applyResize(width, height int) {
	gameH := max(height-helpRows, 0)
	m.termW = width
	m.help.Width = width
	m.config.ScreenW = width
	m.config.ScreenH = gameH
	m.screen.Resize(width, gameH)
	m.game.Resize(width, gameH)
	m.logger.Debug("terminal resized", "width", width, "height", gameH)
}

// handleTick runs as many fixed simulation ticks as the elapsed time allows.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	steps, dropped := m.clock.Advance(now)
	if dropped > 0 {
		m.logger.Debug("dropped ticks", "count", dropped)
	}

	for range steps {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		m.logEvents(result.Events)

		// Input applies to the first tick of the frame only
		m.inputFrame.Clear()
	}

	return m, tickCmd(m.config.TickRate)
}

// logEvents writes tick events to the log.
func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventGameOver, core.EventWin:
			m.logger.Info("session ended", "event", e.Kind, "score", m.gameState.Score)
		default:
			m.logger.Debug("game event", "event", e.Kind, "id", e.ID)
		}
	}
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.screenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + renderFooter(m.help.View(m.keys), m.paused, m.termW)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
