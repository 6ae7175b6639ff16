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
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

// Options configures the interactive driver.
type Options struct {
	Runtime core.RuntimeConfig
	Demo    bool          // Let the autopilot play
	Hold    time.Duration // How long a direction key stays held
	Logger  *log.Logger

	// ScreenshotDir defaults to ~/.arcade/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running the shooter.
type Model struct {
	world   *shooter.World
	pilot   *shooter.Pilot
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	held    *HeldKeys
	logger  *log.Logger
	shotDir string
	now     func() time.Time

	width, height int

	fire      bool // One-shot events waiting for the next frame
	restart   bool
	paused    bool
	quitting  bool
	lastFrame time.Time
}

// NewModel creates a new Bubble Tea model driving the given world.
func NewModel(world *shooter.World, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var pilot *shooter.Pilot
	if opts.Demo {
		pilot = shooter.NewPilot()
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		world:   world,
		pilot:   pilot,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		held:    NewHeldKeys(opts.Hold),
		logger:  logger,
		shotDir: opts.ScreenshotDir,
		now:     time.Now,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	return m
}

// Init starts the frame and spawn timers.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started",
		"demo", m.pilot != nil,
		"fps", m.config.TickRate,
		"spawn", m.world.SpawnInterval(),
	)
	return tea.Batch(
		frameCmd(m.config.TickRate),
		spawnCmd(m.world.SpawnInterval()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case SpawnMsg:
		return m.handleSpawn()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		s := m.world.Session()
		m.logger.Info("quit", "score", s.Score, "best", s.Best)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.gameHeight())
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if m.world.Session().Running() {
			m.paused = !m.paused
			m.held.Clear()
			m.logger.Debug("pause toggled", "paused", m.paused)
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.restart = true
		return m, nil
	}

	// The autopilot owns the ship in demo mode
	if m.pilot != nil || m.paused {
		return m, nil
	}

	now := m.now()
	switch {
	case key.Matches(msg, m.keys.Fire):
		m.fire = true
	case key.Matches(msg, m.keys.Up):
		m.held.Press(DirUp, now)
	case key.Matches(msg, m.keys.Down):
		m.held.Press(DirDown, now)
	case key.Matches(msg, m.keys.Left):
		m.held.Press(DirLeft, now)
	case key.Matches(msg, m.keys.Right):
		m.held.Press(DirRight, now)
	}

	return m, nil
}

// handleResize processes window resize events. The arena is logical, so
// the game keeps running at any size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameHeight())
	m.help.Width = msg.Width
	return m, nil
}

// handleFrame runs one simulation step.
func (m Model) handleFrame(t time.Time) (tea.Model, tea.Cmd) {
	dt := frameInterval(m.config.TickRate)
	if !m.lastFrame.IsZero() {
		dt = t.Sub(m.lastFrame)
	}
	m.lastFrame = t

	if m.paused {
		return m, frameCmd(m.config.TickRate)
	}

	var in core.Input
	if m.pilot != nil {
		in = m.pilot.Next(m.world)
	} else {
		in = m.held.Input(m.now())
		in.Fire = m.fire
		in.Restart = m.restart
	}

	res := m.world.Step(in, dt)
	m.logEvents(res)

	// Clear one-shot events for next frame
	m.fire = false
	m.restart = false

	return m, frameCmd(m.config.TickRate)
}

// handleSpawn applies one spawn and schedules the next.
func (m Model) handleSpawn() (tea.Model, tea.Cmd) {
	if !m.paused {
		if e, ok := m.world.SpawnEnemy(); ok {
			m.logger.Debug("enemy spawned", "id", e.ID, "x", e.X)
		}
	}
	return m, spawnCmd(m.world.SpawnInterval())
}

func (m Model) logEvents(res shooter.StepResult) {
	ev := res.Events
	if ev.Restarted {
		m.logger.Info("game restarted", "lives", res.Lives)
	}
	if ev.Kills > 0 {
		m.logger.Debug("enemies destroyed", "count", ev.Kills, "score", res.Score)
	}
	if ev.PlayerHits > 0 {
		m.logger.Info("player hit", "count", ev.PlayerHits, "lives", res.Lives)
	}
	if ev.Escapes > 0 {
		m.logger.Info("enemy escaped", "count", ev.Escapes, "lives", res.Lives)
	}
	if ev.GameOver {
		s := m.world.Session()
		m.logger.Info("game over",
			"score", s.Score,
			"best", s.Best,
			"steps", m.world.Steps(),
			"elapsed", m.world.Elapsed().Round(time.Millisecond),
		)
	}
}

// gameHeight is the terminal height left after the help bar.
func (m Model) gameHeight() int {
	return core.Max(m.height-lipgloss.Height(m.help.View(m.keys)), 0)
}

// saveScreenshot saves the current screen to a text file.
func (m Model) saveScreenshot() (string, error) {
	m.render()

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	// Generate filename with timestamp
	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("shooter_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// render draws the world and any overlay into the screen buffer.
func (m Model) render() {
	m.world.Render(m.screen)

	if m.pilot != nil && m.screen.Width() >= shooter.MinScreenW {
		m.screen.DrawTextColored(2, 1, " DEMO ", core.ColorYellow)
	}
	if m.paused {
		shooter.DrawBanner(m.screen, "PAUSED", "Press P to resume")
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given world.
func Run(world *shooter.World, opts Options) error {
	model := NewModel(world, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
