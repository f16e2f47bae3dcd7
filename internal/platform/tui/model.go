package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/logging"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

// Options configures the terminal host.
type Options struct {
	Runtime   core.RuntimeConfig
	FrameRate int         // Redraws per second; 0 uses the tick rate
	History   RunRecorder // Optional run history
	Logger    *log.Logger // Optional
	Now       func() time.Time
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game    Game
	screen  *core.Screen
	history RunRecorder
	logger  *log.Logger
	config  core.RuntimeConfig

	frameRate int
	clock     *core.FixedStep
	lastFrame time.Time
	now       func() time.Time

	keys KeyMap
	help help.Model

	pending   core.InputFrame // Queued until the next tick
	gameState core.GameState
	paused    bool
	quitting  bool
	runSaved  bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	frameRate := opts.FrameRate
	if frameRate <= 0 {
		frameRate = cfg.TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-1)),
		history:   opts.History,
		logger:    logger,
		config:    cfg,
		frameRate: frameRate,
		clock:     core.NewFixedStep(cfg.TickRate, 0),
		now:       now,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		pending:   core.NewInputFrame(),
		gameState: game.State(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.frameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.advance(time.Time(msg))
		return m, tickCmd(m.frameRate)
	}

	return m, nil
}

// handleKey processes keyboard input. Game actions are queued for the
// next simulation tick; everything else is handled by the host.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.togglePause()
	case core.ActionNone:
	default:
		if !m.paused {
			m.pending.Set(action)
		}
	}
	return m, nil
}

func (m *Model) togglePause() {
	m.paused = !m.paused
	m.gameState.Paused = m.paused
	// Time spent paused is not simulated.
	m.clock.Reset()
	m.lastFrame = time.Time{}
	m.logger.Debug("pause toggled", "paused", m.paused)
}

// handleResize processes window resize events. The game scales its field
// to the screen, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// advance runs as many fixed ticks as the elapsed frame time allows.
// Queued input goes to the first of them only.
func (m *Model) advance(now time.Time) {
	if m.paused {
		return
	}

	steps := 1
	if !m.lastFrame.IsZero() {
		steps = m.clock.Advance(now.Sub(m.lastFrame))
	}
	m.lastFrame = now

	for i := 0; i < steps; i++ {
		result := m.game.Step(m.pending.Clone())
		m.pending.Clear()
		m.gameState = result.State
		m.recordRun()
	}
}

// recordRun saves a finished run once per game over.
func (m *Model) recordRun() {
	if !m.gameState.GameOver {
		m.runSaved = false
		return
	}
	if m.runSaved {
		return
	}
	m.runSaved = true

	if m.history == nil {
		return
	}
	_, err := m.history.SaveRun(storage.RunRecord{
		Score:       m.gameState.Score,
		Environment: m.gameState.Level,
		Ticks:       m.gameState.Ticks,
		NewBest:     m.gameState.NewBest,
	})
	if err != nil {
		m.logger.Warn("could not record run", "score", m.gameState.Score, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		drawPauseOverlay(m.screen)
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the latest tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
