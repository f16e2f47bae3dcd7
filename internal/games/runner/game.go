package runner

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Game adapts a Session to the terminal platform: it turns input frames
// into events and draws the latest snapshot into a character screen.
type Game struct {
	cfg     config.RunnerConfig
	store   HighScoreStore
	logger  *log.Logger
	runtime core.RuntimeConfig

	session *Session
	last    Snapshot
}

// New creates a runner game. Reset must be called before Step.
func New(cfg config.RunnerConfig, store HighScoreStore, logger *log.Logger) *Game {
	return &Game{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Neon Runner"
}

// Reset builds a fresh session for the given runtime settings.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.session = NewSession(g.cfg, Options{
		Seed:   runtime.Seed,
		Store:  g.store,
		Logger: g.logger,
	})
	g.last = g.session.Snapshot()
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.last = g.session.Step(EventsFromInput(in))
	return core.StepResult{State: g.State()}
}

// EventsFromInput maps platform actions onto session events, keeping order.
func EventsFromInput(in core.InputFrame) []Event {
	if in.Empty() {
		return nil
	}
	events := make([]Event, 0, len(in.Actions))
	for _, a := range in.Actions {
		switch a {
		case core.ActionJump:
			events = append(events, EventJumpPressed)
		case core.ActionRestart:
			events = append(events, EventRestartPressed)
		}
	}
	return events
}

// Snapshot returns the state after the most recent tick.
func (g *Game) Snapshot() Snapshot {
	return g.last
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.last.Score,
		GameOver: g.last.Phase == PhaseGameOver,
		Level:    g.last.EnvironmentIndex,
		Ticks:    g.last.Tick,
		NewBest:  g.last.NewBest,
	}
}

// Render draws the most recent snapshot.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.last)
}
