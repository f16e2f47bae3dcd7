// Package window runs the runner in a desktop window with ebiten. Ebiten
// calls Update at a fixed tick rate, so one Update is one simulation tick.
package window

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/neon-runner/internal/games/runner"
	"github.com/vovakirdan/neon-runner/internal/logging"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

// RunRecorder stores finished runs.
type RunRecorder interface {
	SaveRun(r storage.RunRecord) (int64, error)
}

// Options configures the window host.
type Options struct {
	TickRate int     // Ticks per second, default 60
	Scale    float64 // Window pixels per field unit, default 1
	History  RunRecorder
	Logger   *log.Logger
}

// Host drives a Session from ebiten's game loop.
type Host struct {
	session *runner.Session
	opts    Options
	logger  *log.Logger

	pending  []runner.Event
	snap     runner.Snapshot
	paused   bool
	runSaved bool
}

// NewHost creates a host for session.
func NewHost(session *runner.Session, opts Options) *Host {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Host{
		session: session,
		opts:    opts,
		logger:  logger,
		snap:    session.Snapshot(),
	}
}

// Keys is the set of keys pressed since the previous tick.
type Keys struct {
	Jump    bool
	Restart bool
	Pause   bool
	Quit    bool
}

func pressedKeys() Keys {
	return Keys{
		Jump: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyP) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Quit: inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if !h.Tick(pressedKeys()) {
		return ebiten.Termination
	}
	return nil
}

// Tick applies one frame of key presses and advances the session unless
// paused. It returns false when the player asked to quit.
func (h *Host) Tick(k Keys) bool {
	if k.Quit {
		return false
	}
	if k.Pause {
		h.paused = !h.paused
		h.logger.Debug("pause toggled", "paused", h.paused)
	}
	if h.paused {
		return true
	}

	if k.Jump {
		h.pending = append(h.pending, runner.EventJumpPressed)
	}
	if k.Restart {
		h.pending = append(h.pending, runner.EventRestartPressed)
	}

	h.snap = h.session.Step(h.pending)
	h.pending = h.pending[:0]
	h.recordRun()
	return true
}

func (h *Host) recordRun() {
	if h.snap.Phase != runner.PhaseGameOver {
		h.runSaved = false
		return
	}
	if h.runSaved {
		return
	}
	h.runSaved = true

	if h.opts.History == nil {
		return
	}
	_, err := h.opts.History.SaveRun(storage.RunRecord{
		Score:       h.snap.Score,
		Environment: h.snap.EnvironmentIndex,
		Ticks:       h.snap.Tick,
		NewBest:     h.snap.NewBest,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		h.logger.Warn("could not record run", "score", h.snap.Score, "error", err)
	}
}

// Snapshot returns the state after the latest tick.
func (h *Host) Snapshot() runner.Snapshot {
	return h.snap
}

// Paused reports whether the host has suspended ticking.
func (h *Host) Paused() bool {
	return h.paused
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, h.snap, h.paused)
}

// Layout implements ebiten.Game. The logical screen is the field itself.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(h.snap.Field.Width), int(h.snap.Field.Height)
}

// Run opens the window and blocks until it is closed.
func Run(session *runner.Session, opts Options) error {
	h := NewHost(session, opts)

	w := int(h.snap.Field.Width * h.opts.Scale)
	hh := int(h.snap.Field.Height * h.opts.Scale)
	ebiten.SetWindowSize(w, hh)
	ebiten.SetWindowTitle("Neon Runner")
	ebiten.SetTPS(h.opts.TickRate)

	h.logger.Info("window opened", "width", w, "height", hh, "tps", h.opts.TickRate)
	err := ebiten.RunGame(h)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
