// Package runner implements an endless runner: the player auto-scrolls along
// a flat ground, jumps (and double jumps) over spawned obstacles, and scores
// one point per tick until a collision ends the run.
package runner

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Phase is the state of the session's state machine.
type Phase int

const (
	PhaseStart    Phase = iota // Waiting for the first jump
	PhasePlaying               // Simulation running
	PhaseGameOver              // Frozen until restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a discrete input delivered to Step.
type Event int

const (
	EventJumpPressed Event = iota + 1
	EventRestartPressed
)

// Options carries a session's collaborators.
type Options struct {
	Seed   int64          // RNG seed for obstacle sizes and spawn jitter
	Store  HighScoreStore // Optional; nil disables persistence
	Logger *log.Logger    // Optional; nil discards logs
}

// Session owns one player, the obstacle list and the run counters, and
// advances them one tick per Step. It is not safe for concurrent use.
type Session struct {
	cfg   config.RunnerConfig
	phase Phase

	player    *Player
	obstacles []Obstacle
	run       RunState
	newBest   bool

	spawner    *Spawner
	controller *Controller
	effects    *Effects

	store  HighScoreStore
	logger *log.Logger
}

// NewSession creates a session in the start phase. The high score is read
// from the store once; a missing or unreadable value counts as zero.
func NewSession(cfg config.RunnerConfig, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	s := &Session{
		cfg:        cfg,
		phase:      PhaseStart,
		player:     NewPlayer(cfg.Player, cfg.Physics, cfg.Field.GroundY),
		obstacles:  make([]Obstacle, 0, 8),
		spawner:    NewSpawner(cfg.Obstacles, rng),
		controller: NewController(cfg, rng),
		effects:    NewEffects(cfg.Effects),
		store:      opts.Store,
		logger:     logger,
	}
	s.run = s.controller.InitialState(s.loadHighScore())
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Step applies the events in order, then advances the simulation by one
// tick if a run is in progress.
func (s *Session) Step(events []Event) Snapshot {
	for _, ev := range events {
		s.handle(ev)
	}

	if s.phase == PhasePlaying {
		s.tick()
	}

	return s.Snapshot()
}

// Reset returns the session to the start phase without touching the high score.
func (s *Session) Reset() {
	s.resetRun()
	s.effects.Clear()
	s.phase = PhaseStart
}

func (s *Session) handle(ev Event) {
	switch s.phase {
	case PhaseStart:
		// Starting a run does not jump; the player begins on the ground.
		if ev == EventJumpPressed {
			s.startRun()
		}
	case PhasePlaying:
		if ev == EventJumpPressed {
			s.player.Jump()
		}
	case PhaseGameOver:
		if ev == EventRestartPressed {
			s.startRun()
		}
	}
}

func (s *Session) startRun() {
	s.resetRun()
	s.phase = PhasePlaying
	s.effects.Burst(s.player.X, s.player.Y)
	s.logger.Debug("run started", "high_score", s.run.HighScore)
}

func (s *Session) resetRun() {
	s.controller.NewRun(&s.run)
	s.newBest = false
	s.obstacles = s.obstacles[:0]
	s.player.Reset(s.player.StartPosition(s.cfg.Player.X))
}

// tick runs one playing tick: difficulty, spawning, obstacles and
// collisions, then player physics.
func (s *Session) tick() {
	res := s.controller.Tick(&s.run)
	if res.Milestone {
		s.effects.Flash()
		s.logger.Info("milestone reached", "score", s.run.Score, "environment", s.run.EnvironmentIndex)
	}
	if res.SpawnDue {
		s.obstacles = append(s.obstacles, s.spawner.Spawn(s.run.Score, s.cfg.Field.Width, s.cfg.Field.GroundY))
		s.controller.ResetSpawnTimer(&s.run)
	}

	if s.updateObstacles() {
		s.endRun()
		return
	}

	s.player.ApplyGravity()
	s.player.Integrate()
	s.player.CheckGroundCollision(s.cfg.Field.GroundY)

	s.effects.Update()
}

// updateObstacles advances every obstacle, drops the ones that left the
// field and reports whether any of them hit the player. Obstacles after
// the one that hit are kept as they were.
func (s *Session) updateObstacles() bool {
	playerBox := s.player.BoundingBox()
	speed := s.run.ObstacleSpeed

	kept := make([]Obstacle, 0, len(s.obstacles))
	for i, o := range s.obstacles {
		o.Advance(speed)
		if o.IsOffscreen() {
			continue
		}
		kept = append(kept, o)

		if core.Overlaps(playerBox, o.BoundingBox()) {
			kept = append(kept, s.obstacles[i+1:]...)
			s.obstacles = kept
			return true
		}
	}
	s.obstacles = kept
	return false
}

func (s *Session) endRun() {
	s.phase = PhaseGameOver

	if s.run.Score > s.run.HighScore {
		s.run.HighScore = s.run.Score
		s.newBest = true
		s.saveHighScore()
	}
	s.logger.Info("game over",
		"score", s.run.Score,
		"high_score", s.run.HighScore,
		"environment", s.run.EnvironmentIndex,
	)
}

func (s *Session) loadHighScore() int {
	if s.store == nil {
		return 0
	}
	v, ok, err := s.store.Get(HighScoreKey)
	if err != nil {
		s.logger.Warn("could not read high score", "error", err)
		return 0
	}
	if !ok || v < 0 {
		return 0
	}
	return v
}

func (s *Session) saveHighScore() {
	if s.store == nil {
		return
	}
	if err := s.store.Set(HighScoreKey, s.run.HighScore); err != nil {
		s.logger.Warn("could not save high score", "score", s.run.HighScore, "error", err)
	}
}
