package runner

import (
	"math"

	"github.com/vovakirdan/neon-runner/internal/config"
)

// PlayerView is a read-only copy of the player for renderers.
type PlayerView struct {
	X, Y      float64 // Centre
	Width     float64
	Height    float64
	VY        float64
	Grounded  bool
	JumpsUsed int
}

// Snapshot captures everything a renderer needs after a tick. It shares no
// memory with the session, so holding on to it is safe.
type Snapshot struct {
	Phase     Phase
	Player    PlayerView
	Obstacles []Obstacle

	Score            int
	HighScore        int
	EnvironmentIndex int
	ObstacleSpeed    float64
	Distance         float64
	Tick             int
	NewBest          bool // The finished run beat the previous high score

	Effects EffectsView
	Field   config.FieldConfig
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.obstacles))
	copy(obstacles, s.obstacles)

	return Snapshot{
		Phase: s.phase,
		Player: PlayerView{
			X:         s.player.X,
			Y:         s.player.Y,
			Width:     s.player.Width,
			Height:    s.player.Height,
			VY:        s.player.VY,
			Grounded:  s.player.Grounded,
			JumpsUsed: s.player.JumpsUsed,
		},
		Obstacles:        obstacles,
		Score:            s.run.Score,
		HighScore:        s.run.HighScore,
		EnvironmentIndex: s.run.EnvironmentIndex,
		ObstacleSpeed:    s.run.ObstacleSpeed,
		Distance:         s.run.Distance,
		Tick:             s.run.Tick,
		NewBest:          s.newBest,
		Effects:          s.effects.View(),
		Field:            s.cfg.Field,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnvironmentIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.JumpsUsed) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Player.Y)
	h = h*31 + math.Float64bits(snap.Player.VY)
	h = h*31 + math.Float64bits(snap.ObstacleSpeed)

	for _, o := range snap.Obstacles {
		h = h*31 + math.Float64bits(o.X)
		h = h*31 + math.Float64bits(o.Y)
		h = h*31 + math.Float64bits(o.Width)
		h = h*31 + uint64(o.ColorSeed) //#nosec G115 -- hash computation
	}

	return h
}
