package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Spawner creates obstacles whose size depends on the current score.
// When to spawn is decided by the Controller's timer, not here.
type Spawner struct {
	cfg config.ObstacleConfig
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.ObstacleConfig, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// MinHeight returns the lowest obstacle height allowed at score.
// It rises with score until it reaches the configured cap.
func (s *Spawner) MinHeight(score int) float64 {
	return math.Min(s.cfg.MinHeightCap, s.cfg.MinHeightBase+float64(score)/s.cfg.MinHeightDivisor)
}

// Spawn creates an obstacle resting on groundY, fully past the right edge
// of a field fieldWidth wide.
func (s *Spawner) Spawn(score int, fieldWidth, groundY float64) Obstacle {
	height := s.uniform(s.MinHeight(score), s.cfg.MaxHeight)
	width := s.uniform(s.cfg.MinWidth, s.cfg.MaxWidth)

	return Obstacle{
		X:         fieldWidth + width,
		Y:         groundY - height,
		Width:     width,
		Height:    height,
		ColorSeed: s.rng.Intn(core.PaletteSize()),
	}
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
