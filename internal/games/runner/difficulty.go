package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-runner/internal/config"
)

// RunState holds the score and difficulty counters of a session.
type RunState struct {
	Score     int // +1 per playing tick, 0 on a new run
	HighScore int // Best score seen, persisted by the session

	ObstacleSpeed float64 // Field units per tick, grows every tick
	SpawnInterval float64 // Ticks between spawns, shrinks to a floor
	SpawnTimer    float64 // Countdown to the next spawn

	EnvironmentIndex int // Bumped at each milestone
	NextMilestone    int // Score that triggers the next environment

	Distance float64 // Total scroll this run, for parallax
	Tick     int     // Playing ticks this run
}

// TickResult reports what happened during one controller tick.
type TickResult struct {
	SpawnDue  bool // The spawn timer ran out; spawn, then call ResetSpawnTimer
	Milestone bool // EnvironmentIndex changed this tick
}

// Controller ramps score, speed and spawn cadence while a run is playing.
type Controller struct {
	speed      config.SpeedConfig
	spawn      config.SpawnConfig
	milestones config.MilestoneConfig
	rng        *rand.Rand
}

// NewController creates a controller drawing spawn jitter from rng.
func NewController(cfg config.RunnerConfig, rng *rand.Rand) *Controller {
	return &Controller{
		speed:      cfg.Speed,
		spawn:      cfg.Spawn,
		milestones: cfg.Milestones,
		rng:        rng,
	}
}

// SpawnInterval returns the spawn interval for score, never below the floor.
func (c *Controller) SpawnInterval(score int) float64 {
	return math.Max(c.spawn.MinInterval, c.spawn.BaseInterval-float64(score)/c.spawn.ScoreDivisor)
}

// Tick advances the run state by one playing tick.
func (c *Controller) Tick(rs *RunState) TickResult {
	var res TickResult

	rs.Score++
	rs.ObstacleSpeed += c.speed.Increase
	rs.SpawnInterval = c.SpawnInterval(rs.Score)
	rs.Distance += rs.ObstacleSpeed
	rs.Tick++

	// One environment step per tick at most.
	if rs.Score >= rs.NextMilestone {
		rs.EnvironmentIndex++
		rs.NextMilestone += c.milestones.Step
		res.Milestone = true
	}

	rs.SpawnTimer--
	if rs.SpawnTimer <= 0 {
		res.SpawnDue = true
	}
	return res
}

// ResetSpawnTimer draws the next countdown from interval*(1±jitter).
func (c *Controller) ResetSpawnTimer(rs *RunState) {
	lo := rs.SpawnInterval * (1 - c.spawn.Jitter)
	hi := rs.SpawnInterval * (1 + c.spawn.Jitter)
	rs.SpawnTimer = lo + c.rng.Float64()*(hi-lo)
}

// NewRun resets the per-run counters. HighScore and SpawnInterval carry
// over; the spawn timer starts from the previous interval unless the
// config asks for the initial one.
func (c *Controller) NewRun(rs *RunState) {
	rs.Score = 0
	rs.EnvironmentIndex = 0
	rs.NextMilestone = c.milestones.Step
	rs.ObstacleSpeed = c.speed.Start
	rs.Distance = 0
	rs.Tick = 0

	if c.spawn.ResetToInitial {
		rs.SpawnInterval = c.spawn.InitialInterval
		rs.SpawnTimer = c.spawn.InitialInterval
	} else {
		rs.SpawnTimer = rs.SpawnInterval
	}
}

// InitialState returns the run state of a fresh session.
func (c *Controller) InitialState(highScore int) RunState {
	return RunState{
		HighScore:     highScore,
		ObstacleSpeed: c.speed.Start,
		SpawnInterval: c.spawn.InitialInterval,
		SpawnTimer:    c.spawn.InitialInterval,
		NextMilestone: c.milestones.Step,
	}
}
