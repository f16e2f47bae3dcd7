// Package config provides YAML/TOML runner configuration loading,
// validation and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains every tunable constant of the runner simulation.
// Distances are in field units (pixels of the logical play field) and rates
// are per tick.
type RunnerConfig struct {
	Field      FieldConfig     `yaml:"field" toml:"field"`
	Player     PlayerConfig    `yaml:"player" toml:"player"`
	Physics    PhysicsConfig   `yaml:"physics" toml:"physics"`
	Speed      SpeedConfig     `yaml:"speed" toml:"speed"`
	Obstacles  ObstacleConfig  `yaml:"obstacles" toml:"obstacles"`
	Spawn      SpawnConfig     `yaml:"spawn" toml:"spawn"`
	Milestones MilestoneConfig `yaml:"milestones" toml:"milestones"`
	Effects    EffectsConfig   `yaml:"effects" toml:"effects"`
}

// FieldConfig defines the logical play field.
type FieldConfig struct {
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
	GroundY float64 `yaml:"ground_y" toml:"ground_y"` // y of the ground line, grows downward
}

// PlayerConfig defines the player's fixed column and hitbox.
type PlayerConfig struct {
	X      float64 `yaml:"x" toml:"x"` // centre x, the player never moves horizontally
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PhysicsConfig defines gravity and jump impulses (negative = up).
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity" toml:"gravity"`
	JumpForce       float64 `yaml:"jump_force" toml:"jump_force"`
	DoubleJumpForce float64 `yaml:"double_jump_force" toml:"double_jump_force"`
}

// SpeedConfig defines obstacle scroll speed and its per-tick ramp.
type SpeedConfig struct {
	Start    float64 `yaml:"start" toml:"start"`
	Increase float64 `yaml:"increase" toml:"increase"`
}

// ObstacleConfig defines spawned obstacle dimensions.
// The minimum height rises with score:
// min(MinHeightCap, MinHeightBase + score/MinHeightDivisor).
type ObstacleConfig struct {
	MinWidth         float64 `yaml:"min_width" toml:"min_width"`
	MaxWidth         float64 `yaml:"max_width" toml:"max_width"`
	MaxHeight        float64 `yaml:"max_height" toml:"max_height"`
	MinHeightBase    float64 `yaml:"min_height_base" toml:"min_height_base"`
	MinHeightDivisor float64 `yaml:"min_height_divisor" toml:"min_height_divisor"`
	MinHeightCap     float64 `yaml:"min_height_cap" toml:"min_height_cap"`
}

// SpawnConfig defines the spawn timer.
// Interval per tick is max(MinInterval, BaseInterval - score/ScoreDivisor),
// and each reset of the timer draws from interval*(1±Jitter).
type SpawnConfig struct {
	InitialInterval float64 `yaml:"initial_interval" toml:"initial_interval"`
	BaseInterval    float64 `yaml:"base_interval" toml:"base_interval"`
	ScoreDivisor    float64 `yaml:"score_divisor" toml:"score_divisor"`
	MinInterval     float64 `yaml:"min_interval" toml:"min_interval"`
	Jitter          float64 `yaml:"jitter" toml:"jitter"`

	// ResetToInitial makes a new run start its spawn timer from
	// InitialInterval instead of the interval the previous run ended on.
	ResetToInitial bool `yaml:"reset_to_initial" toml:"reset_to_initial"`
}

// MilestoneConfig defines the score step between environment changes.
type MilestoneConfig struct {
	Step int `yaml:"step" toml:"step"`
}

// EffectsConfig defines cosmetic effect timings, in ticks.
type EffectsConfig struct {
	BurstTicks  int     `yaml:"burst_ticks" toml:"burst_ticks"`
	BurstRadius float64 `yaml:"burst_radius" toml:"burst_radius"`
	FlashTicks  int     `yaml:"flash_ticks" toml:"flash_ticks"`
}

// MinSpawnInterval is the lowest spawn interval floor a config may set.
const MinSpawnInterval = 40

// Validate checks the configuration for values the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Field.GroundY <= 0 || c.Field.GroundY > c.Field.Height {
		errs = append(errs, fmt.Errorf("field.ground_y must be within (0, %v], got %v", c.Field.Height, c.Field.GroundY))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpForce >= 0 || c.Physics.DoubleJumpForce >= 0 {
		errs = append(errs, fmt.Errorf("jump forces must be negative (upward), got %v and %v",
			c.Physics.JumpForce, c.Physics.DoubleJumpForce))
	}
	if c.Physics.DoubleJumpForce <= c.Physics.JumpForce {
		errs = append(errs, fmt.Errorf("physics.double_jump_force (%v) must be weaker than jump_force (%v)",
			c.Physics.DoubleJumpForce, c.Physics.JumpForce))
	}
	if c.Obstacles.MinWidth <= 0 || c.Obstacles.MaxWidth < c.Obstacles.MinWidth {
		errs = append(errs, fmt.Errorf("obstacle width range [%v, %v] is invalid", c.Obstacles.MinWidth, c.Obstacles.MaxWidth))
	}
	if c.Obstacles.MinHeightBase <= 0 || c.Obstacles.MinHeightCap > c.Obstacles.MaxHeight {
		errs = append(errs, fmt.Errorf("obstacle height range [%v, %v] is invalid", c.Obstacles.MinHeightBase, c.Obstacles.MaxHeight))
	}
	if c.Obstacles.MinHeightDivisor <= 0 {
		errs = append(errs, errors.New("obstacles.min_height_divisor must be positive"))
	}
	if c.Spawn.MinInterval < MinSpawnInterval {
		errs = append(errs, fmt.Errorf("spawn.min_interval must be at least %d, got %v", MinSpawnInterval, c.Spawn.MinInterval))
	}
	if c.Spawn.BaseInterval < c.Spawn.MinInterval {
		errs = append(errs, fmt.Errorf("spawn interval range [%v, %v] is invalid", c.Spawn.MinInterval, c.Spawn.BaseInterval))
	}
	if c.Spawn.InitialInterval <= 0 {
		errs = append(errs, errors.New("spawn.initial_interval must be positive"))
	}
	if c.Spawn.ScoreDivisor <= 0 {
		errs = append(errs, errors.New("spawn.score_divisor must be positive"))
	}
	if c.Spawn.Jitter < 0 || c.Spawn.Jitter >= 1 {
		errs = append(errs, fmt.Errorf("spawn.jitter must be within [0, 1), got %v", c.Spawn.Jitter))
	}
	if c.Milestones.Step <= 0 {
		errs = append(errs, errors.New("milestones.step must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
