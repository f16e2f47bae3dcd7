package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI value onto a preset. Empty means "use the config as is".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch name {
	case "":
		return "", nil
	case "easy":
		return DifficultyEasy, nil
	case "normal":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched. No preset lowers the spawn
// interval floor.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Start *= 0.8
		cfg.Speed.Increase *= 0.5
		cfg.Spawn.BaseInterval += 15
		cfg.Spawn.MinInterval += 10
	case DifficultyHard:
		cfg.Speed.Start *= 1.25
		cfg.Speed.Increase *= 1.5
		cfg.Spawn.BaseInterval = max(cfg.Spawn.MinInterval, cfg.Spawn.BaseInterval-15)
	}
}
