package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultRunnerYAML, FormatYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded defaults drifted from DefaultRunnerConfig():\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("DefaultRunnerConfig() is invalid: %v", err)
	}
}

func TestLoadRunnerCustomYAMLOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fast.yaml")
	data := "speed:\n  start: 9\nmilestones:\n  step: 250\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Speed.Start != 9 {
		t.Errorf("Speed.Start = %v, expected 9", cfg.Speed.Start)
	}
	if cfg.Milestones.Step != 250 {
		t.Errorf("Milestones.Step = %d, expected 250", cfg.Milestones.Step)
	}
	if cfg.Physics.JumpForce != DefaultRunnerConfig().Physics.JumpForce {
		t.Errorf("unset keys should keep defaults, JumpForce = %v", cfg.Physics.JumpForce)
	}
}

func TestLoadRunnerCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.toml")
	data := "[physics]\njump_force = -12.5\n\n[spawn]\nreset_to_initial = true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Physics.JumpForce != -12.5 {
		t.Errorf("JumpForce = %v, expected -12.5", cfg.Physics.JumpForce)
	}
	if !cfg.Spawn.ResetToInitial {
		t.Error("ResetToInitial should be true")
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("error should carry the package prefix, got %q", err)
	}
}

func TestLoadRunnerRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "spawn:\n  min_interval: 0\nmilestones:\n  step: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadRunner(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "milestones.step") {
		t.Errorf("error should mention milestones.step, got %q", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero field", func(c *RunnerConfig) { c.Field.Width = 0 }},
		{"ground below field", func(c *RunnerConfig) { c.Field.GroundY = c.Field.Height + 1 }},
		{"inverted width range", func(c *RunnerConfig) { c.Obstacles.MaxWidth = c.Obstacles.MinWidth - 1 }},
		{"height cap above max", func(c *RunnerConfig) { c.Obstacles.MinHeightCap = c.Obstacles.MaxHeight + 1 }},
		{"jitter of one", func(c *RunnerConfig) { c.Spawn.Jitter = 1 }},
		{"base below floor", func(c *RunnerConfig) { c.Spawn.BaseInterval = c.Spawn.MinInterval - 1 }},
		{"floor below minimum", func(c *RunnerConfig) { c.Spawn.MinInterval = MinSpawnInterval - 5 }},
		{"zero gravity", func(c *RunnerConfig) { c.Physics.Gravity = 0 }},
		{"negative gravity", func(c *RunnerConfig) { c.Physics.Gravity = -1 }},
		{"downward jump", func(c *RunnerConfig) { c.Physics.JumpForce = 11 }},
		{"downward double jump", func(c *RunnerConfig) { c.Physics.DoubleJumpForce = 0.5 }},
		{"double jump stronger", func(c *RunnerConfig) { c.Physics.DoubleJumpForce = c.Physics.JumpForce - 1 }},
		{"double jump equal", func(c *RunnerConfig) { c.Physics.DoubleJumpForce = c.Physics.JumpForce }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	base := DefaultRunnerConfig()

	easy := base
	ApplyRunnerPreset(&easy, DifficultyEasy)
	if easy.Speed.Start >= base.Speed.Start || easy.Spawn.BaseInterval <= base.Spawn.BaseInterval {
		t.Errorf("easy should be slower with sparser spawns: %+v", easy.Speed)
	}

	hard := base
	ApplyRunnerPreset(&hard, DifficultyHard)
	if hard.Speed.Start <= base.Speed.Start || hard.Spawn.BaseInterval >= base.Spawn.BaseInterval {
		t.Errorf("hard should be faster with denser spawns: %+v", hard.Speed)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset on defaults should stay valid: %v", err)
	}

	normal := base
	ApplyRunnerPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}
}

func TestPresetsKeepSpawnFloor(t *testing.T) {
	for _, preset := range []DifficultyPreset{"", DifficultyEasy, DifficultyNormal, DifficultyHard} {
		t.Run(string(preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyRunnerPreset(&cfg, preset)
			if cfg.Spawn.MinInterval < MinSpawnInterval {
				t.Errorf("MinInterval = %v, expected at least %d", cfg.Spawn.MinInterval, MinSpawnInterval)
			}
			if cfg.Spawn.BaseInterval < cfg.Spawn.MinInterval {
				t.Errorf("BaseInterval %v below floor %v", cfg.Spawn.BaseInterval, cfg.Spawn.MinInterval)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config invalid: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestMarshalRoundTripKeepsKeys(t *testing.T) {
	data, err := Marshal(DefaultRunnerConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	for _, key := range []string{"ground_y", "double_jump_force", "reset_to_initial", "burst_ticks"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshalled config is missing %q", key)
		}
	}
}
