package runner

import (
	"testing"

	"github.com/vovakirdan/neon-runner/internal/config"
)

func TestBurstExpandsAndEnds(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Effects
	e := NewEffects(cfg)
	e.Burst(100, 240)

	v := e.View()
	if !v.BurstActive || v.BurstX != 100 || v.BurstY != 240 {
		t.Fatalf("burst not started: %+v", v)
	}

	e.Update()
	first := e.View().BurstRadius
	if first <= 0 {
		t.Errorf("radius after one tick = %v, expected growth", first)
	}

	for i := 0; i < cfg.BurstTicks; i++ {
		e.Update()
	}
	if e.View().BurstActive {
		t.Error("burst should finish after its duration")
	}
}

func TestFlashFades(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Effects
	e := NewEffects(cfg)
	e.Flash()

	if e.View().Flash != 1 {
		t.Errorf("Flash = %v right after start, expected 1", e.View().Flash)
	}
	e.Update()
	if lvl := e.View().Flash; lvl <= 0 || lvl >= 1 {
		t.Errorf("Flash = %v after one tick, expected between 0 and 1", lvl)
	}
	for i := 0; i < cfg.FlashTicks; i++ {
		e.Update()
	}
	if e.View().Flash != 0 {
		t.Errorf("Flash = %v after duration, expected 0", e.View().Flash)
	}
}

func TestDisabledEffects(t *testing.T) {
	e := NewEffects(config.EffectsConfig{})
	e.Burst(1, 1)
	e.Flash()
	e.Update()

	if v := e.View(); v.BurstActive || v.Flash != 0 {
		t.Errorf("zero-length effects should not start: %+v", v)
	}
}
