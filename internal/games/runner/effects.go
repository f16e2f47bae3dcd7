package runner

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/neon-runner/internal/config"
)

// Effects drives cosmetic animations. Nothing in the simulation reads it.
type Effects struct {
	cfg config.EffectsConfig

	burst       *gween.Tween
	burstX      float64
	burstY      float64
	burstRadius float32

	flash      *gween.Tween
	flashLevel float32
}

// EffectsView is the renderer's read-only copy of the effect state.
type EffectsView struct {
	BurstActive bool
	BurstX      float64
	BurstY      float64
	BurstRadius float64
	BurstFade   float64 // 1 at the start of the burst, 0 at the end

	Flash float64 // 1 right after a milestone, fading to 0
}

// NewEffects creates an idle effects driver.
func NewEffects(cfg config.EffectsConfig) *Effects {
	return &Effects{cfg: cfg}
}

// Burst starts an expanding ring at (x, y).
func (e *Effects) Burst(x, y float64) {
	if e.cfg.BurstTicks <= 0 {
		return
	}
	e.burstX, e.burstY = x, y
	e.burstRadius = 0
	e.burst = gween.New(0, float32(e.cfg.BurstRadius), float32(e.cfg.BurstTicks), ease.OutQuad)
}

// Flash starts the milestone highlight.
func (e *Effects) Flash() {
	if e.cfg.FlashTicks <= 0 {
		return
	}
	e.flashLevel = 1
	e.flash = gween.New(1, 0, float32(e.cfg.FlashTicks), ease.Linear)
}

// Update advances running effects by one tick.
func (e *Effects) Update() {
	if e.burst != nil {
		r, done := e.burst.Update(1)
		e.burstRadius = r
		if done {
			e.burst = nil
		}
	}
	if e.flash != nil {
		level, done := e.flash.Update(1)
		e.flashLevel = level
		if done {
			e.flash = nil
			e.flashLevel = 0
		}
	}
}

// Clear stops all effects.
func (e *Effects) Clear() {
	e.burst = nil
	e.flash = nil
	e.burstRadius = 0
	e.flashLevel = 0
}

// View returns the current effect state.
func (e *Effects) View() EffectsView {
	v := EffectsView{Flash: float64(e.flashLevel)}
	if e.burst != nil {
		v.BurstActive = true
		v.BurstX = e.burstX
		v.BurstY = e.burstY
		v.BurstRadius = float64(e.burstRadius)
		if e.cfg.BurstRadius > 0 {
			v.BurstFade = 1 - v.BurstRadius/e.cfg.BurstRadius
		}
	}
	return v
}
