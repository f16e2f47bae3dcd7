package tui

import (
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

// Game is a simulation the terminal host can drive.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// RunRecorder stores finished runs.
type RunRecorder interface {
	SaveRun(r storage.RunRecord) (int64, error)
}
