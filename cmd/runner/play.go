package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/games/runner"
	"github.com/vovakirdan/neon-runner/internal/platform/tui"
)

var flagFrameRate int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Space/Up   - Jump (press again in the air to double jump)
  R/Enter    - Restart (after game over)
  P/Esc      - Pause
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start, gentler ramp, sparser obstacles
  normal - Default tuning
  hard   - Faster start, steeper ramp, denser obstacles

Examples:
  runner play
  runner play --difficulty hard
  runner play --seed 42 --store gdata
  runner play --config ./my-runner.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFrameRate, "frame-rate", 0, "Redraw rate (0 = same as --fps)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	a, err := newApp("runner")
	if err != nil {
		return err
	}
	defer a.Close()

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	return playTerminal(a, cfg, runtimeConfig())
}

// playTerminal runs one terminal session until the player quits.
func playTerminal(a *app, cfg config.RunnerConfig, rt core.RuntimeConfig) error {
	game := runner.New(cfg, a.scores, a.logger)

	a.logger.Info("terminal session started", "seed", rt.Seed, "tick_rate", rt.TickRate, "store", flagStore)
	err := tui.Run(game, tui.Options{
		Runtime:   rt,
		FrameRate: flagFrameRate,
		History:   a.runHistory(),
		Logger:    a.logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	a.logger.Info("terminal session ended", "high_score", game.Snapshot().HighScore)
	return nil
}
