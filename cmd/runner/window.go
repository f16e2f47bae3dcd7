//go:build !nowindow

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-runner/internal/games/runner"
	"github.com/vovakirdan/neon-runner/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Start a run in a desktop window",
	Long: `Open a desktop window and start a run there.

Controls:
  Space/Up/W - Jump (press again in the air to double jump)
  R/Enter    - Restart (after game over)
  P/Esc      - Pause
  Q          - Quit

Headless builds can leave this command out with -tags nowindow.

Examples:
  runner window
  runner window --scale 1.5 --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
	rootCmd.AddCommand(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) error {
	a, err := newApp("runner")
	if err != nil {
		return err
	}
	defer a.Close()

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	rt := runtimeConfig()
	session := runner.NewSession(cfg, runner.Options{
		Seed:   rt.Seed,
		Store:  a.scores,
		Logger: a.logger,
	})

	err = window.Run(session, window.Options{
		TickRate: rt.TickRate,
		Scale:    flagScale,
		History:  a.runHistory(),
		Logger:   a.logger,
	})
	if err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
