package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-runner/internal/platform/tui"
)

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := newApp("runner")
	if err != nil {
		return err
	}
	defer a.Close()

	rt := runtimeConfig()

	// Menu loop
	for {
		result, err := tui.RunMenu(rt, a.highScore())
		if err != nil {
			return err
		}
		rt = result.Config

		switch result.Item.Choice {
		case tui.MenuChoicePlay:
			cfg, err := loadConfig(result.Item.Preset)
			if err != nil {
				return err
			}
			if err := playTerminal(a, cfg, rt); err != nil {
				return err
			}
			// Fresh seed for the next run unless one was pinned.
			rt.Seed = runtimeConfig().Seed

		case tui.MenuChoiceScores:
			if err := tui.RunScoreboard(historySource(a), rt.ScreenW, rt.ScreenH); err != nil {
				return err
			}

		default:
			return nil
		}
	}
}

// historySource returns the run history for the scoreboard, nil when absent.
func historySource(a *app) tui.RunSource {
	if a.history == nil {
		return nil
	}
	return a.history
}
