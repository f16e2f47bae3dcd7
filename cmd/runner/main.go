// runner is an endless runner for the terminal and the desktop.
//
// Usage:
//
//	runner                 - Main menu (pick a difficulty, view scores)
//	runner play            - Start a run in the terminal
//	runner window          - Start a run in a desktop window (not in -tags nowindow builds)
//	runner scores          - Show the best runs
//	runner config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Simulation tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible runs
//	--db <path>           - Run history database (default: ~/.runner/runs.db)
//	--store <backend>     - High score store: sqlite or gdata
//	--config <path>       - Custom config file (.yaml or .toml)
//	--difficulty <preset> - easy, normal or hard
//	--log-file <path>     - Log file (default: ~/.runner/logs/runner.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagStore      string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Neon Runner - an endless runner for your terminal",
	Long: `Neon Runner is an endless runner. Jump (and double jump) over the
obstacles, survive as long as you can, and beat your high score.

Available commands:
  play     - Start a run in the terminal
  window   - Start a run in a desktop window
  scores   - View the best runs
  config   - Print the effective configuration

Running without a command opens the main menu.

Examples:
  runner
  runner play --difficulty hard
  runner window --seed 42
  runner scores
  runner config --config ./fast.toml`,
	RunE:          runMenu,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Simulation tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storeSQLite, "High score store: sqlite or gdata")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.runner/logs/runner.log", "Log file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
