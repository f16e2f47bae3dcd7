package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/games/runner"
	"github.com/vovakirdan/neon-runner/internal/logging"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

// High score store backends.
const (
	storeSQLite = "sqlite"
	storeGdata  = "gdata"
)

// app bundles what every command needs.
type app struct {
	logger    *log.Logger
	logCloser io.Closer

	history *storage.Store        // Nil when the database could not be opened
	scores  runner.HighScoreStore // Nil disables high score persistence
}

// newApp sets up logging and storage from the global flags. Storage
// failures are logged and the game runs without persistence. The high score
// is read here once; every session of the process shares the cached value.
func newApp(prefix string) (*app, error) {
	logger, closer, err := logging.New(logging.Options{
		File:   flagLogFile,
		Level:  flagLogLevel,
		Prefix: prefix,
	})
	if err != nil {
		return nil, err
	}

	a := &app{logger: logger, logCloser: closer}

	if store, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "error", err)
	} else {
		a.history = store
	}

	var backend storage.KeyValue
	switch flagStore {
	case storeGdata:
		saves, err := storage.OpenSaveStore(storage.DefaultAppName)
		if err != nil {
			logger.Warn("could not open save data", "error", err)
		} else {
			backend = saves
		}
	case storeSQLite:
		if a.history != nil {
			backend = a.history
		}
	default:
		a.Close()
		return nil, fmt.Errorf("unknown store %q (want %s or %s)", flagStore, storeSQLite, storeGdata)
	}

	if backend != nil {
		cached := storage.NewCachedStore(backend)
		if _, _, err := cached.Get(runner.HighScoreKey); err != nil {
			logger.Warn("could not read high score", "error", err)
		}
		a.scores = cached
	}

	return a, nil
}

// Close releases storage and flushes the log file.
func (a *app) Close() {
	if a.history != nil {
		a.history.Close()
	}
	a.logCloser.Close()
}

// recorder is the run history as seen by the hosts.
type recorder interface {
	SaveRun(r storage.RunRecord) (int64, error)
}

// runHistory returns the history store, or a nil interface when absent.
func (a *app) runHistory() recorder {
	if a.history == nil {
		return nil
	}
	return a.history
}

// highScore returns the cached high score for display; failures count as 0.
func (a *app) highScore() int {
	if a.scores == nil {
		return 0
	}
	v, ok, err := a.scores.Get(runner.HighScoreKey)
	if err != nil || !ok {
		return 0
	}
	return v
}

// loadConfig loads the runner config and applies a difficulty preset.
// A non-empty preset overrides --difficulty.
func loadConfig(preset config.DifficultyPreset) (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}

	if preset == "" {
		preset, err = config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
	}
	config.ApplyRunnerPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runtimeConfig builds the host settings from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	if flagFPS > 0 {
		rt.TickRate = core.Clamp(flagFPS, 10, 240)
	}

	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return rt
}
