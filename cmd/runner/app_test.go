package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/games/runner"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

// useTempFlags points the storage and log flags at a temp dir for one test.
func useTempFlags(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	oldDB, oldStore, oldLog, oldLevel := flagDBPath, flagStore, flagLogFile, flagLogLevel
	t.Cleanup(func() {
		flagDBPath, flagStore, flagLogFile, flagLogLevel = oldDB, oldStore, oldLog, oldLevel
	})

	flagDBPath = filepath.Join(dir, "runs.db")
	flagStore = storeSQLite
	flagLogFile = filepath.Join(dir, "logs", "runner.log")
	flagLogLevel = "info"
	return dir
}

func TestNewAppReadsHighScoreOnce(t *testing.T) {
	useTempFlags(t)

	seed, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := seed.Set(runner.HighScoreKey, 300); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	a, err := newApp("test")
	if err != nil {
		t.Fatalf("newApp() failed: %v", err)
	}
	defer a.Close()

	if got := a.highScore(); got != 300 {
		t.Fatalf("highScore() = %d, expected 300", got)
	}

	// A later write by another handle is not seen: the value was read at start.
	if err := seed.Set(runner.HighScoreKey, 999); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	seed.Close()
	if got := a.highScore(); got != 300 {
		t.Errorf("highScore() = %d after an outside write, expected the cached 300", got)
	}

	s := runner.NewSession(mustLoadConfig(t), runner.Options{Store: a.scores})
	if got := s.Snapshot().HighScore; got != 300 {
		t.Errorf("session HighScore = %d, expected 300", got)
	}
}

func TestNewAppRejectsUnknownStore(t *testing.T) {
	useTempFlags(t)
	flagStore = "redis"

	if _, err := newApp("test"); err == nil {
		t.Fatal("newApp() should fail for an unknown store")
	}
}

func TestNewAppWithoutHistory(t *testing.T) {
	dir := useTempFlags(t)

	// A regular file where the database directory should be.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	flagDBPath = filepath.Join(blocker, "runs.db")

	a, err := newApp("test")
	if err != nil {
		t.Fatalf("newApp() should run without history, got %v", err)
	}
	defer a.Close()

	if a.history != nil || a.scores != nil {
		t.Error("expected no history and no score store")
	}
	if a.runHistory() != nil {
		t.Error("runHistory() should be a nil interface")
	}
	if historySource(a) != nil {
		t.Error("historySource() should be a nil interface")
	}
	if a.highScore() != 0 {
		t.Errorf("highScore() = %d, expected 0", a.highScore())
	}
}

func TestScoresCommandReturnsErrors(t *testing.T) {
	dir := useTempFlags(t)

	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	flagDBPath = filepath.Join(blocker, "runs.db")

	if err := runScores(scoresCmd, nil); err == nil {
		t.Error("runScores() should return the open error")
	}
}

func TestLoadConfigRejectsUnknownDifficulty(t *testing.T) {
	old := flagDifficulty
	t.Cleanup(func() { flagDifficulty = old })
	flagDifficulty = "nightmare"

	if _, err := loadConfig(""); err == nil {
		t.Error("loadConfig() should fail for an unknown difficulty")
	}
}

func mustLoadConfig(t *testing.T) config.RunnerConfig {
	t.Helper()
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	return cfg
}
