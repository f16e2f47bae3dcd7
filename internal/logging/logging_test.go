package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "runner.log")

	logger, closer, err := New(Options{File: path, Level: "debug", Prefix: "runner"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Debug("run started", "high_score", 12)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "run started") || !strings.Contains(out, "high_score=12") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.log")

	logger, closer, err := New(Options{File: path, Level: "warn"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	closer.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "quiet") {
		t.Error("info message passed a warn-level logger")
	}
	if !strings.Contains(string(data), "loud") {
		t.Error("warn message missing")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "chatty"}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestNewDiscardByDefault(t *testing.T) {
	logger, closer, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Error("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
