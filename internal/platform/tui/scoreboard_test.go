package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-runner/internal/storage"
)

type fakeRuns struct {
	runs []storage.RunRecord
	err  error
}

func (f fakeRuns) TopRuns(limit int) ([]storage.RunRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.runs) > limit {
		return f.runs[:limit], nil
	}
	return f.runs, nil
}

func (f fakeRuns) Stats() (*storage.RunStats, error) {
	return &storage.RunStats{Runs: len(f.runs), BestScore: 420, AvgScore: 300}, nil
}

func TestScoreboardShowsRuns(t *testing.T) {
	src := fakeRuns{runs: []storage.RunRecord{
		{ID: 1, Score: 420, Environment: 4, Ticks: 420, NewBest: true, CreatedAt: time.Now()},
		{ID: 2, Score: 180, Environment: 1, Ticks: 180, CreatedAt: time.Now()},
	}}
	m := NewScoreboardModel(src, 100, 30)
	out := m.View()

	for _, want := range []string{"BEST RUNS", "420", "180", "runs 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("scoreboard view missing %q", want)
		}
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	if out := NewScoreboardModel(fakeRuns{}, 80, 24).View(); !strings.Contains(out, "No runs recorded yet") {
		t.Error("empty history should show a hint")
	}
	if out := NewScoreboardModel(nil, 80, 24).View(); !strings.Contains(out, "No runs recorded yet") {
		t.Error("missing store should behave like empty history")
	}

	out := NewScoreboardModel(fakeRuns{err: errors.New("locked")}, 80, 24).View()
	if !strings.Contains(out, "locked") {
		t.Error("load error should be shown")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(fakeRuns{}, 80, 24)
	next, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestFormatTicks(t *testing.T) {
	tests := map[int]string{0: "0:00", 60: "0:01", 3600: "1:00", 3690: "1:01"}
	for ticks, want := range tests {
		if got := formatTicks(ticks); got != want {
			t.Errorf("formatTicks(%d) = %q, expected %q", ticks, got, want)
		}
	}
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(testOptions().Runtime, 99)
	if !strings.Contains(m.View(), "Best: 99") {
		t.Error("menu should show the high score")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting should quit the menu program")
	}

	chosen := next.(MenuModel).Chosen()
	if chosen.Choice != MenuChoicePlay || chosen.Preset != "easy" {
		t.Errorf("Chosen() = %+v, expected easy run", chosen)
	}
}
