package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// jumpEvery returns n input frames with a jump on every period-th frame.
func jumpEvery(n, period int) []core.InputFrame {
	frames := make([]core.InputFrame, n)
	for i := range frames {
		frames[i] = core.NewInputFrame()
		if i%period == 0 {
			frames[i].Set(core.ActionJump)
		}
	}
	return frames
}

func playFrames(seed int64, frames []core.InputFrame) Snapshot {
	g := New(config.DefaultRunnerConfig(), nil, nil)
	g.Reset(testRuntime(seed))
	for _, in := range frames {
		g.Step(in)
	}
	return g.Snapshot()
}

func TestGameDeterminism(t *testing.T) {
	frames := jumpEvery(600, 37)

	snap1 := playFrames(12345, frames)
	snap2 := playFrames(12345, frames)

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Phase != snap2.Phase {
		t.Errorf("Determinism failed: score %d/%d phase %v/%v", snap1.Score, snap2.Score, snap1.Phase, snap2.Phase)
	}
}

func TestSeedChangesObstacles(t *testing.T) {
	frames := jumpEvery(95, 1000)

	a := playFrames(1, frames)
	b := playFrames(2, frames)
	if len(a.Obstacles) == 0 || len(b.Obstacles) == 0 {
		t.Fatal("expected an obstacle after the first spawn interval")
	}
	if a.Obstacles[0] == b.Obstacles[0] {
		t.Error("different seeds produced identical obstacles")
	}
}

func TestEventsFromInputKeepsOrder(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	in.Set(core.ActionPause)
	in.Set(core.ActionJump)
	in.Set(core.ActionJump)

	got := EventsFromInput(in)
	want := []Event{EventRestartPressed, EventJumpPressed, EventJumpPressed}
	if len(got) != len(want) {
		t.Fatalf("EventsFromInput() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, expected %v", i, got[i], want[i])
		}
	}

	if EventsFromInput(core.NewInputFrame()) != nil {
		t.Error("empty frame should map to no events")
	}
}

func TestGameState(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), nil, nil)
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	res := g.Step(in)

	if res.State.Score != 1 || res.State.GameOver {
		t.Errorf("State = %+v, expected score 1 and running", res.State)
	}
	if g.ID() != "runner" || g.Title() == "" {
		t.Errorf("unexpected identity %q / %q", g.ID(), g.Title())
	}
}

func TestRenderStartScreen(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), nil, nil)
	g.Reset(testRuntime(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row missing score: %q", screen.Row(0))
	}
	if !strings.Contains(out, "NEON RUNNER") {
		t.Error("start screen should show the title")
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player not drawn")
	}
}

func TestRenderGameOver(t *testing.T) {
	s := NewSession(steadyConfig(), Options{Seed: 1})
	s.Step(jump())
	s.obstacles = []Obstacle{{X: 110, Y: 230, Width: 30, Height: 30}}
	snap := s.Step(nil)

	screen := core.NewScreen(80, 24)
	RenderSnapshot(screen, snap)
	out := screen.String()

	if !strings.Contains(out, "NEW HIGH SCORE!") {
		t.Error("first finished run should show the new high score banner")
	}
	if !strings.ContainsRune(out, ObstacleChar) {
		t.Error("obstacle not drawn on the frozen frame")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), nil, nil)
	g.Reset(testRuntime(1))

	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 3}} {
		screen := core.NewScreen(size[0], size[1])
		g.Render(screen)
	}
}

func TestThemeForWraps(t *testing.T) {
	if ThemeFor(0).Name != ThemeFor(len(themes)).Name {
		t.Error("themes should cycle")
	}
	if ThemeFor(-3).Name != ThemeFor(0).Name {
		t.Error("negative index should fall back to the first theme")
	}
	for i := 0; i < 100; i++ {
		if h := SkylineHeight(i); h < 0 || h >= 1 {
			t.Fatalf("SkylineHeight(%d) = %v outside [0, 1)", i, h)
		}
	}
}
