package taxi

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/taxi-rush/internal/config"
	"github.com/vovakirdan/taxi-rush/internal/core"
	"github.com/vovakirdan/taxi-rush/internal/games/taxi/sim"
	"github.com/vovakirdan/taxi-rush/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		Seed:       seed,
		PlayerName: "tester",
	}
}

func quietConfig() config.TaxiConfig {
	cfg := config.DefaultTaxiConfig()
	cfg.NPC.Count = 0
	return cfg
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Push(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"taxi", "delivery"} {
		g, err := registry.Create(id, registry.Env{})
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := New(sim.RoleTaxi, nil)
	g1.Reset(testRuntime(12345))
	g2 := New(sim.RoleTaxi, nil)
	g2.Reset(testRuntime(12345))

	for i := 0; i < 200; i++ {
		var in core.InputFrame
		switch {
		case i%5 == 0:
			in = frame(core.ActionDown, core.ActionDown)
		case i%11 == 0:
			in = frame(core.ActionRight, core.ActionInteract)
		case i == 50:
			in = frame(core.ActionRefuel)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestStepAppliesEveryQueuedMove(t *testing.T) {
	g := New(sim.RoleTaxi, nil).WithConfig(quietConfig())
	g.Reset(testRuntime(1))

	g.Step(frame(core.ActionDown, core.ActionDown, core.ActionDown))
	p := g.Session().Player()
	if p.Pos() != (sim.Position{X: 0, Y: 610}) {
		t.Errorf("position = %v, want (0,610)", p.Pos())
	}
	if p.Fuel() != 99.25 {
		t.Errorf("fuel = %v, want 99.25", p.Fuel())
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := New(sim.RoleTaxi, nil).WithConfig(quietConfig())
	g.Reset(testRuntime(1))

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	before := g.Snapshot()
	g.Step(frame(core.ActionDown))
	if after := g.Snapshot(); after != before {
		t.Error("paused game changed state")
	}
	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := New(sim.RoleDelivery, nil).WithConfig(quietConfig())
	g.Reset(testRuntime(3))

	g.Session().Player().AddScore(100)
	res := g.Step(core.InputFrame{})
	if !res.State.GameOver || !res.State.Won {
		t.Fatalf("state = %+v, want a win", res.State)
	}

	report := g.Report()
	if report.Outcome != "win" || report.Role != "delivery" || report.Score != 100 {
		t.Errorf("report = %+v", report)
	}

	g.Step(frame(core.ActionRestart))
	if g.State().GameOver || g.State().Score != 0 {
		t.Errorf("restart should begin a fresh round, state = %+v", g.State())
	}
}

func TestStepReturnsCues(t *testing.T) {
	g := New(sim.RoleTaxi, nil).WithConfig(quietConfig())
	g.Reset(testRuntime(1))

	// Pushing against the map edge at the spawn point is ignored.
	res := g.Step(frame(core.ActionUp, core.ActionLeft))
	if len(res.Cues) != 0 || res.State.Score != 0 || res.State.GameOver {
		t.Fatalf("edge moves: cues = %v, state = %+v", res.Cues, res.State)
	}

	// Down to y=600, then right until the car meets the building at x=40.
	res = g.Step(frame(
		core.ActionDown, core.ActionDown, core.ActionDown, core.ActionDown,
		core.ActionRight, core.ActionRight, core.ActionRight, core.ActionRight,
	))
	if len(res.Cues) != 1 || res.Cues[0] != core.CueCollision {
		t.Errorf("cues = %v, want one collision cue", res.Cues)
	}
	if res.State.Score != -4 {
		t.Errorf("score = %d, want -4", res.State.Score)
	}
}

func TestRenderPlacesPlayer(t *testing.T) {
	g := New(sim.RoleTaxi, nil).WithConfig(quietConfig())
	g.Reset(testRuntime(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// 80x24 centres the 36x19 map box at (22,3); the player starts in the
	// top-left map cell.
	cell := screen.GetCell(23, 4)
	if cell.Rune != '█' || cell.Color != core.ColorYellow {
		t.Errorf("player cell = %q/%v, want yellow block", cell.Rune, cell.Color)
	}
	if !strings.Contains(screen.Row(1), "Score=0") || !strings.Contains(screen.Row(1), "Time=3:00") {
		t.Errorf("HUD row = %q", screen.Row(1))
	}
	if got := screen.GetCell(25, 5).Rune; got != '▒' && got != '█' && got != '☺' {
		t.Errorf("cell (1,15) should be a building or an item, got %q", got)
	}
}

func TestRenderGameOver(t *testing.T) {
	g := New(sim.RoleTaxi, nil).WithConfig(quietConfig())
	g.Reset(testRuntime(1))
	g.Session().Player().SetFuel(0)
	g.Step(core.InputFrame{})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over! Your score: 0") {
		t.Errorf("missing game over text:\n%s", screen.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(sim.RoleTaxi, nil)
	g.Reset(testRuntime(1))

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Error("expected a size warning")
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{180, "3:00"},
		{179, "2:59"},
		{65, "1:05"},
		{0, "0:00"},
	}
	for _, tt := range tests {
		if got := formatClock(time.Duration(tt.secs) * time.Second); got != tt.want {
			t.Errorf("formatClock(%ds) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
