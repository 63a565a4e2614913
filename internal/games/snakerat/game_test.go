package snakerat

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snake-rat/internal/config"
	"github.com/vovakirdan/snake-rat/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultSnakeRatConfig())
	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameEmptyFrameKeepsHeading(t *testing.T) {
	g := newTestGame(t, 1)

	res := g.Step(frame())

	if head := g.Snapshot().Head(); head != (Cell{10, 9}) {
		t.Errorf("head = %s, expected (10,9)", head)
	}
	if res.State.Ticks != 1 || res.State.GameOver {
		t.Errorf("state = %+v, expected 1 tick, alive", res.State)
	}
}

func TestGameDirectionalFrame(t *testing.T) {
	tests := []struct {
		action core.Action
		want   Cell
	}{
		{core.ActionUp, Cell{10, 9}},
		{core.ActionDown, Cell{10, 11}},
		{core.ActionLeft, Cell{9, 10}},
		{core.ActionRight, Cell{11, 10}},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			g := newTestGame(t, 1)
			g.Step(frame(tc.action))
			if head := g.Snapshot().Head(); head != tc.want {
				t.Errorf("head = %s, expected %s", head, tc.want)
			}
		})
	}
}

func TestGameRestartIgnoredWhileAlive(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(frame(core.ActionRight))

	res := g.Step(frame(core.ActionRestart))

	if res.Restarted {
		t.Error("restart should be ignored while alive")
	}
	if snap := g.Snapshot(); snap.Head() != (Cell{11, 10}) || snap.Timer != 1 {
		t.Errorf("world changed: head %s timer %d", snap.Head(), snap.Timer)
	}
}

func TestGameDeathAndRestart(t *testing.T) {
	g := newTestGame(t, 1)

	var res core.StepResult
	for i := 0; i < 11; i++ {
		res = g.Step(frame())
	}
	if !res.State.GameOver {
		t.Fatalf("expected death at the top wall, state %+v", res.State)
	}
	if res.State.Ticks != 11 {
		t.Errorf("ticks = %d, expected 11", res.State.Ticks)
	}

	res = g.Step(frame(core.ActionLeft))
	if res.State.Ticks != 11 || !res.State.GameOver {
		t.Errorf("dead snake should ignore moves, state %+v", res.State)
	}

	res = g.Step(frame(core.ActionRestart))
	if !res.Restarted {
		t.Fatal("restart after death should be reported")
	}
	if res.State != (core.GameState{}) {
		t.Errorf("state after restart = %+v, expected zero", res.State)
	}
	if head := g.Snapshot().Head(); head != (Cell{10, 10}) {
		t.Errorf("head = %s, expected (10,10)", head)
	}
}

func TestGameDeterministicWithSeed(t *testing.T) {
	cfg := config.DefaultSnakeRatConfig()
	cfg.Food.RandomStart = true

	run := func() []Cell {
		g := New(cfg)
		rc := core.DefaultConfig()
		rc.Seed = 99
		g.Reset(rc)

		var foods []Cell
		for i := 0; i < 200; i++ {
			g.Step(frame())
			if g.State().GameOver {
				g.Step(frame(core.ActionRestart))
			}
			foods = append(foods, g.Snapshot().Food)
		}
		return foods
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at step %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestGameStepWithoutReset(t *testing.T) {
	g := New(config.DefaultSnakeRatConfig())
	res := g.Step(frame())
	if res.State.Ticks != 1 {
		t.Errorf("ticks = %d, expected 1", res.State.Ticks)
	}
}

func TestGameDebugState(t *testing.T) {
	g := New(config.DefaultSnakeRatConfig())
	if got := g.DebugState(); got != "not started\n" {
		t.Errorf("DebugState() = %q", got)
	}
	g.Reset(core.DefaultConfig())
	got := g.DebugState()
	if !strings.Contains(got, "Head: (10,10)") || strings.Contains(got, "Invalid") {
		t.Errorf("DebugState() = %q", got)
	}
}

func runeAt(s *core.Screen, x, y int) string {
	return string([]rune(s.Row(y))[x])
}

func textAt(s *core.Screen, x, y, n int) string {
	return string([]rune(s.Row(y))[x : x+n])
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, 1)
	rc := core.DefaultConfig()
	scr := core.NewScreen(rc.ScreenW, rc.ScreenH)

	g.Render(scr)

	if row := scr.Row(0); !strings.HasPrefix(row, "┌─SNAKE-rat") {
		t.Errorf("row 0 = %q", row)
	}
	if got := runeAt(scr, 61, 21); got != "┘" {
		t.Errorf("bottom-right corner = %q", got)
	}
	if got := textAt(scr, 31, 11, 3); got != "SNK" {
		t.Errorf("snake cell = %q, expected SNK", got)
	}
	if got := textAt(scr, 37, 13, 3); got != "rat" {
		t.Errorf("rat cell = %q, expected rat", got)
	}
	if got := textAt(scr, 1, 1, 3); got != " . " {
		t.Errorf("empty cell = %q", got)
	}
	if c := scr.GetCell(32, 11); c.Color != core.ColorBrightGreen {
		t.Errorf("snake color = %v", c.Color)
	}
	if row := scr.Row(22); !strings.HasPrefix(row, "time: 0") || !strings.Contains(row, "points: 0") || !strings.Contains(row, "Press Q to quit") {
		t.Errorf("status row = %q", row)
	}
	if row := strings.TrimSpace(scr.Row(23)); row != "" {
		t.Errorf("restart prompt shown while alive: %q", row)
	}
}

func TestRenderDeadAndFed(t *testing.T) {
	rc := core.DefaultConfig()
	scr := core.NewScreen(rc.ScreenW, rc.ScreenH)

	dead := Snapshot{Snake: []Cell{{0, 0}}, Food: Cell{5, 5}, HasFood: true, Timer: 3, GridSize: GridSize}
	RenderSnapshot(scr, dead)
	if got := textAt(scr, 1, 1, 3); got != "DEA" {
		t.Errorf("dead cell = %q, expected DEA", got)
	}
	if row := scr.Row(23); !strings.HasPrefix(row, "The snake is dead! Press N to restart.") {
		t.Errorf("row 23 = %q", row)
	}

	scr.Clear()
	fed := Snapshot{Snake: []Cell{{1, 0}, {0, 0}}, Food: Cell{5, 5}, HasFood: true, Alive: true, Fed: true, Points: 1, GridSize: GridSize}
	RenderSnapshot(scr, fed)
	if got := textAt(scr, 4, 1, 3); got != "NAM" {
		t.Errorf("fed head = %q, expected NAM", got)
	}
	if !strings.Contains(scr.Row(22), "points: 1") {
		t.Errorf("status row = %q", scr.Row(22))
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 1)
	scr := core.NewScreen(40, 10)

	g.Render(scr)

	if !strings.Contains(scr.String(), "Window too small") {
		t.Errorf("expected the resize hint, got:\n%s", scr.String())
	}
	if strings.Contains(scr.String(), "SNK") {
		t.Error("board drawn on a screen that is too small")
	}
}
