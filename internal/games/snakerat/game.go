package snakerat

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/snake-rat/internal/config"
	"github.com/vovakirdan/snake-rat/internal/core"
)

const (
	// GameID identifies snake-rat in score storage.
	GameID = "snakerat"
	// Title is the display name.
	Title = "SNAKE-rat"
)

// Game adapts the engine to the platform's Reset/Step/Render loop.
type Game struct {
	cfg    config.SnakeRatConfig
	engine *Engine
}

// New creates a game that will start from cfg on Reset.
func New(cfg config.SnakeRatConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return Title
}

// Reset starts a new game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	opts, err := OptionsFromConfig(g.cfg, rng)
	if err != nil {
		opts = DefaultOptions(rng)
	}
	g.engine = NewEngine(opts)
}

// Step processes one loop iteration.
//
// While alive, a directional action turns the snake and moves it; an empty
// frame moves it in the last direction. Restart is honoured only once the
// snake is dead, and a dead snake ignores everything else.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionRestart) {
		if g.engine.World().Alive() {
			return core.StepResult{State: g.State()}
		}
		g.engine.Restart()
		return core.StepResult{State: g.State(), Restarted: true}
	}

	if !g.engine.World().Alive() {
		return core.StepResult{State: g.State()}
	}

	g.engine.Advance(requestFrom(in))
	return core.StepResult{State: g.State()}
}

// requestFrom picks the heading carried by a frame, if any.
func requestFrom(in core.InputFrame) Request {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			dir, _ := DirectionFor(a)
			return Turn(dir)
		}
	}
	return Keep()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	w := g.engine.World()
	return core.GameState{
		Score:    w.Points(),
		Ticks:    w.Timer(),
		GameOver: !w.Alive(),
	}
}

// Snapshot returns a read-only copy of the world.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		g.Reset(core.DefaultConfig())
	}
	return g.engine.Snapshot()
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	if g.engine == nil {
		return "not started\n"
	}
	w := g.engine.World()
	snap := w.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "Timer: %d, Points: %d, Status: %s\n", snap.Timer, snap.Points, w.Status())
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", len(snap.Snake), snap.Direction)
	fmt.Fprintf(&b, "Head: %s, Food: %s\n", snap.Head(), snap.Food)
	if err := w.Validate(); err != nil {
		fmt.Fprintf(&b, "Invalid: %v\n", err)
	}
	return b.String()
}
