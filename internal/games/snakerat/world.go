package snakerat

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/snake-rat/internal/config"
)

// Status is the life state of the snake.
type Status int

const (
	StatusAlive Status = iota
	StatusDead
)

func (s Status) String() string {
	if s == StatusDead {
		return "dead"
	}
	return "alive"
}

// Options fixes the start condition of every game played with them.
type Options struct {
	Grid            Grid
	Start           Cell
	StartDirection  Direction
	StartFood       Cell
	RandomStartFood bool // Spawn the first rat instead of using StartFood
	MaxAttempts     int  // Rejection-sampling budget, 0 = default
	RNG             RNG
}

// DefaultOptions returns the classic opening: snake at (10,10) heading up,
// rat at (12,12) on a 20x20 field.
func DefaultOptions(rng RNG) Options {
	return Options{
		Grid:           DefaultGrid(),
		Start:          Cell{X: 10, Y: 10},
		StartDirection: DirUp,
		StartFood:      Cell{X: 12, Y: 12},
		RNG:            rng,
	}
}

// OptionsFromConfig builds options from a loaded configuration.
func OptionsFromConfig(cfg config.SnakeRatConfig, rng RNG) (Options, error) {
	dir, err := ParseDirection(cfg.Start.Direction)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Grid:            Grid{Size: cfg.Grid.Size},
		Start:           Cell{X: cfg.Start.X, Y: cfg.Start.Y},
		StartDirection:  dir,
		StartFood:       Cell{X: cfg.Food.StartX, Y: cfg.Food.StartY},
		RandomStartFood: cfg.Food.RandomStart,
		MaxAttempts:     cfg.Food.MaxAttempts,
		RNG:             rng,
	}, nil
}

// World is the whole game state. It is a value: Advance and Restart return
// the next world and leave the receiver untouched. Worlds derived from the
// same NewWorld call share one RNG stream.
type World struct {
	opts    Options
	spawner *Spawner

	body      Body
	food      Cell
	hasFood   bool
	direction Direction
	status    Status
	points    int
	timer     int
	fed       bool // The last tick ate the rat
}

// NewWorld returns the start state for opts. A nil RNG is replaced by a
// fixed-seed source.
func NewWorld(opts Options) World {
	if opts.RNG == nil {
		opts.RNG = rand.New(rand.NewSource(1))
	}
	if opts.Grid.Size <= 0 {
		opts.Grid = DefaultGrid()
	}
	if !opts.Grid.InBounds(opts.Start) {
		opts.Start = Cell{X: opts.Grid.Size / 2, Y: opts.Grid.Size / 2}
	}

	w := World{
		opts:      opts,
		spawner:   NewSpawner(opts.Grid, opts.RNG, opts.MaxAttempts),
		body:      NewBody(opts.Start),
		direction: opts.StartDirection,
		status:    StatusAlive,
	}

	if !opts.RandomStartFood && opts.Grid.InBounds(opts.StartFood) && !w.body.Occupies(opts.StartFood) {
		w.food, w.hasFood = opts.StartFood, true
	} else {
		w.food, w.hasFood = w.spawner.Spawn(w.body)
	}
	return w
}

// Advance moves the world forward by one tick.
//
// A dead world is returned unchanged. Otherwise the requested heading (if
// any) is adopted, the timer counts the tick, and the head moves one cell.
// Leaving the grid or entering a cell of the pre-move body kills the snake
// and leaves body, rat and points as they were. Reaching the rat grows the
// snake by one, scores a point and respawns the rat; any other cell
// translates the snake.
func (w World) Advance(req Request) World {
	if w.status == StatusDead {
		return w
	}

	head := w.body.Head()
	if dir, ok := req.Direction(); ok {
		w.direction = dir
	}
	w.timer++
	w.fed = false

	next := head.Step(w.direction)
	if !w.opts.Grid.InBounds(next) || w.body.Occupies(next) {
		w.status = StatusDead
		return w
	}

	body := w.body.Clone()
	if w.hasFood && next == w.food {
		body.GrowHead(next)
		w.body = body
		w.points++
		w.fed = true
		w.food, w.hasFood = w.spawner.Spawn(w.body)
		return w
	}

	body.AdvanceHead(next)
	w.body = body
	return w
}

// Restart returns the start state, whatever the current status.
func (w World) Restart() World {
	return NewWorld(w.opts)
}

// Status returns whether the snake is alive.
func (w World) Status() Status { return w.status }

// Alive is shorthand for Status() == StatusAlive.
func (w World) Alive() bool { return w.status == StatusAlive }

// Body returns a copy of the snake.
func (w World) Body() Body { return w.body.Clone() }

// Food returns the rat position. The second result is false when the snake
// fills the grid and no rat could be placed.
func (w World) Food() (Cell, bool) { return w.food, w.hasFood }

// Direction returns the last committed heading.
func (w World) Direction() Direction { return w.direction }

// Points returns the number of rats eaten this game.
func (w World) Points() int { return w.points }

// Timer returns the number of ticks processed while alive.
func (w World) Timer() int { return w.timer }

// Fed reports whether the last tick ate the rat.
func (w World) Fed() bool { return w.fed }

// Grid returns the playing field.
func (w World) Grid() Grid { return w.opts.Grid }

// Validate checks the structural invariants of the world.
func (w World) Validate() error {
	if w.body.Len() == 0 {
		return errors.New("snakerat: empty body")
	}

	var errs []error
	seen := make(map[Cell]int, w.body.Len())
	for i, c := range w.body.cells {
		if !w.opts.Grid.InBounds(c) {
			errs = append(errs, fmt.Errorf("snakerat: segment %d at %s is out of bounds", i, c))
		}
		if j, dup := seen[c]; dup {
			errs = append(errs, fmt.Errorf("snakerat: segments %d and %d overlap at %s", j, i, c))
		}
		seen[c] = i
	}

	if w.hasFood {
		if !w.opts.Grid.InBounds(w.food) {
			errs = append(errs, fmt.Errorf("snakerat: rat at %s is out of bounds", w.food))
		}
		if _, onSnake := seen[w.food]; onSnake {
			errs = append(errs, fmt.Errorf("snakerat: rat at %s is on the snake", w.food))
		}
	}
	return errors.Join(errs...)
}
