package snakerat

import (
	"math/rand"
	"testing"
)

// worldWith builds a live world in an arbitrary position.
func worldWith(t *testing.T, body []Cell, food Cell, dir Direction) World {
	t.Helper()
	w := NewWorld(DefaultOptions(rand.New(rand.NewSource(7))))
	w.body = NewBody(body...)
	w.food, w.hasFood = food, true
	w.direction = dir
	if err := w.Validate(); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return w
}

func TestNewWorldStartState(t *testing.T) {
	w := NewWorld(DefaultOptions(rand.New(rand.NewSource(1))))
	snap := w.Snapshot()

	if !snap.Alive {
		t.Error("new world should be alive")
	}
	if len(snap.Snake) != 1 || snap.Snake[0] != (Cell{10, 10}) {
		t.Errorf("snake = %v, expected [(10,10)]", snap.Snake)
	}
	if !snap.HasFood || snap.Food != (Cell{12, 12}) {
		t.Errorf("food = %s, expected (12,12)", snap.Food)
	}
	if snap.Direction != DirUp {
		t.Errorf("direction = %s, expected up", snap.Direction)
	}
	if snap.Points != 0 || snap.Timer != 0 {
		t.Errorf("points/timer = %d/%d, expected 0/0", snap.Points, snap.Timer)
	}
}

func TestNewWorldSpawnsFoodWhenStartFoodUnusable(t *testing.T) {
	tests := []struct {
		name string
		opts func(o *Options)
	}{
		{"random start", func(o *Options) { o.RandomStartFood = true }},
		{"on the snake", func(o *Options) { o.StartFood = o.Start }},
		{"out of bounds", func(o *Options) { o.StartFood = Cell{-1, 40} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions(rand.New(rand.NewSource(3)))
			tc.opts(&opts)
			w := NewWorld(opts)

			food, ok := w.Food()
			if !ok {
				t.Fatal("expected food")
			}
			if err := w.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if food == w.Body().Head() {
				t.Errorf("food %s placed on the snake", food)
			}
		})
	}
}

// Scenario A: two moves right from the start position.
func TestScenarioMoveRightTwice(t *testing.T) {
	w := NewWorld(DefaultOptions(rand.New(rand.NewSource(1))))

	w = w.Advance(Turn(DirRight))
	if head := w.Body().Head(); head != (Cell{11, 10}) {
		t.Fatalf("after first tick head = %s, expected (11,10)", head)
	}
	w = w.Advance(Turn(DirRight))

	snap := w.Snapshot()
	if snap.Head() != (Cell{12, 10}) {
		t.Errorf("head = %s, expected (12,10)", snap.Head())
	}
	if !snap.Alive || snap.Points != 0 || len(snap.Snake) != 1 {
		t.Errorf("alive=%v points=%d len=%d, expected alive, 0, 1", snap.Alive, snap.Points, len(snap.Snake))
	}
	if snap.Timer != 2 {
		t.Errorf("timer = %d, expected 2", snap.Timer)
	}
}

// Scenario B: moving up from the top row kills the snake in place.
func TestScenarioWallUp(t *testing.T) {
	w := worldWith(t, []Cell{{1, 0}}, Cell{5, 5}, DirRight)

	w = w.Advance(Turn(DirUp))

	if w.Alive() {
		t.Fatal("snake should be dead")
	}
	if cells := w.Body().Cells(); len(cells) != 1 || cells[0] != (Cell{1, 0}) {
		t.Errorf("snake = %v, expected unchanged [(1,0)]", cells)
	}
	if w.Timer() != 1 {
		t.Errorf("timer = %d, the fatal tick should count", w.Timer())
	}
}

// Scenario C: turning into the tail segment is fatal.
func TestScenarioSelfCollision(t *testing.T) {
	w := worldWith(t, []Cell{{5, 5}, {5, 6}}, Cell{0, 0}, DirUp)

	w = w.Advance(Turn(DirDown))

	if w.Alive() {
		t.Fatal("snake should be dead")
	}
	cells := w.Body().Cells()
	if len(cells) != 2 || cells[0] != (Cell{5, 5}) || cells[1] != (Cell{5, 6}) {
		t.Errorf("snake = %v, expected unchanged [(5,5) (5,6)]", cells)
	}
}

// Scenario D: eating grows the snake and moves the rat off it.
func TestScenarioFeeding(t *testing.T) {
	w := worldWith(t, []Cell{{0, 0}}, Cell{1, 0}, DirUp)

	w = w.Advance(Turn(DirRight))

	if w.Points() != 1 {
		t.Errorf("points = %d, expected 1", w.Points())
	}
	cells := w.Body().Cells()
	if len(cells) != 2 || cells[0] != (Cell{1, 0}) || cells[1] != (Cell{0, 0}) {
		t.Errorf("snake = %v, expected [(1,0) (0,0)]", cells)
	}
	food, ok := w.Food()
	if !ok {
		t.Fatal("expected a new rat")
	}
	if food == (Cell{1, 0}) || food == (Cell{0, 0}) {
		t.Errorf("new rat at %s is on the snake", food)
	}
	if !w.Fed() {
		t.Error("Fed() should be true on the feeding tick")
	}

	w = w.Advance(Keep())
	if w.Fed() {
		t.Error("Fed() should clear on the next tick")
	}
}

func TestReversalIsFatal(t *testing.T) {
	for _, heading := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		for _, length := range []int{2, 3, 5} {
			head := Cell{10, 10}
			body := []Cell{head}
			for i := 1; i < length; i++ {
				body = append(body, body[i-1].Step(heading.Opposite()))
			}
			w := worldWith(t, body, Cell{0, 19}, heading)

			next := w.Advance(Turn(heading.Opposite()))
			if next.Alive() {
				t.Errorf("heading %s, length %d: reversing should kill the snake", heading, length)
			}
			if next.Body().Len() != length {
				t.Errorf("heading %s, length %d: body changed on death", heading, length)
			}
		}
	}
}

func TestBoundaryExitsAreFatal(t *testing.T) {
	last := GridSize - 1
	for i := 0; i < GridSize; i++ {
		cases := []struct {
			cell Cell
			dir  Direction
		}{
			{Cell{i, 0}, DirUp},
			{Cell{i, last}, DirDown},
			{Cell{0, i}, DirLeft},
			{Cell{last, i}, DirRight},
		}
		for _, tc := range cases {
			food := Cell{5, 5}
			if tc.cell == food {
				food = Cell{6, 6}
			}
			w := worldWith(t, []Cell{tc.cell}, food, tc.dir)

			next := w.Advance(Keep())
			if next.Alive() {
				t.Errorf("moving %s from %s should be fatal", tc.dir, tc.cell)
			}
			if next.Body().Head() != tc.cell {
				t.Errorf("head moved to %s on a fatal tick", next.Body().Head())
			}
		}
	}
}

func TestKeepContinuesLastDirection(t *testing.T) {
	w := worldWith(t, []Cell{{5, 5}}, Cell{0, 0}, DirLeft)

	w = w.Advance(Keep())
	w = w.Advance(Keep())

	if head := w.Body().Head(); head != (Cell{3, 5}) {
		t.Errorf("head = %s, expected (3,5)", head)
	}
	if w.Direction() != DirLeft {
		t.Errorf("direction = %s, expected left", w.Direction())
	}

	w = w.Advance(Turn(DirDown))
	w = w.Advance(Keep())
	if head := w.Body().Head(); head != (Cell{3, 7}) {
		t.Errorf("head = %s, expected (3,7)", head)
	}
}

func TestDeadWorldIgnoresAdvance(t *testing.T) {
	w := worldWith(t, []Cell{{0, 0}}, Cell{5, 5}, DirLeft)
	dead := w.Advance(Keep())
	if dead.Alive() {
		t.Fatal("expected death")
	}

	again := dead.Advance(Turn(DirRight))
	if again.Timer() != dead.Timer() || again.Direction() != dead.Direction() {
		t.Error("Advance on a dead world must not change it")
	}
	if again.Body().Head() != (Cell{0, 0}) {
		t.Errorf("head = %s, expected (0,0)", again.Body().Head())
	}
}

func TestAdvanceLeavesReceiverUntouched(t *testing.T) {
	w0 := worldWith(t, []Cell{{5, 5}, {5, 6}}, Cell{5, 4}, DirUp)

	w1 := w0.Advance(Keep())

	if w1.Body().Len() != 3 || w1.Points() != 1 {
		t.Fatalf("w1 should have eaten: len=%d points=%d", w1.Body().Len(), w1.Points())
	}
	if w0.Body().Len() != 2 || w0.Points() != 0 || w0.Timer() != 0 {
		t.Errorf("w0 changed: len=%d points=%d timer=%d", w0.Body().Len(), w0.Points(), w0.Timer())
	}
	if head := w0.Body().Head(); head != (Cell{5, 5}) {
		t.Errorf("w0 head = %s, expected (5,5)", head)
	}
}

func TestMovingIntoVacatingTailIsFatal(t *testing.T) {
	// A 2x2 loop: the head's next cell is the tail, which is occupied before the move.
	w := worldWith(t, []Cell{{1, 0}, {1, 1}, {0, 1}, {0, 0}}, Cell{9, 9}, DirUp)

	w = w.Advance(Turn(DirLeft))
	if w.Alive() {
		t.Error("moving into the current tail cell should be fatal")
	}
}

func TestRestart(t *testing.T) {
	w := worldWith(t, []Cell{{0, 0}}, Cell{1, 0}, DirRight)
	w = w.Advance(Keep())      // eat
	w = w.Advance(Turn(DirUp)) // wall
	if w.Alive() || w.Points() != 1 {
		t.Fatalf("fixture: alive=%v points=%d", w.Alive(), w.Points())
	}

	for name, from := range map[string]World{"dead": w, "fresh": NewWorld(DefaultOptions(nil))} {
		t.Run(name, func(t *testing.T) {
			r := from.Restart()
			snap := r.Snapshot()
			if !snap.Alive || snap.Points != 0 || snap.Timer != 0 || len(snap.Snake) != 1 {
				t.Errorf("restart state = %+v", snap)
			}
			if !r.Grid().InBounds(snap.Head()) {
				t.Errorf("head %s out of bounds", snap.Head())
			}
			if snap.HasFood && snap.Food == snap.Head() {
				t.Error("food on the snake after restart")
			}
			if snap.Direction != DirUp {
				t.Errorf("direction = %s, expected up", snap.Direction)
			}
		})
	}
}

func TestZeroWorldRestart(t *testing.T) {
	var w World
	r := w.Restart()
	if err := r.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if r.Grid().Size != GridSize {
		t.Errorf("grid size = %d, expected %d", r.Grid().Size, GridSize)
	}
}

func TestAdvancePanicsOnEmptyBody(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Advance on a malformed world should panic")
		}
	}()
	w := NewWorld(DefaultOptions(nil))
	w.body = Body{}
	w.Advance(Keep())
}

func TestFullGridLeavesNoFood(t *testing.T) {
	opts := DefaultOptions(rand.New(rand.NewSource(5)))
	opts.Grid = Grid{Size: 2}
	opts.Start = Cell{0, 0}
	opts.StartFood = Cell{1, 0}
	w := NewWorld(opts)
	w.body = NewBody(Cell{0, 0}, Cell{0, 1}, Cell{1, 1})

	w = w.Advance(Turn(DirRight))
	if _, ok := w.Food(); ok {
		t.Error("a full grid should leave no rat")
	}
	if w.Body().Len() != 4 || w.Points() != 1 {
		t.Errorf("len=%d points=%d, expected 4/1", w.Body().Len(), w.Points())
	}
	if err := w.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	w = w.Advance(Keep())
	if w.Alive() {
		t.Error("every move from a full grid is fatal")
	}
}

func TestValidateReportsBrokenWorlds(t *testing.T) {
	w := NewWorld(DefaultOptions(nil))

	tests := []struct {
		name   string
		mutate func(w *World)
	}{
		{"empty body", func(w *World) { w.body = Body{} }},
		{"out of bounds", func(w *World) { w.body = NewBody(Cell{-1, 0}) }},
		{"duplicate", func(w *World) { w.body = NewBody(Cell{1, 1}, Cell{1, 1}) }},
		{"food on snake", func(w *World) { w.food = w.body.Head() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			broken := w
			tc.mutate(&broken)
			if err := broken.Validate(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

// chase steers toward the rat along x first, then y.
func chase(snap Snapshot) Request {
	head := snap.Head()
	switch {
	case !snap.HasFood:
		return Keep()
	case snap.Food.X > head.X:
		return Turn(DirRight)
	case snap.Food.X < head.X:
		return Turn(DirLeft)
	case snap.Food.Y > head.Y:
		return Turn(DirDown)
	default:
		return Turn(DirUp)
	}
}

func TestInvariantsHoldOverLongRuns(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 1234} {
		rng := rand.New(rand.NewSource(seed))
		opts := DefaultOptions(rand.New(rand.NewSource(seed)))
		opts.RandomStartFood = true
		w := NewWorld(opts)

		deaths := 0
		for tick := 0; tick < 5000; tick++ {
			before := w
			var req Request
			if rng.Intn(4) == 0 {
				req = Turn(Direction(rng.Intn(4)))
			} else {
				req = chase(w.Snapshot())
			}
			w = w.Advance(req)

			if err := w.Validate(); err != nil {
				t.Fatalf("seed %d tick %d: %v", seed, tick, err)
			}
			if w.Timer() != before.Timer()+1 {
				t.Fatalf("seed %d tick %d: timer %d -> %d", seed, tick, before.Timer(), w.Timer())
			}

			switch {
			case !w.Alive():
				if w.Body().Len() != before.Body().Len() || w.Points() != before.Points() {
					t.Fatalf("seed %d tick %d: death changed the snake", seed, tick)
				}
				deaths++
				w = w.Restart()
			case w.Fed():
				if w.Points() != before.Points()+1 || w.Body().Len() != before.Body().Len()+1 {
					t.Fatalf("seed %d tick %d: feeding should add exactly one point and segment", seed, tick)
				}
			default:
				if w.Points() != before.Points() || w.Body().Len() != before.Body().Len() {
					t.Fatalf("seed %d tick %d: plain move changed points or length", seed, tick)
				}
			}
		}
		if deaths == 0 {
			t.Errorf("seed %d: expected at least one death in 5000 ticks", seed)
		}
	}
}
