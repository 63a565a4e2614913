package snakerat

import (
	"math/rand"
	"testing"
)

// zeroRNG always draws 0, so rejection sampling keeps hitting (0,0).
type zeroRNG struct{ calls int }

func (z *zeroRNG) Intn(int) int {
	z.calls++
	return 0
}

func TestSpawnAvoidsSnake(t *testing.T) {
	grid := Grid{Size: 3}
	body := NewBody(Cell{0, 0}, Cell{1, 0}, Cell{2, 0}, Cell{2, 1}, Cell{1, 1})
	s := NewSpawner(grid, rand.New(rand.NewSource(99)), 0)

	seen := make(map[Cell]bool)
	for i := 0; i < 1000; i++ {
		c, ok := s.Spawn(body)
		if !ok {
			t.Fatal("Spawn() reported a full grid")
		}
		if body.Occupies(c) {
			t.Fatalf("food spawned on snake at %s", c)
		}
		if !grid.InBounds(c) {
			t.Fatalf("food spawned out of bounds at %s", c)
		}
		seen[c] = true
	}

	// Every free cell should come up eventually
	if len(seen) != grid.Cells()-body.Len() {
		t.Errorf("saw %d distinct cells, expected %d", len(seen), grid.Cells()-body.Len())
	}
}

func TestSpawnFallsBackToScan(t *testing.T) {
	grid := Grid{Size: 2}
	body := NewBody(Cell{0, 0}, Cell{1, 0}, Cell{1, 1})
	rng := &zeroRNG{}
	s := NewSpawner(grid, rng, 5)

	c, ok := s.Spawn(body)
	if !ok {
		t.Fatal("Spawn() reported a full grid")
	}
	if c != (Cell{0, 1}) {
		t.Errorf("Spawn() = %s, expected the only free cell (0,1)", c)
	}
	// 5 attempts x 2 draws, then one pick among free cells
	if rng.calls != 11 {
		t.Errorf("RNG called %d times, expected 11", rng.calls)
	}
}

func TestSpawnFullGrid(t *testing.T) {
	grid := Grid{Size: 2}
	body := NewBody(Cell{0, 0}, Cell{1, 0}, Cell{1, 1}, Cell{0, 1})
	s := NewSpawner(grid, rand.New(rand.NewSource(1)), 0)

	if _, ok := s.Spawn(body); ok {
		t.Error("Spawn() on a full grid should report false")
	}
}

func TestSpawnDeterministic(t *testing.T) {
	body := NewBody(Cell{10, 10})
	a := NewSpawner(DefaultGrid(), rand.New(rand.NewSource(2024)), 0)
	b := NewSpawner(DefaultGrid(), rand.New(rand.NewSource(2024)), 0)

	for i := 0; i < 20; i++ {
		ca, _ := a.Spawn(body)
		cb, _ := b.Spawn(body)
		if ca != cb {
			t.Fatalf("draw %d differs: %s vs %s", i, ca, cb)
		}
	}
}
