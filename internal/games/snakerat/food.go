package snakerat

// RNG is the randomness source used to place food. *math/rand.Rand satisfies it;
// seeding it makes food placement reproducible.
type RNG interface {
	Intn(n int) int
}

// attemptsPerCell scales the default rejection budget with the field size.
const attemptsPerCell = 4

// Spawner places food on free cells by rejection sampling.
type Spawner struct {
	grid        Grid
	rng         RNG
	maxAttempts int
}

// NewSpawner creates a spawner for grid. maxAttempts <= 0 selects
// 4 draws per cell before falling back to a scan of the free cells.
func NewSpawner(grid Grid, rng RNG, maxAttempts int) *Spawner {
	if maxAttempts <= 0 {
		maxAttempts = attemptsPerCell * grid.Cells()
	}
	return &Spawner{grid: grid, rng: rng, maxAttempts: maxAttempts}
}

// Spawn returns a uniformly random in-bounds cell not occupied by exclude.
// It draws random cells until one is free; after maxAttempts misses it
// picks uniformly among the remaining free cells instead. The second result
// is false only when the snake covers the whole field.
func (s *Spawner) Spawn(exclude Body) (Cell, bool) {
	for range s.maxAttempts {
		c := Cell{X: s.rng.Intn(s.grid.Size), Y: s.rng.Intn(s.grid.Size)}
		if !exclude.Occupies(c) {
			return c, true
		}
	}
	return s.scan(exclude)
}

// scan collects every free cell and picks one of them.
func (s *Spawner) scan(exclude Body) (Cell, bool) {
	occupied := make(map[Cell]struct{}, exclude.Len())
	for _, c := range exclude.cells {
		occupied[c] = struct{}{}
	}

	free := make([]Cell, 0, max(s.grid.Cells()-len(occupied), 0))
	for y := 0; y < s.grid.Size; y++ {
		for x := 0; x < s.grid.Size; x++ {
			c := Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return Cell{}, false
	}
	return free[s.rng.Intn(len(free))], true
}
