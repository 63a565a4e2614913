package snakerat

// CellKind classifies a grid cell for rendering.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellHead
	CellBody
	CellFood
)

// Snapshot is a read-only copy of the world handed to renderers and tests.
type Snapshot struct {
	Snake     []Cell // Head first
	Food      Cell
	HasFood   bool
	Alive     bool
	Fed       bool // The last tick ate the rat
	Points    int
	Timer     int
	Direction Direction
	GridSize  int
}

// Snapshot returns a copy of the current state.
func (w World) Snapshot() Snapshot {
	return Snapshot{
		Snake:     w.body.Cells(),
		Food:      w.food,
		HasFood:   w.hasFood,
		Alive:     w.status == StatusAlive,
		Fed:       w.fed,
		Points:    w.points,
		Timer:     w.timer,
		Direction: w.direction,
		GridSize:  w.opts.Grid.Size,
	}
}

// Head returns the snake's first cell.
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}

// Classify reports what occupies c. The rat wins over the snake, which
// cannot happen in a valid world anyway.
func (s Snapshot) Classify(c Cell) CellKind {
	if s.HasFood && c == s.Food {
		return CellFood
	}
	for i, seg := range s.Snake {
		if seg == c {
			if i == 0 {
				return CellHead
			}
			return CellBody
		}
	}
	return CellEmpty
}
