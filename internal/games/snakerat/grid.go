// Package snakerat implements the snake-rat simulation: a single snake on a
// square grid chasing one rat. The package has no terminal dependencies; the
// platform layer feeds it ticks and paints its snapshots.
package snakerat

import "fmt"

// GridSize is the default number of cells per side of the playing field.
const GridSize = 20

// Cell is a grid coordinate. (0, 0) is the top-left corner.
type Cell struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is the square playing field.
type Grid struct {
	Size int
}

// DefaultGrid returns the standard 20x20 field.
func DefaultGrid() Grid {
	return Grid{Size: GridSize}
}

// InBounds reports whether both coordinates of c lie in [0, Size).
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// Cells returns the number of cells on the field.
func (g Grid) Cells() int {
	return g.Size * g.Size
}
