package snakerat

import (
	"fmt"

	"github.com/vovakirdan/snake-rat/internal/core"
)

// cellWidth is the number of columns one grid cell takes on screen.
const cellWidth = 3

// BoardRect returns the area the board needs for a grid of size cells,
// including the border and the two status lines below it.
func BoardRect(size int) core.Rect {
	return core.NewRect(0, 0, size*cellWidth+2, size+2+2)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot paints a snapshot: a bordered board where every cell is
// three characters wide, followed by the time/points line and, once the
// snake is dead, the restart prompt.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	area := BoardRect(snap.GridSize)
	if !area.Fits(dst.Width(), dst.Height()) {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "Window too small")
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Need %dx%d, resize to continue", area.W, area.H))
		return
	}

	board := core.NewRect(0, 0, area.W, snap.GridSize+2)
	dst.DrawBox(board, core.ColorBlue)
	dst.DrawTextColored(2, 0, Title, core.ColorBrightWhite)

	for y := 0; y < snap.GridSize; y++ {
		for x := 0; x < snap.GridSize; x++ {
			text, color := cellLook(snap, Cell{X: x, Y: y})
			dst.DrawTextColored(1+x*cellWidth, 1+y, text, color)
		}
	}

	statusY := board.Bottom()
	third := area.W / 3
	dst.DrawText(0, statusY, fmt.Sprintf("time: %d", snap.Timer))
	dst.DrawText(third, statusY, fmt.Sprintf("points: %d", snap.Points))
	dst.DrawText(2*third, statusY, "Press Q to quit")

	if !snap.Alive {
		dst.DrawTextColored(0, statusY+1, "The snake is dead! Press N to restart.", core.ColorBrightRed)
	}
}

// cellLook returns the three-character label and color of a cell.
func cellLook(snap Snapshot, c Cell) (string, core.Color) {
	switch snap.Classify(c) {
	case CellFood:
		return "rat", core.ColorBrightYellow
	case CellHead, CellBody:
		switch {
		case snap.Fed:
			return "NAM", core.ColorYellow
		case !snap.Alive:
			return "DEA", core.ColorRed
		default:
			return "SNK", core.ColorBrightGreen
		}
	default:
		return " . ", core.ColorGray
	}
}
