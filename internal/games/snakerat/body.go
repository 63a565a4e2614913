package snakerat

// Body is the ordered list of cells occupied by the snake, head first.
// It is a plain container: bounds and collisions are the World's business.
type Body struct {
	cells []Cell
}

// NewBody creates a body from cells given head first.
func NewBody(cells ...Cell) Body {
	return Body{cells: append([]Cell(nil), cells...)}
}

// Head returns the first cell. An empty body is a broken invariant.
func (b Body) Head() Cell {
	if len(b.cells) == 0 {
		panic("snakerat: invariant violated: head of empty body")
	}
	return b.cells[0]
}

// Tail returns the last cell.
func (b Body) Tail() Cell {
	if len(b.cells) == 0 {
		panic("snakerat: invariant violated: tail of empty body")
	}
	return b.cells[len(b.cells)-1]
}

// Len returns the number of segments.
func (b Body) Len() int {
	return len(b.cells)
}

// Occupies reports whether any segment sits on c.
func (b Body) Occupies(c Cell) bool {
	for _, seg := range b.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// GrowHead prepends c and keeps the tail.
func (b *Body) GrowHead(c Cell) {
	b.cells = append([]Cell{c}, b.cells...)
}

// DropTail removes the last segment.
func (b *Body) DropTail() {
	if len(b.cells) == 0 {
		return
	}
	b.cells = b.cells[:len(b.cells)-1]
}

// AdvanceHead prepends c and drops the tail, keeping the length.
func (b *Body) AdvanceHead(c Cell) {
	b.GrowHead(c)
	b.DropTail()
}

// Cells returns a copy of the segments, head first.
func (b Body) Cells() []Cell {
	return append([]Cell(nil), b.cells...)
}

// Clone returns a body that shares no storage with b.
func (b Body) Clone() Body {
	return Body{cells: b.Cells()}
}
