package snakerat

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/snake-rat/internal/core"
)

// Direction is the snake's heading.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the coordinate change of one step. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		panic(fmt.Sprintf("snakerat: invalid direction %d", int(d)))
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts "up", "down", "left" or "right" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return DirUp, fmt.Errorf("snakerat: unknown direction %q", s)
	}
}

// DirectionFor maps a platform action to a heading.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirUp, false
	}
}

// Request is the optional heading handed to World.Advance.
// The zero value keeps the last committed direction.
type Request struct {
	dir Direction
	set bool
}

// Keep requests no change of heading.
func Keep() Request {
	return Request{}
}

// Turn requests heading d for this tick.
func Turn(d Direction) Request {
	return Request{dir: d, set: true}
}

// Direction returns the requested heading, if any.
func (r Request) Direction() (Direction, bool) {
	return r.dir, r.set
}
