// Package tui runs snake-rat in a terminal through Bubble Tea.
// It owns the wait-with-timeout loop, input mapping and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TimeoutMsg reports that a full interval passed without input.
// Only the timeout carrying the model's current sequence is acted on.
type TimeoutMsg struct {
	seq int
}

// timeoutCmd schedules the timeout for loop iteration seq.
func timeoutCmd(seq int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TimeoutMsg{seq: seq}
	})
}
