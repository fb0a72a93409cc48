// Package tui runs a game inside a Bubble Tea program, either on the local
// terminal or once per SSH session through Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick. The model re-arms it after every tick,
// so the game advances once per interval.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = 75 * time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
