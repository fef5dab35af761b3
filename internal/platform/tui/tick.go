// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and score keeping.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step. Gen identifies the tick loop that
// scheduled it; ticks from a loop that has since stopped are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd schedules the next tick of loop gen after interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
