// Package tui drives the snake simulation from a Bubble Tea program.
// It maps keys to actions, schedules update ticks at the current speed, and
// turns the game's screen buffer into styled terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to run one simulation update.
type TickMsg time.Time

// tickCmd schedules the next update at the given rate in ticks per second.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickInterval converts a rate to the delay between updates. Rates below 1 are treated as 1.
func tickInterval(rate int) time.Duration {
	if rate < 1 {
		rate = 1
	}
	return time.Second / time.Duration(rate)
}
