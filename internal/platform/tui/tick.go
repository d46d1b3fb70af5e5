// Package tui provides the Bubble Tea integration for the runner games.
// It handles the terminal UI loop, input mapping, the menu and the
// character gallery.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Epoch identifies the
// scheduling chain that produced it; ticks from an older chain are dropped.
type TickMsg struct {
	Epoch int
	Time  time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message for the
// given epoch after one tick interval.
func tickCmd(tickRate, epoch int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, Time: t}
	})
}
