// Package tui runs taxirush in the terminal with Bubble Tea.
// It maps keys to game actions, drives the fixed-rate tick and draws the
// game's screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick. The model re-arms it after every tick
// until the round ends.
func tickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
