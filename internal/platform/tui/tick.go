// Package tui runs a game inside Bubble Tea, locally or over SSH.
// It owns the tick loop, key bindings and the conversion of the
// game's screen buffer into styled terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time between two ticks.
// The first tick and clock jumps backwards yield zero.
func frameDelta(last, now time.Time) time.Duration {
	if last.IsZero() {
		return 0
	}
	dt := now.Sub(last)
	if dt < 0 {
		return 0
	}
	return dt
}
