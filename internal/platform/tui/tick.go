// Package tui runs a game in the terminal with Bubble Tea.
// It owns the frame clock, maps keys to game actions and draws the game's
// screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// MaxFrameDelta caps the time simulated by a single frame.
const MaxFrameDelta = 250 * time.Millisecond

// frameDelta returns the time between two ticks, capped at MaxFrameDelta.
// The first tick has no predecessor and counts as one nominal frame.
func frameDelta(last, now time.Time, tickRate int) time.Duration {
	if last.IsZero() {
		return time.Second / time.Duration(max(tickRate, 1))
	}
	dt := now.Sub(last)
	switch {
	case dt < 0:
		return 0
	case dt > MaxFrameDelta:
		return MaxFrameDelta
	default:
		return dt
	}
}
