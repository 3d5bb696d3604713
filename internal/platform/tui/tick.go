// Package tui runs a game in the terminal with Bubble Tea. It owns the
// frame clock, maps keys to actions, and paints the game's screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// It carries the wall time the tick fired at.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameTime returns the time to simulate for a tick that fired at now.
// The first tick has no predecessor and gets one nominal interval. The
// result is clamped to [0, limit] so a stalled terminal or a clock jump
// cannot push the simulation through obstacles.
func frameTime(prev, now time.Time, tickRate int, limit time.Duration) time.Duration {
	d := time.Second / time.Duration(tickRate)
	if !prev.IsZero() {
		d = now.Sub(prev)
	}
	return min(max(d, 0), limit)
}
