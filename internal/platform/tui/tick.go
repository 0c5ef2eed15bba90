// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, and frame pacing.
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

// frameDelta returns the seconds between two ticks, clamped to maxFrame.
// The first tick has no predecessor and gets one nominal frame.
func frameDelta(prev, now time.Time, tickRate int, maxFrame float64) float64 {
	var dt float64
	if prev.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		dt = 1 / float64(tickRate)
	} else {
		dt = now.Sub(prev).Seconds()
	}
	if dt < 0 {
		dt = 0
	}
	if maxFrame > 0 && dt > maxFrame {
		dt = maxFrame
	}
	return dt
}
