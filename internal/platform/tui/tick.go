// Package tui provides the Bubble Tea driver for the shooter.
// It handles the terminal UI loop, input mapping, and the frame and spawn
// timers.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger one simulation step.
type FrameMsg time.Time

// SpawnMsg is sent when the spawn timer fires.
type SpawnMsg time.Time

// frameInterval returns the time between frames for a tick rate.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// spawnCmd schedules the next spawn. It runs independently of the frame
// chain so spawn cadence does not depend on the frame rate.
func spawnCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SpawnMsg(t)
	})
}
