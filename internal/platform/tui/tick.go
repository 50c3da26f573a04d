// Package tui provides the Bubble Tea integration for the gems game.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step of the model whose loop scheduled it.
type TickMsg struct {
	At   time.Time
	loop uint64
}

var loopIDs atomic.Uint64

// newLoopID returns an ID no other game loop in the process uses. A session
// that leaves a game and starts another must not let the old loop's pending
// tick drive the new game.
func newLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd schedules the next tick of loop at the given rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, loop: loop}
	})
}
