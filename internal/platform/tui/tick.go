// Package tui provides the Bubble Tea integration for the platformer.
// It handles the terminal UI loop, held-key tracking, and level selection.
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

// LevelsChangedMsg reports that a level file changed on disk.
type LevelsChangedMsg struct {
	Path string
}

// waitForLevelChange blocks on the watcher channel and turns the next
// change into a message. A closed channel ends the subscription.
func waitForLevelChange(events <-chan string) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-events
		if !ok {
			return nil
		}
		return LevelsChangedMsg{Path: path}
	}
}
