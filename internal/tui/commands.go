package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickInterval drives both elapsed-time accrual and the caret blink. The
// blink phase is longer than the tick, so the editor decides on its own
// whether a given tick flips visibility.
const tickInterval = 200 * time.Millisecond

// tickMsg carries the wall-clock time of one timer tick
type tickMsg time.Time

// tickCmd schedules the next timer tick
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
