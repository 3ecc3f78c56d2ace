package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ---------- Messages / Cmds ----------

// tickMsg drives one animation frame.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// maybeTick starts the frame loop when something is animating and no loop
// is running yet.
func (m *Model) maybeTick() tea.Cmd {
	if m.ticking || !m.animating() {
		return nil
	}
	m.ticking = true
	return tickCmd()
}
