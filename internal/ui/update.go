package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ---------- Update ----------
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.session.Close()
			return m, tea.Quit
		}
		if m.palette.open {
			return m.handlePaletteKey(msg)
		}
		return m.handleFormKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.keyboard.SetWidth(m.width)
		m.viewport.Width = m.width
		m.reflow()
		// The keyboard frame moved with the window; let the session
		// reconcile against the new geometry without animation.
		if m.keyboard.Opening() {
			t := m.keyboard.Transition(m.width, m.height)
			t.Duration = 0
			m.notifier.KeyboardChanging(t)
		}
		return m, nil

	case tickMsg:
		m.animator.Step(frameInterval)
		m.keyboard.Step(frameInterval)
		if m.animating() {
			return m, tickCmd()
		}
		m.ticking = false
		return m, nil
	}

	return m, nil
}
