package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) openPalette() (tea.Model, tea.Cmd) {
	m.palette.open = true
	m.palette.input.SetValue("")
	m.palette.cursor = 0
	m.palette.matches = filterLabels("", m.fieldLabels(), m.filterCfg)
	cmd := m.palette.input.Focus()
	return m, cmd
}

func (m *Model) closePalette() {
	m.palette.open = false
	m.palette.input.Blur()
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+p":
		m.closePalette()
		return m, nil

	case "enter":
		if len(m.palette.matches) == 0 {
			return m, nil
		}
		target := m.palette.matches[m.palette.cursor]
		m.closePalette()
		cmd := m.focusField(target)
		return m, tea.Batch(cmd, m.maybeTick())

	case "up":
		if m.palette.cursor > 0 {
			m.palette.cursor--
		}
		return m, nil

	case "down":
		if m.palette.cursor < len(m.palette.matches)-1 {
			m.palette.cursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.palette.input, cmd = m.palette.input.Update(msg)
	m.palette.matches = filterLabels(m.palette.input.Value(), m.fieldLabels(), m.filterCfg)
	m.palette.cursor = 0
	return m, cmd
}

func (m *Model) fieldLabels() []string {
	labels := make([]string, len(m.fields))
	for i, f := range m.fields {
		labels[i] = f.Label
	}
	return labels
}
