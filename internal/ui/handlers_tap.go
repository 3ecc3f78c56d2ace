package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"scrollguard/internal/core/inset"
)

// handleMouse treats left clicks as taps: a click on the keyboard panel
// presses a keycap, a click on a field is a tap that also moves focus, and
// anything else is an outside tap delivered to the session.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.palette.open {
		// The palette is modal; clicks outside it just close it.
		m.closePalette()
		return m, nil
	}

	if key, ok, hit := m.keyboard.KeyAt(msg.X, msg.Y, m.height); hit {
		if !ok {
			// Dead area of the panel swallows the tap.
			return m, nil
		}
		return m.handleKeycap(key)
	}

	touched, idx := m.fieldAt(msg.X, msg.Y)

	// Deliver the tap before normal handling, the way a gesture
	// recognizer fires before the touch reaches its target. A nil Input
	// must stay an untyped nil for the session's outside check.
	var touchedInput inset.Input
	if touched != nil {
		touchedInput = touched
	}
	m.notifier.Tap(touchedInput)

	if touched != nil {
		cmd := m.focusField(idx)
		return m, tea.Batch(cmd, m.maybeTick())
	}
	// The session may have resigned focus; follow up with the panel.
	m.syncKeyboard()
	return m, m.maybeTick()
}

// handleKeycap applies one on-screen key press to the focused field.
func (m Model) handleKeycap(key string) (tea.Model, tea.Cmd) {
	if m.keyboard.handlePageKey(key) {
		return m, nil
	}
	f, i := m.focusedField()
	if f == nil {
		return m, nil
	}

	var cmd tea.Cmd
	switch key {
	case keyDone:
		f.Blur()
		m.syncKeyboard()
	case keyBksp:
		cmd = m.routeToFocused(tea.KeyMsg{Type: tea.KeyBackspace})
	case keySpace:
		cmd = m.routeToFocused(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	case keyEnter:
		if f.InputKind() == KindTextArea {
			cmd = m.routeToFocused(tea.KeyMsg{Type: tea.KeyEnter})
		} else {
			cmd = m.focusField((i + 1) % len(m.fields))
		}
	default:
		cmd = m.routeToFocused(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	}
	return m, tea.Batch(cmd, m.maybeTick())
}
