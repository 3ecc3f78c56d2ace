package ui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"scrollguard/internal/infra/logx"
)

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f, i := m.focusedField()

	switch msg.String() {
	case "ctrl+p":
		return m.openPalette()

	case "/":
		// Slash opens the palette only while nothing is focused; a focused
		// field takes the character.
		if f == nil {
			return m.openPalette()
		}

	case "ctrl+y":
		if f != nil {
			if err := clipboard.WriteAll(f.Value()); err != nil {
				logx.Warnf("clipboard write failed: %v", err)
				m.statusMsg = "Copy failed."
			} else {
				m.statusMsg = "Copied " + f.Label + "."
			}
		}
		return m, nil

	case "tab":
		next := 0
		if i >= 0 {
			next = (i + 1) % len(m.fields)
		}
		cmd := m.focusField(next)
		return m, tea.Batch(cmd, m.maybeTick())

	case "shift+tab":
		prev := len(m.fields) - 1
		if i >= 0 {
			prev = (i - 1 + len(m.fields)) % len(m.fields)
		}
		cmd := m.focusField(prev)
		return m, tea.Batch(cmd, m.maybeTick())

	case "esc":
		if f != nil {
			f.Blur()
			m.syncKeyboard()
			m.statusMsg = "Dismissed."
		}
		return m, m.maybeTick()

	case "up", "down":
		if f == nil {
			m.scrollBy(map[string]float64{"up": -1, "down": 1}[msg.String()])
			return m, nil
		}

	case "enter":
		// Return on a single-line field advances to the next one, like
		// the keyboard's return key. Textareas take the newline instead.
		if f != nil && f.InputKind() == KindTextInput {
			cmd := m.focusField((i + 1) % len(m.fields))
			return m, tea.Batch(cmd, m.maybeTick())
		}
	}

	if f == nil {
		return m, nil
	}
	cmd := m.routeToFocused(msg)
	return m, tea.Batch(cmd, m.maybeTick())
}

// routeToFocused sends a key to the focused field. A textarea that grew or
// shrank as a result changes the focused frame, so the session gets a
// fresh transition to reconcile against.
func (m *Model) routeToFocused(msg tea.KeyMsg) tea.Cmd {
	f, _ := m.focusedField()
	if f == nil {
		return nil
	}
	prevHeight := f.InputHeight()
	cmd := f.Update(msg)
	m.reflow()
	if f.InputHeight() != prevHeight && m.keyboard.Opening() {
		m.notifier.KeyboardChanging(m.keyboard.Transition(m.width, m.height))
	}
	return cmd
}

// scrollBy moves the content offset manually while nothing is focused.
func (m *Model) scrollBy(delta float64) {
	off := m.scroll.ContentOffset()
	off.Y += delta
	if off.Y < 0 {
		off.Y = 0
	}
	if limit := m.maxOffset(); off.Y > limit {
		off.Y = limit
	}
	m.scroll.SetContentOffset(off)
	m.scroll.SnapDisplay()
}

func (m *Model) maxOffset() float64 {
	visible := m.height - headerRows - bottomRows(m)
	limit := float64(m.layout.contentLines) + m.scroll.ContentInset().Bottom - float64(visible)
	if limit < 0 {
		return 0
	}
	return limit
}
