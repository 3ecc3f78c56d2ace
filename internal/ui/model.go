package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"scrollguard/internal/config"
	"scrollguard/internal/core/inset"
	"scrollguard/internal/infra/logx"
)

// Fixed chrome rows around the scroll area.
const (
	headerRows   = 2 // title + divider
	safeAreaRows = 1 // help bar overlaying the scroll frame's last row
)

// PaletteState is the fuzzy field-jump overlay.
type PaletteState struct {
	open    bool
	input   textinput.Model
	matches []int
	cursor  int
}

// Model is the demo screen: a form inside a scroll region, the on-screen
// keyboard panel, and the inset session that ties them together.
type Model struct {
	cfg    config.Config
	width  int
	height int

	fields       []*Field
	contentLines []string
	viewport     viewport.Model

	scroll   *ScrollRegion
	layout   *layoutState
	notifier *Notifier
	animator *FrameAnimator
	keyboard *Keyboard
	session  *inset.Session

	palette   PaletteState
	filterCfg FilterConfig
	statusMsg string
	ticking   bool
}

func (m *Model) focusedField() (*Field, int) {
	for i, f := range m.fields {
		if f.Focused() {
			return f, i
		}
	}
	return nil, -1
}

// focusField moves focus to field i and notifies the session. The keyboard
// notification goes out on every focus change: a transition to the same
// keyboard frame is how the session learns that a different input now needs
// to be kept visible.
func (m *Model) focusField(i int) tea.Cmd {
	if i < 0 || i >= len(m.fields) {
		return nil
	}
	var cmd tea.Cmd
	for j, f := range m.fields {
		if j != i && f.Focused() {
			f.Blur()
		}
	}
	if !m.fields[i].Focused() {
		cmd = m.fields[i].Focus()
	}
	m.reflow()
	m.syncKeyboard()
	return cmd
}

// syncKeyboard aligns the panel and the notifications with the focus
// state: focused input means open plus a changing notification, no focus
// means close plus a hiding notification.
func (m *Model) syncKeyboard() {
	p := focusProvider{fields: m.fields}
	if _, ok := p.FocusedInput(); ok {
		m.keyboard.Open()
		t := m.keyboard.Transition(m.width, m.height)
		logx.Event(logx.LevelDebug, "keyboard changing", map[string]any{
			"top":      t.EndFrame.Y,
			"duration": t.Duration.String(),
			"curve":    t.Curve.String(),
		})
		m.notifier.KeyboardChanging(t)
		return
	}
	if m.keyboard.Opening() {
		logx.Debugf("keyboard hiding")
		m.keyboard.Close()
		m.notifier.KeyboardHiding()
	}
}

// reflow re-renders the form into content lines and refreshes the frames
// the geometry context hands to the session.
func (m *Model) reflow() {
	lines, ranges := renderForm(m.fields)
	m.contentLines = lines
	m.layout.width = m.width
	m.layout.height = m.height
	m.layout.fieldRanges = ranges
	m.layout.contentLines = len(lines)
	m.scroll.frame = inset.Rect{
		X: 0,
		Y: headerRows,
		W: float64(m.width),
		H: float64(m.height - headerRows),
	}
}

// fieldAt resolves a screen coordinate to the field whose input box is
// under it, using the displayed scroll position.
func (m *Model) fieldAt(x, y int) (*Field, int) {
	top := headerRows
	if y < top || y >= m.height-bottomRows(m) {
		return nil, -1
	}
	offsetRows, _ := m.scroll.DisplayRows()
	line := y - top + offsetRows
	for i, r := range m.layout.fieldRanges {
		if r.contains(line) {
			return m.fields[i], i
		}
	}
	return nil, -1
}

// bottomRows is how many rows at the bottom of the window are currently
// covered by the keyboard panel, or by the help bar when the panel is away.
func bottomRows(m *Model) int {
	if h := m.keyboard.Height(); h > 0 {
		return h
	}
	return safeAreaRows
}

func (m *Model) animating() bool {
	return m.animator.Active() || m.keyboard.Animating()
}
