package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"scrollguard/internal/core/inset"
)

// Input kinds the demo form uses. The session is configured with exactly
// these, so a focused element of any other kind is left alone.
const (
	KindTextInput inset.Kind = "textinput"
	KindTextArea  inset.Kind = "textarea"
)

const (
	textAreaMinHeight = 3
	textAreaMaxHeight = 8
)

// Field is one labeled form input: either a single-line textinput or a
// growing multi-line textarea. It is the host-side element behind the
// session's Input capability.
type Field struct {
	Label string
	kind  inset.Kind
	text  textinput.Model
	area  textarea.Model
}

// NewTextField creates a single-line field.
func NewTextField(label, placeholder string) *Field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Width = 40
	return &Field{Label: label, kind: KindTextInput, text: ti}
}

// NewTextAreaField creates a multi-line field that grows with its content.
func NewTextAreaField(label, placeholder string) *Field {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.SetWidth(42)
	ta.SetHeight(textAreaMinHeight)
	ta.CharLimit = 2000
	return &Field{Label: label, kind: KindTextArea, area: ta}
}

// InputKind classifies the field for the session's supported-kinds check.
func (f *Field) InputKind() inset.Kind { return f.kind }

// Blur resigns focus from the field.
func (f *Field) Blur() {
	if f.kind == KindTextArea {
		f.area.Blur()
		return
	}
	f.text.Blur()
}

// Focus gives the field focus.
func (f *Field) Focus() tea.Cmd {
	if f.kind == KindTextArea {
		return f.area.Focus()
	}
	return f.text.Focus()
}

// Focused reports whether the field has focus.
func (f *Field) Focused() bool {
	if f.kind == KindTextArea {
		return f.area.Focused()
	}
	return f.text.Focused()
}

// Value returns the field's current text.
func (f *Field) Value() string {
	if f.kind == KindTextArea {
		return f.area.Value()
	}
	return f.text.Value()
}

// Update routes a message to the underlying input model. For textareas the
// height is re-fitted to the content afterwards, so a growing field changes
// its frame and the keyboard geometry has to be reconciled again.
func (f *Field) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.kind == KindTextArea {
		f.area, cmd = f.area.Update(msg)
		f.fitAreaHeight()
		return cmd
	}
	f.text, cmd = f.text.Update(msg)
	return cmd
}

func (f *Field) fitAreaHeight() {
	h := f.area.LineCount()
	if h < textAreaMinHeight {
		h = textAreaMinHeight
	}
	if h > textAreaMaxHeight {
		h = textAreaMaxHeight
	}
	if h != f.area.Height() {
		f.area.SetHeight(h)
	}
}

// InputHeight is the number of rows the input box itself occupies,
// excluding the label line.
func (f *Field) InputHeight() int {
	if f.kind == KindTextArea {
		return f.area.Height()
	}
	return 1
}

// View renders label plus input box.
func (f *Field) View() string {
	var b strings.Builder
	label := f.Label
	if f.Focused() {
		b.WriteString(focusedLabelStyle.Render(label))
	} else {
		b.WriteString(labelStyle.Render(label))
	}
	b.WriteString("\n")
	if f.kind == KindTextArea {
		b.WriteString(f.area.View())
	} else {
		b.WriteString(f.text.View())
	}
	return b.String()
}

// lineRange is the half-open row interval a field's input box occupies in
// content coordinates.
type lineRange struct {
	start, end int
}

func (r lineRange) contains(line int) bool { return line >= r.start && line < r.end }

// renderForm renders all fields into content lines and records where each
// field's input box landed. One blank separator line follows every field.
func renderForm(fields []*Field) (lines []string, ranges []lineRange) {
	ranges = make([]lineRange, len(fields))
	for i, f := range fields {
		fieldLines := strings.Split(f.View(), "\n")
		// First line is the label; the rest belong to the input box.
		inputStart := len(lines) + 1
		ranges[i] = lineRange{start: inputStart, end: inputStart + f.InputHeight()}
		lines = append(lines, fieldLines...)
		lines = append(lines, "")
	}
	return lines, ranges
}
