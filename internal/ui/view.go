package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("scrollguard — kiosk form"))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(10, m.width))))
	b.WriteString("\n")

	visible := m.height - headerRows - bottomRows(&m)
	if visible < 1 {
		visible = 1
	}

	var palette string
	if m.palette.open {
		palette = m.paletteView()
		visible -= lipgloss.Height(palette)
		if visible < 0 {
			visible = 0
		}
		b.WriteString(palette)
		b.WriteString("\n")
	}

	offsetRows, insetRows := m.scroll.DisplayRows()
	content := strings.Join(m.contentLines, "\n") + strings.Repeat("\n", insetRows)
	m.viewport.Width = m.width
	m.viewport.Height = visible
	m.viewport.SetContent(content)
	m.viewport.SetYOffset(offsetRows)
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.keyboard.Height() > 0 {
		b.WriteString(m.keyboard.View())
	} else {
		b.WriteString(m.footerView())
	}
	return b.String()
}

func (m Model) paletteView() string {
	var rows []string
	rows = append(rows, m.palette.input.View())
	labels := m.fieldLabels()
	for pos, idx := range m.palette.matches {
		if pos >= 6 {
			break
		}
		label := labels[idx]
		if pos == m.palette.cursor {
			rows = append(rows, paletteCursorStyle.Render("> "+label))
		} else {
			rows = append(rows, paletteItemStyle.Render("  "+label))
		}
	}
	return paletteBoxStyle.Render(strings.Join(rows, "\n"))
}

// footerView is the help bar living in the safe area. It carries the
// session counters so the adjustment behavior is visible while playing
// with the demo.
func (m Model) footerView() string {
	ms := m.session.Metrics()
	leftStyle := helpStyle
	left := m.statusMsg
	if left == "" {
		left = "tab focus · ctrl+p jump · ctrl+y copy · esc dismiss · ctrl+c quit"
	} else {
		leftStyle = statusStyle
	}
	right := fmt.Sprintf("adj %d · scroll %d · skip %d · dismiss %d",
		ms.Adjusted, ms.Scrolled,
		ms.SkippedNoFocus+ms.SkippedKind+ms.SkippedDegenerate,
		ms.Dismissals)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		return leftStyle.Render(truncate(left, max(0, m.width)))
	}
	return leftStyle.Render(left) + strings.Repeat(" ", gap) + metricsStyle.Render(right)
}

func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return ""
	}
	return string(r[:w-1]) + "…"
}
