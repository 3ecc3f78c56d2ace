package ui

import "github.com/charmbracelet/lipgloss"

// --- UI Styles ---
var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#8942E1"))
	dividerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3AC4BA"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	metricsStyle      = lipgloss.NewStyle().Faint(true)

	keyStyle        = lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("252"))
	keySpecialStyle = lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("#FFAB78"))
	panelStyle      = lipgloss.NewStyle().Background(lipgloss.Color("235"))

	paletteBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8942E1")).
			Padding(0, 1)
	paletteCursorStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("#2A2B3D"))
	paletteItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)
