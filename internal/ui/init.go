package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"scrollguard/internal/config"
	"scrollguard/internal/core/inset"
)

// InitialModel assembles the demo screen and starts its inset session.
func InitialModel(cfg config.Config) Model {
	fields := []*Field{
		NewTextField("Full name", "Ada Lovelace"),
		NewTextField("Email", "ada@example.com"),
		NewTextField("Phone", "+44 20 7946 0000"),
		NewTextField("Street", "12 St James's Square"),
		NewTextField("City", "London"),
		NewTextField("Postcode", "SW1Y 4JH"),
		NewTextAreaField("Bio", "A few lines about yourself…"),
		NewTextField("Website", "https://"),
		NewTextAreaField("Notes", "Anything else we should know?"),
	}

	scroll := &ScrollRegion{}
	// The help bar overlays the scroll frame's last row, so the baseline
	// inset reserves it. This is the value the session restores on hide
	// and subtracts from keyboard overlap as the safe area.
	scroll.content = inset.Insets{Bottom: safeAreaRows}
	scroll.indicator = inset.Insets{Bottom: safeAreaRows}
	scroll.SnapDisplay()

	layout := &layoutState{}
	notifier := NewNotifier()
	animator := NewFrameAnimator(scroll)
	keyboard := NewKeyboard(
		cfg.KeyboardHeight,
		time.Duration(cfg.AnimationMs)*time.Millisecond,
		parseCurve(cfg.AnimationCurve),
	)

	geo := &geometryContext{
		layout: layout,
		scroll: scroll,
		fields: fields,
		conv:   converter{scroll: scroll},
	}
	session := inset.NewSession(
		inset.Config{
			SupportedKinds:      []inset.Kind{KindTextInput, KindTextArea},
			DistanceToKeyboard:  float64(cfg.DistanceToKeyboard),
			DismissOnOutsideTap: cfg.DismissOnOutsideTap,
		},
		inset.Host{
			Focus:    &focusProvider{fields: fields},
			Geometry: geo,
			Scroll:   scroll,
			Keyboard: notifier,
			Taps:     notifier,
			Animator: animator,
		},
	)
	session.Start()

	pi := textinput.New()
	pi.Placeholder = "Jump to field…"
	pi.CharLimit = 100
	pi.Width = 30

	m := Model{
		cfg:       cfg,
		fields:    fields,
		viewport:  viewport.New(80, 24),
		scroll:    scroll,
		layout:    layout,
		notifier:  notifier,
		animator:  animator,
		keyboard:  keyboard,
		session:   session,
		filterCfg: defaultFilterConfig,
		statusMsg: "Click a field or press tab to start typing.",
	}
	m.palette.input = pi
	m.width, m.height = 80, 24
	m.keyboard.SetWidth(m.width)
	m.reflow()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// parseCurve maps a config curve name to the session's curve enum.
func parseCurve(s string) inset.Curve {
	switch s {
	case "linear":
		return inset.CurveLinear
	case "ease-in":
		return inset.CurveEaseIn
	case "ease-out":
		return inset.CurveEaseOut
	case "ease-in-out":
		return inset.CurveEaseInOut
	case "spring":
		return inset.CurveSpring
	default:
		return inset.CurveEaseInOut
	}
}
