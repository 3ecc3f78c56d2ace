// Package inset keeps a focused text input visible above an on-screen
// keyboard. A Session watches keyboard transitions delivered by its host
// and, for each one, recomputes the scroll container's bottom inset and
// content offset so the focused input stays above the keyboard, driving the
// changes through the host's animation primitive.
package inset

import "time"

// Host bundles the capabilities a session consumes. Focus, Geometry,
// Scroll and Keyboard are required; Taps and Animator are optional (no tap
// dismissal, immediate mutation application).
type Host struct {
	Focus    FocusProvider
	Geometry GeometryContext
	Scroll   ScrollContainer
	Keyboard KeyboardObserver
	Taps     TapObserver
	Animator Animator
}

// Session owns the keyboard-visibility adjustment for one screen. It holds
// the screen's scroll container for the session's lifetime: exactly one
// session exists per screen, created when the screen becomes visible and
// closed when it goes away. All methods must run on the host's UI event
// loop; the session does no locking of its own.
type Session struct {
	cfg   Config
	kinds map[Kind]struct{}
	host  Host

	metrics *Metrics

	// baselineBottom is the scroll container's bottom inset captured at
	// Start. It never changes afterwards and is the restore point when the
	// keyboard hides.
	baselineBottom float64
	observing      bool

	cancelKeyboard func()
	cancelTaps     func()
}

// NewSession creates an inactive session. Call Start to begin observing.
func NewSession(cfg Config, host Host) *Session {
	return &Session{
		cfg:     cfg,
		kinds:   cfg.kindSet(),
		host:    host,
		metrics: &Metrics{},
	}
}

// Metrics exposes the session's activity counters.
func (s *Session) Metrics() MetricsSnapshot { return s.metrics.Snapshot() }

// Observing reports whether the session is currently subscribed.
func (s *Session) Observing() bool { return s.observing }

// Start captures the baseline bottom inset and subscribes to keyboard and
// tap events. Calling Start while already observing is a no-op, so a screen
// that registers on every appearance never stacks duplicate listeners.
func (s *Session) Start() {
	if s.observing {
		return
	}
	s.baselineBottom = s.host.Scroll.ContentInset().Bottom
	s.cancelKeyboard = s.host.Keyboard.SubscribeKeyboard(s.OnKeyboardChanging, s.OnKeyboardHiding)
	if s.cfg.DismissOnOutsideTap && s.host.Taps != nil {
		s.cancelTaps = s.host.Taps.SubscribeTaps(func(touched Input) {
			s.ShouldDismissOnTap(touched)
		})
	}
	s.observing = true
}

// Stop releases all subscriptions. Safe to call when never started and safe
// to call repeatedly.
func (s *Session) Stop() {
	if !s.observing {
		return
	}
	if s.cancelKeyboard != nil {
		s.cancelKeyboard()
		s.cancelKeyboard = nil
	}
	if s.cancelTaps != nil {
		s.cancelTaps()
		s.cancelTaps = nil
	}
	s.observing = false
}

// Close tears the session down. It exists so owners can defer cleanup and
// forget about Stop; a closed session holds no registrations.
func (s *Session) Close() { s.Stop() }

// OnKeyboardChanging reacts to one keyboard transition. Every failed guard
// degrades to a silent no-op: no focused input, an unsupported input kind
// and a degenerate keyboard frame all leave the scroll container untouched.
func (s *Session) OnKeyboardChanging(t Transition) {
	s.metrics.transitions.Add(1)

	input, ok := s.host.Focus.FocusedInput()
	if !ok || input == nil {
		s.metrics.skippedNoFocus.Add(1)
		return
	}
	if _, supported := s.kinds[input.InputKind()]; !supported {
		s.metrics.skippedKind.Add(1)
		return
	}
	frame, ok := s.host.Geometry.InputFrame(input)
	if !ok {
		s.metrics.skippedNoFocus.Add(1)
		return
	}

	snap := Snapshot{
		Container:      s.host.Geometry.ContainerFrame(),
		Scroll:         s.host.Geometry.ScrollFrame(),
		Input:          frame,
		SafeAreaBottom: s.host.Geometry.SafeAreaBottom(),
	}
	adj, ok := computeAdjustment(snap, t.EndFrame, s.baselineBottom, s.cfg.DistanceToKeyboard)
	if !ok {
		s.metrics.skippedDegenerate.Add(1)
		return
	}

	s.metrics.adjusted.Add(1)
	if adj.OffsetDelta != 0 {
		s.metrics.scrolled.Add(1)
	}
	s.runAnimated(t.Duration, t.Curve, func() {
		s.setBottomInset(adj.BottomInset)
		if adj.OffsetDelta != 0 {
			off := s.host.Scroll.ContentOffset()
			off.Y += adj.OffsetDelta
			s.host.Scroll.SetContentOffset(off)
		}
	})
}

// OnKeyboardHiding restores the bottom inset captured at Start. The content
// offset is left alone. Repeated calls are harmless.
func (s *Session) OnKeyboardHiding() {
	s.metrics.hides.Add(1)
	s.runAnimated(0, CurveLinear, func() {
		s.setBottomInset(s.baselineBottom)
	})
}

// ShouldDismissOnTap decides what a tap outside the keyboard means. The tap
// gesture itself is never blocked (the return value is always true, so the
// host keeps delivering the tap to whatever was hit); the only question is
// whether focus gets resigned first. Focus is resigned when a supported
// input is focused and the touched element is not itself a supported input.
func (s *Session) ShouldDismissOnTap(touched Input) bool {
	focused, ok := s.host.Focus.FocusedInput()
	if !ok || focused == nil {
		return true
	}
	if _, supported := s.kinds[focused.InputKind()]; !supported {
		return true
	}
	if touched != nil {
		if _, onInput := s.kinds[touched.InputKind()]; onInput {
			// Tap landed back on an eligible input: keep focus.
			return true
		}
	}
	s.metrics.dismissals.Add(1)
	focused.Blur()
	return true
}

func (s *Session) setBottomInset(bottom float64) {
	content := s.host.Scroll.ContentInset()
	content.Bottom = bottom
	s.host.Scroll.SetContentInset(content)

	indicator := s.host.Scroll.ScrollIndicatorInset()
	indicator.Bottom = bottom
	s.host.Scroll.SetScrollIndicatorInset(indicator)
}

func (s *Session) runAnimated(d time.Duration, curve Curve, apply func()) {
	if s.host.Animator == nil {
		apply()
		return
	}
	// Zero durations still go through the animator so it can settle any
	// visual state it tracks alongside the logical values.
	s.host.Animator.Animate(d, curve, apply)
}
