package inset

import (
	"testing"
	"time"
)

// --- test doubles ---

type fakeInput struct {
	kind    Kind
	blurred int
}

func (f *fakeInput) InputKind() Kind { return f.kind }
func (f *fakeInput) Blur()           { f.blurred++ }

type fakeFocus struct {
	input Input
}

func (f *fakeFocus) FocusedInput() (Input, bool) {
	if f.input == nil {
		return nil, false
	}
	return f.input, true
}

type fakeGeometry struct {
	container Rect
	scroll    Rect
	input     Rect
	inputOK   bool
	safeArea  float64
}

func (f *fakeGeometry) ContainerFrame() Rect { return f.container }
func (f *fakeGeometry) ScrollFrame() Rect    { return f.scroll }
func (f *fakeGeometry) InputFrame(Input) (Rect, bool) {
	return f.input, f.inputOK
}
func (f *fakeGeometry) SafeAreaBottom() float64 { return f.safeArea }

type fakeScroll struct {
	content   Insets
	indicator Insets
	offset    Point
}

func (f *fakeScroll) ContentInset() Insets              { return f.content }
func (f *fakeScroll) SetContentInset(in Insets)         { f.content = in }
func (f *fakeScroll) ScrollIndicatorInset() Insets      { return f.indicator }
func (f *fakeScroll) SetScrollIndicatorInset(in Insets) { f.indicator = in }
func (f *fakeScroll) ContentOffset() Point              { return f.offset }
func (f *fakeScroll) SetContentOffset(p Point)          { f.offset = p }

type fakeKeyboard struct {
	subscribed int
	cancelled  int
}

func (f *fakeKeyboard) SubscribeKeyboard(func(Transition), func()) func() {
	f.subscribed++
	return func() { f.cancelled++ }
}

type fakeTaps struct {
	subscribed int
	cancelled  int
	onTap      func(Input)
}

func (f *fakeTaps) SubscribeTaps(onTap func(Input)) func() {
	f.subscribed++
	f.onTap = onTap
	return func() { f.cancelled++ }
}

// recordingAnimator captures the animation request and applies immediately.
type recordingAnimator struct {
	calls    int
	duration time.Duration
	curve    Curve
}

func (r *recordingAnimator) Animate(d time.Duration, c Curve, apply func()) {
	r.calls++
	r.duration = d
	r.curve = c
	apply()
}

func testHost() (Host, *fakeFocus, *fakeGeometry, *fakeScroll) {
	focus := &fakeFocus{input: &fakeInput{kind: "textinput"}}
	geo := &fakeGeometry{
		container: Rect{W: 400, H: 800},
		scroll:    Rect{Y: 80, W: 400, H: 700},
		input:     Rect{Y: 100, W: 360, H: 30},
		inputOK:   true,
		safeArea:  34,
	}
	scroll := &fakeScroll{}
	host := Host{
		Focus:    focus,
		Geometry: geo,
		Scroll:   scroll,
		Keyboard: &fakeKeyboard{},
	}
	return host, focus, geo, scroll
}

func testConfig() Config {
	return Config{
		SupportedKinds:      []Kind{"textinput", "textarea"},
		DistanceToKeyboard:  10,
		DismissOnOutsideTap: true,
	}
}

var dockedKeyboard = Transition{EndFrame: Rect{Y: 500, W: 400, H: 300}}

// --- tests ---

func TestKeyboardChangingAppliesInsetAndMirrorsIndicator(t *testing.T) {
	host, _, _, scroll := testHost()
	s := NewSession(testConfig(), host)
	s.Start()

	s.OnKeyboardChanging(dockedKeyboard)
	if scroll.content.Bottom != 256 {
		t.Fatalf("expected content inset bottom 256, got %v", scroll.content.Bottom)
	}
	if scroll.indicator.Bottom != 256 {
		t.Fatalf("expected indicator inset to mirror content inset, got %v", scroll.indicator.Bottom)
	}
	if scroll.offset.Y != 0 {
		t.Fatalf("expected offset unchanged for visible input, got %v", scroll.offset.Y)
	}
}

func TestKeyboardChangingScrollsCoveredInput(t *testing.T) {
	host, _, geo, scroll := testHost()
	geo.input = Rect{Y: 500, W: 360, H: 40}
	s := NewSession(testConfig(), host)
	s.Start()

	s.OnKeyboardChanging(dockedKeyboard)
	if scroll.offset.Y != 50 {
		t.Fatalf("expected offset 50, got %v", scroll.offset.Y)
	}

	// A follow-up transition adds to the current offset, not to zero.
	geo.input = Rect{Y: 510, W: 360, H: 40}
	s.OnKeyboardChanging(dockedKeyboard)
	if scroll.offset.Y != 110 {
		t.Fatalf("expected offset 110 after second transition, got %v", scroll.offset.Y)
	}
}

func TestKeyboardChangingNoFocusIsNoop(t *testing.T) {
	host, focus, _, scroll := testHost()
	focus.input = nil
	s := NewSession(testConfig(), host)
	s.Start()

	s.OnKeyboardChanging(dockedKeyboard)
	if scroll.content != (Insets{}) || scroll.offset != (Point{}) {
		t.Fatalf("expected untouched scroll state, got %+v offset %+v", scroll.content, scroll.offset)
	}
	if got := s.Metrics().SkippedNoFocus; got != 1 {
		t.Fatalf("expected 1 skipped-no-focus, got %d", got)
	}
}

func TestKeyboardChangingUnsupportedKindIsNoop(t *testing.T) {
	host, focus, _, scroll := testHost()
	focus.input = &fakeInput{kind: "slider"}
	s := NewSession(testConfig(), host)
	s.Start()

	s.OnKeyboardChanging(dockedKeyboard)
	if scroll.content != (Insets{}) {
		t.Fatalf("expected untouched insets, got %+v", scroll.content)
	}
	if got := s.Metrics().SkippedKind; got != 1 {
		t.Fatalf("expected 1 skipped-kind, got %d", got)
	}
}

func TestKeyboardChangingDegenerateFrameIsNoop(t *testing.T) {
	host, _, _, scroll := testHost()
	s := NewSession(testConfig(), host)
	s.Start()

	s.OnKeyboardChanging(Transition{EndFrame: Rect{Y: 790, W: 400, H: 10}})
	if scroll.content != (Insets{}) || scroll.offset != (Point{}) {
		t.Fatalf("expected untouched scroll state for degenerate frame")
	}
	if got := s.Metrics().SkippedDegenerate; got != 1 {
		t.Fatalf("expected 1 skipped-degenerate, got %d", got)
	}
}

func TestKeyboardHidingRestoresBaseline(t *testing.T) {
	host, _, _, scroll := testHost()
	scroll.content.Bottom = 3 // pre-session inset, becomes the baseline
	s := NewSession(testConfig(), host)
	s.Start()

	s.OnKeyboardChanging(dockedKeyboard)
	if scroll.content.Bottom == 3 {
		t.Fatalf("expected inset to change while keyboard is up")
	}
	s.OnKeyboardHiding()
	if scroll.content.Bottom != 3 {
		t.Fatalf("expected baseline 3 restored, got %v", scroll.content.Bottom)
	}
	if scroll.indicator.Bottom != 3 {
		t.Fatalf("expected indicator baseline 3 restored, got %v", scroll.indicator.Bottom)
	}

	// Idempotent: hiding again changes nothing.
	s.OnKeyboardHiding()
	if scroll.content.Bottom != 3 {
		t.Fatalf("expected baseline stable on repeated hide, got %v", scroll.content.Bottom)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	host, _, _, _ := testHost()
	kb := &fakeKeyboard{}
	taps := &fakeTaps{}
	host.Keyboard = kb
	host.Taps = taps
	s := NewSession(testConfig(), host)

	s.Start()
	s.Start()
	if kb.subscribed != 1 {
		t.Fatalf("expected exactly 1 keyboard subscription, got %d", kb.subscribed)
	}
	if taps.subscribed != 1 {
		t.Fatalf("expected exactly 1 tap subscription, got %d", taps.subscribed)
	}
}

func TestStopWithoutStartIsSafe(t *testing.T) {
	host, _, _, _ := testHost()
	s := NewSession(testConfig(), host)
	s.Stop()
	s.Stop()
	if s.Observing() {
		t.Fatalf("expected inactive session")
	}
}

func TestCloseReleasesSubscriptions(t *testing.T) {
	host, _, _, _ := testHost()
	kb := &fakeKeyboard{}
	taps := &fakeTaps{}
	host.Keyboard = kb
	host.Taps = taps
	s := NewSession(testConfig(), host)

	s.Start()
	s.Close()
	if kb.cancelled != 1 || taps.cancelled != 1 {
		t.Fatalf("expected both subscriptions cancelled, got kb=%d taps=%d", kb.cancelled, taps.cancelled)
	}
	if s.Observing() {
		t.Fatalf("expected inactive session after Close")
	}

	// Start again after Close re-subscribes exactly once.
	s.Start()
	if kb.subscribed != 2 {
		t.Fatalf("expected re-subscription, got %d", kb.subscribed)
	}
}

func TestBaselineCapturedAtStartNotAtConstruction(t *testing.T) {
	host, _, _, scroll := testHost()
	s := NewSession(testConfig(), host)
	scroll.content.Bottom = 7 // set between NewSession and Start
	s.Start()

	s.OnKeyboardChanging(dockedKeyboard)
	s.OnKeyboardHiding()
	if scroll.content.Bottom != 7 {
		t.Fatalf("expected baseline 7 captured at Start, got %v", scroll.content.Bottom)
	}
}

func TestMutationsRunThroughAnimator(t *testing.T) {
	host, _, _, scroll := testHost()
	anim := &recordingAnimator{}
	host.Animator = anim
	s := NewSession(testConfig(), host)
	s.Start()

	s.OnKeyboardChanging(Transition{
		EndFrame: Rect{Y: 500, W: 400, H: 300},
		Duration: 250 * time.Millisecond,
		Curve:    CurveEaseInOut,
	})
	if anim.calls != 1 {
		t.Fatalf("expected 1 animator call, got %d", anim.calls)
	}
	if anim.duration != 250*time.Millisecond || anim.curve != CurveEaseInOut {
		t.Fatalf("expected animation metadata passed through, got %v %v", anim.duration, anim.curve)
	}
	if scroll.content.Bottom != 256 {
		t.Fatalf("expected inset applied via animator, got %v", scroll.content.Bottom)
	}
}

func TestZeroDurationStillAppliesImmediately(t *testing.T) {
	host, _, _, scroll := testHost()
	anim := &recordingAnimator{}
	host.Animator = anim
	s := NewSession(testConfig(), host)
	s.Start()

	s.OnKeyboardChanging(dockedKeyboard) // no animation metadata on the event
	if anim.duration != 0 {
		t.Fatalf("expected zero duration handed to the animator, got %v", anim.duration)
	}
	if scroll.content.Bottom != 256 {
		t.Fatalf("expected inset applied immediately, got %v", scroll.content.Bottom)
	}
}

func TestNoAnimatorAppliesDirectly(t *testing.T) {
	host, _, _, scroll := testHost()
	s := NewSession(testConfig(), host)
	s.Start()

	s.OnKeyboardChanging(dockedKeyboard)
	if scroll.content.Bottom != 256 {
		t.Fatalf("expected inset applied without an animator, got %v", scroll.content.Bottom)
	}
}

func TestDismissOnTapResignsFocusOutside(t *testing.T) {
	host, focus, _, _ := testHost()
	in := &fakeInput{kind: "textinput"}
	focus.input = in
	s := NewSession(testConfig(), host)
	s.Start()

	if !s.ShouldDismissOnTap(nil) {
		t.Fatalf("expected tap gesture to proceed")
	}
	if in.blurred != 1 {
		t.Fatalf("expected focus resigned once, got %d", in.blurred)
	}
	if got := s.Metrics().Dismissals; got != 1 {
		t.Fatalf("expected 1 dismissal, got %d", got)
	}
}

func TestDismissOnTapKeepsFocusOnEligibleInput(t *testing.T) {
	host, focus, _, _ := testHost()
	in := &fakeInput{kind: "textinput"}
	focus.input = in
	s := NewSession(testConfig(), host)
	s.Start()

	// Tapping another eligible input must not resign focus but still lets
	// the gesture through.
	if !s.ShouldDismissOnTap(&fakeInput{kind: "textarea"}) {
		t.Fatalf("expected tap gesture to proceed")
	}
	if in.blurred != 0 {
		t.Fatalf("expected focus kept, got %d blurs", in.blurred)
	}
}

func TestDismissOnTapUnsupportedFocusLetsTapThrough(t *testing.T) {
	host, focus, _, _ := testHost()
	in := &fakeInput{kind: "slider"}
	focus.input = in
	s := NewSession(testConfig(), host)
	s.Start()

	if !s.ShouldDismissOnTap(nil) {
		t.Fatalf("expected tap gesture to proceed for unsupported focus")
	}
	if in.blurred != 0 {
		t.Fatalf("expected no blur for unsupported focus, got %d", in.blurred)
	}
}

func TestTapSubscriptionDrivesDismissal(t *testing.T) {
	host, focus, _, _ := testHost()
	taps := &fakeTaps{}
	host.Taps = taps
	in := &fakeInput{kind: "textinput"}
	focus.input = in
	s := NewSession(testConfig(), host)
	s.Start()

	if taps.onTap == nil {
		t.Fatalf("expected tap handler registered")
	}
	taps.onTap(nil)
	if in.blurred != 1 {
		t.Fatalf("expected delivered tap to resign focus, got %d blurs", in.blurred)
	}
}

func TestNoTapSubscriptionWhenDismissDisabled(t *testing.T) {
	host, _, _, _ := testHost()
	taps := &fakeTaps{}
	host.Taps = taps
	cfg := testConfig()
	cfg.DismissOnOutsideTap = false
	s := NewSession(cfg, host)
	s.Start()

	if taps.subscribed != 0 {
		t.Fatalf("expected no tap subscription, got %d", taps.subscribed)
	}
}
