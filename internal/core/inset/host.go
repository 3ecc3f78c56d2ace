package inset

import "time"

// Kind identifies a category of text input ("textinput", "textarea", ...).
// Which kinds a session reacts to is configured per session.
type Kind string

// Input is the element currently receiving text entry, as the host sees it.
// The coordinator never inspects inputs beyond these two methods.
type Input interface {
	// InputKind classifies the input for the supported-kinds check.
	InputKind() Kind
	// Blur resigns focus from the input.
	Blur()
}

// FocusProvider reports which input currently has focus, if any.
type FocusProvider interface {
	FocusedInput() (Input, bool)
}

// GeometryContext resolves the frames the coordinator works with.
// Contract: every frame is already normalized into the one shared screen
// space; the coordinator does no coordinate conversion of its own.
type GeometryContext interface {
	// ContainerFrame is the frame of the container view (the window region
	// the keyboard slides into).
	ContainerFrame() Rect
	// ScrollFrame is the frame of the scroll container inside the container.
	ScrollFrame() Rect
	// InputFrame is the frame of the given input. ok is false when the
	// input is not currently laid out.
	InputFrame(in Input) (frame Rect, ok bool)
	// SafeAreaBottom is the height already reserved at the bottom of the
	// container by the host (help bar, home indicator). It is subtracted
	// from the computed inset so reserved space is not counted twice.
	SafeAreaBottom() float64
}

// ScrollContainer is the one piece of mutable state the coordinator drives.
// While a session is observing, no other writer may touch the insets or the
// offset; that is a caller obligation, not something the session enforces.
type ScrollContainer interface {
	ContentInset() Insets
	SetContentInset(Insets)

	// The indicator inset mirrors the content inset; it is purely cosmetic.
	ScrollIndicatorInset() Insets
	SetScrollIndicatorInset(Insets)

	ContentOffset() Point
	SetContentOffset(Point)
}

// KeyboardObserver delivers keyboard transitions. The returned cancel func
// must be safe to call more than once and when nothing was ever delivered.
type KeyboardObserver interface {
	SubscribeKeyboard(onChange func(Transition), onHide func()) (cancel func())
}

// TapObserver delivers taps that land anywhere in the container. touched is
// the input under the tap, or nil when the tap hit empty space or a
// non-input element. Subscribing must not block normal tap delivery.
type TapObserver interface {
	SubscribeTaps(onTap func(touched Input)) (cancel func())
}

// Animator applies a mutation in sync with the keyboard's own animation.
// apply must run against the logical state synchronously; the visual
// catch-up is interpolated over d. A nil Animator or d <= 0 means the
// session applies the mutation immediately instead.
type Animator interface {
	Animate(d time.Duration, curve Curve, apply func())
}
