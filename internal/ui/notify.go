package ui

import "scrollguard/internal/core/inset"

// Notifier is the in-process stand-in for platform keyboard and tap
// notifications. The update loop publishes; sessions subscribe. Cancel
// funcs are idempotent and safe to call when nothing was ever delivered.
type Notifier struct {
	nextID   int
	keyboard map[int]keyboardHandlers
	taps     map[int]func(inset.Input)
}

type keyboardHandlers struct {
	onChange func(inset.Transition)
	onHide   func()
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		keyboard: make(map[int]keyboardHandlers),
		taps:     make(map[int]func(inset.Input)),
	}
}

var _ inset.KeyboardObserver = (*Notifier)(nil)
var _ inset.TapObserver = (*Notifier)(nil)

// SubscribeKeyboard registers keyboard handlers.
func (n *Notifier) SubscribeKeyboard(onChange func(inset.Transition), onHide func()) func() {
	id := n.nextID
	n.nextID++
	n.keyboard[id] = keyboardHandlers{onChange: onChange, onHide: onHide}
	return func() { delete(n.keyboard, id) }
}

// SubscribeTaps registers a tap handler. Taps keep flowing to the rest of
// the UI regardless of how many subscribers are registered.
func (n *Notifier) SubscribeTaps(onTap func(inset.Input)) func() {
	id := n.nextID
	n.nextID++
	n.taps[id] = onTap
	return func() { delete(n.taps, id) }
}

// KeyboardChanging delivers a transition to all subscribers.
func (n *Notifier) KeyboardChanging(t inset.Transition) {
	for _, h := range n.keyboard {
		if h.onChange != nil {
			h.onChange(t)
		}
	}
}

// KeyboardHiding signals that the keyboard is going away.
func (n *Notifier) KeyboardHiding() {
	for _, h := range n.keyboard {
		if h.onHide != nil {
			h.onHide()
		}
	}
}

// Tap delivers a tap. touched is the input under the tap, or nil.
func (n *Notifier) Tap(touched inset.Input) {
	for _, h := range n.taps {
		if h != nil {
			h(touched)
		}
	}
}
