package inset

// minVisibleHeight is the smallest keyboard visible height (container
// bottom to keyboard top) still treated as a docked keyboard. Anything
// below it is a degenerate frame (floating/undocked keyboard, or a frame
// already sliding off the bottom) and skips adjustment.
const minVisibleHeight = 20

// Snapshot captures the frames one transition is computed from, all in the
// shared screen space. It is rebuilt from scratch on every transition: any
// of the source frames may have changed since the last one (rotation, a
// layout pass, a different focused input).
type Snapshot struct {
	Container      Rect
	Scroll         Rect
	Input          Rect
	SafeAreaBottom float64
}

// Adjustment is the result of one transition computation: the new bottom
// inset for the scroll container, and how far the content offset must move
// to bring the focused input into view (zero when it is already visible).
type Adjustment struct {
	BottomInset float64
	OffsetDelta float64
}

// computeAdjustment derives the inset/offset changes that keep the focused
// input visible above the keyboard. baseline is the bottom inset captured
// at session start, distance the configured breathing room between input
// and keyboard. ok is false for a degenerate keyboard frame.
func computeAdjustment(snap Snapshot, keyboard Rect, baseline, distance float64) (Adjustment, bool) {
	// How much of the keyboard is actually on screen: container bottom to
	// keyboard top. A sliver means the frame is floating or on its way out.
	visibleHeight := snap.Container.MaxY() - keyboard.Y
	if visibleHeight < minVisibleHeight {
		return Adjustment{}, false
	}
	// The keyboard's top edge bounds the visible viewport.
	visibleBottom := keyboard.Y

	// Reserve breathing room below the input before the visibility check.
	input := snap.Input
	input.H += distance

	// How much of the scroll container the keyboard covers. The safe-area
	// bottom is already reserved by the host and must not be counted twice.
	overlap := snap.Scroll.MaxY() - keyboard.Y
	adj := Adjustment{
		BottomInset: baseline + overlap - snap.SafeAreaBottom + distance,
	}

	if input.InsideVertically(snap.Container.Y, visibleBottom) {
		return adj, true
	}
	adj.OffsetDelta = input.MaxY() - visibleBottom
	return adj, true
}
