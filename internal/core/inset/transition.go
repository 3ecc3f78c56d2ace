package inset

import "time"

// Curve selects the easing applied to an animated mutation.
type Curve int

const (
	CurveLinear Curve = iota
	CurveEaseIn
	CurveEaseOut
	CurveEaseInOut
	CurveSpring
)

func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveEaseIn:
		return "ease-in"
	case CurveEaseOut:
		return "ease-out"
	case CurveEaseInOut:
		return "ease-in-out"
	case CurveSpring:
		return "spring"
	default:
		return "linear"
	}
}

// Transition describes one keyboard geometry change as delivered by the
// host: the frame the keyboard is moving to, in screen space, and the
// animation the host uses to get there. Consumed once, then discarded.
type Transition struct {
	EndFrame Rect
	Duration time.Duration
	Curve    Curve
}
