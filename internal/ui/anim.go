package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"scrollguard/internal/core/inset"
)

const (
	animFPS       = 60
	frameInterval = time.Second / animFPS

	springFrequency = 7.0
	springDamping   = 0.9
)

// FrameAnimator implements the session's animated-mutation primitive on a
// frame-stepped event loop. Animate applies the mutation to the scroll
// region's logical state right away and then eases the displayed values
// toward it, one step per tick. A transition arriving mid-flight replaces
// the running animation; the displayed values just head for the new target.
type FrameAnimator struct {
	scroll  *ScrollRegion
	current *animation
}

var _ inset.Animator = (*FrameAnimator)(nil)

type animation struct {
	duration time.Duration
	elapsed  time.Duration
	curve    inset.Curve

	fromInset, toInset   float64
	fromOffset, toOffset float64

	spring    harmonica.Spring
	insetVel  float64
	offsetVel float64
}

// NewFrameAnimator creates an animator driving the given scroll region.
func NewFrameAnimator(scroll *ScrollRegion) *FrameAnimator {
	return &FrameAnimator{scroll: scroll}
}

// Animate runs apply against the logical scroll state and schedules the
// visual catch-up over d.
func (a *FrameAnimator) Animate(d time.Duration, curve inset.Curve, apply func()) {
	fromInset := a.scroll.displayInsetBottom
	fromOffset := a.scroll.displayOffsetY
	apply()
	if d <= 0 {
		a.current = nil
		a.scroll.SnapDisplay()
		return
	}
	next := &animation{
		duration:   d,
		curve:      curve,
		fromInset:  fromInset,
		toInset:    a.scroll.content.Bottom,
		fromOffset: fromOffset,
		toOffset:   a.scroll.offset.Y,
	}
	if curve == inset.CurveSpring {
		next.spring = harmonica.NewSpring(harmonica.FPS(animFPS), springFrequency, springDamping)
		if a.current != nil {
			// carry momentum across superseding transitions
			next.insetVel = a.current.insetVel
			next.offsetVel = a.current.offsetVel
		}
	}
	a.current = next
}

// Active reports whether a visual catch-up is still running.
func (a *FrameAnimator) Active() bool { return a.current != nil }

// Step advances the running animation by dt and updates the displayed
// values. It is a no-op when nothing is animating.
func (a *FrameAnimator) Step(dt time.Duration) {
	anim := a.current
	if anim == nil {
		return
	}
	if anim.curve == inset.CurveSpring {
		a.stepSpring(anim)
		return
	}
	anim.elapsed += dt
	t := float64(anim.elapsed) / float64(anim.duration)
	if t >= 1 {
		a.current = nil
		a.scroll.SnapDisplay()
		return
	}
	e := ease(anim.curve, t)
	a.scroll.displayInsetBottom = anim.fromInset + (anim.toInset-anim.fromInset)*e
	a.scroll.displayOffsetY = anim.fromOffset + (anim.toOffset-anim.fromOffset)*e
}

func (a *FrameAnimator) stepSpring(anim *animation) {
	a.scroll.displayInsetBottom, anim.insetVel = anim.spring.Update(
		a.scroll.displayInsetBottom, anim.insetVel, anim.toInset)
	a.scroll.displayOffsetY, anim.offsetVel = anim.spring.Update(
		a.scroll.displayOffsetY, anim.offsetVel, anim.toOffset)

	const settle = 0.05
	if math.Abs(a.scroll.displayInsetBottom-anim.toInset) < settle &&
		math.Abs(a.scroll.displayOffsetY-anim.toOffset) < settle &&
		math.Abs(anim.insetVel) < settle && math.Abs(anim.offsetVel) < settle {
		a.current = nil
		a.scroll.SnapDisplay()
	}
}

// ease maps progress t in [0,1] through the given curve (cubic easing).
func ease(c inset.Curve, t float64) float64 {
	switch c {
	case inset.CurveEaseIn:
		return t * t * t
	case inset.CurveEaseOut:
		u := 1 - t
		return 1 - u*u*u
	case inset.CurveEaseInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	default:
		return t
	}
}
