package ui

import (
	"math"

	"scrollguard/internal/core/inset"
)

// Space names a coordinate space the converter understands.
type Space int

const (
	// SpaceScreen is the shared space everything is normalized into:
	// origin at the window's top-left cell, Y growing down.
	SpaceScreen Space = iota
	// SpaceContent is the scroll content's own space: line 0 is the first
	// content line regardless of scroll position.
	SpaceContent
)

// ScrollRegion is the scroll container of the demo screen. It carries two
// copies of inset and offset: the logical values the session mutates, and
// the displayed values the animator eases toward them. The session always
// reads logical state, so a transition arriving mid-animation computes
// against the final values of the previous one, not a half-way frame.
type ScrollRegion struct {
	frame inset.Rect // screen space, set on every layout pass

	content   inset.Insets
	indicator inset.Insets
	offset    inset.Point

	displayInsetBottom float64
	displayOffsetY     float64
}

var _ inset.ScrollContainer = (*ScrollRegion)(nil)

func (s *ScrollRegion) ContentInset() inset.Insets       { return s.content }
func (s *ScrollRegion) SetContentInset(in inset.Insets)  { s.content = in }
func (s *ScrollRegion) ScrollIndicatorInset() inset.Insets { return s.indicator }
func (s *ScrollRegion) SetScrollIndicatorInset(in inset.Insets) { s.indicator = in }
func (s *ScrollRegion) ContentOffset() inset.Point       { return s.offset }
func (s *ScrollRegion) SetContentOffset(p inset.Point)   { s.offset = p }

// SnapDisplay jumps the displayed values to the logical ones, ending any
// visual catch-up.
func (s *ScrollRegion) SnapDisplay() {
	s.displayInsetBottom = s.content.Bottom
	s.displayOffsetY = s.offset.Y
}

// DisplayRows returns the rendered offset and bottom padding in whole rows.
func (s *ScrollRegion) DisplayRows() (offsetY, insetBottom int) {
	return int(math.Round(s.displayOffsetY)), int(math.Round(s.displayInsetBottom))
}

// converter translates rectangles between content and screen space using
// the scroll region's frame and logical offset. Frames handed to the
// session go through this, honoring the contract that the core only ever
// sees one space.
type converter struct {
	scroll *ScrollRegion
}

func (c converter) Convert(r inset.Rect, from, to Space) inset.Rect {
	if from == to {
		return r
	}
	switch to {
	case SpaceScreen:
		r.X += c.scroll.frame.X
		r.Y += c.scroll.frame.Y - c.scroll.offset.Y
	case SpaceContent:
		r.X -= c.scroll.frame.X
		r.Y -= c.scroll.frame.Y - c.scroll.offset.Y
	}
	return r
}

// layoutState is recomputed on every render/resize pass and shared with the
// geometry context, so the session always sees the current frames.
type layoutState struct {
	width, height int
	fieldRanges   []lineRange // content-space rows of each field's input box
	contentLines  int
}

// geometryContext resolves the frames the session asks for. All results are
// in screen space.
type geometryContext struct {
	layout *layoutState
	scroll *ScrollRegion
	fields []*Field
	conv   converter
}

var _ inset.GeometryContext = (*geometryContext)(nil)

func (g *geometryContext) ContainerFrame() inset.Rect {
	return inset.Rect{W: float64(g.layout.width), H: float64(g.layout.height)}
}

func (g *geometryContext) ScrollFrame() inset.Rect { return g.scroll.frame }

func (g *geometryContext) InputFrame(in inset.Input) (inset.Rect, bool) {
	f, ok := in.(*Field)
	if !ok {
		return inset.Rect{}, false
	}
	for i, candidate := range g.fields {
		if candidate != f {
			continue
		}
		if i >= len(g.layout.fieldRanges) {
			return inset.Rect{}, false
		}
		r := g.layout.fieldRanges[i]
		contentFrame := inset.Rect{
			X: 0,
			Y: float64(r.start),
			W: g.scroll.frame.W,
			H: float64(r.end - r.start),
		}
		return g.conv.Convert(contentFrame, SpaceContent, SpaceScreen), true
	}
	return inset.Rect{}, false
}

// SafeAreaBottom is the help-bar row reserved at the bottom of the window.
// It is part of the baseline inset, so the session subtracts it again when
// the keyboard covers it.
func (g *geometryContext) SafeAreaBottom() float64 { return safeAreaRows }

// focusProvider finds the focused field, if any.
type focusProvider struct {
	fields []*Field
}

var _ inset.FocusProvider = (*focusProvider)(nil)

func (p *focusProvider) FocusedInput() (inset.Input, bool) {
	for _, f := range p.fields {
		if f.Focused() {
			return f, true
		}
	}
	return nil, false
}
