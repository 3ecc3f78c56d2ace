package ui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"scrollguard/internal/core/inset"
)

// Special key tokens. Anything else on a layout is typed literally.
const (
	keyShift   = "⇧"
	keyBksp    = "⌫"
	keySpace   = "⎵"
	keyEnter   = "⏎"
	keySymbols = "#+="
	keyLetters = "abc"
	keyDone    = "⌄"
)

type keyboardPage int

const (
	pageLower keyboardPage = iota
	pageUpper
	pageSymbols
)

var keyboardPages = map[keyboardPage][][]string{
	pageLower: {
		{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"},
		{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p"},
		{"a", "s", "d", "f", "g", "h", "j", "k", "l"},
		{keyShift, "z", "x", "c", "v", "b", "n", "m", keyBksp},
		{keySymbols, ",", keySpace, ".", keyEnter, keyDone},
	},
	pageUpper: {
		{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"},
		{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
		{"A", "S", "D", "F", "G", "H", "J", "K", "L"},
		{keyShift, "Z", "X", "C", "V", "B", "N", "M", keyBksp},
		{keySymbols, ",", keySpace, ".", keyEnter, keyDone},
	},
	pageSymbols: {
		{"!", "@", "#", "$", "%", "^", "&", "*", "(", ")"},
		{"-", "_", "=", "+", "[", "]", "{", "}", "\\", "|"},
		{";", ":", "'", "\"", "/", "?", "~", "`"},
		{"<", ">", "€", "£", "¥", "•", keyBksp},
		{keyLetters, ",", keySpace, ".", keyEnter, keyDone},
	},
}

const keyRowCount = 5

// minPanelHeight is the smallest usable panel: five key rows plus padding.
const minPanelHeight = keyRowCount + 2

// Keyboard is the on-screen keyboard panel. It is anchored to the bottom
// edge of the window and slides open and closed; its displayed height is
// animated with the same duration/curve the session receives, so the inset
// adjustment and the panel move in lockstep.
type Keyboard struct {
	page       keyboardPage
	openHeight int
	width      int

	display float64
	target  float64

	// slide animation state
	curve    inset.Curve
	duration time.Duration
	elapsed  time.Duration
	from     float64
	spring   harmonica.Spring
	vel      float64
}

// NewKeyboard creates a closed keyboard panel.
func NewKeyboard(openHeight int, duration time.Duration, curve inset.Curve) *Keyboard {
	if openHeight < minPanelHeight {
		openHeight = minPanelHeight
	}
	return &Keyboard{
		openHeight: openHeight,
		duration:   duration,
		curve:      curve,
	}
}

// SetWidth updates the panel width on window resize.
func (k *Keyboard) SetWidth(w int) { k.width = w }

// Open starts sliding the panel to its full height. No-op when already
// open or opening.
func (k *Keyboard) Open() { k.slideTo(float64(k.openHeight)) }

// Close starts sliding the panel away.
func (k *Keyboard) Close() { k.slideTo(0) }

func (k *Keyboard) slideTo(target float64) {
	if k.target == target {
		return
	}
	k.target = target
	k.from = k.display
	k.elapsed = 0
	if k.curve == inset.CurveSpring {
		k.spring = harmonica.NewSpring(harmonica.FPS(animFPS), springFrequency, springDamping)
	}
	if k.duration <= 0 {
		k.display = target
	}
}

// Opening reports whether the panel's target is the open position.
func (k *Keyboard) Opening() bool { return k.target > 0 }

// Animating reports whether the panel is still moving.
func (k *Keyboard) Animating() bool { return k.display != k.target }

// Height returns the currently displayed height in whole rows.
func (k *Keyboard) Height() int { return int(math.Round(k.display)) }

// EndFrame returns the frame the panel is headed for, in screen space.
// This is the keyboard frame delivered with a transition.
func (k *Keyboard) EndFrame(containerW, containerH int) inset.Rect {
	return inset.Rect{
		X: 0,
		Y: float64(containerH) - k.target,
		W: float64(containerW),
		H: k.target,
	}
}

// Transition builds the notification event for the panel's current move.
func (k *Keyboard) Transition(containerW, containerH int) inset.Transition {
	return inset.Transition{
		EndFrame: k.EndFrame(containerW, containerH),
		Duration: k.duration,
		Curve:    k.curve,
	}
}

// Step advances the slide animation by dt.
func (k *Keyboard) Step(dt time.Duration) {
	if !k.Animating() {
		return
	}
	if k.curve == inset.CurveSpring {
		k.display, k.vel = k.spring.Update(k.display, k.vel, k.target)
		if math.Abs(k.display-k.target) < 0.05 && math.Abs(k.vel) < 0.05 {
			k.display = k.target
			k.vel = 0
		}
		return
	}
	k.elapsed += dt
	t := float64(k.elapsed) / float64(k.duration)
	if t >= 1 {
		k.display = k.target
		return
	}
	k.display = k.from + (k.target-k.from)*ease(k.curve, t)
}

// handlePageKey cycles shift state or switches between letters and
// symbols. Returns false when the key is not a page key.
func (k *Keyboard) handlePageKey(key string) bool {
	switch key {
	case keyShift:
		if k.page == pageUpper {
			k.page = pageLower
		} else {
			k.page = pageUpper
		}
	case keySymbols:
		k.page = pageSymbols
	case keyLetters:
		k.page = pageLower
	default:
		return false
	}
	return true
}

// keySpan is one keycap's horizontal extent within a key row.
type keySpan struct {
	startX int
	width  int
	key    string
}

// layoutRow positions a row's keycaps, centered in the panel width. The
// same math backs rendering and hit-testing so they cannot drift apart.
func layoutRow(keys []string, width int) []keySpan {
	spans := make([]keySpan, len(keys))
	total := 0
	for i, key := range keys {
		w := lipgloss.Width(key) + 2 // one cell padding each side
		if key == keySpace {
			w += 6 // wide space bar
		}
		spans[i] = keySpan{width: w, key: key}
		total += w
		if i > 0 {
			total++ // gap between keycaps
		}
	}
	x := (width - total) / 2
	if x < 0 {
		x = 0
	}
	for i := range spans {
		spans[i].startX = x
		x += spans[i].width + 1
	}
	return spans
}

// keyRowIndex returns the panel-local row of key row i. Key rows sit at the
// bottom of the fully open panel, above one padding row.
func (k *Keyboard) keyRowIndex(i int) int {
	return k.openHeight - keyRowCount - 1 + i
}

// KeyAt resolves a screen coordinate to the keycap under it. ok is false
// when the point is inside the panel but not on a key; hit is false when
// the point is outside the panel entirely.
func (k *Keyboard) KeyAt(x, y, containerH int) (key string, ok, hit bool) {
	h := k.Height()
	if h <= 0 {
		return "", false, false
	}
	top := containerH - h
	if y < top {
		return "", false, false
	}
	row := y - top
	for i, keys := range keyboardPages[k.page] {
		if k.keyRowIndex(i) != row {
			continue
		}
		for _, span := range layoutRow(keys, k.width) {
			if x >= span.startX && x < span.startX+span.width {
				return span.key, true, true
			}
		}
	}
	return "", false, true
}

// View renders the visible part of the panel. While sliding, the first
// display rows of the fully open panel are shown, so the panel appears to
// rise from the bottom edge.
func (k *Keyboard) View() string {
	h := k.Height()
	if h <= 0 {
		return ""
	}
	rows := make([]string, k.openHeight)
	for i := range rows {
		rows[i] = panelStyle.Width(k.width).Render("")
	}
	for i, keys := range keyboardPages[k.page] {
		rows[k.keyRowIndex(i)] = k.renderRow(keys)
	}
	if h > len(rows) {
		h = len(rows)
	}
	return strings.Join(rows[:h], "\n")
}

func (k *Keyboard) renderRow(keys []string) string {
	spans := layoutRow(keys, k.width)
	var b strings.Builder
	x := 0
	for _, span := range spans {
		if span.startX > x {
			b.WriteString(panelStyle.Render(strings.Repeat(" ", span.startX-x)))
			x = span.startX
		}
		style := keyStyle
		if isSpecialKey(span.key) {
			style = keySpecialStyle
		}
		pad := span.width - lipgloss.Width(span.key)
		left := pad / 2
		right := pad - left
		b.WriteString(style.Render(strings.Repeat(" ", left) + span.key + strings.Repeat(" ", right)))
		x += span.width
	}
	if x < k.width {
		b.WriteString(panelStyle.Render(strings.Repeat(" ", k.width-x)))
	}
	return b.String()
}

func isSpecialKey(key string) bool {
	switch key {
	case keyShift, keyBksp, keySpace, keyEnter, keySymbols, keyLetters, keyDone:
		return true
	default:
		return false
	}
}
