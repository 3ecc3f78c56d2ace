package ui

import (
	"testing"
	"time"

	"scrollguard/internal/core/inset"
)

func openKeyboard(t *testing.T, width int) *Keyboard {
	t.Helper()
	k := NewKeyboard(10, 0, inset.CurveLinear) // zero duration opens instantly
	k.SetWidth(width)
	k.Open()
	if k.Height() != 10 {
		t.Fatalf("expected panel open at height 10, got %d", k.Height())
	}
	return k
}

func TestKeyboardHeightClampedToLayout(t *testing.T) {
	k := NewKeyboard(2, 0, inset.CurveLinear)
	if k.openHeight < minPanelHeight {
		t.Fatalf("expected open height clamped to %d, got %d", minPanelHeight, k.openHeight)
	}
}

func TestKeyAtFindsKeycap(t *testing.T) {
	const containerH = 40
	k := openKeyboard(t, 60)

	// Second key row is qwerty; hit the first keycap dead center.
	spans := layoutRow(keyboardPages[pageLower][1], 60)
	x := spans[0].startX + spans[0].width/2
	y := containerH - k.Height() + k.keyRowIndex(1)

	key, ok, hit := k.KeyAt(x, y, containerH)
	if !hit || !ok {
		t.Fatalf("expected keycap hit, got ok=%v hit=%v", ok, hit)
	}
	if key != "q" {
		t.Fatalf("expected q, got %q", key)
	}
}

func TestKeyAtDeadAreaSwallowsTap(t *testing.T) {
	const containerH = 40
	k := openKeyboard(t, 60)

	// Top padding row of the panel: inside the panel, not on a key.
	y := containerH - k.Height()
	_, ok, hit := k.KeyAt(5, y, containerH)
	if !hit {
		t.Fatalf("expected point inside panel")
	}
	if ok {
		t.Fatalf("expected no keycap on the padding row")
	}
}

func TestKeyAtOutsidePanel(t *testing.T) {
	const containerH = 40
	k := openKeyboard(t, 60)

	if _, _, hit := k.KeyAt(5, 3, containerH); hit {
		t.Fatalf("expected point above panel to miss")
	}
}

func TestKeyAtClosedPanelMisses(t *testing.T) {
	k := NewKeyboard(10, 0, inset.CurveLinear)
	k.SetWidth(60)
	if _, _, hit := k.KeyAt(5, 39, 40); hit {
		t.Fatalf("expected closed panel to miss everything")
	}
}

func TestPageKeys(t *testing.T) {
	k := openKeyboard(t, 60)
	if !k.handlePageKey(keyShift) || k.page != pageUpper {
		t.Fatalf("expected shift to switch to upper, got page %d", k.page)
	}
	if !k.handlePageKey(keyShift) || k.page != pageLower {
		t.Fatalf("expected shift to toggle back to lower, got page %d", k.page)
	}
	if !k.handlePageKey(keySymbols) || k.page != pageSymbols {
		t.Fatalf("expected symbols page, got page %d", k.page)
	}
	if !k.handlePageKey(keyLetters) || k.page != pageLower {
		t.Fatalf("expected letters page, got page %d", k.page)
	}
	if k.handlePageKey("q") {
		t.Fatalf("expected plain key to not be a page key")
	}
}

func TestKeyboardSlideAnimates(t *testing.T) {
	k := NewKeyboard(10, 200*time.Millisecond, inset.CurveLinear)
	k.SetWidth(60)
	k.Open()
	if !k.Animating() {
		t.Fatalf("expected slide animation running")
	}
	k.Step(100 * time.Millisecond)
	if h := k.Height(); h <= 0 || h >= 10 {
		t.Fatalf("expected panel mid-slide, got height %d", h)
	}
	k.Step(150 * time.Millisecond)
	if k.Height() != 10 || k.Animating() {
		t.Fatalf("expected slide finished at 10, got %d (animating=%v)", k.Height(), k.Animating())
	}
}

func TestKeyboardEndFrame(t *testing.T) {
	k := NewKeyboard(10, 0, inset.CurveLinear)
	k.SetWidth(60)
	k.Open()
	frame := k.EndFrame(60, 40)
	want := inset.Rect{X: 0, Y: 30, W: 60, H: 10}
	if frame != want {
		t.Fatalf("expected end frame %+v, got %+v", want, frame)
	}

	k.Close()
	frame = k.EndFrame(60, 40)
	if frame.H != 0 || frame.Y != 40 {
		t.Fatalf("expected closed end frame at bottom edge, got %+v", frame)
	}
}

func TestKeyboardOpenIsIdempotent(t *testing.T) {
	k := NewKeyboard(10, 200*time.Millisecond, inset.CurveLinear)
	k.SetWidth(60)
	k.Open()
	k.Step(100 * time.Millisecond)
	h := k.Height()
	k.Open() // must not restart the slide
	k.Step(0)
	if k.Height() < h {
		t.Fatalf("expected second Open to be a no-op, height dropped from %d to %d", h, k.Height())
	}
}
