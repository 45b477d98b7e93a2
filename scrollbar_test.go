package popup_test

import (
	"testing"

	"github.com/viewportkit/popup"
)

func newVScrollbar() *popup.Scrollbar {
	sb := &popup.Scrollbar{Orientation: popup.Vertical}
	sb.X, sb.Y = 0, 0
	sb.Width, sb.Height = 16, 200
	return sb
}

func TestScrollbarThumbMath(t *testing.T) {
	sb := newVScrollbar()
	sb.SetScrollInfo(200, 300)

	// visible/(visible+max) x track = 200/500 x 200 = 80.
	if sb.ThumbSize != 80 {
		t.Errorf("thumb size = %g, want 80", sb.ThumbSize)
	}
	if sb.ThumbPos != 0 {
		t.Errorf("thumb pos = %g, want 0", sb.ThumbPos)
	}

	sb.SetOffset(150)
	// Halfway through the scroll range: 150/300 x (200-80) = 60.
	if sb.ThumbPos != 60 {
		t.Errorf("thumb pos at half scroll = %g, want 60", sb.ThumbPos)
	}
}

func TestScrollbarMinThumbSize(t *testing.T) {
	sb := newVScrollbar()
	sb.SetScrollInfo(100, 5000)
	if sb.ThumbSize != 40 {
		t.Errorf("thumb size = %g, want clamp to minimum 40", sb.ThumbSize)
	}
}

func TestScrollbarNoOverflow(t *testing.T) {
	sb := newVScrollbar()
	sb.ScrollOffset = 120
	sb.SetScrollInfo(200, 0)
	if sb.ScrollOffset != 0 {
		t.Errorf("offset = %g, want clamped to 0 with no overflow", sb.ScrollOffset)
	}
	if sb.ThumbSize != 200 {
		t.Errorf("thumb size = %g, want full track", sb.ThumbSize)
	}
}

func TestScrollbarSetOffsetClamps(t *testing.T) {
	sb := newVScrollbar()
	sb.SetScrollInfo(200, 300)

	var got []float32
	sb.OnScroll = func(off float32) { got = append(got, off) }

	sb.SetOffset(-50)
	sb.SetOffset(9000)
	if len(got) != 2 || got[0] != 0 || got[1] != 300 {
		t.Errorf("OnScroll offsets = %v, want [0 300]", got)
	}
}

func TestScrollbarDragReachesExactExtremes(t *testing.T) {
	ctx, _ := newTestContext()
	sb := newVScrollbar()
	sb.SetScrollInfo(200, 300)

	// Grab the thumb, drag far past each end.
	if !sb.HandleEvent(ctx, mouseDown(8, 10)) {
		t.Fatal("thumb press not consumed")
	}
	sb.HandleEvent(ctx, mouseMove(8, 10000))
	if sb.ScrollOffset != 300 {
		t.Errorf("offset after drag past bottom = %g, want exactly 300", sb.ScrollOffset)
	}
	sb.HandleEvent(ctx, mouseMove(8, -10000))
	if sb.ScrollOffset != 0 {
		t.Errorf("offset after drag past top = %g, want exactly 0", sb.ScrollOffset)
	}
	sb.HandleEvent(ctx, mouseUp(8, -10000))

	sb.HandleEvent(ctx, mouseMove(8, 100))
	if sb.ScrollOffset != 0 {
		t.Error("scrollbar kept scrolling after release")
	}
}

func TestScrollbarTrackClickCentersThumb(t *testing.T) {
	ctx, _ := newTestContext()
	sb := newVScrollbar()
	sb.SetScrollInfo(200, 300) // thumb 80, run 120

	// Click below the thumb at y=190: target top = 190-40 = 150, which
	// overshoots the run and clamps to the bottom.
	sb.HandleEvent(ctx, mouseDown(8, 190))
	if sb.ScrollOffset != 300 {
		t.Errorf("offset after track click = %g, want 300", sb.ScrollOffset)
	}

	// Click near the middle: top = 100-40 = 60 -> 60/120 x 300 = 150.
	sb.HandleEvent(ctx, mouseUp(8, 190))
	sb.HandleEvent(ctx, mouseDown(8, 100))
	if sb.ScrollOffset != 150 {
		t.Errorf("offset after middle track click = %g, want 150", sb.ScrollOffset)
	}
}

func TestScrollbarHorizontal(t *testing.T) {
	ctx, _ := newTestContext()
	sb := &popup.Scrollbar{Orientation: popup.Horizontal}
	sb.Width, sb.Height = 200, 16
	sb.SetScrollInfo(200, 200) // thumb max(40, 100) = 100

	if sb.ThumbSize != 100 {
		t.Fatalf("thumb size = %g, want 100", sb.ThumbSize)
	}
	sb.HandleEvent(ctx, mouseDown(10, 8))
	sb.HandleEvent(ctx, mouseMove(10000, 8))
	if sb.ScrollOffset != 200 {
		t.Errorf("offset after horizontal drag = %g, want 200", sb.ScrollOffset)
	}
}
