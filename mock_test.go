package popup_test

import (
	"github.com/viewportkit/popup"
)

// fixedMetrics is a deterministic MetricsProvider: every rune is half the
// font size wide and text is exactly the font size tall.
type fixedMetrics struct {
	scale float32
	base  float32
}

func (m fixedMetrics) UIScale() float32      { return m.scale }
func (m fixedMetrics) BaseFontSize() float32 { return m.base }

func (m fixedMetrics) MeasureText(s string, fontSize float32) popup.Vec2 {
	n := 0
	for range s {
		n++
	}
	return popup.Vec2{X: float32(n) * fontSize * 0.5, Y: fontSize}
}

type drawOp struct {
	kind       string // "rect", "border", "text", "push", "pop"
	x, y, w, h float32
	color      uint32
	text       string
}

// recordBackend records draw calls for assertions.
type recordBackend struct {
	ops       []drawOp
	clipDepth int
	maxDepth  int
}

func (b *recordBackend) DrawRect(x, y, w, h float32, color uint32) {
	b.ops = append(b.ops, drawOp{kind: "rect", x: x, y: y, w: w, h: h, color: color})
}

func (b *recordBackend) DrawRectBorder(x, y, w, h float32, color uint32, thickness float32) {
	b.ops = append(b.ops, drawOp{kind: "border", x: x, y: y, w: w, h: h, color: color})
}

func (b *recordBackend) DrawText(s string, x, y, fontSize float32, color uint32) {
	b.ops = append(b.ops, drawOp{kind: "text", x: x, y: y, color: color, text: s})
}

func (b *recordBackend) PushClip(x, y, w, h float32) {
	b.ops = append(b.ops, drawOp{kind: "push", x: x, y: y, w: w, h: h})
	b.clipDepth++
	if b.clipDepth > b.maxDepth {
		b.maxDepth = b.clipDepth
	}
}

func (b *recordBackend) PopClip() {
	b.ops = append(b.ops, drawOp{kind: "pop"})
	b.clipDepth--
}

func (b *recordBackend) texts() []string {
	var out []string
	for _, op := range b.ops {
		if op.kind == "text" {
			out = append(out, op.text)
		}
	}
	return out
}

// countRedraw counts redraw requests.
type countRedraw struct {
	n int
}

func (c *countRedraw) RequestRedraw() { c.n++ }

// newTestContext builds a context with scale 1, base font size 10, and an
// 800x600 region.
func newTestContext() (*popup.Context, *recordBackend) {
	b := &recordBackend{}
	return &popup.Context{
		Metrics: fixedMetrics{scale: 1, base: 10},
		Backend: b,
		Theme:   popup.DefaultTheme(),
		Region:  popup.Rect{W: 800, H: 600},
	}, b
}

func mouseMove(x, y float32) *popup.Event {
	return &popup.Event{Type: popup.EventMouseMove, X: x, Y: y}
}

func mouseDown(x, y float32) *popup.Event {
	return &popup.Event{Type: popup.EventMouseDown, X: x, Y: y, Button: popup.MouseLeft}
}

func mouseUp(x, y float32) *popup.Event {
	return &popup.Event{Type: popup.EventMouseUp, X: x, Y: y, Button: popup.MouseLeft}
}

func keyDown(k popup.Key) *popup.Event {
	return &popup.Event{Type: popup.EventKeyDown, Key: k}
}

func textEvent(r rune) *popup.Event {
	return &popup.Event{Type: popup.EventText, Rune: r}
}

func click(ctx *popup.Context, w popup.Widget, x, y float32) {
	w.HandleEvent(ctx, mouseDown(x, y))
	w.HandleEvent(ctx, mouseUp(x, y))
}
