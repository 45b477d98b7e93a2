package popup

// TextInput is a multi-line editable text field with a cursor and mouse
// selection. All indices are rune offsets into Text.
type TextInput struct {
	WidgetBase
	Text      string
	CursorPos int
	FontSize  float32 // logical, 0 = body size

	selStart, selEnd int // rune span, start == end means no selection
	selAnchor        int
	selecting        bool

	lines      []TextLine
	lineHeight float32 // device pixels
	lastWidth  float32 // logical
}

const inputPadding = 10

func (t *TextInput) Layout(ctx *Context, availWidth float32) {
	s := ctx.Scale()
	fontPx := ctx.fontPx(t.FontSize)
	t.lastWidth = availWidth
	t.Width = availWidth
	t.lines = WrapText(ctx.Metrics, t.Text, fontPx, availWidth*s-2*inputPadding*s)
	t.lineHeight = fontPx * 1.5
	rows := len(t.lines)
	if rows < 1 {
		rows = 1
	}
	t.Height = float32(rows)*t.lineHeight/s + 2*inputPadding
	t.clampCursor()
}

func (t *TextInput) Draw(ctx *Context) {
	p := t.GlobalPos(ctx)
	s := ctx.Scale()
	w := t.Width * s
	h := t.Height * s
	pad := inputPadding * s
	fontPx := ctx.fontPx(t.FontSize)

	ctx.Backend.DrawRect(p.X, p.Y, w, h, ctx.Theme.InputColor)
	border := ctx.Theme.InputBorderColor
	if t.Focused {
		border = ctx.Theme.FocusBorderColor
	}
	ctx.Backend.DrawRectBorder(p.X, p.Y, w, h, border, 1)

	ctx.Backend.PushClip(p.X+1, p.Y+1, w-2, h-2)
	cursorDrawn := false
	for i, line := range t.lines {
		lineY := p.Y + pad + float32(i)*t.lineHeight
		lr := []rune(line.Text)
		textEnd := line.Start + len(lr)

		if t.hasSelection() {
			a := clampi(t.selStart, line.Start, textEnd)
			b := clampi(t.selEnd, line.Start, textEnd)
			if b > a {
				x0 := ctx.Metrics.MeasureText(string(lr[:a-line.Start]), fontPx).X
				x1 := ctx.Metrics.MeasureText(string(lr[:b-line.Start]), fontPx).X
				ctx.Backend.DrawRect(p.X+pad+x0, lineY, x1-x0, t.lineHeight, ctx.Theme.SelectionColor)
			}
		}

		ctx.Backend.DrawText(line.Text, p.X+pad, lineY, fontPx, ctx.Theme.TextColor)

		if t.Focused && !cursorDrawn && t.CursorPos >= line.Start && t.CursorPos <= textEnd {
			cx := ctx.Metrics.MeasureText(string(lr[:t.CursorPos-line.Start]), fontPx).X
			ctx.Backend.DrawRect(p.X+pad+cx, lineY, maxf(1, s), t.lineHeight, ctx.Theme.CursorColor)
			cursorDrawn = true
		}
	}
	if t.Focused && len(t.lines) == 0 {
		ctx.Backend.DrawRect(p.X+pad, p.Y+pad, maxf(1, s), t.lineHeight, ctx.Theme.CursorColor)
	}
	ctx.Backend.PopClip()
}

func (t *TextInput) HandleEvent(ctx *Context, ev *Event) bool {
	switch ev.Type {
	case EventMouseMove:
		t.Hover = t.IsInside(ctx, ev.X, ev.Y)
		if t.selecting {
			pos := t.cursorFromPoint(ctx, ev.X, ev.Y)
			t.CursorPos = pos
			if pos < t.selAnchor {
				t.selStart, t.selEnd = pos, t.selAnchor
			} else {
				t.selStart, t.selEnd = t.selAnchor, pos
			}
			return true
		}
		return false

	case EventMouseDown:
		if ev.Button != MouseLeft {
			return false
		}
		if !t.IsInside(ctx, ev.X, ev.Y) {
			t.Focused = false
			return false
		}
		t.Focused = true
		t.CursorPos = t.cursorFromPoint(ctx, ev.X, ev.Y)
		t.selAnchor = t.CursorPos
		t.clearSelection()
		t.selecting = true
		return true

	case EventMouseUp:
		if t.selecting {
			t.selecting = false
			return true
		}
		return false

	case EventText:
		if !t.Focused || ev.Rune == 0 {
			return false
		}
		t.insert(string(ev.Rune))
		t.refresh(ctx)
		return true

	case EventKeyDown:
		if !t.Focused {
			return false
		}
		return t.handleKey(ctx, ev.Key)
	}
	return false
}

func (t *TextInput) handleKey(ctx *Context, key Key) bool {
	switch key {
	case KeyEnter:
		t.insert("\n")
		t.refresh(ctx)
		return true

	case KeyBackspace:
		if t.hasSelection() {
			t.deleteSelection()
		} else if t.CursorPos > 0 {
			r := []rune(t.Text)
			t.Text = string(r[:t.CursorPos-1]) + string(r[t.CursorPos:])
			t.CursorPos--
		}
		t.refresh(ctx)
		return true

	case KeyDelete:
		if t.hasSelection() {
			t.deleteSelection()
		} else {
			r := []rune(t.Text)
			if t.CursorPos < len(r) {
				t.Text = string(r[:t.CursorPos]) + string(r[t.CursorPos+1:])
			}
		}
		t.refresh(ctx)
		return true

	case KeyLeft:
		t.clearSelection()
		if t.CursorPos > 0 {
			t.CursorPos--
		}
		return true

	case KeyRight:
		t.clearSelection()
		if t.CursorPos < len([]rune(t.Text)) {
			t.CursorPos++
		}
		return true

	case KeyUp:
		t.clearSelection()
		t.moveLine(-1)
		return true

	case KeyDown:
		t.clearSelection()
		t.moveLine(1)
		return true

	case KeyHome:
		t.clearSelection()
		if line, ok := t.cursorLine(); ok {
			t.CursorPos = line.Start
		}
		return true

	case KeyEnd:
		t.clearSelection()
		if line, ok := t.cursorLine(); ok {
			t.CursorPos = line.Start + len([]rune(line.Text))
		}
		return true

	case KeyEscape:
		// Unfocus only; the popup decides whether Escape closes it.
		t.Focused = false
		return false
	}
	return false
}

func (t *TextInput) hasSelection() bool { return t.selEnd > t.selStart }

func (t *TextInput) clearSelection() { t.selStart, t.selEnd = 0, 0 }

func (t *TextInput) deleteSelection() {
	r := []rune(t.Text)
	a := clampi(t.selStart, 0, len(r))
	b := clampi(t.selEnd, 0, len(r))
	t.Text = string(r[:a]) + string(r[b:])
	t.CursorPos = a
	t.clearSelection()
}

// insert replaces the selection (if any) with s at the cursor.
func (t *TextInput) insert(s string) {
	if t.hasSelection() {
		t.deleteSelection()
	}
	r := []rune(t.Text)
	c := clampi(t.CursorPos, 0, len(r))
	t.Text = string(r[:c]) + s + string(r[c:])
	t.CursorPos = c + len([]rune(s))
}

func (t *TextInput) clampCursor() {
	n := len([]rune(t.Text))
	t.CursorPos = clampi(t.CursorPos, 0, n)
	t.selStart = clampi(t.selStart, 0, n)
	t.selEnd = clampi(t.selEnd, 0, n)
}

// refresh re-runs the owning popup's layout after a text mutation so the
// field grows or shrinks with its content.
func (t *TextInput) refresh(ctx *Context) {
	if p := rootPopup(t); p != nil {
		p.LayoutChildren(ctx)
		p.RequestRedraw()
	} else {
		t.Layout(ctx, t.lastWidth)
	}
}

// cursorLine returns the first line whose span contains the cursor.
func (t *TextInput) cursorLine() (TextLine, bool) {
	for _, line := range t.lines {
		if t.CursorPos >= line.Start && t.CursorPos <= line.Start+len([]rune(line.Text)) {
			return line, true
		}
	}
	return TextLine{}, false
}

func (t *TextInput) moveLine(delta int) {
	idx := -1
	for i, line := range t.lines {
		if t.CursorPos >= line.Start && t.CursorPos <= line.Start+len([]rune(line.Text)) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	target := idx + delta
	if target < 0 || target >= len(t.lines) {
		return
	}
	col := t.CursorPos - t.lines[idx].Start
	dst := t.lines[target]
	dstLen := len([]rune(dst.Text))
	if col > dstLen {
		col = dstLen
	}
	t.CursorPos = dst.Start + col
}

// cursorFromPoint maps a device-pixel point to the nearest rune boundary.
func (t *TextInput) cursorFromPoint(ctx *Context, x, y float32) int {
	if len(t.lines) == 0 {
		return 0
	}
	p := t.GlobalPos(ctx)
	s := ctx.Scale()
	pad := inputPadding * s

	li := int((y - (p.Y + pad)) / t.lineHeight)
	if li < 0 {
		return 0
	}
	if li >= len(t.lines) {
		return len([]rune(t.Text))
	}
	line := t.lines[li]
	lr := []rune(line.Text)
	fontPx := ctx.fontPx(t.FontSize)
	rel := x - (p.X + pad)

	best := 0
	bestDist := absf(rel)
	for i := 1; i <= len(lr); i++ {
		w := ctx.Metrics.MeasureText(string(lr[:i]), fontPx).X
		d := absf(rel - w)
		if d >= bestDist {
			break
		}
		bestDist = d
		best = i
	}
	return line.Start + best
}
