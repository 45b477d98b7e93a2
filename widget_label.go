package popup

// Label displays wrapped, read-only text.
type Label struct {
	WidgetBase
	Text     string
	FontSize float32 // logical, 0 = body size
	Color    uint32  // 0 = theme text color

	lines      []TextLine
	lineHeight float32 // device pixels
	lastWidth  float32 // logical
}

const labelPadding = 10

func (l *Label) Layout(ctx *Context, availWidth float32) {
	s := ctx.Scale()
	fontPx := ctx.fontPx(l.FontSize)
	l.lastWidth = availWidth
	l.Width = availWidth
	l.lines = WrapText(ctx.Metrics, l.Text, fontPx, availWidth*s)
	l.lineHeight = lineHeightFor(ctx.Metrics, fontPx)
	l.Height = float32(len(l.lines))*l.lineHeight/s + labelPadding
}

func (l *Label) Draw(ctx *Context) {
	p := l.GlobalPos(ctx)
	fontPx := ctx.fontPx(l.FontSize)
	color := l.Color
	if color == 0 {
		color = ctx.Theme.TextColor
	}
	for i, line := range l.lines {
		ctx.Backend.DrawText(line.Text, p.X, p.Y+float32(i)*l.lineHeight, fontPx, color)
	}
}

// Update replaces the label text. Safe to call from worker goroutines: the
// text is rewrapped on the UI thread during the next layout pass.
func (l *Label) Update(text string) {
	l.Text = text
	if p := rootPopup(l); p != nil {
		p.MarkDirty()
		p.RequestRedraw()
	}
}
