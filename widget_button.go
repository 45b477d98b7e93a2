package popup

import "strings"

// Button is a clickable widget. A click fires OnClick; a button without a
// callback whose text reads "OK", "Okay" or "Close" closes the owning popup
// instead.
type Button struct {
	WidgetBase
	Text    string
	OnClick func()

	active bool
}

const buttonPadding = 12

// AsButton satisfies the button capability used for default-button
// detection.
func (b *Button) AsButton() *Button { return b }

func (b *Button) Layout(ctx *Context, availWidth float32) {
	b.Width = availWidth
	fontPx := ctx.fontPx(0)
	textH := ctx.Metrics.MeasureText(b.Text, fontPx).Y
	b.Height = textH/ctx.Scale() + 2*buttonPadding
}

func (b *Button) Draw(ctx *Context) {
	p := b.GlobalPos(ctx)
	s := ctx.Scale()
	w := b.Width * s
	h := b.Height * s

	bg := ctx.Theme.ButtonColor
	if b.active {
		bg = ctx.Theme.ButtonActiveColor
	} else if b.Hover {
		bg = ctx.Theme.ButtonHoverColor
	}
	ctx.Backend.DrawRect(p.X, p.Y, w, h, bg)
	ctx.Backend.DrawRectBorder(p.X, p.Y, w, h, ctx.Theme.ButtonBorderColor, 1)

	fontPx := ctx.fontPx(0)
	sz := ctx.Metrics.MeasureText(b.Text, fontPx)
	ctx.Backend.DrawText(b.Text, p.X+(w-sz.X)/2, p.Y+(h-sz.Y)/2, fontPx, ctx.Theme.ButtonTextColor)
}

func (b *Button) HandleEvent(ctx *Context, ev *Event) bool {
	switch ev.Type {
	case EventMouseMove:
		b.Hover = b.IsInside(ctx, ev.X, ev.Y)
	case EventMouseDown:
		if ev.Button == MouseLeft && b.IsInside(ctx, ev.X, ev.Y) {
			b.active = true
			return true
		}
	case EventMouseUp:
		if ev.Button == MouseLeft && b.active {
			b.active = false
			if b.IsInside(ctx, ev.X, ev.Y) {
				b.click()
				if p := rootPopup(b); p != nil {
					p.RequestRedraw()
				}
			}
			return true
		}
	}
	return false
}

func (b *Button) click() {
	if b.OnClick != nil {
		invokeCallback("Button.OnClick", b.OnClick)
		return
	}
	switch strings.ToLower(strings.TrimSpace(b.Text)) {
	case "ok", "okay", "close":
		if p := rootPopup(b); p != nil {
			p.finished = true
		}
	}
}
