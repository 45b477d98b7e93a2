package popup

// Row lays out its children side by side with equal widths and stretches
// them to the height of the tallest child.
type Row struct {
	WidgetBase
}

const rowSpacing = 10

// AddWidget appends a child to the row.
func (r *Row) AddWidget(w Widget) {
	attach(r, w)
}

// AddButton appends a button with the given text and callback.
func (r *Row) AddButton(text string, onClick func()) *Button {
	b := &Button{Text: text, OnClick: onClick}
	r.AddWidget(b)
	return b
}

// AddLabel appends a label with the given text.
func (r *Row) AddLabel(text string) *Label {
	l := &Label{Text: text}
	r.AddWidget(l)
	return l
}

func (r *Row) Layout(ctx *Context, availWidth float32) {
	r.Width = availWidth
	n := len(r.children)
	if n == 0 {
		r.Height = 0
		return
	}
	childW := maxf(0, (availWidth-float32(n-1)*rowSpacing)/float32(n))
	var tallest float32
	for i, c := range r.children {
		c.Layout(ctx, childW)
		b := c.Base()
		b.X = float32(i) * (childW + rowSpacing)
		b.Y = 0
		tallest = maxf(tallest, b.Height)
	}
	r.Height = tallest
	for _, c := range r.children {
		c.Base().Height = tallest
	}
}

func (r *Row) Draw(ctx *Context) {
	for _, c := range r.children {
		c.Draw(ctx)
	}
}

func (r *Row) HandleEvent(ctx *Context, ev *Event) bool {
	handled := false
	for _, c := range r.children {
		if c.HandleEvent(ctx, ev) {
			handled = true
			// Mouse moves go to every child so hover states stay fresh.
			if ev.Type != EventMouseMove {
				return true
			}
		}
	}
	return handled
}
