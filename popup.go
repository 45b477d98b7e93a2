package popup

import "sync/atomic"

// Popup is the root widget: a titled, draggable dialog centered in the host
// region. Content stacks vertically; when it exceeds three quarters of the
// region height the body becomes scrollable and a scrollbar appears.
//
// Popup geometry mixes units: X and Y are region-local device pixels, Width
// and Height are logical units.
type Popup struct {
	WidgetBase
	Title    string
	Shown    bool
	Blocking bool

	// OnEnter runs when Enter is pressed and no focused widget consumed
	// it. OnCancel runs on Escape; when nil, Escape cancels the popup.
	OnEnter  func()
	OnCancel func()

	finished     bool
	cancelled    bool
	preventClose bool
	autoHeight   bool

	scrollOffset float32
	maxScroll    float32
	scrollable   bool
	scrollbar    *Scrollbar

	contentHeight  float32
	visibleContent float32

	dragging           bool
	dragOffX, dragOffY float32

	needsLayout atomic.Bool
	laidOut     bool
	redraw      RedrawRequester
}

const (
	popupPadding      = 10
	popupMargin       = 20
	popupTitleHeight  = 45
	popupDefaultWidth = 400
	scrollbarWidth    = 16
	wheelScrollStep   = 20
	maxRegionFraction = 0.75
)

// PopupOption configures a popup at construction time.
type PopupOption func(*Popup)

// WithSize sets an explicit size in logical units. A zero height keeps
// automatic height.
func WithSize(w, h float32) PopupOption {
	return func(p *Popup) {
		if w > 0 {
			p.Width = w
		}
		if h > 0 {
			p.Height = h
			p.autoHeight = false
		}
	}
}

// WithLabel adds an initial text label.
func WithLabel(text string) PopupOption {
	return func(p *Popup) { p.AddLabel(text) }
}

// PreventClose keeps Enter and Escape from closing the popup and suppresses
// the automatic OK button. Use for popups that must stay up until work
// completes.
func PreventClose() PopupOption {
	return func(p *Popup) { p.preventClose = true }
}

// Blocking makes the popup swallow all input, including events outside its
// bounds, so nothing reaches the scene behind it.
func Blocking() PopupOption {
	return func(p *Popup) { p.Blocking = true }
}

// NewPopup creates a popup with the default width and automatic height.
func NewPopup(title string, opts ...PopupOption) *Popup {
	p := &Popup{Title: title, autoHeight: true}
	p.Width = popupDefaultWidth
	p.needsLayout.Store(true)
	for _, o := range opts {
		o(p)
	}
	return p
}

// Finished reports whether the popup was closed normally.
func (p *Popup) Finished() bool { return p.finished }

// Cancelled reports whether the popup was dismissed.
func (p *Popup) Cancelled() bool { return p.cancelled }

// Close marks the popup finished.
func (p *Popup) Close() {
	p.finished = true
	p.RequestRedraw()
}

// Cancel marks the popup cancelled.
func (p *Popup) Cancel() {
	p.cancelled = true
	p.RequestRedraw()
}

// SetPreventClose toggles close protection. Enabling it also suppresses the
// automatic OK button on the next layout.
func (p *Popup) SetPreventClose(prevent bool) {
	p.preventClose = prevent
	p.MarkDirty()
}

// Scrollable reports whether the content overflows the visible body.
func (p *Popup) Scrollable() bool { return p.scrollable }

// ScrollOffset returns the current scroll offset in logical units.
func (p *Popup) ScrollOffset() float32 { return p.scrollOffset }

// MaxScroll returns the maximum scroll offset in logical units.
func (p *Popup) MaxScroll() float32 { return p.maxScroll }

// SetRedrawRequester installs the host port used to request repaints.
// Manager.Show does this automatically.
func (p *Popup) SetRedrawRequester(r RedrawRequester) { p.redraw = r }

// MarkDirty schedules a full relayout before the next draw. Safe to call
// from any goroutine.
func (p *Popup) MarkDirty() { p.needsLayout.Store(true) }

// RequestRedraw asks the host to repaint. Safe to call from any goroutine;
// a nil port is ignored.
func (p *Popup) RequestRedraw() {
	if p.redraw != nil {
		p.redraw.RequestRedraw()
	}
}

// AddWidget appends a child widget and schedules a relayout.
func (p *Popup) AddWidget(w Widget) {
	attach(p, w)
	p.MarkDirty()
}

// AddLabel appends a text label.
func (p *Popup) AddLabel(text string) *Label {
	l := &Label{Text: text}
	p.AddWidget(l)
	return l
}

// AddButton appends a button.
func (p *Popup) AddButton(text string, onClick func()) *Button {
	b := &Button{Text: text, OnClick: onClick}
	p.AddWidget(b)
	return b
}

// AddTextInput appends a text input seeded with initial text, cursor at the
// end.
func (p *Popup) AddTextInput(initial string) *TextInput {
	t := &TextInput{Text: initial, CursorPos: len([]rune(initial))}
	p.AddWidget(t)
	return t
}

// AddRow appends an empty horizontal row.
func (p *Popup) AddRow() *Row {
	r := &Row{}
	p.AddWidget(r)
	return r
}

// AddProgressBar appends a progress bar counting to maxValue.
func (p *Popup) AddProgressBar(maxValue float64) *ProgressBar {
	pb := NewProgressBar(maxValue)
	p.AddWidget(pb)
	return pb
}

// AddCloseButton appends a button that closes the popup, wiring Enter to it
// when no Enter action is set. Text defaults to "Close". Typically used
// after SetPreventClose(false) once background work finishes.
func (p *Popup) AddCloseButton(text string) *Button {
	if text == "" {
		text = "Close"
	}
	b := p.AddButton(text, func() { p.finished = true })
	if p.OnEnter == nil {
		p.OnEnter = b.OnClick
	}
	return b
}

// contentOffset places children below the title bar, shifted by the scroll
// offset.
func (p *Popup) contentOffset(ctx *Context) Vec2 {
	return Vec2{0, (popupTitleHeight - p.scrollOffset) * ctx.Scale()}
}

// UpdateLayout injects the default button if needed, lays out children, and
// positions the popup: centered on first layout, recentered on its previous
// midpoint when automatic height changes it afterwards.
func (p *Popup) UpdateLayout(ctx *Context) {
	p.ensureDefaultButton()
	s := ctx.Scale()
	first := !p.laidOut
	oldMid := p.Y + p.Height*s/2

	p.LayoutChildren(ctx)

	if first {
		p.X = (ctx.Region.W - p.Width*s) / 2
		p.Y = (ctx.Region.H - p.Height*s) / 2
	} else if p.autoHeight {
		p.Y = oldMid - p.Height*s/2
	}
	p.clampToRegion(ctx)
	p.laidOut = true
}

// LayoutChildren runs the three-pass layout: wrap children at full content
// width, derive the popup height against the region cap, then re-wrap at
// reduced width if a scrollbar is needed.
func (p *Popup) LayoutChildren(ctx *Context) {
	s := ctx.Scale()
	if p.Width <= 0 {
		p.Width = popupDefaultWidth
	}

	p.contentHeight = p.layoutPass(ctx, p.Width-2*popupMargin)

	if p.autoHeight {
		p.Height = popupTitleHeight + p.contentHeight
	}
	if maxH := ctx.Region.H * maxRegionFraction / s; p.Height > maxH {
		p.Height = maxH
	}

	p.visibleContent = p.Height - popupTitleHeight
	p.scrollable = p.contentHeight > p.visibleContent

	if p.scrollable {
		p.contentHeight = p.layoutPass(ctx, p.Width-2*popupMargin-scrollbarWidth)
		p.contentHeight += popupPadding // last widget clears the bottom edge
		p.maxScroll = maxf(0, p.contentHeight-p.visibleContent)
		p.scrollOffset = clampf(p.scrollOffset, 0, p.maxScroll)
		p.ensureScrollbar()
		p.positionScrollbar(ctx)
	} else {
		p.maxScroll = 0
		p.scrollOffset = 0
	}
}

// layoutPass stacks children top to bottom at the given logical width and
// returns the total content extent including padding.
func (p *Popup) layoutPass(ctx *Context, contentWidth float32) float32 {
	y := float32(popupPadding)
	for _, c := range p.children {
		c.Layout(ctx, contentWidth)
		b := c.Base()
		b.X = popupMargin
		b.Y = y
		y += b.Height + popupPadding
	}
	return y
}

// ensureDefaultButton appends an OK button when the popup has no button at
// top level or inside a row. Skipped while close protection is on.
func (p *Popup) ensureDefaultButton() {
	if p.preventClose || p.hasButton() {
		return
	}
	b := p.AddButton("OK", func() { p.finished = true })
	if p.OnEnter == nil {
		p.OnEnter = b.OnClick
	}
}

func (p *Popup) hasButton() bool {
	for _, c := range p.children {
		if _, ok := c.(buttoner); ok {
			return true
		}
		for _, gc := range c.Base().children {
			if _, ok := gc.(buttoner); ok {
				return true
			}
		}
	}
	return false
}

func (p *Popup) ensureScrollbar() {
	if p.scrollbar != nil {
		return
	}
	sb := &Scrollbar{Orientation: Vertical}
	sb.OnScroll = func(offset float32) {
		p.scrollOffset = offset
		p.RequestRedraw()
	}
	p.scrollbar = sb
}

// positionScrollbar pins the scrollbar to the popup's right edge. The
// scrollbar is a root-style widget positioned in device pixels so it stays
// outside the scrolled content.
func (p *Popup) positionScrollbar(ctx *Context) {
	s := ctx.Scale()
	sb := p.scrollbar
	sb.Width = scrollbarWidth
	sb.Height = p.Height - popupTitleHeight
	sb.X = p.X + (p.Width-scrollbarWidth)*s
	sb.Y = p.Y + popupTitleHeight*s
	sb.ScrollOffset = p.scrollOffset
	sb.SetScrollInfo(p.visibleContent, p.maxScroll)
}

func (p *Popup) clampToRegion(ctx *Context) {
	s := ctx.Scale()
	p.X = clampf(p.X, 0, maxf(0, ctx.Region.W-p.Width*s))
	p.Y = clampf(p.Y, 0, maxf(0, ctx.Region.H-p.Height*s))
}

func (p *Popup) Draw(ctx *Context) {
	if p.needsLayout.Swap(false) || !p.laidOut {
		p.UpdateLayout(ctx)
	}
	s := ctx.Scale()
	w := p.Width * s
	h := p.Height * s
	th := popupTitleHeight * s
	b := ctx.Backend

	b.DrawRect(p.X, p.Y, w, h, ctx.Theme.WindowColor)
	b.DrawRectBorder(p.X, p.Y, w, h, ctx.Theme.WindowBorderColor, 2)
	b.DrawRect(p.X, p.Y, w, th, ctx.Theme.TitleBarColor)

	fontPx := ctx.fontPx(0)
	sz := ctx.Metrics.MeasureText(p.Title, fontPx)
	b.DrawText(p.Title, p.X+popupMargin*s, p.Y+(th-sz.Y)/2, fontPx, ctx.Theme.TitleTextColor)

	if p.scrollable {
		b.PushClip(p.X, p.Y+th, w-scrollbarWidth*s, h-th)
		for _, c := range p.children {
			c.Draw(ctx)
		}
		b.PopClip()
		p.positionScrollbar(ctx)
		p.scrollbar.Draw(ctx)
	} else {
		for _, c := range p.children {
			c.Draw(ctx)
		}
	}
}

// HandleEvent dispatches one event through the popup. Order: title drag and
// wheel scrolling, then the scrollbar, then children newest-first, then the
// popup's own click-swallowing and Enter/Escape handling. A blocking popup
// reports every event as handled.
func (p *Popup) HandleEvent(ctx *Context, ev *Event) bool {
	if !p.laidOut {
		return p.Blocking
	}
	handled := p.handle(ctx, ev)
	if !handled && p.Blocking {
		handled = true
	}
	return handled
}

func (p *Popup) handle(ctx *Context, ev *Event) bool {
	inside := p.IsInside(ctx, ev.X, ev.Y)

	switch ev.Type {
	case EventMouseMove:
		p.Hover = inside
		if p.dragging {
			p.X = ev.X - p.dragOffX
			p.Y = ev.Y - p.dragOffY
			p.clampToRegion(ctx)
			if p.scrollable {
				p.positionScrollbar(ctx)
			}
			p.RequestRedraw()
			return true
		}

	case EventWheel:
		if !inside {
			return false
		}
		if p.scrollable && ev.WheelY != 0 {
			step := float32(wheelScrollStep)
			if ev.WheelY > 0 {
				step = -step
			}
			p.scrollTo(p.scrollOffset + step)
			p.RequestRedraw()
		}
		return true

	case EventMouseDown:
		if ev.Button == MouseLeft && p.inTitleBar(ctx, ev.X, ev.Y) {
			p.dragging = true
			p.dragOffX = ev.X - p.X
			p.dragOffY = ev.Y - p.Y
			return true
		}

	case EventMouseUp:
		if p.dragging {
			p.dragging = false
			return true
		}
	}

	if p.scrollable && p.scrollbar != nil && p.scrollbar.HandleEvent(ctx, ev) {
		return true
	}

	// Children in reverse order so widgets added later see events first.
	for i := len(p.children) - 1; i >= 0; i-- {
		if p.children[i].HandleEvent(ctx, ev) && ev.Type != EventMouseMove {
			return true
		}
	}

	switch ev.Type {
	case EventMouseDown, EventMouseUp:
		// Clicks on the window body never fall through to the scene.
		return inside

	case EventKeyDown:
		switch ev.Key {
		case KeyEnter:
			if p.preventClose {
				return true
			}
			if p.OnEnter != nil {
				invokeCallback("Popup.OnEnter", p.OnEnter)
				p.RequestRedraw()
				return true
			}
		case KeyEscape:
			if p.preventClose {
				return true
			}
			if p.OnCancel != nil {
				invokeCallback("Popup.OnCancel", p.OnCancel)
			} else {
				p.cancelled = true
			}
			p.RequestRedraw()
			return true
		}
	}
	return false
}

func (p *Popup) scrollTo(offset float32) {
	p.scrollOffset = clampf(offset, 0, p.maxScroll)
	if p.scrollbar != nil {
		p.scrollbar.ScrollOffset = p.scrollOffset
		p.scrollbar.updateThumbPos()
	}
}

func (p *Popup) inTitleBar(ctx *Context, x, y float32) bool {
	s := ctx.Scale()
	return x >= p.X && x <= p.X+p.Width*s && y >= p.Y && y <= p.Y+popupTitleHeight*s
}
