package popup

// Widget is the interface all popup widgets implement. Sizes are logical
// units (multiplied by the UI scale for device pixels); positions are
// logical units relative to the parent's content origin, except for root
// widgets whose position is region-local device pixels.
type Widget interface {
	// Base returns the embedded WidgetBase.
	Base() *WidgetBase

	// Layout computes the widget's size for the given available logical
	// width. Parents position children after calling this.
	Layout(ctx *Context, availWidth float32)

	// Draw renders the widget through ctx.Backend.
	Draw(ctx *Context)

	// HandleEvent processes one input event and reports whether it was
	// consumed.
	HandleEvent(ctx *Context, ev *Event) bool
}

// WidgetBase carries the geometry and tree links shared by all widgets.
// Embed it and override the Widget methods as needed.
type WidgetBase struct {
	X, Y          float32
	Width, Height float32
	Hover         bool
	Focused       bool

	parent   Widget
	children []Widget
}

// Base returns the receiver so embedding satisfies Widget.
func (w *WidgetBase) Base() *WidgetBase { return w }

// Layout is a no-op default.
func (w *WidgetBase) Layout(ctx *Context, availWidth float32) {}

// Draw is a no-op default.
func (w *WidgetBase) Draw(ctx *Context) {}

// HandleEvent ignores the event by default.
func (w *WidgetBase) HandleEvent(ctx *Context, ev *Event) bool { return false }

// Parent returns the parent widget, or nil for roots.
func (w *WidgetBase) Parent() Widget { return w.parent }

// Children returns the child widgets in insertion order.
func (w *WidgetBase) Children() []Widget { return w.children }

// contentOffsetter lets a container shift its children's origin, e.g. below
// a title bar or by a scroll offset. The offset is in device pixels.
type contentOffsetter interface {
	contentOffset(ctx *Context) Vec2
}

// buttoner identifies button-like widgets without a type switch.
type buttoner interface {
	AsButton() *Button
}

// GlobalPos returns the widget's top-left corner in region-local device
// pixels.
func (w *WidgetBase) GlobalPos(ctx *Context) Vec2 {
	if w.parent == nil {
		return Vec2{w.X, w.Y}
	}
	p := w.parent.Base().GlobalPos(ctx)
	var off Vec2
	if c, ok := w.parent.(contentOffsetter); ok {
		off = c.contentOffset(ctx)
	}
	s := ctx.Scale()
	return Vec2{p.X + off.X + w.X*s, p.Y + off.Y + w.Y*s}
}

// IsInside reports whether the device-pixel point lies within the widget's
// bounds. Edges are inclusive.
func (w *WidgetBase) IsInside(ctx *Context, x, y float32) bool {
	p := w.GlobalPos(ctx)
	s := ctx.Scale()
	return x >= p.X && x <= p.X+w.Width*s && y >= p.Y && y <= p.Y+w.Height*s
}

// attach links child under parent.
func attach(parent, child Widget) {
	child.Base().parent = parent
	pb := parent.Base()
	pb.children = append(pb.children, child)
}

// rootPopup walks up the tree to the owning popup, if any.
func rootPopup(w Widget) *Popup {
	for w != nil {
		if p, ok := w.(*Popup); ok {
			return p
		}
		w = w.Base().parent
	}
	return nil
}

// invokeCallback runs a user callback, recovering and logging panics. A
// panicking callback counts as not having run.
func invokeCallback(name string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			popupLogger.Error("widget callback panicked", "callback", name, "panic", r)
			ok = false
		}
	}()
	fn()
	return true
}
