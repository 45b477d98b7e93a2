package popup

// Orientation selects a scrollbar's axis.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// Scrollbar is a draggable scroll control. Offsets and sizes along the
// track are logical units; OnScroll fires with the clamped offset whenever
// it changes through user input.
type Scrollbar struct {
	WidgetBase
	Orientation  Orientation
	ScrollOffset float32
	MaxScroll    float32
	ThumbSize    float32
	ThumbPos     float32
	OnScroll     func(offset float32)

	dragging   bool
	dragStart  float32 // pointer coordinate at drag start, device pixels
	dragOffset float32 // ScrollOffset at drag start
}

const minThumbSize = 40

// SetScrollInfo recomputes the thumb from the visible extent and the
// scrollable overflow, clamping the current offset into range.
func (sb *Scrollbar) SetScrollInfo(visible, maxScroll float32) {
	sb.MaxScroll = maxf(maxScroll, 0)
	track := sb.trackLength()
	if visible+sb.MaxScroll <= 0 {
		sb.ThumbSize = track
	} else {
		sb.ThumbSize = maxf(minThumbSize, visible/(visible+sb.MaxScroll)*track)
	}
	sb.ThumbSize = minf(sb.ThumbSize, track)
	sb.ScrollOffset = clampf(sb.ScrollOffset, 0, sb.MaxScroll)
	sb.updateThumbPos()
}

// SetOffset sets the scroll offset, clamped to [0, MaxScroll], and notifies
// OnScroll.
func (sb *Scrollbar) SetOffset(offset float32) {
	sb.ScrollOffset = clampf(offset, 0, sb.MaxScroll)
	sb.updateThumbPos()
	if sb.OnScroll != nil {
		sb.OnScroll(sb.ScrollOffset)
	}
}

func (sb *Scrollbar) trackLength() float32 {
	if sb.Orientation == Horizontal {
		return sb.Width
	}
	return sb.Height
}

func (sb *Scrollbar) updateThumbPos() {
	if sb.MaxScroll <= 0 {
		sb.ThumbPos = 0
		return
	}
	sb.ThumbPos = sb.ScrollOffset / sb.MaxScroll * (sb.trackLength() - sb.ThumbSize)
}

func (sb *Scrollbar) Draw(ctx *Context) {
	p := sb.GlobalPos(ctx)
	s := ctx.Scale()
	w := sb.Width * s
	h := sb.Height * s
	ctx.Backend.DrawRect(p.X, p.Y, w, h, ctx.Theme.ScrollbarColor)

	thumb := ctx.Theme.ScrollbarThumbColor
	if sb.Hover || sb.dragging {
		thumb = ctx.Theme.ScrollbarThumbHoverColor
	}
	if sb.Orientation == Horizontal {
		ctx.Backend.DrawRect(p.X+sb.ThumbPos*s, p.Y, sb.ThumbSize*s, h, thumb)
	} else {
		ctx.Backend.DrawRect(p.X, p.Y+sb.ThumbPos*s, w, sb.ThumbSize*s, thumb)
	}
}

func (sb *Scrollbar) HandleEvent(ctx *Context, ev *Event) bool {
	s := ctx.Scale()
	switch ev.Type {
	case EventMouseMove:
		sb.Hover = sb.IsInside(ctx, ev.X, ev.Y)
		if sb.dragging {
			run := sb.trackLength() - sb.ThumbSize
			if run > 0 {
				delta := (sb.axisCoord(ev) - sb.dragStart) / s
				sb.SetOffset(sb.dragOffset + delta*sb.MaxScroll/run)
			}
			return true
		}

	case EventMouseDown:
		if ev.Button != MouseLeft || !sb.IsInside(ctx, ev.X, ev.Y) {
			return false
		}
		if sb.inThumb(ctx, ev) {
			sb.dragging = true
			sb.dragStart = sb.axisCoord(ev)
			sb.dragOffset = sb.ScrollOffset
			return true
		}
		// Track click: jump so the thumb centers on the pointer.
		run := sb.trackLength() - sb.ThumbSize
		if run > 0 {
			pos := (sb.axisCoord(ev)-sb.axisOrigin(ctx))/s - sb.ThumbSize/2
			sb.SetOffset(pos / run * sb.MaxScroll)
		}
		return true

	case EventMouseUp:
		if sb.dragging {
			sb.dragging = false
			return true
		}
	}
	return false
}

func (sb *Scrollbar) axisCoord(ev *Event) float32 {
	if sb.Orientation == Horizontal {
		return ev.X
	}
	return ev.Y
}

func (sb *Scrollbar) axisOrigin(ctx *Context) float32 {
	p := sb.GlobalPos(ctx)
	if sb.Orientation == Horizontal {
		return p.X
	}
	return p.Y
}

func (sb *Scrollbar) inThumb(ctx *Context, ev *Event) bool {
	s := ctx.Scale()
	start := sb.axisOrigin(ctx) + sb.ThumbPos*s
	c := sb.axisCoord(ev)
	return c >= start && c <= start+sb.ThumbSize*s
}
