package popup

// DrawBackend is the drawing interface widgets render through. All
// coordinates are device pixels with a top-left origin; colors are packed
// RGBA (see RGBA/RGBAf).
//
// PushClip/PopClip must nest; a nested push clips against the current
// region.
type DrawBackend interface {
	DrawRect(x, y, w, h float32, color uint32)
	DrawRectBorder(x, y, w, h float32, color uint32, thickness float32)
	DrawText(s string, x, y, fontSize float32, color uint32)
	PushClip(x, y, w, h float32)
	PopClip()
}
