package popup

// Vec2 is a 2D point or size.
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside the rectangle.
// Edges are inclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// RGBA packs color components into a uint32 (0xAABBGGRR layout).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf packs float color components (0.0-1.0) into a uint32.
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(
		uint8(clampf(r, 0, 1)*255),
		uint8(clampf(g, 0, 1)*255),
		uint8(clampf(b, 0, 1)*255),
		uint8(clampf(a, 0, 1)*255),
	)
}

// UnpackRGBA extracts color components from a packed uint32.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
