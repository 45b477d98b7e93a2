package popup

// MetricsProvider supplies display metrics and text measurement from the
// host application. Font sizes passed to MeasureText are device-pixel sizes
// (logical size multiplied by UIScale).
type MetricsProvider interface {
	// UIScale returns the host's UI scale factor (1.0 = 100%).
	UIScale() float32

	// BaseFontSize returns the host's base font size in logical units.
	BaseFontSize() float32

	// MeasureText returns the width and height of the string at the given
	// device-pixel font size.
	MeasureText(s string, fontSize float32) Vec2
}
