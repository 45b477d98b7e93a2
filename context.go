package popup

import (
	"log/slog"
	"os"
)

// popupLogLevel controls log verbosity. Default is Info; use SetLogLevel to
// change at runtime.
var popupLogLevel = new(slog.LevelVar)

var popupLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: popupLogLevel,
}))

// SetLogLevel sets the minimum level for the package logger.
func SetLogLevel(level slog.Level) {
	popupLogLevel.Set(level)
}

// Default font sizes as multiples of the host's base font size.
const (
	bodyFontScale     = 1.8
	progressFontScale = 1.5
)

// Context carries everything widgets need for one layout, draw, or event
// pass: host metrics, the drawing backend, the active theme, and the host
// region the popup lives in. Region is in device pixels; popup positions are
// region-local.
type Context struct {
	Metrics MetricsProvider
	Backend DrawBackend
	Theme   Theme
	Region  Rect
}

// Scale returns the UI scale factor, guarding against degenerate providers.
func (c *Context) Scale() float32 {
	if c.Metrics == nil {
		return 1
	}
	if s := c.Metrics.UIScale(); s > 0 {
		return s
	}
	return 1
}

// fontPx converts a logical font size to device pixels. A zero size selects
// the body font.
func (c *Context) fontPx(size float32) float32 {
	if size <= 0 {
		size = c.Metrics.BaseFontSize() * bodyFontScale
	}
	return size * c.Scale()
}
