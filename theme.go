package popup

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Theme holds the color roles used by the widgets. Colors are packed RGBA
// (see RGBA). A zero role on an individual widget falls back to the theme.
type Theme struct {
	WindowColor       uint32
	WindowBorderColor uint32
	TitleBarColor     uint32
	TitleTextColor    uint32
	TextColor         uint32

	ButtonColor       uint32
	ButtonHoverColor  uint32
	ButtonActiveColor uint32
	ButtonTextColor   uint32
	ButtonBorderColor uint32

	InputColor       uint32
	InputBorderColor uint32
	FocusBorderColor uint32
	SelectionColor   uint32
	CursorColor      uint32

	ProgressBackColor uint32
	ProgressFillColor uint32
	ProgressTextColor uint32

	ScrollbarColor           uint32
	ScrollbarThumbColor      uint32
	ScrollbarThumbHoverColor uint32
}

// DefaultTheme returns the dark theme used when no theme file is loaded.
func DefaultTheme() Theme {
	return Theme{
		WindowColor:       RGBA(40, 40, 40, 245),
		WindowBorderColor: RGBA(90, 90, 90, 255),
		TitleBarColor:     RGBA(25, 25, 25, 255),
		TitleTextColor:    RGBA(255, 255, 255, 255),
		TextColor:         RGBA(220, 220, 220, 255),

		ButtonColor:       RGBA(70, 70, 70, 255),
		ButtonHoverColor:  RGBA(90, 90, 90, 255),
		ButtonActiveColor: RGBA(55, 100, 160, 255),
		ButtonTextColor:   RGBA(240, 240, 240, 255),
		ButtonBorderColor: RGBA(110, 110, 110, 255),

		InputColor:       RGBA(30, 30, 30, 255),
		InputBorderColor: RGBA(100, 100, 100, 255),
		FocusBorderColor: RGBA(90, 150, 220, 255),
		SelectionColor:   RGBA(60, 100, 160, 180),
		CursorColor:      RGBA(240, 240, 240, 255),

		ProgressBackColor: RGBA(30, 30, 30, 255),
		ProgressFillColor: RGBA(70, 130, 200, 255),
		ProgressTextColor: RGBA(240, 240, 240, 255),

		ScrollbarColor:           RGBA(35, 35, 35, 255),
		ScrollbarThumbColor:      RGBA(95, 95, 95, 255),
		ScrollbarThumbHoverColor: RGBA(130, 130, 130, 255),
	}
}

// LightTheme returns a light variant of the default theme.
func LightTheme() Theme {
	t := DefaultTheme()
	t.WindowColor = RGBA(235, 235, 235, 250)
	t.WindowBorderColor = RGBA(160, 160, 160, 255)
	t.TitleBarColor = RGBA(210, 210, 210, 255)
	t.TitleTextColor = RGBA(20, 20, 20, 255)
	t.TextColor = RGBA(30, 30, 30, 255)
	t.ButtonColor = RGBA(205, 205, 205, 255)
	t.ButtonHoverColor = RGBA(185, 185, 185, 255)
	t.ButtonTextColor = RGBA(20, 20, 20, 255)
	t.InputColor = RGBA(250, 250, 250, 255)
	t.CursorColor = RGBA(20, 20, 20, 255)
	t.ProgressBackColor = RGBA(215, 215, 215, 255)
	t.ProgressTextColor = RGBA(20, 20, 20, 255)
	t.ScrollbarColor = RGBA(215, 215, 215, 255)
	t.ScrollbarThumbColor = RGBA(160, 160, 160, 255)
	return t
}

type themeFile struct {
	Colors map[string]string `toml:"colors"`
}

// LoadTheme reads a TOML theme file and overlays it on the default theme.
// Roles missing from the file keep their defaults; unknown roles are logged
// and skipped. Colors are "#RRGGBB" or "#RRGGBBAA" strings:
//
//	[colors]
//	window = "#282828f5"
//	button = "#464646"
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("popup: read theme: %w", err)
	}
	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return Theme{}, fmt.Errorf("popup: parse theme: %w", err)
	}
	t := DefaultTheme()
	for role, hex := range tf.Colors {
		c, err := ParseColor(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("popup: theme role %q: %w", role, err)
		}
		if !t.setRole(role, c) {
			popupLogger.Warn("unknown theme color role", "role", role)
		}
	}
	return t, nil
}

// ParseColor parses a "#RRGGBB" or "#RRGGBBAA" hex color into packed RGBA.
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func (t *Theme) setRole(role string, c uint32) bool {
	switch strings.ToLower(role) {
	case "window":
		t.WindowColor = c
	case "window_border":
		t.WindowBorderColor = c
	case "title_bar":
		t.TitleBarColor = c
	case "title_text":
		t.TitleTextColor = c
	case "text":
		t.TextColor = c
	case "button":
		t.ButtonColor = c
	case "button_hover":
		t.ButtonHoverColor = c
	case "button_active":
		t.ButtonActiveColor = c
	case "button_text":
		t.ButtonTextColor = c
	case "button_border":
		t.ButtonBorderColor = c
	case "input":
		t.InputColor = c
	case "input_border":
		t.InputBorderColor = c
	case "focus_border":
		t.FocusBorderColor = c
	case "selection":
		t.SelectionColor = c
	case "cursor":
		t.CursorColor = c
	case "progress_back":
		t.ProgressBackColor = c
	case "progress_fill":
		t.ProgressFillColor = c
	case "progress_text":
		t.ProgressTextColor = c
	case "scrollbar":
		t.ScrollbarColor = c
	case "scrollbar_thumb":
		t.ScrollbarThumbColor = c
	case "scrollbar_thumb_hover":
		t.ScrollbarThumbHoverColor = c
	default:
		return false
	}
	return true
}
