package popup_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/viewportkit/popup"
)

func writeTheme(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTheme(t *testing.T) {
	path := writeTheme(t, `
[colors]
window = "#112233"
button = "#445566ff"
selection = "#8090a0b0"
`)
	theme, err := popup.LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if theme.WindowColor != popup.RGBA(0x11, 0x22, 0x33, 0xFF) {
		t.Errorf("window = %08x", theme.WindowColor)
	}
	if theme.ButtonColor != popup.RGBA(0x44, 0x55, 0x66, 0xFF) {
		t.Errorf("button = %08x", theme.ButtonColor)
	}
	if theme.SelectionColor != popup.RGBA(0x80, 0x90, 0xA0, 0xB0) {
		t.Errorf("selection = %08x", theme.SelectionColor)
	}
	// Roles absent from the file keep their defaults.
	if theme.TextColor != popup.DefaultTheme().TextColor {
		t.Errorf("text color changed: %08x", theme.TextColor)
	}
}

func TestLoadThemeUnknownRoleIgnored(t *testing.T) {
	path := writeTheme(t, `
[colors]
nonsense = "#112233"
`)
	theme, err := popup.LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if theme != popup.DefaultTheme() {
		t.Error("unknown role altered the theme")
	}
}

func TestLoadThemeBadColor(t *testing.T) {
	path := writeTheme(t, `
[colors]
window = "#nothex"
`)
	if _, err := popup.LoadTheme(path); err == nil {
		t.Error("bad color did not error")
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	if _, err := popup.LoadTheme(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("missing file did not error")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"#FFFFFF", popup.RGBA(255, 255, 255, 255), false},
		{"#00000000", popup.RGBA(0, 0, 0, 0), false},
		{"#80402010", popup.RGBA(0x80, 0x40, 0x20, 0x10), false},
		{" #112233 ", popup.RGBA(0x11, 0x22, 0x33, 0xFF), false},
		{"112233", popup.RGBA(0x11, 0x22, 0x33, 0xFF), false},
		{"#1234", 0, true},
		{"red", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := popup.ParseColor(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q): no error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %08x, want %08x", c.in, got, c.want)
		}
	}
}

func TestRGBAPacking(t *testing.T) {
	c := popup.RGBA(10, 20, 30, 40)
	r, g, b, a := popup.UnpackRGBA(c)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("round trip = %d %d %d %d", r, g, b, a)
	}
	if popup.RGBAf(1, 0, 0, 1) != popup.RGBA(255, 0, 0, 255) {
		t.Error("RGBAf full red mismatch")
	}
}
