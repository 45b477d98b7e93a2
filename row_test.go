package popup_test

import (
	"testing"

	"github.com/viewportkit/popup"
)

func TestRowEqualWidths(t *testing.T) {
	ctx, _ := newTestContext()
	p := popup.NewPopup("Choose")
	row := p.AddRow()
	yes := row.AddButton("Yes", nil)
	no := row.AddButton("No", nil)
	p.UpdateLayout(ctx)

	// Content width 360 minus one 10-unit gap, split two ways.
	if yes.Width != 175 || no.Width != 175 {
		t.Errorf("widths = %g, %g; want 175 each", yes.Width, no.Width)
	}
	if yes.X != 0 || no.X != 185 {
		t.Errorf("positions = %g, %g; want 0 and 185", yes.X, no.X)
	}
}

func TestRowStretchesToTallest(t *testing.T) {
	ctx, _ := newTestContext()
	p := popup.NewPopup("Mixed")
	row := p.AddRow()
	b := row.AddButton("OK", nil)
	l := row.AddLabel("this is a long label that wraps")
	p.UpdateLayout(ctx)

	// The label wraps to two lines (64 units); the button stretches.
	if l.Height != 64 {
		t.Fatalf("label height = %g, want 64", l.Height)
	}
	if b.Height != l.Height {
		t.Errorf("button height = %g, want stretched to %g", b.Height, l.Height)
	}
	if row.Height != l.Height {
		t.Errorf("row height = %g, want %g", row.Height, l.Height)
	}
}

func TestRowRoutesClicksToChild(t *testing.T) {
	ctx, _ := newTestContext()
	p := popup.NewPopup("Choose")
	row := p.AddRow()
	var clicked string
	row.AddButton("Yes", func() { clicked = "yes" })
	no := row.AddButton("No", func() { clicked = "no" })
	p.UpdateLayout(ctx)

	pos := no.GlobalPos(ctx)
	click(ctx, p, pos.X+5, pos.Y+5)
	if clicked != "no" {
		t.Errorf("clicked = %q, want \"no\"", clicked)
	}
}

func TestRowEmpty(t *testing.T) {
	ctx, _ := newTestContext()
	p := popup.NewPopup("Empty")
	row := p.AddRow()
	p.UpdateLayout(ctx)

	if row.Height != 0 {
		t.Errorf("empty row height = %g, want 0", row.Height)
	}
}
