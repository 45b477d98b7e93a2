package popup_test

import (
	"errors"
	"testing"

	"github.com/viewportkit/popup"
)

type fakeHost struct {
	modalErr  error
	modals    []*popup.Popup
	redraws   int
	scheduled []func()
}

func (h *fakeHost) RequestModal(p *popup.Popup) error {
	if h.modalErr != nil {
		return h.modalErr
	}
	h.modals = append(h.modals, p)
	return nil
}

func (h *fakeHost) ScheduleOnUI(fn func()) { h.scheduled = append(h.scheduled, fn) }
func (h *fakeHost) RequestRedraw()         { h.redraws++ }

func TestManagerShowActivates(t *testing.T) {
	host := &fakeHost{}
	mgr := popup.NewManager(host)
	p := popup.NewPopup("First")

	if err := mgr.Show(p); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if mgr.Active() != p {
		t.Error("shown popup not active")
	}
	if !p.Shown {
		t.Error("popup not marked shown")
	}
	if len(host.modals) != 1 || host.modals[0] != p {
		t.Errorf("host modal requests = %v", host.modals)
	}
	if host.redraws == 0 {
		t.Error("no redraw requested on show")
	}
}

func TestManagerQueuesFIFO(t *testing.T) {
	host := &fakeHost{}
	mgr := popup.NewManager(host)
	first := popup.NewPopup("First")
	second := popup.NewPopup("Second")
	third := popup.NewPopup("Third")

	for _, p := range []*popup.Popup{first, second, third} {
		if err := mgr.Show(p); err != nil {
			t.Fatalf("Show(%s): %v", p.Title, err)
		}
	}
	if mgr.Active() != first {
		t.Fatal("first popup not active")
	}
	if second.Shown || third.Shown {
		t.Error("queued popups marked shown")
	}

	first.Close()
	if got := mgr.Advance(); got != second {
		t.Fatalf("Advance promoted %v, want second", got)
	}
	if !second.Shown {
		t.Error("promoted popup not shown")
	}

	second.Cancel()
	if got := mgr.Advance(); got != third {
		t.Fatalf("Advance promoted %v, want third", got)
	}

	third.Close()
	if got := mgr.Advance(); got != nil {
		t.Errorf("Advance with empty queue = %v, want nil", got)
	}
	if mgr.Active() != nil {
		t.Error("active not cleared after final close")
	}
}

func TestManagerAdvanceKeepsActive(t *testing.T) {
	host := &fakeHost{}
	mgr := popup.NewManager(host)
	p := popup.NewPopup("Stay")
	if err := mgr.Show(p); err != nil {
		t.Fatal(err)
	}
	if got := mgr.Advance(); got != p {
		t.Errorf("Advance = %v, want the still-open popup", got)
	}
}

func TestManagerShowError(t *testing.T) {
	wantErr := errors.New("no region")
	host := &fakeHost{modalErr: wantErr}
	mgr := popup.NewManager(host)
	p := popup.NewPopup("Doomed")

	err := mgr.Show(p)
	if err == nil || !errors.Is(err, wantErr) {
		t.Fatalf("Show error = %v, want wrapped %v", err, wantErr)
	}
	if mgr.Active() != nil {
		t.Error("failed show left an active popup")
	}
	if p.Shown {
		t.Error("failed show marked popup shown")
	}
}

func TestManagerCloseActive(t *testing.T) {
	host := &fakeHost{}
	mgr := popup.NewManager(host)
	p := popup.NewPopup("Victim")
	if err := mgr.Show(p); err != nil {
		t.Fatal(err)
	}
	mgr.CloseActive()
	if !p.Cancelled() {
		t.Error("CloseActive did not cancel the popup")
	}
	if got := mgr.Advance(); got != nil {
		t.Errorf("Advance after CloseActive = %v, want nil", got)
	}
}

func TestManagerShowProgress(t *testing.T) {
	ctx, _ := newTestContext()
	host := &fakeHost{}
	mgr := popup.NewManager(host)

	bar, p, err := mgr.ShowProgress("Baking", "Baking lightmaps")
	if err != nil {
		t.Fatalf("ShowProgress: %v", err)
	}
	if bar == nil || p == nil {
		t.Fatal("ShowProgress returned nils")
	}
	if mgr.Active() != p {
		t.Error("progress popup not active")
	}

	p.UpdateLayout(ctx)
	// Close protection: no OK button, Escape swallowed.
	for _, c := range p.Children() {
		if _, ok := c.(*popup.Button); ok {
			t.Error("progress popup grew a button")
		}
	}
	if !p.HandleEvent(ctx, keyDown(popup.KeyEscape)) {
		t.Error("Escape not swallowed")
	}
	if p.Cancelled() {
		t.Error("progress popup cancelled by Escape")
	}
}
