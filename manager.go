package popup

import (
	"fmt"
	"sync"
)

// RedrawRequester asks the host to repaint the region. Implementations must
// be safe to call from any goroutine.
type RedrawRequester interface {
	RequestRedraw()
}

// Host is the surface a 3D application exposes to the popup manager.
type Host interface {
	// RequestModal starts routing input to the popup until it finishes
	// or cancels. It returns an error when no region is available.
	RequestModal(p *Popup) error

	// ScheduleOnUI runs fn on the UI thread.
	ScheduleOnUI(fn func())

	// RequestRedraw asks for a repaint. Safe from any goroutine.
	RequestRedraw()
}

// Manager owns the active popup and a FIFO queue of pending ones. One popup
// is visible at a time; showing another while one is active queues it.
// Show and ShowProgress are safe to call from any goroutine; Advance,
// Active, and CloseActive belong to the UI thread.
type Manager struct {
	mu     sync.Mutex
	host   Host
	active *Popup
	queue  []*Popup
}

// NewManager creates a manager bound to the host.
func NewManager(host Host) *Manager {
	return &Manager{host: host}
}

// Show presents the popup, or queues it when another popup is already
// active. A show failure leaves the manager with no active popup.
func (m *Manager) Show(p *Popup) error {
	m.mu.Lock()
	if m.active != nil {
		m.queue = append(m.queue, p)
		m.mu.Unlock()
		popupLogger.Debug("popup queued", "title", p.Title, "pending", len(m.queue))
		return nil
	}
	m.active = p
	m.mu.Unlock()
	return m.present(p)
}

func (m *Manager) present(p *Popup) error {
	p.SetRedrawRequester(m.host)
	p.MarkDirty()
	if err := m.host.RequestModal(p); err != nil {
		m.mu.Lock()
		m.active = nil
		m.mu.Unlock()
		return fmt.Errorf("popup: show %q: %w", p.Title, err)
	}
	p.Shown = true
	m.host.RequestRedraw()
	return nil
}

// Active returns the currently shown popup, or nil.
func (m *Manager) Active() *Popup {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// CloseActive cancels the currently shown popup, if any.
func (m *Manager) CloseActive() {
	m.mu.Lock()
	p := m.active
	m.mu.Unlock()
	if p != nil {
		p.Cancel()
	}
}

// Advance retires a finished or cancelled active popup and promotes the
// next queued one. It returns the popup that should receive input, or nil
// when none is active. Hosts call this once per frame or after dispatching
// events.
func (m *Manager) Advance() *Popup {
	m.mu.Lock()
	if m.active != nil && !m.active.finished && !m.active.cancelled {
		p := m.active
		m.mu.Unlock()
		return p
	}
	m.active = nil
	if len(m.queue) == 0 {
		m.mu.Unlock()
		return nil
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	m.active = next
	m.mu.Unlock()

	if err := m.present(next); err != nil {
		popupLogger.Error("failed to present queued popup", "title", next.Title, "error", err)
		return nil
	}
	return next
}

// ShowProgress shows a close-protected popup with a label and a progress
// bar counting to 100 and returns both. The caller drives the bar from its
// worker and reopens closing via SetPreventClose plus AddCloseButton when
// done.
func (m *Manager) ShowProgress(title, text string) (*ProgressBar, *Popup, error) {
	p := NewPopup(title, PreventClose())
	if text != "" {
		p.AddLabel(text)
	}
	bar := p.AddProgressBar(100)
	if err := m.Show(p); err != nil {
		return nil, nil, err
	}
	return bar, p, nil
}
