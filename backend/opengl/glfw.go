package opengl

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/viewportkit/popup"
)

// EventAdapter translates GLFW callbacks into popup events. Install it on a
// window, then drain the queue once per frame and feed the events to the
// active popup.
type EventAdapter struct {
	mu     sync.Mutex
	events []popup.Event

	lastX, lastY float32
}

// NewEventAdapter installs input callbacks on the window. Any previously
// installed cursor, button, scroll, key, or char callbacks are replaced.
func NewEventAdapter(w *glfw.Window) *EventAdapter {
	a := &EventAdapter{}

	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		a.mu.Lock()
		a.lastX = float32(x)
		a.lastY = float32(y)
		a.events = append(a.events, popup.Event{
			Type: popup.EventMouseMove, X: a.lastX, Y: a.lastY,
		})
		a.mu.Unlock()
	})

	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		typ := popup.EventMouseDown
		if action == glfw.Release {
			typ = popup.EventMouseUp
		} else if action != glfw.Press {
			return
		}
		a.mu.Lock()
		a.events = append(a.events, popup.Event{
			Type: typ, X: a.lastX, Y: a.lastY, Button: glfwButton(button),
		})
		a.mu.Unlock()
	})

	w.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		a.mu.Lock()
		a.events = append(a.events, popup.Event{
			Type: popup.EventWheel, X: a.lastX, Y: a.lastY, WheelY: float32(yoff),
		})
		a.mu.Unlock()
	})

	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		k := glfwKey(key)
		if k == popup.KeyNone {
			return
		}
		a.mu.Lock()
		a.events = append(a.events, popup.Event{Type: popup.EventKeyDown, Key: k})
		a.mu.Unlock()
	})

	w.SetCharCallback(func(_ *glfw.Window, ch rune) {
		a.mu.Lock()
		a.events = append(a.events, popup.Event{Type: popup.EventText, Rune: ch})
		a.mu.Unlock()
	})

	return a
}

// Drain returns the queued events and clears the queue.
func (a *EventAdapter) Drain() []popup.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := a.events
	a.events = nil
	return out
}

func glfwButton(b glfw.MouseButton) popup.MouseButton {
	switch b {
	case glfw.MouseButtonRight:
		return popup.MouseRight
	case glfw.MouseButtonMiddle:
		return popup.MouseMiddle
	default:
		return popup.MouseLeft
	}
}

func glfwKey(k glfw.Key) popup.Key {
	switch k {
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return popup.KeyEnter
	case glfw.KeyEscape:
		return popup.KeyEscape
	case glfw.KeyBackspace:
		return popup.KeyBackspace
	case glfw.KeyDelete:
		return popup.KeyDelete
	case glfw.KeyLeft:
		return popup.KeyLeft
	case glfw.KeyRight:
		return popup.KeyRight
	case glfw.KeyUp:
		return popup.KeyUp
	case glfw.KeyDown:
		return popup.KeyDown
	case glfw.KeyHome:
		return popup.KeyHome
	case glfw.KeyEnd:
		return popup.KeyEnd
	case glfw.KeyTab:
		return popup.KeyTab
	default:
		return popup.KeyNone
	}
}
