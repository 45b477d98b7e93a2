package popup

// EventType identifies the kind of input event.
type EventType int

const (
	EventMouseMove EventType = iota
	EventMouseDown
	EventMouseUp
	EventWheel
	EventKeyDown
	EventText
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Key identifies a non-character key. Printable input arrives as EventText
// events carrying a rune instead.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyTab
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyTab:       "Tab",
}

// KeyName returns a human-readable name for the key.
func KeyName(k Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Event is one input event in region-local device-pixel coordinates. The
// host translates its native events into this form and feeds them to the
// active popup's HandleEvent.
type Event struct {
	Type   EventType
	X, Y   float32 // pointer position, region-local pixels
	Button MouseButton
	Key    Key
	Rune   rune    // set for EventText
	WheelY float32 // positive = scroll up
}
