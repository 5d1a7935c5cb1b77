package platform

// Event is an input event delivered by PollEvents. The set of events is
// closed: QuitEvent and KeyEvent.
type Event interface {
	isEvent()
}

// QuitEvent signals that the user asked to close the application (window
// close button, SIGINT, ...).
type QuitEvent struct{}

func (QuitEvent) isEvent() {}

// KeyEvent signals a key press.
type KeyEvent struct {
	Key Key
}

func (KeyEvent) isEvent() {}

// Key identifies the pressed key. Only the keys the application reacts to
// are enumerated; drivers report anything else as KeyUnknown.
type Key int

// Recognized keys.
const (
	KeyUnknown Key = iota
	KeyEscape      // quit
	KeyF5          // force refresh
	KeyF11         // toggle fullscreen
)
