// Package platform abstracts the window, input and presentation services
// consumed by the gauges Application: video-mode management, event polling
// and frame presentation.
//
// Drivers register themselves in a registry (see Register) and are selected
// by name or by priority, mirroring how rendering backends are selected in
// github.com/gogpu/gg. A headless software driver is always available; real
// window-system drivers are integration concerns layered on top by callers.
package platform

import (
	"fmt"
	"time"

	"github.com/gogpu/gg"
)

// Driver is the window/input collaborator contract.
//
// Drivers are single-threaded: all methods are called from the application
// loop goroutine.
type Driver interface {
	// Name returns the driver identifier (e.g. "software").
	Name() string

	// Init initializes the video subsystem. It must be called before any
	// other method.
	Init() error

	// SetCaption sets the window title, where the driver has a window.
	SetCaption(title string)

	// SetVideoMode establishes a screen surface with the given resolution
	// and fullscreen flag, returning the drawing context backing the
	// screen. Failures are reported as *VideoModeError so callers can fall
	// back to a known-good mode.
	//
	// The returned context is owned by the driver and is invalidated by
	// the next SetVideoMode call.
	SetVideoMode(width, height int, fullscreen bool) (*gg.Context, error)

	// DisplayModes lists the available fullscreen resolutions, largest
	// first.
	DisplayModes() [][2]int

	// PollEvents drains and returns all pending input events, oldest
	// first. It never blocks.
	PollEvents() []Event

	// Present pushes the screen surface to the display.
	Present(screen *gg.Context) error

	// Delay blocks for the given duration (used for user-feedback pauses,
	// not for frame pacing).
	Delay(d time.Duration)

	// Quit releases all platform resources. The driver must not be used
	// afterwards.
	Quit()
}

// VideoModeError reports that a driver failed to establish the requested
// video mode.
type VideoModeError struct {
	Width      int
	Height     int
	Fullscreen bool
	Err        error
}

func (e *VideoModeError) Error() string {
	mode := "windowed"
	if e.Fullscreen {
		mode = "fullscreen"
	}
	return fmt.Sprintf("platform: cannot set %dx%d %s video mode: %v", e.Width, e.Height, mode, e.Err)
}

func (e *VideoModeError) Unwrap() error {
	return e.Err
}
