package platform

import (
	"errors"
	"image"
	"sync"
	"time"

	"github.com/gogpu/gg"
)

// DriverSoftware is the name of the built-in headless driver.
const DriverSoftware = "software"

// init registers the software driver on package import.
func init() {
	Register(DriverSoftware, func() Driver {
		return NewSoftware()
	})
}

// Software is a headless driver: the screen is an in-memory surface,
// events are injected with PushEvent, and Present retains a copy of the
// last presented frame. It backs tests, CI runs and offline rendering.
type Software struct {
	mu sync.Mutex

	initialized bool
	caption     string
	modes       [][2]int
	screen      *gg.Context
	queue       []Event

	presented int
	lastFrame *image.RGBA
}

// NewSoftware creates a software driver with a stock set of display modes.
func NewSoftware() *Software {
	return &Software{
		modes: [][2]int{
			{1920, 1080},
			{1280, 1024},
			{1024, 768},
			{800, 600},
			{640, 480},
		},
	}
}

// Name implements Driver.
func (s *Software) Name() string {
	return DriverSoftware
}

// Init implements Driver.
func (s *Software) Init() error {
	s.initialized = true
	return nil
}

// SetCaption implements Driver.
func (s *Software) SetCaption(title string) {
	s.caption = title
}

// Caption returns the last caption set.
func (s *Software) Caption() string {
	return s.caption
}

// SetVideoMode implements Driver. The previous screen context, if any, is
// released.
func (s *Software) SetVideoMode(width, height int, fullscreen bool) (*gg.Context, error) {
	if !s.initialized {
		return nil, &VideoModeError{
			Width: width, Height: height, Fullscreen: fullscreen,
			Err: errors.New("driver not initialized"),
		}
	}
	if width < 1 || height < 1 {
		return nil, &VideoModeError{
			Width: width, Height: height, Fullscreen: fullscreen,
			Err: errors.New("non-positive resolution"),
		}
	}
	if s.screen != nil {
		_ = s.screen.Close()
	}
	s.screen = gg.NewContext(width, height)
	return s.screen, nil
}

// DisplayModes implements Driver.
func (s *Software) DisplayModes() [][2]int {
	out := make([][2]int, len(s.modes))
	copy(out, s.modes)
	return out
}

// PushEvent appends an event to the pending queue. Safe to call from test
// goroutines.
func (s *Software) PushEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, ev)
}

// PollEvents implements Driver: it drains the injected queue.
func (s *Software) PollEvents() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.queue
	s.queue = nil
	return out
}

// Present implements Driver. The frame's pixel content is retained and can
// be inspected with LastFrame.
func (s *Software) Present(screen *gg.Context) error {
	if err := screen.FlushGPU(); err != nil {
		return err
	}
	s.presented++
	s.lastFrame = screen.Image().(*image.RGBA)
	return nil
}

// Presented returns the number of frames presented so far.
func (s *Software) Presented() int {
	return s.presented
}

// LastFrame returns a copy of the most recently presented frame, or nil if
// nothing has been presented yet.
func (s *Software) LastFrame() *image.RGBA {
	return s.lastFrame
}

// Delay implements Driver.
func (s *Software) Delay(d time.Duration) {
	time.Sleep(d)
}

// Quit implements Driver.
func (s *Software) Quit() {
	if s.screen != nil {
		_ = s.screen.Close()
		s.screen = nil
	}
	s.initialized = false
}
