package gauges

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gauges/platform"
)

// Default application configuration values.
const (
	DefaultWidth  = 1280
	DefaultHeight = 1024
	DefaultMaxFPS = 50
	DefaultTitle  = "Gauges Dashboard"
)

// FPS badge thresholds: at or above OK the badge is green, at or above
// Warning it is yellow, below that red.
const (
	fpsThresholdOK      = 40
	fpsThresholdWarning = 25
)

// flashDelay is how long the F5 full-refresh flash stays on screen.
const flashDelay = 40 * time.Millisecond

// Config holds the application construction options.
type Config struct {
	// Width and Height set the initial resolution. Zero means the default
	// window size (windowed) or the largest display mode (fullscreen).
	Width  int
	Height int

	// Fullscreen selects the initial display mode.
	Fullscreen bool

	// MaxFPS is the target frame rate; zero means DefaultMaxFPS, negative
	// disables throttling.
	MaxFPS int

	// Title is the window caption.
	Title string
}

func (c Config) withDefaults() Config {
	if c.MaxFPS == 0 {
		c.MaxFPS = DefaultMaxFPS
	}
	if c.MaxFPS < 0 {
		c.MaxFPS = 0
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	return c
}

// placement binds a widget to a fixed screen offset. Later placements draw
// over earlier ones where they overlap.
type placement struct {
	widget Renderer
	x, y   int
	last   *gg.Context // last good surface, reused on sensor failure
}

// Application owns the screen, the placed widgets and the render loop.
//
// The loop is single-threaded and cooperative: each tick runs PollEvents,
// TickWidgets, Compose, Present and Throttle to completion before the next
// tick begins. A quit event observed during PollEvents discards the rest of
// the tick; the partially drawn frame is never presented.
type Application struct {
	cfg    Config
	theme  Theme
	driver platform.Driver
	screen *gg.Context
	clock  *FrameClock

	placements []placement

	fullscreen     bool
	windowedSize   [2]int
	fullscreenSize [2]int

	fontSource *text.FontSource
	fpsFace    text.Face

	running bool
}

// AppOption configures an Application during creation.
type AppOption func(*Application)

// WithDriver injects a platform driver instead of the registry default.
func WithDriver(d platform.Driver) AppOption {
	return func(a *Application) {
		a.driver = d
	}
}

// WithTheme replaces the application color theme (screen background and
// FPS badge colors).
func WithTheme(t Theme) AppOption {
	return func(a *Application) {
		a.theme = t
	}
}

// New creates an Application: it initializes the platform driver, sets the
// window caption and establishes the initial video mode. The caller must
// Close the returned Application to release platform resources.
func New(cfg Config, opts ...AppOption) (*Application, error) {
	a := &Application{
		cfg:   cfg.withDefaults(),
		theme: DefaultTheme(),
		clock: NewFrameClock(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.driver == nil {
		a.driver = platform.Default()
	}
	if a.driver == nil {
		return nil, platform.ErrDriverNotAvailable
	}
	if err := a.driver.Init(); err != nil {
		return nil, fmt.Errorf("gauges: driver init: %w", err)
	}
	a.driver.SetCaption(a.cfg.Title)

	// Remember a resolution for each of windowed/fullscreen so toggling
	// restores the mode the user last used.
	largest := largestDisplayMode(a.driver)
	if a.cfg.Fullscreen {
		a.windowedSize = [2]int{DefaultWidth, DefaultHeight}
		a.fullscreenSize = largest
		if a.cfg.Width > 0 && a.cfg.Height > 0 {
			a.fullscreenSize = [2]int{a.cfg.Width, a.cfg.Height}
		}
	} else {
		a.windowedSize = [2]int{DefaultWidth, DefaultHeight}
		if a.cfg.Width > 0 && a.cfg.Height > 0 {
			a.windowedSize = [2]int{a.cfg.Width, a.cfg.Height}
		}
		a.fullscreenSize = largest
	}

	if err := a.setVideoMode(a.cfg.Fullscreen); err != nil {
		a.driver.Quit()
		return nil, err
	}
	return a, nil
}

func largestDisplayMode(d platform.Driver) [2]int {
	best := [2]int{DefaultWidth, DefaultHeight}
	bestArea := 0
	for _, m := range d.DisplayModes() {
		if area := m[0] * m[1]; area > bestArea {
			best, bestArea = m, area
		}
	}
	return best
}

// setVideoMode switches to the remembered resolution for the given mode.
func (a *Application) setVideoMode(fullscreen bool) error {
	size := a.windowedSize
	if fullscreen {
		size = a.fullscreenSize
	}
	screen, err := a.driver.SetVideoMode(size[0], size[1], fullscreen)
	if err != nil {
		return err
	}
	a.screen = screen
	a.fullscreen = fullscreen
	Logger().Info("video mode set",
		"width", size[0], "height", size[1], "fullscreen", fullscreen)
	return nil
}

// AddDisplay appends a widget at a fixed screen offset. Placements are
// append-only and drawn in insertion order, later over earlier. The
// position is not validated against the screen: off-screen placements are
// legal and simply clipped. AddDisplay must not be called while a tick is
// executing.
func (a *Application) AddDisplay(w Renderer, x, y int) {
	a.placements = append(a.placements, placement{widget: w, x: x, y: y})
}

// Screen returns the current screen surface. It is owned by the driver and
// invalidated by video mode changes.
func (a *Application) Screen() *gg.Context {
	return a.screen
}

// FPS returns the rolling achieved-frame-rate estimate.
func (a *Application) FPS() float64 {
	return a.clock.FPS()
}

// Run executes the render loop until a quit event arrives or a driver
// error occurs. It can be called again after it returns.
func (a *Application) Run() error {
	a.running = true
	defer func() { a.running = false }()

	for a.running {
		if err := a.step(); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the platform resources. The Application must not be used
// afterwards.
func (a *Application) Close() {
	a.driver.Quit()
}

// loopStatus is the PollEvents outcome consumed by the loop state machine.
type loopStatus int

const (
	loopContinue loopStatus = iota
	loopQuit
)

// step executes one tick: PollEvents, TickWidgets, Compose, Present,
// Throttle. A quit observed in PollEvents skips the remaining phases.
func (a *Application) step() error {
	if a.processEvents() == loopQuit {
		a.running = false
		return nil
	}
	if err := a.tickWidgets(); err != nil {
		return err
	}
	a.compose()
	if err := a.present(); err != nil {
		return err
	}
	a.clock.Tick(a.cfg.MaxFPS)
	return nil
}

// processEvents drains pending input. Quit and Escape stop the loop
// immediately; F11 toggles fullscreen; F5 flashes the screen as refresh
// feedback without touching any cached state.
func (a *Application) processEvents() loopStatus {
	for _, ev := range a.driver.PollEvents() {
		switch ev := ev.(type) {
		case platform.QuitEvent:
			return loopQuit
		case platform.KeyEvent:
			switch ev.Key {
			case platform.KeyEscape:
				return loopQuit
			case platform.KeyF11:
				a.toggleFullscreen()
			case platform.KeyF5:
				a.flash()
			}
		}
	}
	return loopContinue
}

// toggleFullscreen switches between windowed and fullscreen, restoring the
// resolution last used in the target mode. If the driver rejects the mode,
// the current mode is re-established and the toggle is dropped.
func (a *Application) toggleFullscreen() {
	prev := a.fullscreen
	if err := a.setVideoMode(!prev); err != nil {
		Logger().Warn("video mode change failed, keeping current mode", "error", err)
		if err := a.setVideoMode(prev); err != nil {
			// Both modes failed; leave the old screen in place and let the
			// next driver call surface the problem.
			Logger().Warn("fallback video mode failed", "error", err)
		}
	}
}

// flash paints the screen solid and presents it briefly. Pure user
// feedback for a forced refresh; widget caches are untouched.
func (a *Application) flash() {
	a.screen.ClearWithColor(gg.White)
	if err := a.driver.Present(a.screen); err != nil {
		Logger().Warn("flash present failed", "error", err)
		return
	}
	a.driver.Delay(flashDelay)
}

// tickWidgets renders every placement in insertion order. A widget whose
// data source failed does not stop the dashboard; any other render error
// aborts the loop.
//
// The surface shown for a failed widget is whatever its Render returned:
// a LayeredDrawable hands back its previous composed frame, while a plain
// Drawable repaints its surface in place, so only layered widgets carry
// a last-good-frame guarantee.
func (a *Application) tickWidgets() error {
	for i := range a.placements {
		p := &a.placements[i]
		surface, err := p.widget.Render()
		if err != nil {
			if !errors.Is(err, ErrDataUnavailable) {
				return fmt.Errorf("gauges: widget render: %w", err)
			}
			Logger().Warn("widget data unavailable, reusing last frame", "error", err)
			if surface == nil {
				continue // nothing rendered yet, keep previous surface
			}
		}
		p.last = surface
	}
	return nil
}

// compose clears the screen and blits every widget surface at its offset,
// in insertion order.
func (a *Application) compose() {
	a.screen.ClearWithColor(a.theme.Background)
	for i := range a.placements {
		p := &a.placements[i]
		if p.last != nil {
			Blit(a.screen, p.last, p.x, p.y)
		}
	}
}

// present overlays the FPS badge at the bottom-left and pushes the frame
// to the display.
func (a *Application) present() error {
	a.drawFPSBadge()
	return a.driver.Present(a.screen)
}

func (a *Application) drawFPSBadge() {
	fps := a.clock.FPS()

	col := a.theme.StatusCritical
	switch {
	case fps >= fpsThresholdOK:
		col = a.theme.StatusOK
	case fps >= fpsThresholdWarning:
		col = a.theme.StatusWarning
	}

	face, err := a.badgeFace()
	if err != nil {
		Logger().Warn("fps badge font unavailable", "error", err)
		return
	}
	a.screen.SetFont(face)

	label := fmt.Sprintf(" %2d FPS ", int(fps))
	w, h := a.screen.MeasureString(label)
	screenH := float64(a.screen.Height())

	a.screen.SetColor(col.Color())
	a.screen.DrawRectangle(0, screenH-h-4, w+4, h+4)
	if err := a.screen.Fill(); err != nil {
		Logger().Warn("fps badge fill failed", "error", err)
		return
	}
	a.screen.SetColor(a.theme.Background.Color())
	a.screen.DrawString(label, 2, screenH-6)
}

// badgeFace lazily loads the embedded badge font.
func (a *Application) badgeFace() (text.Face, error) {
	if a.fpsFace != nil {
		return a.fpsFace, nil
	}
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, err
	}
	a.fontSource = src
	a.fpsFace = src.Face(16)
	return a.fpsFace, nil
}
