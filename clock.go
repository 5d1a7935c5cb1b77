package gauges

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/gg"
)

// ClockSource samples the time shown by a Clock. It is called once per
// frame and must not block.
type ClockSource func() (time.Time, error)

// Clock is an analog clock widget: a cached face (bezel plus tick dots)
// with hour, minute and second needles redrawn every frame.
type Clock struct {
	*LayeredDrawable

	theme  Theme
	source ClockSource
}

// ClockOption configures a Clock during creation.
type ClockOption func(*Clock)

// WithClockSource replaces the time source (default: wall clock).
func WithClockSource(src ClockSource) ClockOption {
	return func(c *Clock) {
		c.source = src
	}
}

// WithClockTheme replaces the color theme.
func WithClockTheme(t Theme) ClockOption {
	return func(c *Clock) {
		c.theme = t
	}
}

// NewClock creates a clock widget of the given size.
func NewClock(size Size, opts ...ClockOption) (*Clock, error) {
	c := &Clock{
		theme: DefaultTheme(),
		source: func() (time.Time, error) {
			return time.Now(), nil
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	ld, err := NewLayeredDrawable(size, c, WithClearColor(c.theme.Background))
	if err != nil {
		return nil, err
	}
	c.LayeredDrawable = ld
	return c, nil
}

// DrawBackground paints the static clock face: the bezel circle and one
// tick dot every 6 degrees, with a larger, brighter dot every 30 degrees.
func (c *Clock) DrawBackground(dc *gg.Context) error {
	w, h := float64(dc.Width()), float64(dc.Height())
	cx, cy := w/2, h/2
	radius := math.Min(w, h) / 2

	dc.SetColor(c.theme.Border.Color())
	dc.SetLineWidth(3)
	dc.DrawCircle(cx, cy, radius)
	if err := dc.Stroke(); err != nil {
		return err
	}

	for angle := 0; angle < 360; angle += 6 {
		rad := float64(angle) * math.Pi / 180
		x := cx + math.Cos(rad)*(radius-20)
		y := cy + math.Sin(rad)*(radius-20)

		if angle%30 == 0 {
			dc.SetColor(c.theme.TickMajor.Color())
			dc.DrawCircle(x, y, 3)
		} else {
			dc.SetColor(c.theme.TickMinor.Color())
			dc.DrawCircle(x, y, 1)
		}
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

// Draw paints the three needles for the sampled time.
func (c *Clock) Draw(dc *gg.Context) error {
	now, err := c.source()
	if err != nil {
		return fmt.Errorf("%w: clock: %v", ErrDataUnavailable, err)
	}

	w, h := float64(dc.Width()), float64(dc.Height())
	cx, cy := w/2, h/2
	radius := math.Min(w, h) / 2

	for _, n := range clockNeedles(now) {
		rad := n.angleDeg * math.Pi / 180
		x := cx + math.Cos(rad)*radius*n.length
		y := cy + math.Sin(rad)*radius*n.length

		var col gg.RGBA
		if n.dim {
			col = c.theme.NeedleDim
		} else {
			col = c.theme.Needle
		}
		dc.SetColor(col.Color())
		dc.SetLineWidth(1)
		dc.DrawLine(cx, cy, x, y)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// needle describes one clock hand: its angle in degrees (0 = east,
// increasing clockwise on screen), its length as a fraction of the face
// radius, and whether it uses the dimmed color.
type needle struct {
	angleDeg float64
	length   float64
	dim      bool
}

// clockNeedles maps a time to the three needle placements. The -3 and -15
// offsets rotate 12 o'clock to the top given the 0-degrees-east convention.
func clockNeedles(t time.Time) [3]needle {
	return [3]needle{
		{angleDeg: float64((t.Hour()%12)-3) * 30, length: 0.8},
		{angleDeg: float64(t.Minute()-15) * 6, length: 1.0},
		{angleDeg: float64(t.Second()-15) * 6, length: 1.0, dim: true},
	}
}
