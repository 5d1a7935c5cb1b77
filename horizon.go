package gauges

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// HorizonSource samples the attitude shown by a Horizon: pitch and roll in
// degrees, each expected in [-90, 90]. It is called once per frame and must
// not block.
type HorizonSource func() (pitch, roll float64, err error)

// Horizon is an artificial-horizon widget. The pitch and roll indicators
// are rendered as two independent line segments over a cached bezel:
// the pitch line is horizontal and rides up and down the face, the roll
// line pivots around the center. The two are intentionally not composed
// into a single rotated horizon plane.
type Horizon struct {
	*LayeredDrawable

	theme  Theme
	source HorizonSource
}

// HorizonOption configures a Horizon during creation.
type HorizonOption func(*Horizon)

// WithHorizonSource replaces the attitude source (default: level flight).
func WithHorizonSource(src HorizonSource) HorizonOption {
	return func(h *Horizon) {
		h.source = src
	}
}

// WithHorizonTheme replaces the color theme.
func WithHorizonTheme(t Theme) HorizonOption {
	return func(h *Horizon) {
		h.theme = t
	}
}

// NewHorizon creates an artificial-horizon widget of the given size.
func NewHorizon(size Size, opts ...HorizonOption) (*Horizon, error) {
	h := &Horizon{
		theme: DefaultTheme(),
		source: func() (float64, float64, error) {
			return 0, 0, nil
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	ld, err := NewLayeredDrawable(size, h, WithClearColor(h.theme.Background))
	if err != nil {
		return nil, err
	}
	h.LayeredDrawable = ld
	return h, nil
}

// DrawBackground paints the bezel circle.
func (h *Horizon) DrawBackground(dc *gg.Context) error {
	w, ht := float64(dc.Width()), float64(dc.Height())
	dc.SetColor(h.theme.Border.Color())
	dc.SetLineWidth(1)
	dc.DrawCircle(w/2, ht/2, math.Min(w, ht)/2)
	return dc.Stroke()
}

// Draw paints the pitch and roll lines for the sampled attitude.
func (h *Horizon) Draw(dc *gg.Context) error {
	pitchDeg, rollDeg, err := h.source()
	if err != nil {
		return fmt.Errorf("%w: horizon: %v", ErrDataUnavailable, err)
	}

	w, ht := float64(dc.Width()), float64(dc.Height())
	cx, cy := w/2, ht/2
	radius := math.Min(w, ht) / 2
	pitch := pitchDeg * math.Pi / 180
	roll := rollDeg * math.Pi / 180

	// Pitch: a horizontal line offset vertically by sin(pitch), shrinking
	// toward the poles like the visible horizon chord.
	horizY := cy + math.Sin(pitch)*radius
	halfW := math.Cos(pitch) * radius
	dc.SetColor(h.theme.Pitch.Color())
	dc.SetLineWidth(1)
	dc.DrawLine(cx-halfW, horizY, cx+halfW, horizY)
	if err := dc.Stroke(); err != nil {
		return err
	}

	// Roll: a line through the center at the roll angle.
	rollH := math.Cos(roll) * radius
	rollV := math.Sin(roll) * radius
	dc.SetColor(h.theme.Roll.Color())
	dc.SetLineWidth(1)
	dc.DrawLine(cx-rollH, cy-rollV, cx+rollH, cy+rollV)
	return dc.Stroke()
}
