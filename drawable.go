package gauges

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Size is the immutable (width, height) pair attached to every drawable.
// Both dimensions must be at least 1.
type Size struct {
	W, H int
}

// validate reports whether the size is usable for a pixel surface.
func (s Size) validate() error {
	if s.W < 1 || s.H < 1 {
		return fmt.Errorf("%w: %dx%d (both dimensions must be >= 1)", ErrInvalidSize, s.W, s.H)
	}
	return nil
}

// Painter paints per-frame foreground content onto a drawing context.
// Draw is invoked once per Render call and receives a context that already
// holds the base content for this frame (a cleared surface for a plain
// Drawable, the copied background for a LayeredDrawable).
type Painter interface {
	Draw(dc *gg.Context) error
}

// BackgroundPainter extends Painter with static background geometry.
// DrawBackground is invoked once per size: its output is cached across
// frames and rebuilt only after a resize. Background content must depend
// only on the surface size and static style parameters, never on live data.
type BackgroundPainter interface {
	Painter
	DrawBackground(dc *gg.Context) error
}

// Renderer is the contract the Application drives each tick. Both Drawable
// and LayeredDrawable (and therefore every widget) implement it.
type Renderer interface {
	Size() Size
	Resize(Size) error
	Render() (*gg.Context, error)
}

// Drawable is a fixed-size entity that renders into an internally owned
// surface on demand. The surface is created lazily and recreated after a
// resize; callers must not retain the returned context across Resize.
type Drawable struct {
	size    Size
	painter Painter
	clear   gg.RGBA
	output  *gg.Context
}

// DrawableOption configures a Drawable or LayeredDrawable during creation.
type DrawableOption func(*drawableOptions)

type drawableOptions struct {
	clear gg.RGBA
}

// WithClearColor sets the color the surface is cleared to before the
// painter runs (for a LayeredDrawable, the background fill color).
// The default is the Solarized panel background from DefaultTheme.
func WithClearColor(c gg.RGBA) DrawableOption {
	return func(o *drawableOptions) {
		o.clear = c
	}
}

func applyDrawableOptions(opts []DrawableOption) drawableOptions {
	o := drawableOptions{clear: DefaultTheme().Background}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewDrawable creates a drawable of the given size. The painter may be nil,
// in which case Render produces a cleared surface.
func NewDrawable(size Size, p Painter, opts ...DrawableOption) (*Drawable, error) {
	if err := size.validate(); err != nil {
		return nil, err
	}
	o := applyDrawableOptions(opts)
	return &Drawable{size: size, painter: p, clear: o.clear}, nil
}

// Size returns the current size.
func (d *Drawable) Size() Size {
	return d.size
}

// Resize replaces the drawable's size and invalidates the output surface.
// Resizing to the current size is a no-op. A failed resize leaves existing
// state untouched.
func (d *Drawable) Resize(s Size) error {
	if err := s.validate(); err != nil {
		return err
	}
	if s == d.size {
		return nil
	}
	d.size = s
	d.invalidate()
	return nil
}

// invalidate drops the cached output surface.
func (d *Drawable) invalidate() {
	if d.output != nil {
		_ = d.output.Close()
		d.output = nil
	}
}

// Render returns the drawable's output surface for this tick, creating it
// if absent, clearing it and running the painter. The surface is owned by
// the Drawable.
//
// On a painter error the surface is returned as-is: cleared plus whatever
// the painter drew before failing. There is no previous-frame preservation
// here; use LayeredDrawable when a failed frame must not disturb the last
// good one.
func (d *Drawable) Render() (*gg.Context, error) {
	if d.output == nil {
		d.output = gg.NewContext(d.size.W, d.size.H)
	}
	d.output.ClearWithColor(d.clear)
	if d.painter != nil {
		if err := d.painter.Draw(d.output); err != nil {
			return d.output, err
		}
	}
	return d.output, nil
}
