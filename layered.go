package gauges

import "github.com/gogpu/gg"

// LayeredDrawable composes a cached background layer with a per-frame
// foreground. The background is rasterized once per size via the painter's
// DrawBackground and reused across frames; every Render copies the cached
// pixels into a composition buffer and runs the foreground Draw on top, so
// foreground content never leaks into the background cache.
//
// Background geometry (bezels, tick marks, borders) is expensive relative
// to the foreground (a handful of line segments); the split avoids
// re-rasterizing static content every frame.
type LayeredDrawable struct {
	size    Size
	painter BackgroundPainter
	clear   gg.RGBA

	background *gg.Context // content depends only on size and style
	scratch    *gg.Context // per-frame composition buffer
	output     *gg.Context // last successfully composed frame
}

// NewLayeredDrawable creates a layered drawable of the given size driven by
// the given painter.
func NewLayeredDrawable(size Size, p BackgroundPainter, opts ...DrawableOption) (*LayeredDrawable, error) {
	if err := size.validate(); err != nil {
		return nil, err
	}
	o := applyDrawableOptions(opts)
	return &LayeredDrawable{size: size, painter: p, clear: o.clear}, nil
}

// Size returns the current size.
func (l *LayeredDrawable) Size() Size {
	return l.size
}

// BackgroundColor returns the fill color of the background layer.
func (l *LayeredDrawable) BackgroundColor() gg.RGBA {
	return l.clear
}

// Resize replaces the size and invalidates both the output and the cached
// background; the next Render rebuilds both. Resizing to the current size
// is a no-op. A failed resize leaves existing state untouched.
func (l *LayeredDrawable) Resize(s Size) error {
	if err := s.validate(); err != nil {
		return err
	}
	if s == l.size {
		return nil
	}
	l.size = s
	l.invalidate()
	return nil
}

func (l *LayeredDrawable) invalidate() {
	for _, dc := range []*gg.Context{l.background, l.scratch, l.output} {
		if dc != nil {
			_ = dc.Close()
		}
	}
	l.background = nil
	l.scratch = nil
	l.output = nil
}

// BackgroundSurface returns the cached background layer, building it lazily
// on first access or after invalidation: a fresh size-matching surface is
// filled with the background color and handed to DrawBackground. Subsequent
// calls return the cached surface unchanged until the next resize.
func (l *LayeredDrawable) BackgroundSurface() (*gg.Context, error) {
	if l.background != nil {
		return l.background, nil
	}
	dc := gg.NewContext(l.size.W, l.size.H)
	dc.ClearWithColor(l.clear)
	if l.painter != nil {
		if err := l.painter.DrawBackground(dc); err != nil {
			_ = dc.Close()
			return nil, err
		}
	}
	l.background = dc
	return l.background, nil
}

// Render composes the current frame: the cached background is copied into
// the composition buffer, the foreground Draw runs on the copy, and the
// result replaces the output surface.
//
// If the foreground Draw fails, the output keeps the previous frame's
// content and is returned alongside the error, so callers can present the
// last good frame (graceful sensor degradation).
func (l *LayeredDrawable) Render() (*gg.Context, error) {
	bg, err := l.BackgroundSurface()
	if err != nil {
		return nil, err
	}
	if l.scratch == nil {
		l.scratch = gg.NewContext(l.size.W, l.size.H)
	}
	Blit(l.scratch, bg, 0, 0)

	if l.painter != nil {
		if err := l.painter.Draw(l.scratch); err != nil {
			// First frame: there is no previous content, fall back to the
			// bare background so callers still get a presentable surface.
			if l.output == nil {
				l.output = gg.NewContext(l.size.W, l.size.H)
				Blit(l.output, bg, 0, 0)
			}
			return l.output, err
		}
	}

	if l.output == nil {
		l.output = gg.NewContext(l.size.W, l.size.H)
	}
	Blit(l.output, l.scratch, 0, 0)
	return l.output, nil
}
