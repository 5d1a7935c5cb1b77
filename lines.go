package gauges

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Default Lines parameters, matching the stock dashboard.
const (
	// DefaultSeriesCount is the number of chart series.
	DefaultSeriesCount = 8

	// DefaultCapacity is the number of samples retained per series.
	DefaultCapacity = 300
)

// LinesSource samples one value per series, index-aligned: element i feeds
// series i. It may return fewer values than there are series, in which
// case the remaining series simply receive no sample this frame. It is
// called once per frame and must not block.
type LinesSource func() ([]float64, error)

// Lines is a scrolling multi-series line chart. Each frame appends one
// sample per series to a bounded history (oldest evicted at capacity) and
// redraws the entire visible history, right-aligned: the most recent
// sample sits at the right edge and a not-yet-full history grows in from
// the right.
type Lines struct {
	*LayeredDrawable

	theme      Theme
	source     LinesSource
	capacity   int
	ymin, ymax float64
	history    []*series
}

// LinesOption configures a Lines chart during creation.
type LinesOption func(*Lines)

// WithLinesSource replaces the sample source (default: no samples).
func WithLinesSource(src LinesSource) LinesOption {
	return func(l *Lines) {
		l.source = src
	}
}

// WithLinesTheme replaces the color theme.
func WithLinesTheme(t Theme) LinesOption {
	return func(l *Lines) {
		l.theme = t
	}
}

// WithLinesSeries sets the number of series (default DefaultSeriesCount).
func WithLinesSeries(n int) LinesOption {
	return func(l *Lines) {
		l.history = make([]*series, n)
	}
}

// WithLinesCapacity sets the per-series history capacity
// (default DefaultCapacity).
func WithLinesCapacity(capacity int) LinesOption {
	return func(l *Lines) {
		l.capacity = capacity
	}
}

// WithLinesRange sets the fixed Y value domain (default [-20, 20]).
// Values map linearly onto the surface height, larger values higher.
func WithLinesRange(ymin, ymax float64) LinesOption {
	return func(l *Lines) {
		l.ymin, l.ymax = ymin, ymax
	}
}

// NewLines creates a line-chart widget of the given size.
func NewLines(size Size, opts ...LinesOption) (*Lines, error) {
	l := &Lines{
		theme:    DefaultTheme(),
		source:   func() ([]float64, error) { return nil, nil },
		capacity: DefaultCapacity,
		ymin:     -20,
		ymax:     20,
		history:  make([]*series, DefaultSeriesCount),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.capacity < 1 {
		return nil, fmt.Errorf("gauges: lines capacity must be >= 1, got %d", l.capacity)
	}
	for i := range l.history {
		l.history[i] = newSeries(l.capacity)
	}
	ld, err := NewLayeredDrawable(size, l, WithClearColor(l.theme.Background))
	if err != nil {
		return nil, err
	}
	l.LayeredDrawable = ld
	return l, nil
}

// DrawBackground paints the chart border.
func (l *Lines) DrawBackground(dc *gg.Context) error {
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.SetColor(l.theme.Border.Color())
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, w-1, h-1)
	return dc.Stroke()
}

// Draw appends the sampled values to the history and redraws every series.
func (l *Lines) Draw(dc *gg.Context) error {
	samples, err := l.source()
	if err != nil {
		return fmt.Errorf("%w: lines: %v", ErrDataUnavailable, err)
	}
	for i, v := range samples {
		if i >= len(l.history) {
			break
		}
		l.history[i].push(v)
	}

	w, h := float64(dc.Width()), float64(dc.Height())
	xUnit := w / float64(l.capacity)

	dc.SetLineWidth(1)
	for i, s := range l.history {
		n := s.len()
		if n < 2 {
			continue
		}
		dc.SetColor(l.theme.seriesColor(i).Color())

		// Right-aligned: missing samples shift the start position right so
		// the newest sample always lands at the right edge.
		x := float64(l.capacity-n) * xUnit
		dc.MoveTo(x, l.sampleY(s.at(0), h))
		for j := 1; j < n; j++ {
			x += xUnit
			dc.LineTo(x, l.sampleY(s.at(j), h))
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// sampleY maps a sample value onto the pixel Y axis. The axis is inverted:
// larger values draw closer to the top of the surface.
func (l *Lines) sampleY(v, height float64) float64 {
	return Rescale(v, l.ymin, l.ymax, height, 0)
}

// SeriesLen returns the number of retained samples for a series index.
// Out-of-range indices report 0.
func (l *Lines) SeriesLen(i int) int {
	if i < 0 || i >= len(l.history) {
		return 0
	}
	return l.history[i].len()
}
