package gauges

import "github.com/gogpu/gg"

// Theme is the immutable color table used by widgets and the Application.
// A Theme is constructed once and passed by value into widgets at
// construction; widgets never consult ambient global state for colors.
type Theme struct {
	// Background is the default fill for panels and the screen.
	Background gg.RGBA

	// Border is the bezel/border color of widget backgrounds.
	Border gg.RGBA

	// Needle is the primary needle color (clock hour/minute hands).
	Needle gg.RGBA

	// NeedleDim is the secondary needle color (clock second hand).
	NeedleDim gg.RGBA

	// TickMajor and TickMinor color the clock face tick dots.
	TickMajor gg.RGBA
	TickMinor gg.RGBA

	// Pitch and Roll color the two artificial-horizon lines.
	Pitch gg.RGBA
	Roll  gg.RGBA

	// StatusOK, StatusWarning and StatusCritical back the FPS badge:
	// ok at >= 40 FPS, warning at >= 25, critical below.
	StatusOK       gg.RGBA
	StatusWarning  gg.RGBA
	StatusCritical gg.RGBA

	// Series holds the per-index colors for line-chart series. Series
	// beyond the table wrap around.
	Series []gg.RGBA
}

// DefaultTheme returns the Solarized-based theme used by the stock widgets.
func DefaultTheme() Theme {
	var (
		base03  = gg.Hex("#002b36")
		base02  = gg.Hex("#073642")
		base00  = gg.Hex("#657b83")
		base0   = gg.Hex("#839496")
		base2   = gg.Hex("#eee8d5")
		yellow  = gg.Hex("#b58900")
		orange  = gg.Hex("#cb4b16")
		red     = gg.Hex("#dc322f")
		magenta = gg.Hex("#d33682")
		violet  = gg.Hex("#6c71c4")
		blue    = gg.Hex("#268bd2")
		cyan    = gg.Hex("#2aa198")
		green   = gg.Hex("#859900")
	)

	return Theme{
		Background:     base03,
		Border:         base0,
		Needle:         base2,
		NeedleDim:      base0,
		TickMajor:      base00,
		TickMinor:      base02,
		Pitch:          red,
		Roll:           yellow,
		StatusOK:       green,
		StatusWarning:  yellow,
		StatusCritical: red,
		Series: []gg.RGBA{
			green, red, violet, orange, blue, yellow, cyan, magenta,
		},
	}
}

// seriesColor returns the color for a series index, wrapping around the
// theme's series table.
func (t Theme) seriesColor(i int) gg.RGBA {
	if len(t.Series) == 0 {
		return t.Border
	}
	return t.Series[i%len(t.Series)]
}
