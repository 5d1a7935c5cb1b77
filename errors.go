package gauges

import "errors"

// Common gauges errors.
var (
	// ErrInvalidSize is returned when a Drawable is created or resized with
	// non-positive dimensions. The call fails; existing state is unchanged.
	ErrInvalidSize = errors.New("gauges: invalid size")

	// ErrDataUnavailable is returned (wrapped) by a widget's Render when its
	// data source failed. The widget's previous frame is still valid and is
	// returned alongside the error, so the dashboard degrades gracefully
	// instead of crashing on a corrupted sensor.
	ErrDataUnavailable = errors.New("gauges: sensor data unavailable")
)
