package gauges

import (
	"errors"
	"testing"
)

func TestHorizonRenderLevel(t *testing.T) {
	h, err := NewHorizon(Size{100, 100}, WithHorizonSource(func() (float64, float64, error) {
		return 0, 0, nil
	}))
	if err != nil {
		t.Fatalf("NewHorizon: %v", err)
	}

	out, err := h.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	// Level flight: both lines run horizontally through the center row.
	// Anti-aliasing spreads a 1px stroke over two rows, so accept either.
	pm := out.ResizeTarget()
	marked := false
	for _, y := range []int{49, 50} {
		if !sameColor(pm.GetPixel(50, y), h.BackgroundColor()) {
			marked = true
		}
	}
	if !marked {
		t.Error("no line pixels on the center rows for level attitude")
	}

	// Corner stays plain background.
	if got := pm.GetPixel(0, 0); !sameColor(got, h.BackgroundColor()) {
		t.Errorf("corner pixel = %v, want background fill", got)
	}

	// Well above the pitch line there is nothing but face.
	if got := pm.GetPixel(50, 25); !sameColor(got, h.BackgroundColor()) {
		t.Errorf("pixel above horizon = %v, want background fill", got)
	}
}

func TestHorizonPitchMovesLine(t *testing.T) {
	pitch := 0.0
	h, err := NewHorizon(Size{100, 100}, WithHorizonSource(func() (float64, float64, error) {
		return pitch, 0, nil // roll stays level, clear of the sampled rows
	}))
	if err != nil {
		t.Fatalf("NewHorizon: %v", err)
	}

	// Pitch -30 degrees: the line rises to cy + sin(-30deg)*r = 50 - 25.
	pitch = -30
	out, err := h.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	pm := out.ResizeTarget()
	marked := false
	for _, y := range []int{24, 25, 26} {
		if !sameColor(pm.GetPixel(50, y), h.BackgroundColor()) {
			marked = true
		}
	}
	if !marked {
		t.Error("pitch line not found near y=25 for pitch -30")
	}
}

func TestHorizonSourceFailure(t *testing.T) {
	fail := errors.New("imu offline")
	calls := 0
	h, err := NewHorizon(Size{64, 64}, WithHorizonSource(func() (float64, float64, error) {
		calls++
		if calls > 1 {
			return 0, 0, fail
		}
		return 10, 20, nil
	}))
	if err != nil {
		t.Fatalf("NewHorizon: %v", err)
	}

	if _, err := h.Render(); err != nil {
		t.Fatalf("first Render: %v", err)
	}
	if _, err := h.Render(); !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("error = %v, want ErrDataUnavailable", err)
	}
}
