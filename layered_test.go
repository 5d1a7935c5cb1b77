package gauges

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

// layerPainter paints a small background marker and a foreground dot, and
// counts hook invocations. The foreground can be made to fail on demand.
type layerPainter struct {
	bgCalls int
	fgCalls int
	fgColor gg.RGBA
	fgErr   error
}

func (p *layerPainter) DrawBackground(dc *gg.Context) error {
	p.bgCalls++
	dc.SetColor(gg.White.Color())
	dc.DrawRectangle(0, 0, 2, 2)
	return dc.Fill()
}

func (p *layerPainter) Draw(dc *gg.Context) error {
	p.fgCalls++
	if p.fgErr != nil {
		return p.fgErr
	}
	dc.SetColor(p.fgColor.Color())
	dc.DrawRectangle(10, 10, 4, 4)
	return dc.Fill()
}

func TestLayeredBackgroundBuiltOnce(t *testing.T) {
	p := &layerPainter{fgColor: gg.Red}
	l, err := NewLayeredDrawable(Size{32, 32}, p)
	if err != nil {
		t.Fatalf("NewLayeredDrawable: %v", err)
	}

	for i := 0; i < 5; i++ {
		if _, err := l.Render(); err != nil {
			t.Fatalf("Render %d: %v", i, err)
		}
	}

	if p.bgCalls != 1 {
		t.Errorf("DrawBackground called %d times, want 1", p.bgCalls)
	}
	if p.fgCalls != 5 {
		t.Errorf("Draw called %d times, want 5", p.fgCalls)
	}
}

func TestLayeredBackgroundPurity(t *testing.T) {
	p := &layerPainter{fgColor: gg.Red}
	l, err := NewLayeredDrawable(Size{32, 32}, p)
	if err != nil {
		t.Fatalf("NewLayeredDrawable: %v", err)
	}

	if _, err := l.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	bg, err := l.BackgroundSurface()
	if err != nil {
		t.Fatalf("BackgroundSurface: %v", err)
	}
	before := bg.ResizeTarget().GetPixel(12, 12)

	for i := 0; i < 3; i++ {
		if _, err := l.Render(); err != nil {
			t.Fatalf("Render %d: %v", i, err)
		}
	}

	// The foreground dot lands at (10..14, 10..14) on the composed output,
	// but must never reach the cached background.
	after := bg.ResizeTarget().GetPixel(12, 12)
	if !sameColor(before, after) {
		t.Errorf("background pixel changed from %v to %v", before, after)
	}
	if sameColor(after, gg.Red) {
		t.Error("foreground color leaked into the cached background")
	}

	out, _ := l.Render()
	if got := out.ResizeTarget().GetPixel(12, 12); !sameColor(got, gg.Red) {
		t.Errorf("output pixel = %v, want foreground color", got)
	}
}

func TestLayeredResizeRebuildsBackground(t *testing.T) {
	p := &layerPainter{fgColor: gg.Red}
	l, err := NewLayeredDrawable(Size{32, 32}, p)
	if err != nil {
		t.Fatalf("NewLayeredDrawable: %v", err)
	}
	if _, err := l.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if err := l.Resize(Size{64, 48}); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	out, err := l.Render()
	if err != nil {
		t.Fatalf("Render after resize: %v", err)
	}

	if out.Width() != 64 || out.Height() != 48 {
		t.Errorf("surface after resize = %dx%d, want 64x48", out.Width(), out.Height())
	}
	if p.bgCalls != 2 {
		t.Errorf("DrawBackground called %d times, want 2 (rebuilt after resize)", p.bgCalls)
	}
}

func TestLayeredForegroundFailureKeepsPreviousFrame(t *testing.T) {
	p := &layerPainter{fgColor: gg.Red}
	l, err := NewLayeredDrawable(Size{32, 32}, p)
	if err != nil {
		t.Fatalf("NewLayeredDrawable: %v", err)
	}

	good, err := l.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := good.ResizeTarget().GetPixel(12, 12)

	p.fgErr = errors.New("sensor gone")
	out, err := l.Render()
	if err == nil {
		t.Fatal("Render should fail when the foreground fails")
	}
	if out == nil {
		t.Fatal("Render must still return the previous frame")
	}
	if got := out.ResizeTarget().GetPixel(12, 12); !sameColor(got, want) {
		t.Errorf("pixel after failed render = %v, want previous frame %v", got, want)
	}
}

func TestLayeredFirstFrameFailureFallsBackToBackground(t *testing.T) {
	p := &layerPainter{fgColor: gg.Red, fgErr: errors.New("cold sensor")}
	l, err := NewLayeredDrawable(Size{32, 32}, p)
	if err != nil {
		t.Fatalf("NewLayeredDrawable: %v", err)
	}

	out, err := l.Render()
	if err == nil {
		t.Fatal("Render should fail when the foreground fails")
	}
	if out == nil {
		t.Fatal("Render must return a bare-background surface on first-frame failure")
	}
	if got := out.ResizeTarget().GetPixel(12, 12); !sameColor(got, l.BackgroundColor()) {
		t.Errorf("pixel = %v, want background fill", got)
	}
}
