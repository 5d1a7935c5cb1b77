package gauges

import (
	"testing"
	"time"
)

// fakeTime drives a FrameClock deterministically: sleeping advances the
// clock, and tests advance it manually to simulate work.
type fakeTime struct {
	now   time.Time
	slept time.Duration
}

func (f *fakeTime) install(c *FrameClock) {
	c.now = func() time.Time { return f.now }
	c.sleep = func(d time.Duration) {
		f.slept += d
		f.now = f.now.Add(d)
	}
}

func TestFrameClockThrottles(t *testing.T) {
	ft := &fakeTime{now: time.Unix(1000, 0)}
	c := NewFrameClock()
	ft.install(c)

	c.Tick(50) // first tick only starts timing

	ft.now = ft.now.Add(5 * time.Millisecond) // a fast 5ms frame
	frame := c.Tick(50)

	if want := 15 * time.Millisecond; ft.slept != want {
		t.Errorf("slept %v, want %v", ft.slept, want)
	}
	if want := 20 * time.Millisecond; frame != want {
		t.Errorf("frame duration %v, want %v", frame, want)
	}
}

func TestFrameClockSlowFrameDoesNotSleep(t *testing.T) {
	ft := &fakeTime{now: time.Unix(1000, 0)}
	c := NewFrameClock()
	ft.install(c)

	c.Tick(50)
	ft.now = ft.now.Add(30 * time.Millisecond) // slower than the 20ms target
	frame := c.Tick(50)

	if ft.slept != 0 {
		t.Errorf("slept %v, want 0 for a slow frame", ft.slept)
	}
	if want := 30 * time.Millisecond; frame != want {
		t.Errorf("frame duration %v, want %v", frame, want)
	}
}

func TestFrameClockUnthrottled(t *testing.T) {
	ft := &fakeTime{now: time.Unix(1000, 0)}
	c := NewFrameClock()
	ft.install(c)

	c.Tick(0)
	ft.now = ft.now.Add(time.Millisecond)
	c.Tick(0)

	if ft.slept != 0 {
		t.Errorf("slept %v, want 0 when unthrottled", ft.slept)
	}
}

func TestFrameClockFPS(t *testing.T) {
	ft := &fakeTime{now: time.Unix(1000, 0)}
	c := NewFrameClock()
	ft.install(c)

	if got := c.FPS(); got != 0 {
		t.Errorf("FPS before any frame = %v, want 0", got)
	}

	c.Tick(0)
	for i := 0; i < 20; i++ {
		ft.now = ft.now.Add(20 * time.Millisecond)
		c.Tick(0)
	}

	if got := c.FPS(); got < 49.9 || got > 50.1 {
		t.Errorf("FPS = %v, want ~50", got)
	}
}
