package gauges

import "time"

// fpsWindow is the number of recent frames averaged for the FPS estimate.
const fpsWindow = 10

// FrameClock paces the render loop to a target frame rate and tracks a
// rolling estimate of the achieved FPS over the last few frames.
type FrameClock struct {
	last    time.Time
	samples []time.Duration
	next    int

	// Injection points for tests; default to the real clock.
	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameClock creates a frame clock. The first Tick only starts timing.
func NewFrameClock() *FrameClock {
	return &FrameClock{
		samples: make([]time.Duration, 0, fpsWindow),
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// Tick blocks until at least 1/maxFPS has elapsed since the previous Tick
// began, then records the frame duration. It returns the total frame time
// including the wait. A maxFPS of 0 disables throttling.
func (c *FrameClock) Tick(maxFPS int) time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	if maxFPS > 0 {
		target := time.Second / time.Duration(maxFPS)
		if elapsed := now.Sub(c.last); elapsed < target {
			c.sleep(target - elapsed)
			now = c.now()
		}
	}

	frame := now.Sub(c.last)
	c.last = now
	c.record(frame)
	return frame
}

func (c *FrameClock) record(frame time.Duration) {
	if len(c.samples) < fpsWindow {
		c.samples = append(c.samples, frame)
		return
	}
	c.samples[c.next] = frame
	c.next = (c.next + 1) % fpsWindow
}

// FPS returns the achieved frame rate averaged over the last recorded
// frames, or 0 before any full frame has completed.
func (c *FrameClock) FPS() float64 {
	var total time.Duration
	for _, d := range c.samples {
		total += d
	}
	if total <= 0 {
		return 0
	}
	return float64(len(c.samples)) / total.Seconds()
}
