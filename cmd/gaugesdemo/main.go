// Command gaugesdemo runs the stock dashboard: an analog clock, an
// artificial horizon fed by a canned flight profile, and an eight-series
// line chart fed by synthetic oscillators.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gogpu/gauges"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		width      = flag.Int("width", 0, "window width (overrides config)")
		height     = flag.Int("height", 0, "window height (overrides config)")
		fullscreen = flag.Bool("fullscreen", false, "start fullscreen")
		fps        = flag.Int("fps", 0, "target frame rate (overrides config)")
		verbose    = flag.Bool("v", false, "log to stderr")
	)
	flag.Parse()

	if *verbose {
		gauges.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	cfg := gauges.Config{}
	if *configPath != "" {
		var err error
		cfg, err = gauges.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *fps > 0 {
		cfg.MaxFPS = *fps
	}

	app, err := gauges.New(cfg)
	if err != nil {
		log.Fatalf("create application: %v", err)
	}
	defer app.Close()

	clock, err := gauges.NewClock(gauges.Size{W: 300, H: 300})
	if err != nil {
		log.Fatalf("create clock: %v", err)
	}
	app.AddDisplay(clock, 10, 10)

	horizon, err := gauges.NewHorizon(gauges.Size{W: 300, H: 300},
		gauges.WithHorizonSource(demoAttitude))
	if err != nil {
		log.Fatalf("create horizon: %v", err)
	}
	app.AddDisplay(horizon, 340, 10)

	lines, err := gauges.NewLines(gauges.Size{W: 800, H: 300},
		gauges.WithLinesSource(demoSamples))
	if err != nil {
		log.Fatalf("create lines: %v", err)
	}
	app.AddDisplay(lines, 10, 340)

	if err := app.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

// span is one leg of the canned flight profile: over [t0, t1) seconds the
// value moves linearly from v0 to v1.
type span struct {
	t0, t1 float64
	v0, v1 float64
}

var pitchProfile = []span{
	{0, 20, 0, -60},
	{20, 30, -60, -60},
	{30, 40, -60, -30},
	{40, 60, -30, 0},
}

var rollProfile = []span{
	{0, 10, 0, 0},
	{10, 30, 0, 60},
	{30, 50, 60, -60},
	{50, 60, -60, 0},
}

func interpolate(profile []span, t float64) float64 {
	for _, s := range profile {
		if s.t0 <= t && t < s.t1 {
			pos := (t - s.t0) / (s.t1 - s.t0)
			return s.v0 + pos*(s.v1-s.v0)
		}
	}
	return 0
}

// demoAttitude replays a one-minute flight profile on loop.
func demoAttitude() (pitch, roll float64, err error) {
	secs := math.Mod(float64(time.Now().UnixMilli())/1000, 60)
	return interpolate(pitchProfile, secs), interpolate(rollProfile, secs), nil
}

// demoSamples synthesizes one sample per chart series: a mix of
// oscillators, noise and a constant, all within the chart's [-20, 20]
// domain.
func demoSamples() ([]float64, error) {
	ang := float64(time.Now().UnixMilli()) / 1000 * math.Pi / 180

	return []float64{
		(math.Sin(ang*20)+math.Cos(ang*667)+math.Cos(ang*1024))*3 + 8,
		rand.Float64()*6 - 10,
		math.Sin(ang*60) * 18,
		math.Cos(ang*60) * 18,
		math.Sin(ang*240) * 10,
		math.Cos(ang*240) * 10,
		1,
		(math.Cos(ang*1000) + math.Cos(ang*300)) * 4,
	}, nil
}
