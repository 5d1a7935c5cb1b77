// Package gauges renders dashboards of live instrument widgets (clock,
// artificial horizon, scrolling line chart) onto a pixel surface at a fixed
// frame rate.
//
// # Overview
//
// gauges builds on github.com/gogpu/gg for all 2D drawing. Each widget owns
// two layers: a cached background surface holding the expensive, rarely
// changing geometry (bezels, tick marks, borders) and a cheap foreground
// that is redrawn every frame (needles, chart lines). The two are composed
// into the widget's output surface on every Render call; the background is
// rasterized only once per size.
//
// The Application driver places any number of widgets at fixed screen
// offsets, polls input, composes all widget surfaces onto the screen,
// overlays a frame-rate badge, and throttles to a target FPS.
//
// # Quick Start
//
//	app, err := gauges.New(gauges.Config{Width: 1280, Height: 1024, MaxFPS: 50})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer app.Close()
//
//	clock, _ := gauges.NewClock(gauges.Size{W: 300, H: 300})
//	app.AddDisplay(clock, 10, 10)
//
//	if err := app.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The library is organized into:
//   - Root package: Drawable/LayeredDrawable, the widget types, Theme,
//     and the Application driver
//   - platform/: the window, input and presentation collaborator, behind a
//     pluggable driver registry (a headless software driver is built in)
//
// # Concurrency
//
// Everything is single-threaded and cooperative: one tick runs
// PollEvents, TickWidgets, Compose, Present and Throttle to completion
// before the next begins. Widget state, caches and the screen surface have
// a single owner and no locking discipline.
package gauges
