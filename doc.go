// Package gauge renders radial gauges for gg.
//
// # Overview
//
// A radial gauge is an arc-based dial indicator: a background arc that marks
// the full range, a foreground arc that marks the current value, and an
// optional label that follows the foreground arc. The package is a leaf
// renderer. It owns no data model and no layout; the caller supplies the
// centre point, the radius and a [Config] that already carries the angles.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/gg/text"
//	    "github.com/gogpu/gauge"
//	    "golang.org/x/image/font/gofont/goregular"
//	)
//
//	dc := gg.NewContext(400, 400)
//	source, _ := text.NewFontSource(goregular.TTF)
//
//	cfg := gauge.DefaultConfig()
//	cfg.SweepAngle = 120
//	cfg.Label = "CPU"
//	cfg.Font = gauge.Font{Source: source, Color: gg.White}
//
//	err := gauge.Render(gauge.NewContextCanvas(dc), gg.Pt(200, 200), 150, cfg)
//
// # Render Passes
//
// [Renderer.Render] issues three passes in a fixed order:
//
//  1. Background arc, skipped in [ModeSingleGauge].
//  2. Foreground arc, always Butt-capped.
//  3. Label text along the arc, skipped when labels are hidden or empty.
//
// # Coordinate System
//
// Angles are in degrees. 0° points right and positive angles turn clockwise
// on screen (y grows down), matching gg's arc orientation. Sweep angles are
// signed; the sign picks the rotational direction.
//
// # Canvases
//
// Drawing goes through the [Canvas] interface. [ContextCanvas] draws onto a
// *gg.Context; the recording subpackage captures commands for inspection
// and later playback.
package gauge
