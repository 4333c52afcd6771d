package gauge

import (
	"math"

	"github.com/gogpu/gg"
)

// Renderer draws radial gauges onto a Canvas.
// A Renderer holds only its options and may be shared between goroutines;
// the canvas passed to Render may not.
type Renderer struct {
	opts rendererOptions
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

var defaultRenderer = NewRenderer()

// Render draws cfg with the default renderer.
func Render(canvas Canvas, center gg.Point, radius float64, cfg Config) error {
	return defaultRenderer.Render(canvas, center, radius, cfg)
}

// Render draws the background arc, the value arc and the label of cfg, in
// that order, around center.
//
// A value sweep within the clamp threshold of zero is drawn, and the label
// placed, as a sweep of exactly zero. cfg is passed by value and never
// modified. Render does not validate cfg; see Config.Validate.
func (r *Renderer) Render(canvas Canvas, center gg.Point, radius float64, cfg Config) error {
	if canvas == nil {
		return ErrNilCanvas
	}

	if err := r.renderBackground(canvas, center, radius, cfg); err != nil {
		return &PassError{Pass: PassBackground, Err: err}
	}

	if math.Abs(cfg.SweepAngle) <= r.opts.clampThreshold && cfg.SweepAngle != 0 {
		Logger().Debug("gauge: clamping near-zero sweep", "sweep", cfg.SweepAngle)
		cfg.SweepAngle = 0
	}

	if err := r.renderForeground(canvas, center, radius, cfg); err != nil {
		return &PassError{Pass: PassForeground, Err: err}
	}
	if err := r.renderLabel(canvas, center, radius, cfg); err != nil {
		return &PassError{Pass: PassLabel, Err: err}
	}
	return nil
}

func (r *Renderer) renderBackground(canvas Canvas, center gg.Point, radius float64, cfg Config) error {
	if cfg.Mode == ModeSingleGauge {
		Logger().Debug("gauge: background skipped", "mode", cfg.Mode)
		return nil
	}

	arc := Arc{Center: center, Radius: radius, Start: cfg.BackStartAngle, Sweep: cfg.BackSweep()}
	return canvas.StrokeArc(arc, Stroke{
		Width: cfg.Width,
		Cap:   cfg.StartCap,
		Color: cfg.BackgroundColor,
	})
}

func (r *Renderer) renderForeground(canvas Canvas, center gg.Point, radius float64, cfg Config) error {
	arc := Arc{Center: center, Radius: radius, Start: cfg.StartAngle, Sweep: cfg.SweepAngle}
	return canvas.StrokeArc(arc, Stroke{
		Width: cfg.Width,
		Cap:   gg.LineCapButt,
		Color: cfg.Color,
	})
}

func (r *Renderer) renderLabel(canvas Canvas, center gg.Point, radius float64, cfg Config) error {
	if !cfg.ShowLabels || cfg.Label == "" {
		Logger().Debug("gauge: label skipped", "show", cfg.ShowLabels, "empty", cfg.Label == "")
		return nil
	}

	style := TextStyle{
		Source: cfg.Font.Source,
		Size:   cfg.TextSize(),
		Color:  cfg.Font.Color,
	}

	textBounds := canvas.MeasureText(cfg.Label+r.opts.filler, style)
	fillerBounds := canvas.MeasureText(r.opts.filler, style)
	p := cfg.PlaceLabel(center, radius, textBounds, fillerBounds)

	if tracing() {
		Logger().Debug("gauge: label placed",
			"label", cfg.Label,
			"below", p.Below,
			"sweep", p.Path.Sweep,
			"hoffset", p.HOffset,
			"voffset", p.VOffset)
	}

	return canvas.DrawTextOnPath(cfg.Label, p.Path, p.HOffset, p.VOffset, style)
}
