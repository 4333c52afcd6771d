package gauge

import (
	"github.com/gogpu/gg/text"
	"golang.org/x/text/unicode/norm"
)

// DefaultClampThreshold is the largest sweep, in degrees, that Render
// treats as zero.
const DefaultClampThreshold = 0.01

// DefaultFiller is appended to labels when measuring them.
const DefaultFiller = "."

// RendererOption configures a Renderer.
//
// Example:
//
//	r := gauge.NewRenderer(gauge.WithFiller("·"))
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	clampThreshold float64
	filler         string
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		clampThreshold: DefaultClampThreshold,
		filler:         DefaultFiller,
	}
}

// WithClampThreshold sets the sweep magnitude at or below which the value
// arc is drawn with a sweep of exactly zero. Some backends fail on arcs
// that are nearly but not exactly empty.
func WithClampThreshold(degrees float64) RendererOption {
	return func(o *rendererOptions) {
		if degrees >= 0 {
			o.clampThreshold = degrees
		}
	}
}

// WithFiller sets the glyph appended to labels when measuring them.
// An empty filler is ignored.
func WithFiller(filler string) RendererOption {
	return func(o *rendererOptions) {
		if filler != "" {
			o.filler = filler
		}
	}
}

// ContextCanvasOption configures a ContextCanvas.
//
// Example:
//
//	// HarfBuzz shaping with kerning and ligatures
//	cv := gauge.NewContextCanvas(dc, gauge.WithShaper(text.NewGoTextShaper()))
type ContextCanvasOption func(*contextCanvasOptions)

type contextCanvasOptions struct {
	shaper text.Shaper
	form   norm.Form
	// normalize is false only when WithoutNormalization was given.
	normalize bool
}

func defaultContextCanvasOptions() contextCanvasOptions {
	return contextCanvasOptions{
		form:      norm.NFC,
		normalize: true,
	}
}

// WithShaper sets the shaper used to lay out labels. By default glyphs are
// positioned by the face itself, without kerning or ligatures.
func WithShaper(s text.Shaper) ContextCanvasOption {
	return func(o *contextCanvasOptions) {
		o.shaper = s
	}
}

// WithNormalization sets the Unicode normalization form applied to labels
// before shaping. The default is NFC.
func WithNormalization(form norm.Form) ContextCanvasOption {
	return func(o *contextCanvasOptions) {
		o.form = form
		o.normalize = true
	}
}

// WithoutNormalization shapes labels exactly as given.
func WithoutNormalization() ContextCanvasOption {
	return func(o *contextCanvasOptions) {
		o.normalize = false
	}
}
